package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title       lipgloss.Style
	Toggle      lipgloss.Style
	Header      lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Link        lipgloss.Style
	Unavailable lipgloss.Style
	Score       lipgloss.Style
	Badge       lipgloss.Style
	Error       lipgloss.Style
	Footer      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpValue   lipgloss.Style
	DetailLabel lipgloss.Style
	Pane        lipgloss.Style
	Theme       Theme
	NoColor     bool
}

// NewStyles derives styles from th. With noColor only text attributes
// (bold, strikethrough, reverse) are kept.
func NewStyles(th Theme, noColor bool) Styles {
	fg := func(s lipgloss.Style, c color.Color) lipgloss.Style {
		if noColor || c == nil {
			return s
		}
		return s.Foreground(c)
	}
	bg := func(s lipgloss.Style, c color.Color) lipgloss.Style {
		if noColor || c == nil {
			return s
		}
		return s.Background(c)
	}

	base := lipgloss.NewStyle()
	st := Styles{Theme: th, NoColor: noColor}
	st.Title = fg(base.Bold(true), th.Accent)
	st.Toggle = fg(base, th.Muted)
	st.Header = fg(base.Bold(true), th.HeaderFG)
	st.Text = fg(base, th.Text)
	st.Muted = fg(base, th.Muted)
	st.Link = fg(base.Underline(true), th.Link)
	st.Unavailable = fg(base.Strikethrough(true), th.Unavailable)
	st.Score = fg(base, th.Score)
	st.Badge = bg(fg(base.Padding(0, 1), th.BadgeFG), th.BadgeBG)
	if noColor {
		st.Badge = base.Reverse(true).Padding(0, 1)
	}
	st.Error = fg(base.Bold(true), th.Error)
	st.Footer = bg(fg(base, th.FooterFG), th.FooterBG)
	st.HelpKey = fg(base.Bold(true), th.HelpKey)
	st.HelpValue = fg(base, th.HelpValue)
	st.DetailLabel = fg(base.Bold(true), th.Accent)

	pane := base.Border(borderForTheme(th)).Padding(0, 1)
	if !noColor && th.Muted != nil {
		pane = pane.BorderForeground(th.Muted)
	}
	st.Pane = pane
	return st
}
