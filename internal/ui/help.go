package ui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
)

// HelpText renders the key bindings as plain text for the CLI help.
func HelpText() string {
	var b strings.Builder
	for _, group := range keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			b.WriteString("  ")
			b.WriteString(padRight(h.Key, 8))
			b.WriteString(h.Desc)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// newHelp returns a help model styled with st.
func newHelp(st Styles) help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpValue
	h.Styles.ShortSeparator = st.Muted
	h.Styles.FullKey = st.HelpKey
	h.Styles.FullDesc = st.HelpValue
	h.Styles.FullSeparator = st.Muted
	h.Styles.Ellipsis = st.Muted
	return h
}

func shortHelp(st Styles) string {
	return newHelp(st).ShortHelpView(keys.ShortHelp())
}

func renderHelp(st Styles, width int) string {
	body := newHelp(st).FullHelpView(keys.FullHelp())
	lines := []string{st.Title.Render("Keys"), "", body, "", st.Muted.Render("esc or ? to close")}
	pane := st.Pane
	if width > 4 {
		pane = pane.MaxWidth(width)
	}
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
