package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/gamecat/internal/schema"
)

// unavailableMark flags struck-through titles where strikethrough cannot be drawn.
const unavailableMark = " (unavailable)"

// cellLine renders c on a single line for the table grid.
func cellLine(c schema.Cell, st Styles, expanded bool) string {
	switch c.Kind {
	case schema.KindExpandable, schema.KindLink:
		text := c.Text
		if c.Kind == schema.KindExpandable {
			if expanded {
				text = "▾ " + text
			} else {
				text = "▸ " + text
			}
		}
		if c.Strike {
			if st.NoColor {
				return text + unavailableMark
			}
			return st.Unavailable.Render(text)
		}
		return text
	case schema.KindScore:
		return st.Score.Render(c.Text)
	case schema.KindClamped:
		return firstLine(c.Text)
	case schema.KindBadges:
		return strings.Join(c.Badges, " · ")
	default:
		return c.Text
	}
}

// plainCell renders c as uncolored single-line text.
func plainCell(c schema.Cell) string {
	switch c.Kind {
	case schema.KindBadges:
		return strings.Join(c.Badges, ", ")
	case schema.KindClamped:
		return firstLine(c.Text)
	case schema.KindLink, schema.KindExpandable:
		if c.Strike {
			return c.Text + unavailableMark
		}
		return c.Text
	default:
		return c.Text
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i]) + " …"
	}
	return s
}

// clampLines wraps s to width and keeps at most maxLines lines, marking the
// cut with an ellipsis. maxLines <= 0 keeps every line.
func clampLines(s string, width, maxLines int) string {
	if width <= 0 {
		width = 80
	}
	wrapped := ansi.Wordwrap(strings.TrimSpace(s), width, "")
	lines := strings.Split(wrapped, "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return wrapped
	}
	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if runewidth.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	lines[maxLines-1] = last + "…"
	return strings.Join(lines, "\n")
}

// renderBadges lays out badges as pills, wrapping to width.
func renderBadges(badges []string, st Styles, width int) string {
	if len(badges) == 0 {
		return st.Muted.Render("no tags")
	}
	var rows []string
	var line []string
	used := 0
	for _, b := range badges {
		pill := st.Badge.Render(b)
		w := lipgloss.Width(pill)
		if used > 0 && used+1+w > width {
			rows = append(rows, strings.Join(line, " "))
			line, used = nil, 0
		}
		if used > 0 {
			used++
		}
		line = append(line, pill)
		used += w
	}
	rows = append(rows, strings.Join(line, " "))
	return strings.Join(rows, "\n")
}

// renderDetail draws the pane under the table for the selected row. In the
// detailed view it shows the expanded body; in the compact view it shows the
// clamped description and the tag badges.
func renderDetail(cells []schema.Cell, st Styles, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	var sections []string
	for _, c := range cells {
		switch c.Kind {
		case schema.KindExpandable:
			title := c.Text
			if c.Strike {
				title = st.Unavailable.Render(title)
				if st.NoColor {
					title += unavailableMark
				}
			} else {
				title = st.Link.Render(title)
			}
			sections = append(sections, title)
			if c.URL != "" {
				sections = append(sections, st.Muted.Render(c.URL))
			}
			for _, d := range c.Details {
				sections = append(sections, st.DetailLabel.Render(d.Label+": ")+st.Text.Render(d.Value))
			}
			if c.Body != "" {
				sections = append(sections, "", st.Text.Render(ansi.Wordwrap(c.Body, inner, "")))
			}
			sections = append(sections, "", renderBadges(c.Badges, st, inner))
		case schema.KindClamped:
			sections = append(sections, st.Text.Render(clampLines(c.Text, inner, c.MaxLines)))
		case schema.KindBadges:
			sections = append(sections, "", renderBadges(c.Badges, st, inner))
		}
	}
	if len(sections) == 0 {
		return ""
	}
	return st.Pane.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
