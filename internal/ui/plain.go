package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/gamecat/internal/sorting"
	"github.com/oakwood-commons/gamecat/internal/tableview"
)

// PlainOptions controls non-interactive table output.
type PlainOptions struct {
	// Width caps the line width. 0 means unlimited.
	Width   int
	NoColor bool
	Theme   Theme
}

// maxPlainColumn caps any single column before width fitting.
const maxPlainColumn = 48

// RenderPlain writes the matrix as an aligned text table.
func RenderPlain(w io.Writer, mtx tableview.Matrix, opts PlainOptions) error {
	st := NewStyles(opts.Theme, opts.NoColor)

	titles := make([]string, len(mtx.Columns))
	for i, h := range mtx.Columns {
		titles[i] = h.Title + plainArrow(h.Direction)
	}
	cells := make([][]string, len(mtx.Rows))
	for r, row := range mtx.Rows {
		line := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			line[i] = plainCell(c)
		}
		cells[r] = line
	}

	widths := fitWidths(naturalWidths(titles, cells), opts.Width)

	var b strings.Builder
	writeRow := func(values []string, style func(i int, padded string) string) {
		for i, v := range values {
			if i > 0 {
				b.WriteString("  ")
			}
			padded := runewidth.FillRight(runewidth.Truncate(v, widths[i], "…"), widths[i])
			if i == len(values)-1 {
				padded = strings.TrimRight(padded, " ")
			}
			b.WriteString(style(i, padded))
		}
		b.WriteString("\n")
	}

	styled := func(style lipgloss.Style) func(int, string) string {
		return func(_ int, s string) string {
			if opts.NoColor {
				return s
			}
			return style.Render(s)
		}
	}
	writeRow(titles, styled(st.Header))
	seps := make([]string, len(widths))
	for i, wd := range widths {
		seps[i] = strings.Repeat("─", wd)
	}
	writeRow(seps, styled(st.Muted))
	for r, line := range cells {
		row := mtx.Rows[r]
		writeRow(line, func(i int, s string) string {
			if opts.NoColor {
				return s
			}
			c := row.Cells[i]
			if c.Strike {
				return st.Unavailable.Render(s)
			}
			return s
		})
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// RenderJSON writes the matrix as indented JSON.
func RenderJSON(w io.Writer, mtx tableview.Matrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mtx); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func plainArrow(d sorting.Direction) string {
	switch d {
	case sorting.DirectionAscending:
		return " ▲"
	case sorting.DirectionDescending:
		return " ▼"
	default:
		return ""
	}
}

func naturalWidths(titles []string, cells [][]string) []int {
	widths := make([]int, len(titles))
	for i, t := range titles {
		widths[i] = runewidth.StringWidth(t)
	}
	for _, line := range cells {
		for i, v := range line {
			if w := runewidth.StringWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxPlainColumn {
			widths[i] = maxPlainColumn
		}
	}
	return widths
}

// fitWidths narrows the widest columns until the row fits total.
func fitWidths(widths []int, total int) []int {
	if total <= 0 || len(widths) == 0 {
		return widths
	}
	gaps := 2 * (len(widths) - 1)
	sum := gaps
	for _, w := range widths {
		sum += w
	}
	for sum > total {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
		sum--
	}
	return widths
}
