// Package table wraps the bubbles table with typed rows, theme colors, and
// sortable column headings.
package table

import (
	"fmt"
	"image/color"

	bubtable "charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Re-export common table types so callers can construct columns/rows without
// importing bubbles directly.
type Column = bubtable.Column
type Row = bubtable.Row

// SortMark is the sort indicator drawn next to a heading.
type SortMark int

const (
	Unsorted SortMark = iota
	Ascending
	Descending
)

// Header describes one column heading.
type Header struct {
	Title    string
	Width    int
	Sort     SortMark
	Sortable bool
	Selected bool
}

// decorated returns the heading with its selection marker and sort arrow.
func (h Header) decorated() string {
	title := h.Title
	switch h.Sort {
	case Ascending:
		title += " ▲"
	case Descending:
		title += " ▼"
	}
	if h.Selected {
		return "›" + title
	}
	return " " + title
}

// Model is a table of typed rows. toRow converts a value into display cells;
// it is called again on every SetRows so it may read caller state.
type Model[V any] struct {
	table   bubtable.Model
	styles  bubtable.Styles
	rows    []V
	headers []Header

	toRow func(V) Row

	width   int
	height  int
	focused bool
	noColor bool

	headerFG   color.Color
	headerBG   color.Color
	selectedFG color.Color
	selectedBG color.Color
}

// NewModel creates a table whose rows are rendered by toRow.
func NewModel[V any](headers []Header, toRow func(V) Row) *Model[V] {
	t := bubtable.New(
		bubtable.WithColumns(columnsFor(headers)),
		bubtable.WithFocused(true),
		bubtable.WithHeight(5),
		bubtable.WithWidth(80),
	)

	s := bubtable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Bold(true).
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	s.Selected = s.Selected.
		PaddingLeft(0).
		PaddingRight(0)
	s.Cell = lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(0).
		PaddingRight(1)
	t.SetStyles(s)

	return &Model[V]{
		table:   t,
		styles:  s,
		rows:    []V{},
		headers: headers,
		toRow:   toRow,
		width:   80,
		height:  10,
		focused: true,
	}
}

func columnsFor(headers []Header) []Column {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Title: h.decorated(), Width: h.Width}
	}
	return cols
}

// SetRows replaces the row values, keeping the cursor in range.
func (m *Model[V]) SetRows(rows []V) {
	m.rows = rows
	tableRows := make([]Row, len(rows))
	for i, row := range rows {
		tableRows[i] = m.toRow(row)
	}
	m.table.SetRows(tableRows)

	switch {
	case len(rows) == 0:
	case m.Cursor() < 0:
		m.SetCursor(0)
	case m.Cursor() >= len(rows):
		m.SetCursor(len(rows) - 1)
	}
}

// SetHeaders replaces the column headings. Call SetRows afterwards when the
// number of columns changed.
func (m *Model[V]) SetHeaders(headers []Header) {
	if len(headers) != len(m.headers) {
		// Rows must never have more cells than there are columns.
		m.table.SetRows(nil)
	}
	m.headers = headers
	m.table.SetColumns(columnsFor(headers))
	m.applyColorScheme()
}

// Headers returns the current headings.
func (m *Model[V]) Headers() []Header {
	return m.headers
}

// Rows returns the row values in display order.
func (m *Model[V]) Rows() []V {
	return m.rows
}

// Cursor returns the current cursor position.
func (m *Model[V]) Cursor() int {
	return m.table.Cursor()
}

// SetCursor sets the cursor position.
func (m *Model[V]) SetCursor(pos int) {
	m.table.SetCursor(pos)
}

// SelectedRow returns the row under the cursor, or nil if there are no rows.
func (m *Model[V]) SelectedRow() *V {
	if len(m.rows) == 0 {
		return nil
	}
	cursor := m.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[cursor]
}

// SetSize sets the table dimensions.
func (m *Model[V]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

// Focus sets the table focus state.
func (m *Model[V]) Focus() {
	m.focused = true
	m.table.Focus()
}

// Blur removes focus from the table.
func (m *Model[V]) Blur() {
	m.focused = false
	m.table.Blur()
}

// Focused returns true if the table has focus.
func (m *Model[V]) Focused() bool {
	return m.focused
}

// SetNoColor enables/disables color output.
func (m *Model[V]) SetNoColor(noColor bool) {
	m.noColor = noColor
	m.applyColorScheme()
}

// SetColors sets theme colors for the header and selected row.
func (m *Model[V]) SetColors(headerFG, headerBG, selectedFG, selectedBG color.Color) {
	m.headerFG = headerFG
	m.headerBG = headerBG
	m.selectedFG = selectedFG
	m.selectedBG = selectedBG
	m.applyColorScheme()
}

func (m *Model[V]) applyColorScheme() {
	s := m.styles

	if m.noColor {
		s.Header = s.Header.UnsetForeground().UnsetBackground()
		s.Selected = s.Selected.UnsetForeground().UnsetBackground().Reverse(true)
		s.Cell = s.Cell.UnsetForeground().UnsetBackground()
	} else {
		s.Selected = s.Selected.Reverse(false)
		if m.headerFG != nil {
			s.Header = s.Header.Foreground(m.headerFG)
		}
		if m.headerBG != nil {
			s.Header = s.Header.Background(m.headerBG)
		}
		if m.selectedFG != nil {
			s.Selected = s.Selected.Foreground(m.selectedFG)
		}
		if m.selectedBG != nil {
			s.Selected = s.Selected.Background(m.selectedBG)
		}
	}

	m.table.SetStyles(s)
	m.styles = s
}

// Update forwards navigation messages to the bubbles table.
func (m *Model[V]) Update(msg tea.Msg) (*Model[V], tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table to a string.
func (m *Model[V]) View() string {
	return m.table.View()
}

// Height returns the rendered height of the table (including header).
func (m *Model[V]) Height() int {
	return lipgloss.Height(m.View())
}

// Width returns the rendered width of the table.
func (m *Model[V]) Width() int {
	return lipgloss.Width(m.View())
}

// String returns a string representation for debugging.
func (m *Model[V]) String() string {
	return fmt.Sprintf("Table[rows=%d, columns=%d, cursor=%d]", len(m.rows), len(m.headers), m.Cursor())
}
