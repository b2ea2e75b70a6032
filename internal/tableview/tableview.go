// Package tableview combines the column schema, sort state, and records into
// the matrix a renderer draws.
package tableview

import (
	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/schema"
	"github.com/oakwood-commons/gamecat/internal/sorting"
)

// Header is one rendered column heading.
type Header struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Sortable  bool              `json:"sortable"`
	Direction sorting.Direction `json:"direction"`
}

// RenderedRow is one record's cells in column order.
type RenderedRow struct {
	// Index is the record's 0-based position in the fetched list.
	Index  int                `json:"index"`
	Record catalog.GameRecord `json:"record"`
	Cells  []schema.Cell      `json:"cells"`
}

// Matrix is the full table: headers plus rows in display order.
type Matrix struct {
	ViewMode prefs.ViewMode `json:"view_mode"`
	Sort     sorting.State  `json:"sort"`
	Columns  []Header       `json:"columns"`
	Rows     []RenderedRow  `json:"rows"`
}

// Build renders records under mode and s.
func Build(records []catalog.GameRecord, mode prefs.ViewMode, s sorting.State) Matrix {
	return FromColumns(records, schema.Build(mode), mode, s)
}

// FromColumns renders records with an already built column list.
func FromColumns(records []catalog.GameRecord, cols []schema.ColumnDefinition, mode prefs.ViewMode, s sorting.State) Matrix {
	m := Matrix{
		ViewMode: mode,
		Sort:     s,
		Columns:  Headers(cols, s),
		Rows:     make([]RenderedRow, 0, len(records)),
	}
	for _, row := range sorting.Apply(records, cols, s) {
		cells := make([]schema.Cell, len(cols))
		for i, c := range cols {
			cells[i] = c.Render(row)
		}
		m.Rows = append(m.Rows, RenderedRow{Index: row.Index, Record: row.Record, Cells: cells})
	}
	return m
}

// Headers returns the column headings with their sort indicators.
func Headers(cols []schema.ColumnDefinition, s sorting.State) []Header {
	out := make([]Header, len(cols))
	for i, c := range cols {
		out[i] = Header{
			ID:        c.ID,
			Title:     c.Header,
			Sortable:  c.Sortable(),
			Direction: sorting.Indicator(s, c.ID),
		}
	}
	return out
}

// Column returns the index of the column with id, or -1.
func (m Matrix) Column(id string) int {
	for i, h := range m.Columns {
		if h.ID == id {
			return i
		}
	}
	return -1
}
