// Package sorting holds the header-click sort state machine and the stable
// sort that applies it to catalog rows.
package sorting

import (
	"slices"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/schema"
)

// Direction is the sort direction of the active column.
type Direction string

const (
	DirectionNone       Direction = "none"
	DirectionAscending  Direction = "ascending"
	DirectionDescending Direction = "descending"
)

// State is the table's transient sort state. The zero value is unsorted.
type State struct {
	Column    string    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Active reports whether rows are sorted.
func (s State) Active() bool {
	return s.Column != "" && (s.Direction == DirectionAscending || s.Direction == DirectionDescending)
}

// Toggle applies a header click on columnID. Clicking the active column
// cycles ascending, descending, then unsorted. Clicking any other column
// starts it at ascending and drops the previous column's sort.
func Toggle(s State, columnID string) State {
	if columnID == "" {
		return s
	}
	if !s.Active() || s.Column != columnID {
		return State{Column: columnID, Direction: DirectionAscending}
	}
	if s.Direction == DirectionAscending {
		return State{Column: columnID, Direction: DirectionDescending}
	}
	return State{}
}

// ToggleColumn is Toggle for a column definition. Clicks on columns that
// cannot be sorted leave s unchanged.
func ToggleColumn(s State, col schema.ColumnDefinition) State {
	if !col.Sortable() {
		return s
	}
	return Toggle(s, col.ID)
}

// Indicator returns the direction to show on columnID's header.
func Indicator(s State, columnID string) Direction {
	if s.Active() && s.Column == columnID {
		return s.Direction
	}
	return DirectionNone
}

// Apply returns records paired with their original positions, ordered by s.
// The sort is stable in both directions: ties keep their original relative
// order. Descending inverts the comparator rather than reversing the result.
// An unsorted state, or a column missing from cols, keeps the input order.
// records is never modified.
func Apply(records []catalog.GameRecord, cols []schema.ColumnDefinition, s State) []schema.Row {
	rows := make([]schema.Row, len(records))
	for i, r := range records {
		rows[i] = schema.Row{Index: i, Record: r}
	}
	if !s.Active() {
		return rows
	}
	col, ok := schema.Find(cols, s.Column)
	if !ok || !col.Sortable() {
		return rows
	}

	cmp := col.Compare
	if cmp == nil {
		cmp = DefaultComparator(col, rows)
	}
	desc := s.Direction == DirectionDescending

	slices.SortStableFunc(rows, func(a, b schema.Row) int {
		va, vb := col.Value(a), col.Value(b)
		if desc {
			return cmp(vb, va)
		}
		return cmp(va, vb)
	})
	return rows
}
