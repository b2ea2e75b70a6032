// Package schema maps a view mode onto the ordered column definitions used
// to render the catalog table.
package schema

import (
	"slices"
	"strconv"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/prefs"
)

// IndexColumnID identifies the derived 1-based position column.
const IndexColumnID = "index"

// DescriptionMaxLines is the clamp height of compact descriptions.
const DescriptionMaxLines = 3

// MissingScore is shown for records without a review score.
const MissingScore = "???"

// Row is a record paired with its 0-based position in the fetched list.
type Row struct {
	Index  int
	Record catalog.GameRecord
}

// CompareFunc orders two accessor values, returning -1, 0, or 1.
type CompareFunc func(a, b any) int

// ColumnDefinition describes one table column.
type ColumnDefinition struct {
	// ID is stable across renders: the accessor field name, or IndexColumnID.
	ID string
	// Header is the column caption.
	Header string
	// Accessor names the record field the column reads. Empty for derived columns.
	Accessor catalog.Field
	// Render builds the cell for a row.
	Render func(Row) Cell
	// Compare overrides the default ordering when set.
	Compare CompareFunc
}

// Sortable reports whether the column has an accessor to sort by.
func (c ColumnDefinition) Sortable() bool {
	return c.Accessor != ""
}

// Value returns the accessor value for r, or nil for derived columns.
func (c ColumnDefinition) Value(r Row) any {
	if c.Accessor == "" {
		return nil
	}
	return r.Record.Value(c.Accessor)
}

var builders = map[prefs.ViewMode]func() []ColumnDefinition{
	prefs.ViewDetailed: detailedColumns,
	prefs.ViewCompact:  compactColumns,
}

// Build returns the columns for mode. Unknown modes get the detailed layout.
// Each call returns fresh definitions; nothing is shared between calls.
func Build(mode prefs.ViewMode) []ColumnDefinition {
	build, ok := builders[mode]
	if !ok {
		build = detailedColumns
	}
	return build()
}

// Find returns the column with id.
func Find(cols []ColumnDefinition, id string) (ColumnDefinition, bool) {
	for _, c := range cols {
		if c.ID == id {
			return c, true
		}
	}
	return ColumnDefinition{}, false
}

func detailedColumns() []ColumnDefinition {
	return []ColumnDefinition{
		indexColumn("ID"),
		{
			ID:       string(catalog.FieldName),
			Header:   "Game Name",
			Accessor: catalog.FieldName,
			Render:   renderExpandable,
		},
		scoreColumn(),
	}
}

func compactColumns() []ColumnDefinition {
	return []ColumnDefinition{
		indexColumn("Index"),
		{
			ID:       string(catalog.FieldName),
			Header:   "Game Name",
			Accessor: catalog.FieldName,
			Render:   renderLink,
		},
		scoreColumn(),
		textColumn(catalog.FieldPrice, "Price"),
		textColumn(catalog.FieldGenre, "Genre"),
		{
			ID:       string(catalog.FieldDescription),
			Header:   "Description",
			Accessor: catalog.FieldDescription,
			Render: func(r Row) Cell {
				return Cell{Kind: KindClamped, Text: r.Record.Description, MaxLines: DescriptionMaxLines}
			},
		},
		{
			ID:       string(catalog.FieldTags),
			Header:   "Tags",
			Accessor: catalog.FieldTags,
			Render: func(r Row) Cell {
				return Cell{Kind: KindBadges, Badges: SortedTags(r.Record.Tags)}
			},
		},
		textColumn(catalog.FieldReleaseDate, "Release Date"),
	}
}

func indexColumn(header string) ColumnDefinition {
	return ColumnDefinition{
		ID:     IndexColumnID,
		Header: header,
		Render: func(r Row) Cell {
			return Cell{Kind: KindText, Text: strconv.Itoa(r.Index + 1)}
		},
	}
}

func scoreColumn() ColumnDefinition {
	return ColumnDefinition{
		ID:       string(catalog.FieldReviewScore),
		Header:   "Score",
		Accessor: catalog.FieldReviewScore,
		Compare:  CompareRank,
		Render: func(r Row) Cell {
			score := r.Record.ReviewScore
			if score == "" {
				score = MissingScore
			}
			return Cell{Kind: KindScore, Text: score}
		},
	}
}

func textColumn(f catalog.Field, header string) ColumnDefinition {
	return ColumnDefinition{
		ID:       string(f),
		Header:   header,
		Accessor: f,
		Render: func(r Row) Cell {
			s, _ := r.Record.Value(f).(string)
			return Cell{Kind: KindText, Text: s}
		},
	}
}

func renderLink(r Row) Cell {
	return Cell{
		Kind:   KindLink,
		Text:   r.Record.GameName,
		URL:    r.Record.GameURL,
		Strike: r.Record.Unavailable(),
	}
}

func renderExpandable(r Row) Cell {
	rec := r.Record
	return Cell{
		Kind:   KindExpandable,
		Text:   rec.GameName,
		URL:    rec.GameURL,
		Strike: rec.Unavailable(),
		Details: []Detail{
			{Label: "Price", Value: rec.GamePrice},
			{Label: "Genre", Value: rec.Genre},
			{Label: "Release Date", Value: rec.ReleaseDate},
		},
		Body:   rec.Description,
		Badges: SortedTags(rec.Tags),
	}
}

// SortedTags returns a lexically sorted copy of tags. The input is not modified.
func SortedTags(tags []string) []string {
	out := slices.Clone(tags)
	if out == nil {
		out = []string{}
	}
	slices.Sort(out)
	return out
}
