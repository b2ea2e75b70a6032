package ui

import (
	"github.com/oakwood-commons/gamecat/internal/schema"
	"github.com/oakwood-commons/gamecat/internal/sorting"
	"github.com/oakwood-commons/gamecat/internal/tableview"
	"github.com/oakwood-commons/gamecat/internal/ui/table"
)

// columnWeights sets each column's share of the available width.
var columnWeights = map[string]int{
	"game_name":    28,
	"review_score": 8,
	"game_price":   9,
	"genre":        12,
	"description":  34,
	"tags":         22,
	"release_date": 13,
}

// minColumnWidth is the narrowest a column is drawn.
const minColumnWidth = 4

// columnWidths splits total cells across headers by weight. Every column gets
// at least minColumnWidth, and the index column never grows past its label.
// On very narrow terminals the minimums may exceed total.
func columnWidths(headers []tableview.Header, total int) []int {
	widths := make([]int, len(headers))
	if len(headers) == 0 {
		return widths
	}
	// One cell of padding per column; the index column is sized first.
	avail := total - len(headers)
	sum := 0
	for i, h := range headers {
		if h.ID == schema.IndexColumnID {
			widths[i] = max(len(h.Title)+2, minColumnWidth)
			avail -= widths[i]
			continue
		}
		sum += weightOf(h.ID)
	}
	if sum == 0 {
		return widths
	}
	used := 0
	widest := -1
	for i, h := range headers {
		if h.ID == schema.IndexColumnID {
			continue
		}
		w := max(avail*weightOf(h.ID)/sum, minColumnWidth)
		widths[i] = w
		used += w
		if widest < 0 || w > widths[widest] {
			widest = i
		}
	}
	// Hand any rounding slack to the widest column.
	if slack := avail - used; slack > 0 && widest >= 0 {
		widths[widest] += slack
	}
	return widths
}

func weightOf(id string) int {
	if w, ok := columnWeights[id]; ok {
		return w
	}
	return 10
}

func sortMark(d sorting.Direction) table.SortMark {
	switch d {
	case sorting.DirectionAscending:
		return table.Ascending
	case sorting.DirectionDescending:
		return table.Descending
	default:
		return table.Unsorted
	}
}

// tableHeaders converts matrix headers for the table widget.
func tableHeaders(headers []tableview.Header, widths []int, selected int) []table.Header {
	out := make([]table.Header, len(headers))
	for i, h := range headers {
		out[i] = table.Header{
			Title:    h.Title,
			Width:    widths[i],
			Sort:     sortMark(h.Direction),
			Sortable: h.Sortable,
			Selected: i == selected,
		}
	}
	return out
}
