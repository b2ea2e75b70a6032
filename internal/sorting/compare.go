package sorting

import (
	"math"
	"strconv"
	"strings"

	"github.com/oakwood-commons/gamecat/internal/schema"
)

// DefaultComparator infers an ordering for col from the values present in
// rows. When every non-empty value is numeric (an optional leading currency
// symbol and thousands separators are allowed) values compare numerically
// with non-numeric ones last. Otherwise values compare as text,
// case-insensitively first and bytewise to break ties.
func DefaultComparator(col schema.ColumnDefinition, rows []schema.Row) schema.CompareFunc {
	numeric := false
	for _, r := range rows {
		s := text(col.Value(r))
		if s == "" {
			continue
		}
		if _, ok := parseNumber(s); !ok {
			numeric = false
			break
		}
		numeric = true
	}
	if numeric {
		return CompareNumeric
	}
	return CompareText
}

// CompareText orders values by their text form.
func CompareText(a, b any) int {
	sa, sb := text(a), text(b)
	if c := strings.Compare(strings.ToLower(sa), strings.ToLower(sb)); c != 0 {
		return c
	}
	return strings.Compare(sa, sb)
}

// CompareNumeric orders values numerically. Values that do not parse sort
// after all numbers and compare as text among themselves.
func CompareNumeric(a, b any) int {
	na, okA := parseNumber(text(a))
	nb, okB := parseNumber(text(b))
	switch {
	case okA && okB:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	}
	return CompareText(a, b)
}

// text renders an accessor value for comparison. Tag lists use their sorted,
// comma-joined form.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(schema.SortedTags(t), ",")
	default:
		return ""
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for _, sym := range []string{"$", "€", "£"} {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
