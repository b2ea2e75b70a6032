package schema

// ScoreRanks is the review score scale from best to worst.
var ScoreRanks = []string{"*****", "****", "***", "**", "*", "-", "???", ""}

func rankOf(v any) int {
	s, ok := v.(string)
	if !ok {
		return len(ScoreRanks)
	}
	for i, r := range ScoreRanks {
		if r == s {
			return i
		}
	}
	return len(ScoreRanks)
}

// CompareRank orders scores by their position on ScoreRanks. Values not on
// the scale rank after every known value and tie with each other.
func CompareRank(a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
