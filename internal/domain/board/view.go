package board

import (
	"sort"
	"strings"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

// Filters narrow merged rows before sorting. Every active filter must match
// (conjunction); sport and stat are exact matches against the row's fields,
// search text is a case-insensitive substring match against player name,
// game display or team abbreviation.
type Filters struct {
	SportID    string
	StatType   string
	SearchText string
}

type SortField string

const (
	SortPlayer  SortField = "player"
	SortSport   SortField = "sport"
	SortStat    SortField = "stat"
	SortLine    SortField = "line"
	SortOver    SortField = "over"
	SortUnder   SortField = "under"
	SortUpdated SortField = "updated"
)

var AllSortFields = map[SortField]struct{}{
	SortPlayer:  {},
	SortSport:   {},
	SortStat:    {},
	SortLine:    {},
	SortOver:    {},
	SortUnder:   {},
	SortUpdated: {},
}

type Sort struct {
	Field     SortField
	Ascending bool
}

// ApplyView filters and sorts merged rows for presentation. The sort is
// stable so rows untouched by an update keep their relative order across
// recomputes. Absent lines and unparsable prices compare as zero on both
// sides; that sentinel is a documented compatibility choice, not null
// handling. Numeric fields sort on the freshest contributing quote.
func ApplyView(rows []MergedRow, filters Filters, sortBy Sort) []MergedRow {
	out := make([]MergedRow, 0, len(rows))
	for _, row := range rows {
		if matches(row, filters) {
			out = append(out, row)
		}
	}

	if _, ok := AllSortFields[sortBy.Field]; !ok {
		sortBy.Field = SortUpdated
	}

	sort.SliceStable(out, func(i, j int) bool {
		less, equal := compareRows(out[i], out[j], sortBy.Field)
		if equal {
			return false
		}
		if sortBy.Ascending {
			return less
		}
		return !less
	})

	return out
}

func matches(row MergedRow, filters Filters) bool {
	if filters.SportID != "" && row.SportID != filters.SportID {
		return false
	}
	if filters.StatType != "" && row.StatType != filters.StatType {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(filters.SearchText)); search != "" {
		if !containsFold(row.PlayerName, search) &&
			!containsFold(row.GameDisplay, search) &&
			!containsFold(row.TeamAbbr, search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}

func compareRows(a, b MergedRow, field SortField) (less, equal bool) {
	switch field {
	case SortPlayer:
		return compareStrings(strings.ToLower(a.PlayerName), strings.ToLower(b.PlayerName))
	case SortSport:
		return compareStrings(a.SportID, b.SportID)
	case SortStat:
		return compareStrings(strings.ToLower(a.StatType), strings.ToLower(b.StatType))
	case SortLine:
		return compareFloats(sortLineValue(a), sortLineValue(b))
	case SortOver:
		return compareFloats(float64(sortPriceValue(a, true)), float64(sortPriceValue(b, true)))
	case SortUnder:
		return compareFloats(float64(sortPriceValue(a, false)), float64(sortPriceValue(b, false)))
	default:
		if a.LatestUpdate.Equal(b.LatestUpdate) {
			return false, true
		}
		return a.LatestUpdate.Before(b.LatestUpdate), false
	}
}

func compareStrings(a, b string) (less, equal bool) {
	if a == b {
		return false, true
	}
	return a < b, false
}

func compareFloats(a, b float64) (less, equal bool) {
	if a == b {
		return false, true
	}
	return a < b, false
}

func sortLineValue(row MergedRow) float64 {
	quote, ok := row.FreshestQuote()
	if !ok || quote.Line == nil {
		return 0
	}
	return *quote.Line
}

func sortPriceValue(row MergedRow, over bool) int {
	quote, ok := row.FreshestQuote()
	if !ok {
		return 0
	}
	if over {
		return prop.ParseAmericanPrice(quote.OverPrice)
	}
	return prop.ParseAmericanPrice(quote.UnderPrice)
}
