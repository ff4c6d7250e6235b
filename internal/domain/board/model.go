package board

import (
	"sort"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

// SourceQuote is one source's contribution to a merged row: the market data
// of that source's freshest offer plus the originating record id.
type SourceQuote struct {
	Line       *float64
	OverPrice  string
	UnderPrice string
	UpdatedAt  time.Time
	RecordID   string
}

// MergedRow aggregates every enabled source's offer for one
// (player, stat, sport) prop. Rows have no identity of their own across
// recomputes; only the merge key is stable.
type MergedRow struct {
	Key          prop.MergeKey
	PlayerName   string
	SportID      string
	StatType     string
	GameDisplay  string
	TeamAbbr     string
	Quotes       map[prop.Source]SourceQuote
	LatestUpdate time.Time
}

// FreshestQuote returns the most recently updated contributing quote, which
// is the value the numeric view sorts run on. Equal timestamps fall back to
// source name order so the pick stays deterministic.
func (r MergedRow) FreshestQuote() (SourceQuote, bool) {
	var best SourceQuote
	var bestSource prop.Source
	found := false
	for source, quote := range r.Quotes {
		if !found {
			best, bestSource, found = quote, source, true
			continue
		}
		if quote.UpdatedAt.After(best.UpdatedAt) ||
			(quote.UpdatedAt.Equal(best.UpdatedAt) && source < bestSource) {
			best, bestSource = quote, source
		}
	}
	return best, found
}

// RowsByKey flattens a merged map into a slice ordered by merge key. The
// view pipeline's stable sort needs a deterministic base order, so this is
// the only sanctioned way to turn the map into presentation input.
func RowsByKey(rows map[prop.MergeKey]MergedRow) []MergedRow {
	out := make([]MergedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
