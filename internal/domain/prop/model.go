package prop

import (
	"strconv"
	"strings"
	"time"
)

// Source identifies the upstream book an offer came from.
type Source string

const (
	SourceUnderdog   Source = "underdog"
	SourceKalshi     Source = "kalshi"
	SourcePrizePicks Source = "prizepicks"
	SourcePolymarket Source = "polymarket"
)

// SourceDefault is assumed when an offer arrives without a source tag.
const SourceDefault = SourceUnderdog

var AllSources = map[Source]struct{}{
	SourceUnderdog:   {},
	SourceKalshi:     {},
	SourcePrizePicks: {},
	SourcePolymarket: {},
}

const (
	StatusActive  = "active"
	StatusRemoved = "removed"
)

// Offer is one prop line from one source. Upstream ingestion owns its
// lifecycle; this service only mirrors it. The merge key of an offer is
// stable across updates to the same id: only market data and the timestamp
// are expected to mutate in place.
type Offer struct {
	ID          string
	Source      Source
	SportID     string
	StatType    string
	PlayerName  string
	TeamAbbr    string
	GameDisplay string
	Line        *float64
	OverPrice   string
	UnderPrice  string
	Status      string
	UpdatedAt   time.Time
}

func (o Offer) Removed() bool {
	return o.Status == StatusRemoved
}

// LineValue returns the offer line, with absent lines as zero so numeric
// comparisons stay total. The zero sentinel is a deliberate compatibility
// choice, not null handling.
func (o Offer) LineValue() float64 {
	if o.Line == nil {
		return 0
	}
	return *o.Line
}

// NormalizeSource applies the default-source fallback for offers that arrive
// untagged.
func NormalizeSource(s Source) Source {
	if strings.TrimSpace(string(s)) == "" {
		return SourceDefault
	}
	return s
}

// ParseAmericanPrice converts an American-odds quote ("+150", "-110") to its
// signed integer value. Absent or unparsable quotes are zero, matching the
// line-value sentinel.
func ParseAmericanPrice(raw string) int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}
	value = strings.TrimPrefix(value, "+")
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
