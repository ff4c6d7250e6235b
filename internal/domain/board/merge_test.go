package board

import (
	"testing"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

var mergeBase = time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 {
	return &v
}

func mergeOffer(id string, source prop.Source, player, stat string, updatedAt time.Time) prop.Offer {
	return prop.Offer{
		ID:         id,
		Source:     source,
		SportID:    "NBA",
		StatType:   stat,
		PlayerName: player,
		Line:       floatPtr(25.5),
		OverPrice:  "-110",
		UnderPrice: "-110",
		Status:     prop.StatusActive,
		UpdatedAt:  updatedAt,
	}
}

func allSources() map[prop.Source]struct{} {
	enabled := make(map[prop.Source]struct{}, len(prop.AllSources))
	for source := range prop.AllSources {
		enabled[source] = struct{}{}
	}
	return enabled
}

func TestMergeCrossSource(t *testing.T) {
	t.Parallel()

	a := mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase)
	b := mergeOffer("b1", prop.SourceKalshi, "lebron james", "points", mergeBase.Add(time.Minute))

	rows := Merge([]prop.Offer{a, b}, allSources())
	if len(rows) != 1 {
		t.Fatalf("expected 1 merged row, got %d", len(rows))
	}

	row, ok := rows[prop.BuildMergeKey("lebron james", "points", "NBA")]
	if !ok {
		t.Fatalf("missing expected merge key, have %v", rows)
	}
	if len(row.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(row.Quotes))
	}
	if !row.LatestUpdate.Equal(b.UpdatedAt) {
		t.Fatalf("latest update = %v, want %v", row.LatestUpdate, b.UpdatedAt)
	}
	if row.Quotes[prop.SourceUnderdog].RecordID != "a1" {
		t.Fatalf("underdog slot holds %q", row.Quotes[prop.SourceUnderdog].RecordID)
	}
	if row.Quotes[prop.SourceKalshi].RecordID != "b1" {
		t.Fatalf("kalshi slot holds %q", row.Quotes[prop.SourceKalshi].RecordID)
	}
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	a := mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase)

	once := Merge([]prop.Offer{a}, allSources())
	twice := Merge([]prop.Offer{a, a}, allSources())

	if len(once) != 1 || len(twice) != 1 {
		t.Fatalf("expected single row, got %d and %d", len(once), len(twice))
	}
	oneRow := once[a.MergeKey()]
	twoRow := twice[a.MergeKey()]
	if len(oneRow.Quotes) != len(twoRow.Quotes) {
		t.Fatalf("quote counts differ: %d vs %d", len(oneRow.Quotes), len(twoRow.Quotes))
	}
	if !oneRow.LatestUpdate.Equal(twoRow.LatestUpdate) {
		t.Fatalf("latest updates differ: %v vs %v", oneRow.LatestUpdate, twoRow.LatestUpdate)
	}
}

func TestMergeSlotTimestampMonotonic(t *testing.T) {
	t.Parallel()

	newer := mergeOffer("a2", prop.SourceUnderdog, "LeBron James", "Points", mergeBase.Add(time.Minute))
	older := mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase)
	tied := mergeOffer("a3", prop.SourceUnderdog, "LeBron James", "Points", mergeBase.Add(time.Minute))

	// Snapshot order: older first, then newer, then the tied record.
	rows := Merge([]prop.Offer{older, newer, tied}, allSources())
	row := rows[older.MergeKey()]
	quote := row.Quotes[prop.SourceUnderdog]
	if quote.RecordID != "a2" {
		t.Fatalf("slot holds %q, want a2 (equal timestamps keep the earlier offer)", quote.RecordID)
	}
}

func TestMergeSourceExclusion(t *testing.T) {
	t.Parallel()

	a := mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase)
	b := mergeOffer("b1", prop.SourceKalshi, "LeBron James", "Points", mergeBase.Add(time.Minute))
	b.GameDisplay = "LAL @ BOS"

	enabled := map[prop.Source]struct{}{prop.SourceUnderdog: {}}
	rows := Merge([]prop.Offer{a, b}, enabled)
	row := rows[a.MergeKey()]
	if len(row.Quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(row.Quotes))
	}
	if row.GameDisplay != "" {
		t.Fatalf("disabled source must not contribute display fields, got %q", row.GameDisplay)
	}

	// Disabling the only contributing source removes the row entirely.
	rows = Merge([]prop.Offer{a}, map[prop.Source]struct{}{prop.SourceKalshi: {}})
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestMergeFreshestGameDisplayWins(t *testing.T) {
	t.Parallel()

	early := mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase)
	late := mergeOffer("b1", prop.SourceKalshi, "LeBron James", "Points", mergeBase.Add(time.Minute))
	late.GameDisplay = "LAL @ BOS"
	blankLatest := mergeOffer("c1", prop.SourcePrizePicks, "LeBron James", "Points", mergeBase.Add(2*time.Minute))

	rows := Merge([]prop.Offer{early, late, blankLatest}, allSources())
	row := rows[early.MergeKey()]
	if row.GameDisplay != "LAL @ BOS" {
		t.Fatalf("game display = %q, want richer late value preserved", row.GameDisplay)
	}
	if !row.LatestUpdate.Equal(blankLatest.UpdatedAt) {
		t.Fatalf("latest update = %v, want %v", row.LatestUpdate, blankLatest.UpdatedAt)
	}
}

func TestMergeDeterministicAcrossOrderings(t *testing.T) {
	t.Parallel()

	offers := []prop.Offer{
		mergeOffer("a1", prop.SourceUnderdog, "LeBron James", "Points", mergeBase),
		mergeOffer("b1", prop.SourceKalshi, "LeBron James", "Points", mergeBase.Add(time.Minute)),
		mergeOffer("c1", prop.SourceUnderdog, "Luka Doncic", "Assists", mergeBase.Add(2*time.Minute)),
	}

	first := RowsByKey(Merge(offers, allSources()))
	second := RowsByKey(Merge(offers, allSources()))
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("row %d keys differ: %q vs %q", i, first[i].Key, second[i].Key)
		}
	}
}
