package prop

import (
	"context"
	"time"
)

// Repository describes the offer reads the dashboard needs.
type Repository interface {
	// ListActive returns live offers ordered by updated_at descending,
	// capped at limit.
	ListActive(ctx context.Context, limit int) ([]Offer, error)
}

// HistoryEntry is one recorded market-data change for an offer, as written
// by upstream ingestion.
type HistoryEntry struct {
	RecordID   string
	EventType  string // swap, remove, or another upstream tag
	Line       *float64
	OverPrice  string
	UnderPrice string
	RecordedAt time.Time
}

// HistoryRepository serves the detail view's per-record history.
type HistoryRepository interface {
	// ListByRecordIDs returns entries for the given record ids ordered by
	// recorded_at ascending, capped at limit.
	ListByRecordIDs(ctx context.Context, recordIDs []string, limit int) ([]HistoryEntry, error)
}
