package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

type PropRepository struct {
	mu     sync.RWMutex
	byID   map[string]prop.Offer
	hist   map[string][]prop.HistoryEntry
}

func NewPropRepository(offers []prop.Offer) *PropRepository {
	byID := make(map[string]prop.Offer, len(offers))
	for _, offer := range offers {
		byID[offer.ID] = offer
	}
	return &PropRepository{
		byID: byID,
		hist: make(map[string][]prop.HistoryEntry),
	}
}

func (r *PropRepository) ListActive(_ context.Context, limit int) ([]prop.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prop.Offer, 0, len(r.byID))
	for _, offer := range r.byID {
		if offer.Status != prop.StatusActive {
			continue
		}
		out = append(out, offer)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PropRepository) ListByRecordIDs(_ context.Context, recordIDs []string, limit int) ([]prop.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prop.HistoryEntry, 0, len(recordIDs))
	for _, id := range recordIDs {
		out = append(out, r.hist[id]...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SetHistory seeds history entries for one record id.
func (r *PropRepository) SetHistory(recordID string, entries []prop.HistoryEntry) {
	r.mu.Lock()
	r.hist[recordID] = append([]prop.HistoryEntry(nil), entries...)
	r.mu.Unlock()
}
