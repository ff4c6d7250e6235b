package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

// maxHistoryEntries caps one detail query; the limit is part of the external
// contract and bounds worst-case latency for the detail view.
const maxHistoryEntries = 500

// HistoryService serves the detail view's per-record change history.
type HistoryService struct {
	repo prop.HistoryRepository
}

func NewHistoryService(repo prop.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// ListByRecordIDs returns history entries grouped per record id, each group
// ordered by record time ascending. The overall result is capped at
// maxHistoryEntries.
func (s *HistoryService) ListByRecordIDs(ctx context.Context, recordIDs []string) (map[string][]prop.HistoryEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ListByRecordIDs")
	defer span.End()

	ids := make([]string, 0, len(recordIDs))
	seen := make(map[string]struct{}, len(recordIDs))
	for _, id := range recordIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one record id is required", ErrInvalidInput)
	}

	entries, err := s.repo.ListByRecordIDs(ctx, ids, maxHistoryEntries)
	if err != nil {
		return nil, fmt.Errorf("list offer history: %w", err)
	}

	out := make(map[string][]prop.HistoryEntry, len(ids))
	for _, entry := range entries {
		out[entry.RecordID] = append(out[entry.RecordID], entry)
	}
	return out, nil
}
