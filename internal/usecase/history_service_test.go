package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/memory"
)

func TestHistoryServiceGroupsByRecordID(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := memory.NewPropRepository(nil)
	repo.SetHistory("a1", []prop.HistoryEntry{
		{RecordID: "a1", EventType: "swap", RecordedAt: base},
		{RecordID: "a1", EventType: "swap", RecordedAt: base.Add(time.Minute)},
	})
	repo.SetHistory("b1", []prop.HistoryEntry{
		{RecordID: "b1", EventType: "remove", RecordedAt: base.Add(30 * time.Second)},
	})

	service := NewHistoryService(repo)

	got, err := service.ListByRecordIDs(context.Background(), []string{"a1", "b1", "a1", " "})
	if err != nil {
		t.Fatalf("ListByRecordIDs error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if len(got["a1"]) != 2 {
		t.Fatalf("expected 2 entries for a1, got %d", len(got["a1"]))
	}
	if !got["a1"][0].RecordedAt.Before(got["a1"][1].RecordedAt) {
		t.Fatal("entries must be ordered by record time ascending")
	}
	if len(got["b1"]) != 1 {
		t.Fatalf("expected 1 entry for b1, got %d", len(got["b1"]))
	}
}

func TestHistoryServiceRequiresIDs(t *testing.T) {
	t.Parallel()

	service := NewHistoryService(memory.NewPropRepository(nil))

	_, err := service.ListByRecordIDs(context.Background(), []string{" ", ""})
	if err == nil {
		t.Fatal("expected error for empty id list")
	}
}
