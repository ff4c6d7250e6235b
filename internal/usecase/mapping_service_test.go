package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	"github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/props-dashboard/internal/platform/id"
)

func newMappingService() *MappingService {
	return NewMappingService(
		memory.NewSportMappingRepository(nil),
		memory.NewStatMappingRepository(nil),
		idgen.NewRandomGenerator(),
		nil,
	)
}

func TestMappingServiceUpsertSportReturnsFreshList(t *testing.T) {
	t.Parallel()

	service := newMappingService()

	list, err := service.UpsertSport(context.Background(), mapping.SportMapping{
		Source:         prop.SourceKalshi,
		SourceSportID:  "BASKETBALL-NBA",
		CanonicalSport: "Basketball",
	})
	if err != nil {
		t.Fatalf("UpsertSport error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 mapping, got %d", len(list))
	}
	if list[0].ID == "" {
		t.Fatal("expected generated mapping id")
	}

	// Upserting the same (source, source id) pair overwrites in place.
	list, err = service.UpsertSport(context.Background(), mapping.SportMapping{
		Source:         prop.SourceKalshi,
		SourceSportID:  "BASKETBALL-NBA",
		CanonicalSport: "Hoops",
	})
	if err != nil {
		t.Fatalf("UpsertSport error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 mapping after overwrite, got %d", len(list))
	}
	if list[0].CanonicalSport != "Hoops" {
		t.Fatalf("expected last write to win, got %q", list[0].CanonicalSport)
	}
}

func TestMappingServiceUpsertSportValidates(t *testing.T) {
	t.Parallel()

	service := newMappingService()

	_, err := service.UpsertSport(context.Background(), mapping.SportMapping{
		Source:        "bovada",
		SourceSportID: "NBA",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown source")
	}
}

func TestMappingServiceStatSportContextScopes(t *testing.T) {
	t.Parallel()

	service := newMappingService()

	_, err := service.UpsertStat(context.Background(), mapping.StatMapping{
		Source:         prop.SourceUnderdog,
		SourceStatType: "Points",
		SportContext:   "NBA",
		CanonicalStat:  "Points",
	})
	if err != nil {
		t.Fatalf("UpsertStat error: %v", err)
	}

	// Same stat type under a different sport context is a distinct row.
	list, err := service.UpsertStat(context.Background(), mapping.StatMapping{
		Source:         prop.SourceUnderdog,
		SourceStatType: "Points",
		SportContext:   "WNBA",
		CanonicalStat:  "Points",
	})
	if err != nil {
		t.Fatalf("UpsertStat error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(list))
	}
}

func TestMappingServiceDeleteReturnsFreshList(t *testing.T) {
	t.Parallel()

	service := newMappingService()

	list, err := service.UpsertSport(context.Background(), mapping.SportMapping{
		Source:         prop.SourceUnderdog,
		SourceSportID:  "NBA",
		CanonicalSport: "Basketball",
	})
	if err != nil {
		t.Fatalf("UpsertSport error: %v", err)
	}

	list, err = service.DeleteSport(context.Background(), list[0].ID)
	if err != nil {
		t.Fatalf("DeleteSport error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}

	if _, err := service.DeleteSport(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}
