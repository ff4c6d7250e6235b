package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	idgen "github.com/riskibarqy/props-dashboard/internal/platform/id"
	"github.com/riskibarqy/props-dashboard/internal/platform/logging"
)

// MappingService backs the admin screen editing the canonicalization tables.
// Every successful mutation returns the freshly reloaded list so the screen
// never drifts from the source of truth; on a failed mutation the client is
// expected to reload via the list endpoint.
type MappingService struct {
	sportRepo mapping.SportRepository
	statRepo  mapping.StatRepository
	idGen     idgen.Generator
	logger    *logging.Logger
}

func NewMappingService(
	sportRepo mapping.SportRepository,
	statRepo mapping.StatRepository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MappingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MappingService{
		sportRepo: sportRepo,
		statRepo:  statRepo,
		idGen:     idGen,
		logger:    logger,
	}
}

func (s *MappingService) ListSports(ctx context.Context) ([]mapping.SportMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.ListSports")
	defer span.End()

	out, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sport mappings: %w", err)
	}
	return out, nil
}

func (s *MappingService) UpsertSport(ctx context.Context, m mapping.SportMapping) ([]mapping.SportMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.UpsertSport")
	defer span.End()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(m.ID) == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate sport mapping id: %w", err)
		}
		m.ID = id
	}

	if err := s.sportRepo.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("upsert sport mapping: %w", err)
	}

	s.logger.InfoContext(ctx, "sport mapping upserted",
		"source", m.Source,
		"source_sport_id", m.SourceSportID,
		"canonical_sport", m.CanonicalSport,
	)

	return s.ListSports(ctx)
}

func (s *MappingService) DeleteSport(ctx context.Context, id string) ([]mapping.SportMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.DeleteSport")
	defer span.End()

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: mapping id is required", ErrInvalidInput)
	}
	if err := s.sportRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete sport mapping: %w", err)
	}
	return s.ListSports(ctx)
}

func (s *MappingService) ListStats(ctx context.Context) ([]mapping.StatMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.ListStats")
	defer span.End()

	out, err := s.statRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat mappings: %w", err)
	}
	return out, nil
}

func (s *MappingService) UpsertStat(ctx context.Context, m mapping.StatMapping) ([]mapping.StatMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.UpsertStat")
	defer span.End()

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(m.ID) == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate stat mapping id: %w", err)
		}
		m.ID = id
	}

	if err := s.statRepo.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("upsert stat mapping: %w", err)
	}

	s.logger.InfoContext(ctx, "stat mapping upserted",
		"source", m.Source,
		"source_stat_type", m.SourceStatType,
		"sport_context", m.SportContext,
		"canonical_stat", m.CanonicalStat,
	)

	return s.ListStats(ctx)
}

func (s *MappingService) DeleteStat(ctx context.Context, id string) ([]mapping.StatMapping, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MappingService.DeleteStat")
	defer span.End()

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: mapping id is required", ErrInvalidInput)
	}
	if err := s.statRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete stat mapping: %w", err)
	}
	return s.ListStats(ctx)
}
