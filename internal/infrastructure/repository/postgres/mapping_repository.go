package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	qb "github.com/riskibarqy/props-dashboard/internal/platform/querybuilder"
)

const sportMappingUpsertSuffix = `ON CONFLICT (source, source_sport_id) DO UPDATE SET
	canonical_sport = EXCLUDED.canonical_sport,
	updated_at = EXCLUDED.updated_at`

const statMappingUpsertSuffix = `ON CONFLICT (source, source_stat_type, sport_context) DO UPDATE SET
	canonical_stat = EXCLUDED.canonical_stat,
	updated_at = EXCLUDED.updated_at`

type SportMappingRepository struct {
	db *sqlx.DB
}

func NewSportMappingRepository(db *sqlx.DB) *SportMappingRepository {
	return &SportMappingRepository{db: db}
}

func (r *SportMappingRepository) List(ctx context.Context) ([]mapping.SportMapping, error) {
	query, args, err := qb.Select("id", "source", "source_sport_id", "canonical_sport", "updated_at").
		From("sport_mappings").
		OrderBy("source", "source_sport_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sport mappings query: %w", err)
	}

	var rows []sportMappingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sport mappings: %w", err)
	}

	out := make([]mapping.SportMapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SportMappingRepository) Upsert(ctx context.Context, m mapping.SportMapping) error {
	query, args, err := qb.InsertModel("sport_mappings", sportMappingModelFromDomain(m), sportMappingUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert sport mapping query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert sport mapping: %w", err)
	}
	return nil
}

func (r *SportMappingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("sport_mappings").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete sport mapping query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete sport mapping: %w", err)
	}
	return nil
}

type StatMappingRepository struct {
	db *sqlx.DB
}

func NewStatMappingRepository(db *sqlx.DB) *StatMappingRepository {
	return &StatMappingRepository{db: db}
}

func (r *StatMappingRepository) List(ctx context.Context) ([]mapping.StatMapping, error) {
	query, args, err := qb.Select("id", "source", "source_stat_type", "sport_context", "canonical_stat", "updated_at").
		From("stat_mappings").
		OrderBy("source", "source_stat_type", "sport_context").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat mappings query: %w", err)
	}

	var rows []statMappingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat mappings: %w", err)
	}

	out := make([]mapping.StatMapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *StatMappingRepository) Upsert(ctx context.Context, m mapping.StatMapping) error {
	query, args, err := qb.InsertModel("stat_mappings", statMappingModelFromDomain(m), statMappingUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert stat mapping query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert stat mapping: %w", err)
	}
	return nil
}

func (r *StatMappingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("stat_mappings").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stat mapping query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stat mapping: %w", err)
	}
	return nil
}
