package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	qb "github.com/riskibarqy/props-dashboard/internal/platform/querybuilder"
)

type PropRepository struct {
	db *sqlx.DB
}

var propOfferSelectColumns = []string{
	"id",
	"source",
	"sport_id",
	"stat_type",
	"player_name",
	"team_abbr",
	"game_display",
	"line",
	"over_price",
	"under_price",
	"status",
	"updated_at",
}

func NewPropRepository(db *sqlx.DB) *PropRepository {
	return &PropRepository{db: db}
}

func (r *PropRepository) ListActive(ctx context.Context, limit int) ([]prop.Offer, error) {
	query, args, err := qb.Select(propOfferSelectColumns...).From("prop_offers").
		Where(qb.Eq("status", prop.StatusActive)).
		OrderBy("updated_at DESC", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active offers query: %w", err)
	}

	var rows []propOfferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active offers: %w", err)
	}

	out := make([]prop.Offer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PropRepository) ListByRecordIDs(ctx context.Context, recordIDs []string, limit int) ([]prop.HistoryEntry, error) {
	if len(recordIDs) == 0 {
		return []prop.HistoryEntry{}, nil
	}

	query, args, err := qb.Select(
		"record_id",
		"event_type",
		"line",
		"over_price",
		"under_price",
		"recorded_at",
	).From("prop_offer_history").
		Where(qb.In("record_id", stringSliceToAny(recordIDs))).
		OrderBy("recorded_at", "id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select offer history query: %w", err)
	}

	var rows []propHistoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select offer history: %w", err)
	}

	out := make([]prop.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
