package mapping

import "context"

// SportRepository persists sport mappings. Upserts are keyed on
// (source, source_sport_id) with last-write-wins conflict resolution.
type SportRepository interface {
	List(ctx context.Context) ([]SportMapping, error)
	Upsert(ctx context.Context, m SportMapping) error
	Delete(ctx context.Context, id string) error
}

// StatRepository persists stat mappings, keyed on
// (source, source_stat_type, sport_context).
type StatRepository interface {
	List(ctx context.Context) ([]StatMapping, error)
	Upsert(ctx context.Context, m StatMapping) error
	Delete(ctx context.Context, id string) error
}
