package cache

import (
	"context"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	basecache "github.com/riskibarqy/props-dashboard/internal/platform/cache"
)

const (
	sportMappingListKey = "mapping:sports:list"
	statMappingListKey  = "mapping:stats:list"
)

// SportMappingRepository caches the mapping list and invalidates it on
// every write, so admin reads after a mutation always see fresh rows.
type SportMappingRepository struct {
	next  mapping.SportRepository
	cache *basecache.Store
}

func NewSportMappingRepository(next mapping.SportRepository, cache *basecache.Store) *SportMappingRepository {
	return &SportMappingRepository{next: next, cache: cache}
}

func (r *SportMappingRepository) List(ctx context.Context) ([]mapping.SportMapping, error) {
	v, err := r.cache.GetOrLoad(ctx, sportMappingListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]mapping.SportMapping(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]mapping.SportMapping)
	return append([]mapping.SportMapping(nil), items...), nil
}

func (r *SportMappingRepository) Upsert(ctx context.Context, m mapping.SportMapping) error {
	if err := r.next.Upsert(ctx, m); err != nil {
		return err
	}
	r.cache.Delete(ctx, sportMappingListKey)
	return nil
}

func (r *SportMappingRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, sportMappingListKey)
	return nil
}

type StatMappingRepository struct {
	next  mapping.StatRepository
	cache *basecache.Store
}

func NewStatMappingRepository(next mapping.StatRepository, cache *basecache.Store) *StatMappingRepository {
	return &StatMappingRepository{next: next, cache: cache}
}

func (r *StatMappingRepository) List(ctx context.Context) ([]mapping.StatMapping, error) {
	v, err := r.cache.GetOrLoad(ctx, statMappingListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]mapping.StatMapping(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]mapping.StatMapping)
	return append([]mapping.StatMapping(nil), items...), nil
}

func (r *StatMappingRepository) Upsert(ctx context.Context, m mapping.StatMapping) error {
	if err := r.next.Upsert(ctx, m); err != nil {
		return err
	}
	r.cache.Delete(ctx, statMappingListKey)
	return nil
}

func (r *StatMappingRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Delete(ctx, statMappingListKey)
	return nil
}
