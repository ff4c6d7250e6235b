package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
)

type SportMappingRepository struct {
	mu   sync.RWMutex
	rows map[string]mapping.SportMapping // keyed by (source, source_sport_id)
}

func NewSportMappingRepository(rows []mapping.SportMapping) *SportMappingRepository {
	byKey := make(map[string]mapping.SportMapping, len(rows))
	for _, row := range rows {
		byKey[sportMappingKey(row)] = row
	}
	return &SportMappingRepository{rows: byKey}
}

func sportMappingKey(m mapping.SportMapping) string {
	return string(m.Source) + "|" + m.SourceSportID
}

func (r *SportMappingRepository) List(_ context.Context) ([]mapping.SportMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mapping.SportMapping, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return sportMappingKey(out[i]) < sportMappingKey(out[j])
	})
	return out, nil
}

func (r *SportMappingRepository) Upsert(_ context.Context, m mapping.SportMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sportMappingKey(m)
	if existing, ok := r.rows[key]; ok && m.ID == "" {
		m.ID = existing.ID
	}
	m.UpdatedAt = time.Now().UTC()
	r.rows[key] = m
	return nil
}

func (r *SportMappingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, row := range r.rows {
		if row.ID == id {
			delete(r.rows, key)
			return nil
		}
	}
	return nil
}

type StatMappingRepository struct {
	mu   sync.RWMutex
	rows map[string]mapping.StatMapping // keyed by (source, source_stat_type, sport_context)
}

func NewStatMappingRepository(rows []mapping.StatMapping) *StatMappingRepository {
	byKey := make(map[string]mapping.StatMapping, len(rows))
	for _, row := range rows {
		byKey[statMappingKey(row)] = row
	}
	return &StatMappingRepository{rows: byKey}
}

func statMappingKey(m mapping.StatMapping) string {
	return string(m.Source) + "|" + m.SourceStatType + "|" + m.SportContext
}

func (r *StatMappingRepository) List(_ context.Context) ([]mapping.StatMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mapping.StatMapping, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return statMappingKey(out[i]) < statMappingKey(out[j])
	})
	return out, nil
}

func (r *StatMappingRepository) Upsert(_ context.Context, m mapping.StatMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := statMappingKey(m)
	if existing, ok := r.rows[key]; ok && m.ID == "" {
		m.ID = existing.ID
	}
	m.UpdatedAt = time.Now().UTC()
	r.rows[key] = m
	return nil
}

func (r *StatMappingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, row := range r.rows {
		if row.ID == id {
			delete(r.rows, key)
			return nil
		}
	}
	return nil
}
