package postgres

import (
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

type sportMappingTableModel struct {
	ID             string    `db:"id"`
	Source         string    `db:"source"`
	SourceSportID  string    `db:"source_sport_id"`
	CanonicalSport string    `db:"canonical_sport"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m sportMappingTableModel) toDomain() mapping.SportMapping {
	return mapping.SportMapping{
		ID:             m.ID,
		Source:         prop.Source(m.Source),
		SourceSportID:  m.SourceSportID,
		CanonicalSport: m.CanonicalSport,
		UpdatedAt:      m.UpdatedAt,
	}
}

func sportMappingModelFromDomain(in mapping.SportMapping) sportMappingTableModel {
	return sportMappingTableModel{
		ID:             in.ID,
		Source:         string(in.Source),
		SourceSportID:  in.SourceSportID,
		CanonicalSport: in.CanonicalSport,
		UpdatedAt:      in.UpdatedAt,
	}
}

type statMappingTableModel struct {
	ID             string    `db:"id"`
	Source         string    `db:"source"`
	SourceStatType string    `db:"source_stat_type"`
	SportContext   string    `db:"sport_context"`
	CanonicalStat  string    `db:"canonical_stat"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m statMappingTableModel) toDomain() mapping.StatMapping {
	return mapping.StatMapping{
		ID:             m.ID,
		Source:         prop.Source(m.Source),
		SourceStatType: m.SourceStatType,
		SportContext:   m.SportContext,
		CanonicalStat:  m.CanonicalStat,
		UpdatedAt:      m.UpdatedAt,
	}
}

func statMappingModelFromDomain(in mapping.StatMapping) statMappingTableModel {
	return statMappingTableModel{
		ID:             in.ID,
		Source:         string(in.Source),
		SourceStatType: in.SourceStatType,
		SportContext:   in.SportContext,
		CanonicalStat:  in.CanonicalStat,
		UpdatedAt:      in.UpdatedAt,
	}
}
