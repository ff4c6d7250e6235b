package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

type propOfferTableModel struct {
	ID          string          `db:"id"`
	Source      string          `db:"source"`
	SportID     string          `db:"sport_id"`
	StatType    string          `db:"stat_type"`
	PlayerName  sql.NullString  `db:"player_name"`
	TeamAbbr    sql.NullString  `db:"team_abbr"`
	GameDisplay sql.NullString  `db:"game_display"`
	Line        sql.NullFloat64 `db:"line"`
	OverPrice   sql.NullString  `db:"over_price"`
	UnderPrice  sql.NullString  `db:"under_price"`
	Status      string          `db:"status"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (m propOfferTableModel) toDomain() prop.Offer {
	offer := prop.Offer{
		ID:          m.ID,
		Source:      prop.NormalizeSource(prop.Source(m.Source)),
		SportID:     m.SportID,
		StatType:    m.StatType,
		PlayerName:  m.PlayerName.String,
		TeamAbbr:    m.TeamAbbr.String,
		GameDisplay: m.GameDisplay.String,
		OverPrice:   m.OverPrice.String,
		UnderPrice:  m.UnderPrice.String,
		Status:      m.Status,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Line.Valid {
		line := m.Line.Float64
		offer.Line = &line
	}
	return offer
}

type propHistoryTableModel struct {
	RecordID   string          `db:"record_id"`
	EventType  string          `db:"event_type"`
	Line       sql.NullFloat64 `db:"line"`
	OverPrice  sql.NullString  `db:"over_price"`
	UnderPrice sql.NullString  `db:"under_price"`
	RecordedAt time.Time       `db:"recorded_at"`
}

func (m propHistoryTableModel) toDomain() prop.HistoryEntry {
	entry := prop.HistoryEntry{
		RecordID:   m.RecordID,
		EventType:  m.EventType,
		OverPrice:  m.OverPrice.String,
		UnderPrice: m.UnderPrice.String,
		RecordedAt: m.RecordedAt,
	}
	if m.Line.Valid {
		line := m.Line.Float64
		entry.Line = &line
	}
	return entry
}
