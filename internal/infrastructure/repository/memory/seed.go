package memory

import (
	"time"

	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
)

func seedFloat(v float64) *float64 {
	return &v
}

// SeedOffers returns a small cross-source offer set for dev mode.
func SeedOffers() []prop.Offer {
	base := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	return []prop.Offer{
		{
			ID:          "ud-nba-001",
			Source:      prop.SourceUnderdog,
			SportID:     "NBA",
			StatType:    "Points",
			PlayerName:  "LeBron James",
			TeamAbbr:    "LAL",
			GameDisplay: "LAL @ BOS",
			Line:        seedFloat(25.5),
			OverPrice:   "-114",
			UnderPrice:  "-114",
			Status:      prop.StatusActive,
			UpdatedAt:   base,
		},
		{
			ID:          "ks-nba-204",
			Source:      prop.SourceKalshi,
			SportID:     "NBA",
			StatType:    "points",
			PlayerName:  "Lebron James",
			TeamAbbr:    "LAL",
			GameDisplay: "Lakers at Celtics",
			Line:        seedFloat(25.5),
			OverPrice:   "+102",
			UnderPrice:  "-122",
			Status:      prop.StatusActive,
			UpdatedAt:   base.Add(3 * time.Minute),
		},
		{
			ID:          "ud-nba-014",
			Source:      prop.SourceUnderdog,
			SportID:     "NBA",
			StatType:    "Pts+Rebs+Asts",
			PlayerName:  "Luka Doncic",
			TeamAbbr:    "DAL",
			GameDisplay: "DAL @ PHX",
			Line:        seedFloat(42.5),
			OverPrice:   "-120",
			UnderPrice:  "-108",
			Status:      prop.StatusActive,
			UpdatedAt:   base.Add(time.Minute),
		},
		{
			ID:          "pp-nfl-310",
			Source:      prop.SourcePrizePicks,
			SportID:     "NFL",
			StatType:    "Pass Yds",
			PlayerName:  "Josh Allen",
			TeamAbbr:    "BUF",
			GameDisplay: "BUF @ KC",
			Line:        seedFloat(274.5),
			OverPrice:   "-110",
			UnderPrice:  "-110",
			Status:      prop.StatusActive,
			UpdatedAt:   base.Add(2 * time.Minute),
		},
	}
}

// SeedSportMappings returns starter rows for the admin mapping screen.
func SeedSportMappings() []mapping.SportMapping {
	return []mapping.SportMapping{
		{ID: "sm-underdog-nba", Source: prop.SourceUnderdog, SourceSportID: "NBA", CanonicalSport: "Basketball"},
		{ID: "sm-kalshi-nba", Source: prop.SourceKalshi, SourceSportID: "BASKETBALL-NBA", CanonicalSport: "Basketball"},
		{ID: "sm-prizepicks-nfl", Source: prop.SourcePrizePicks, SourceSportID: "NFL", CanonicalSport: "Football"},
	}
}

// SeedStatMappings returns starter rows for the admin mapping screen.
func SeedStatMappings() []mapping.StatMapping {
	return []mapping.StatMapping{
		{ID: "st-underdog-pts", Source: prop.SourceUnderdog, SourceStatType: "Points", SportContext: "NBA", CanonicalStat: "Points"},
		{ID: "st-kalshi-pts", Source: prop.SourceKalshi, SourceStatType: "points", SportContext: "BASKETBALL-NBA", CanonicalStat: "Points"},
		{ID: "st-prizepicks-pass", Source: prop.SourcePrizePicks, SourceStatType: "Pass Yds", SportContext: "NFL", CanonicalStat: "Passing Yards"},
	}
}
