package memory

import (
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/player"
)

const (
	ClubIDDemo      = "club-demo"
	MarketIDSummer  = "mkt-summer-2026"
	UserIDHeadScout = "user-head-scout"
	UserIDScout     = "user-scout"
)

func SeedMarkets() []market.Market {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	return []market.Market{
		{
			ID:        MarketIDSummer,
			ClubID:    ClubIDDemo,
			Name:      "Summer window 2026",
			StartDate: &start,
			EndDate:   &end,
			Status:    market.StatusActive,
			CreatedBy: UserIDHeadScout,
			CreatedAt: start,
			UpdatedAt: start,
		},
	}
}

func SeedMarketPlayers() []market.Player {
	added := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	entry := func(id, providerID, name, position, team string, age int, priority player.Priority) market.Player {
		return market.Player{
			ID:          id,
			MarketID:    MarketIDSummer,
			ProviderID:  providerID,
			Type:        market.PlayerTypeProvider,
			Name:        name,
			Position:    position,
			Age:         age,
			CurrentTeam: team,
			Priority:    priority,
			Status:      market.PlayerStatusWatching,
			AddedBy:     UserIDHeadScout,
			CreatedAt:   added,
			UpdatedAt:   added,
		}
	}
	return []market.Player{
		entry("mp-001", "703544", "Giorgi Mamardashvili", "GK", "Valencia", 25, player.PriorityHigh),
		entry("mp-002", "552313", "Pau Cubarsi", "CB", "Barcelona", 19, player.PriorityHigh),
		entry("mp-003", "448120", "Martin Zubimendi", "CDM", "Real Sociedad", 27, player.PriorityMedium),
		entry("mp-004", "610377", "Nico Williams", "LW", "Athletic Club", 24, player.PriorityMedium),
		entry("mp-005", "397412", "Alexander Sorloth", "ST", "Atletico Madrid", 30, player.PriorityLow),
	}
}
