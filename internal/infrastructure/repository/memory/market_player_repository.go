package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
)

// MarketPlayerRepository keeps entries in insertion order per market.
type MarketPlayerRepository struct {
	mu       sync.RWMutex
	byMarket map[string][]market.Player
}

func NewMarketPlayerRepository(seed []market.Player) *MarketPlayerRepository {
	byMarket := make(map[string][]market.Player)
	for _, item := range seed {
		byMarket[item.MarketID] = append(byMarket[item.MarketID], item)
	}
	return &MarketPlayerRepository{byMarket: byMarket}
}

func (r *MarketPlayerRepository) ListByMarket(_ context.Context, marketID string) ([]market.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]market.Player(nil), r.byMarket[marketID]...), nil
}

func (r *MarketPlayerRepository) GetByID(_ context.Context, marketID, playerID string) (market.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.byMarket[marketID] {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return market.Player{}, false, nil
}

func (r *MarketPlayerRepository) Create(_ context.Context, item market.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ProviderID != "" {
		for _, existing := range r.byMarket[item.MarketID] {
			if existing.ProviderID == item.ProviderID {
				return market.ErrDuplicatePlayer
			}
		}
	}
	r.byMarket[item.MarketID] = append(r.byMarket[item.MarketID], item)
	return nil
}

func (r *MarketPlayerRepository) Update(_ context.Context, item market.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byMarket[item.MarketID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return nil
		}
	}
	return nil
}

func (r *MarketPlayerRepository) Delete(_ context.Context, marketID, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byMarket[marketID]
	for i := range items {
		if items[i].ID == playerID {
			r.byMarket[marketID] = append(items[:i:i], items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
