package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
)

type MarketRepository struct {
	mu    sync.RWMutex
	items map[string]market.Market
}

func NewMarketRepository(seed []market.Market) *MarketRepository {
	items := make(map[string]market.Market, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &MarketRepository{items: items}
}

func (r *MarketRepository) ListByClub(_ context.Context, clubID string) ([]market.Market, error) {
	return r.list(func(item market.Market) bool { return item.ClubID == clubID }), nil
}

func (r *MarketRepository) ListByCreator(_ context.Context, clubID, userID string) ([]market.Market, error) {
	return r.list(func(item market.Market) bool {
		return item.ClubID == clubID && item.CreatedBy == userID
	}), nil
}

func (r *MarketRepository) GetByID(_ context.Context, marketID string) (market.Market, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[marketID]
	return item, ok, nil
}

func (r *MarketRepository) Create(_ context.Context, item market.Market) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *MarketRepository) Update(_ context.Context, item market.Market) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}
	r.items[item.ID] = item
	return nil
}

// list returns newest markets first.
func (r *MarketRepository) list(keep func(market.Market) bool) []market.Market {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]market.Market, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
