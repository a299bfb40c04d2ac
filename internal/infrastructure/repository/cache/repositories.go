package cache

import (
	"context"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
	basecache "github.com/riskibarqy/scouting-board/internal/platform/cache"
)

type MarketRepository struct {
	next  market.Repository
	cache *basecache.Store
}

func NewMarketRepository(next market.Repository, cache *basecache.Store) *MarketRepository {
	return &MarketRepository{next: next, cache: cache}
}

func (r *MarketRepository) ListByClub(ctx context.Context, clubID string) ([]market.Market, error) {
	v, err := r.cache.GetOrLoad(ctx, marketListKey(clubID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByClub(ctx, clubID)
		if err != nil {
			return nil, err
		}
		return append([]market.Market(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]market.Market)
	return append([]market.Market(nil), items...), nil
}

// ListByCreator is not cached; it is only used for scouts with a narrow view.
func (r *MarketRepository) ListByCreator(ctx context.Context, clubID, userID string) ([]market.Market, error) {
	return r.next.ListByCreator(ctx, clubID, userID)
}

func (r *MarketRepository) GetByID(ctx context.Context, marketID string) (market.Market, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, marketKey(marketID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, marketID)
		if err != nil {
			return nil, err
		}
		return cachedMarketByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return market.Market{}, false, err
	}

	cached, _ := v.(cachedMarketByID)
	return cached.value, cached.exists, nil
}

func (r *MarketRepository) Create(ctx context.Context, item market.Market) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, marketKey(item.ID))
	r.cache.Delete(ctx, marketListKey(item.ClubID))
	return nil
}

func (r *MarketRepository) Update(ctx context.Context, item market.Market) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, marketKey(item.ID))
	r.cache.Delete(ctx, marketListKey(item.ClubID))
	return nil
}

type cachedMarketByID struct {
	value  market.Market
	exists bool
}

func marketKey(marketID string) string {
	return "market:id:" + marketID
}

func marketListKey(clubID string) string {
	return "market:list:club:" + clubID
}

type MarketPlayerRepository struct {
	next  market.PlayerRepository
	cache *basecache.Store
}

func NewMarketPlayerRepository(next market.PlayerRepository, cache *basecache.Store) *MarketPlayerRepository {
	return &MarketPlayerRepository{next: next, cache: cache}
}

func (r *MarketPlayerRepository) ListByMarket(ctx context.Context, marketID string) ([]market.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, rosterKey(marketID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMarket(ctx, marketID)
		if err != nil {
			return nil, err
		}
		return append([]market.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]market.Player)
	return append([]market.Player(nil), items...), nil
}

func (r *MarketPlayerRepository) GetByID(ctx context.Context, marketID, playerID string) (market.Player, bool, error) {
	return r.next.GetByID(ctx, marketID, playerID)
}

func (r *MarketPlayerRepository) Create(ctx context.Context, item market.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, rosterKey(item.MarketID))
	return nil
}

func (r *MarketPlayerRepository) Update(ctx context.Context, item market.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, rosterKey(item.MarketID))
	return nil
}

func (r *MarketPlayerRepository) Delete(ctx context.Context, marketID, playerID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, marketID, playerID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, rosterKey(marketID))
	return deleted, nil
}

func rosterKey(marketID string) string {
	return "market-player:list:" + marketID
}
