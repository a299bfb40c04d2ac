package formation

import "context"

// Repository stores one snapshot per market.
type Repository interface {
	GetByMarket(ctx context.Context, marketID string) (Snapshot, bool, error)
	Upsert(ctx context.Context, snapshot Snapshot) error
}
