package market

import "context"

// Repository exposes market persistence operations.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Market, error)
	ListByCreator(ctx context.Context, clubID, userID string) ([]Market, error)
	GetByID(ctx context.Context, marketID string) (Market, bool, error)
	Create(ctx context.Context, item Market) error
	Update(ctx context.Context, item Market) error
}

// PlayerRepository exposes market player persistence operations.
type PlayerRepository interface {
	ListByMarket(ctx context.Context, marketID string) ([]Player, error)
	GetByID(ctx context.Context, marketID, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, marketID, playerID string) (bool, error)
}
