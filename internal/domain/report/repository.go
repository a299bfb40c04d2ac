package report

import "context"

// Repository exposes scout report persistence operations.
type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]Report, error)
	ListByMarketPlayer(ctx context.Context, marketID, marketPlayerID string) ([]Report, error)
	ListByProvider(ctx context.Context, clubID, providerID string) ([]Report, error)
	GetByID(ctx context.Context, reportID string) (Report, bool, error)
	Create(ctx context.Context, item Report) error
	Update(ctx context.Context, item Report) error
}
