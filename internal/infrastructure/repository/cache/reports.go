package cache

import (
	"context"
	"slices"

	"github.com/riskibarqy/scouting-board/internal/domain/report"
	basecache "github.com/riskibarqy/scouting-board/internal/platform/cache"
)

// ReportRepository caches the per-player report list, which backs the
// report panel opened from the board. Club and provider lists pass through.
type ReportRepository struct {
	next  report.Repository
	cache *basecache.Store
}

func NewReportRepository(next report.Repository, cache *basecache.Store) *ReportRepository {
	return &ReportRepository{next: next, cache: cache}
}

func (r *ReportRepository) ListByClub(ctx context.Context, clubID string) ([]report.Report, error) {
	return r.next.ListByClub(ctx, clubID)
}

func (r *ReportRepository) ListByMarketPlayer(ctx context.Context, marketID, marketPlayerID string) ([]report.Report, error) {
	v, err := r.cache.GetOrLoad(ctx, playerReportsKey(marketID, marketPlayerID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByMarketPlayer(ctx, marketID, marketPlayerID)
		if err != nil {
			return nil, err
		}
		return copyReports(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]report.Report)
	return copyReports(items), nil
}

func (r *ReportRepository) ListByProvider(ctx context.Context, clubID, providerID string) ([]report.Report, error) {
	return r.next.ListByProvider(ctx, clubID, providerID)
}

func (r *ReportRepository) GetByID(ctx context.Context, reportID string) (report.Report, bool, error) {
	return r.next.GetByID(ctx, reportID)
}

func (r *ReportRepository) Create(ctx context.Context, item report.Report) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, playerReportsKey(item.MarketID, item.MarketPlayerID))
	return nil
}

func (r *ReportRepository) Update(ctx context.Context, item report.Report) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, playerReportsKey(item.MarketID, item.MarketPlayerID))
	return nil
}

func copyReports(items []report.Report) []report.Report {
	out := make([]report.Report, len(items))
	for i, item := range items {
		item.Tags = slices.Clone(item.Tags)
		out[i] = item
	}
	return out
}

func playerReportsKey(marketID, marketPlayerID string) string {
	return "report:list:player:" + marketID + ":" + marketPlayerID
}
