package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/scouting-board/internal/domain/report"
)

// ReportRepository keeps reports in creation order.
type ReportRepository struct {
	mu    sync.RWMutex
	items []report.Report
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (r *ReportRepository) ListByClub(_ context.Context, clubID string) ([]report.Report, error) {
	return r.filter(func(item report.Report) bool { return item.ClubID == clubID }), nil
}

func (r *ReportRepository) ListByMarketPlayer(_ context.Context, marketID, marketPlayerID string) ([]report.Report, error) {
	return r.filter(func(item report.Report) bool {
		return item.MarketID == marketID && item.MarketPlayerID == marketPlayerID
	}), nil
}

func (r *ReportRepository) ListByProvider(_ context.Context, clubID, providerID string) ([]report.Report, error) {
	return r.filter(func(item report.Report) bool {
		return item.ClubID == clubID && item.ProviderID != "" && item.ProviderID == providerID
	}), nil
}

func (r *ReportRepository) GetByID(_ context.Context, reportID string) (report.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.items, func(item report.Report) bool { return item.ID == reportID })
	if idx < 0 {
		return report.Report{}, false, nil
	}
	return cloneReport(r.items[idx]), true, nil
}

func (r *ReportRepository) Create(_ context.Context, item report.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, cloneReport(item))
	return nil
}

func (r *ReportRepository) Update(_ context.Context, item report.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.items, func(existing report.Report) bool { return existing.ID == item.ID })
	if idx >= 0 {
		r.items[idx] = cloneReport(item)
	}
	return nil
}

func (r *ReportRepository) filter(keep func(report.Report) bool) []report.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]report.Report, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, cloneReport(item))
		}
	}
	return out
}

func cloneReport(item report.Report) report.Report {
	item.Tags = slices.Clone(item.Tags)
	if item.EstimatedPrice != nil {
		price := *item.EstimatedPrice
		item.EstimatedPrice = &price
	}
	if item.ObservedOn != nil {
		observed := *item.ObservedOn
		item.ObservedOn = &observed
	}
	return item
}
