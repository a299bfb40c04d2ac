package cache

import (
	"testing"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/report"
	reportmock "github.com/riskibarqy/scouting-board/internal/mocks/domain/report"
	basecache "github.com/riskibarqy/scouting-board/internal/platform/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_CachesPlayerReportsUntilWrite(t *testing.T) {
	next := reportmock.NewRepository(t)
	repo := NewReportRepository(next, basecache.NewStore(time.Minute))

	items := []report.Report{{ID: "rep-1", MarketID: "mkt-1", MarketPlayerID: "mp-1", Tags: []string{"Promesa"}}}
	next.On("ListByMarketPlayer", mock.Anything, "mkt-1", "mp-1").Return(items, nil).Twice()
	next.On("Update", mock.Anything, mock.MatchedBy(func(item report.Report) bool {
		return item.ID == "rep-1"
	})).Return(nil).Once()

	for i := 0; i < 3; i++ {
		got, err := repo.ListByMarketPlayer(t.Context(), "mkt-1", "mp-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
	}

	first, err := repo.ListByMarketPlayer(t.Context(), "mkt-1", "mp-1")
	require.NoError(t, err)
	first[0].Tags[0] = "mutated"

	require.NoError(t, repo.Update(t.Context(), report.Report{ID: "rep-1", MarketID: "mkt-1", MarketPlayerID: "mp-1"}))

	got, err := repo.ListByMarketPlayer(t.Context(), "mkt-1", "mp-1")
	require.NoError(t, err)
	require.Equal(t, "Promesa", got[0].Tags[0])
}

func TestReportRepository_ProviderListPassesThrough(t *testing.T) {
	next := reportmock.NewRepository(t)
	repo := NewReportRepository(next, basecache.NewStore(time.Minute))

	next.On("ListByProvider", mock.Anything, "club-1", "703544").Return([]report.Report{}, nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := repo.ListByProvider(t.Context(), "club-1", "703544")
		require.NoError(t, err)
	}
}
