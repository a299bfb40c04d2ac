package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/platform/cache"
)

type fakeDetailsProvider struct {
	calls   atomic.Int32
	details map[string]player.Details
	fail    map[string]error
}

func (p *fakeDetailsProvider) GetPlayerDetails(_ context.Context, providerID string) (player.Details, error) {
	p.calls.Add(1)
	if err, ok := p.fail[providerID]; ok {
		return player.Details{}, err
	}
	d, ok := p.details[providerID]
	if !ok {
		return player.Details{}, player.ErrDetailsNotFound
	}
	return d, nil
}

func TestPlayerDetailService_GetDetails_CachesResult(t *testing.T) {
	provider := &fakeDetailsProvider{details: map[string]player.Details{
		"100": {ProviderID: "100", ShortName: "L. Yamal"},
	}}
	svc := NewPlayerDetailService(provider, cache.NewStore(time.Minute), 2, nil)

	for i := 0; i < 3; i++ {
		got, err := svc.GetDetails(t.Context(), "100")
		if err != nil {
			t.Fatalf("get details: %v", err)
		}
		if got.ShortName != "L. Yamal" {
			t.Fatalf("unexpected details: %+v", got)
		}
	}
	if calls := provider.calls.Load(); calls != 1 {
		t.Fatalf("expected one provider call, got %d", calls)
	}
}

func TestPlayerDetailService_GetDetails_ErrorMapping(t *testing.T) {
	provider := &fakeDetailsProvider{fail: map[string]error{"500": errors.New("upstream 503")}}
	svc := NewPlayerDetailService(provider, nil, 2, nil)

	if _, err := svc.GetDetails(t.Context(), "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetDetails(t.Context(), "500"); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if _, err := svc.GetDetails(t.Context(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	disabled := NewPlayerDetailService(nil, nil, 0, nil)
	if _, err := disabled.GetDetails(t.Context(), "100"); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable for disabled provider, got %v", err)
	}
}

func TestPlayerDetailService_EnrichRoster_DegradesPerPlayer(t *testing.T) {
	birth := time.Date(2007, 7, 13, 0, 0, 0, 0, time.UTC)
	provider := &fakeDetailsProvider{
		details: map[string]player.Details{
			"100": {ShortName: "L. Yamal", Nationality: "Spain", BirthDate: &birth},
		},
		fail: map[string]error{"200": errors.New("timeout")},
	}
	svc := NewPlayerDetailService(provider, cache.NewStore(time.Minute), 2, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC) }

	roster := []player.Summary{
		{ID: "mp1", ProviderID: "100", DisplayName: "Lamine Yamal"},
		{ID: "mp2", ProviderID: "200", DisplayName: "Slow Player", Team: "Girona"},
		{ID: "mp3", DisplayName: "Manual Entry"},
	}

	got := svc.EnrichRoster(t.Context(), roster)
	if len(got) != 3 {
		t.Fatalf("unexpected roster size: %d", len(got))
	}
	if got[0].DisplayName != "L. Yamal" || got[0].Nationality != "Spain" || got[0].Age != 19 {
		t.Fatalf("unexpected enriched entry: %+v", got[0])
	}
	if got[1] != roster[1] || got[2] != roster[2] {
		t.Fatalf("failed or manual entries must keep roster fields: %+v", got[1:])
	}
	if roster[0].DisplayName != "Lamine Yamal" {
		t.Fatalf("input roster must not be modified")
	}
}
