package memory

import (
	"testing"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
)

func TestMarketRepository_ListScopes(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMarketRepository([]market.Market{
		{ID: "m1", ClubID: "c1", CreatedBy: "u1", CreatedAt: base},
		{ID: "m2", ClubID: "c1", CreatedBy: "u2", CreatedAt: base.Add(time.Hour)},
		{ID: "m3", ClubID: "c2", CreatedBy: "u1", CreatedAt: base},
	})

	club, err := repo.ListByClub(t.Context(), "c1")
	if err != nil {
		t.Fatalf("list by club: %v", err)
	}
	if len(club) != 2 || club[0].ID != "m2" {
		t.Fatalf("unexpected club markets: %+v", club)
	}

	own, err := repo.ListByCreator(t.Context(), "c1", "u1")
	if err != nil {
		t.Fatalf("list by creator: %v", err)
	}
	if len(own) != 1 || own[0].ID != "m1" {
		t.Fatalf("unexpected creator markets: %+v", own)
	}
}

func TestMarketPlayerRepository_DeleteKeepsOrder(t *testing.T) {
	repo := NewMarketPlayerRepository([]market.Player{
		{ID: "a", MarketID: "m1"},
		{ID: "b", MarketID: "m1"},
		{ID: "c", MarketID: "m1"},
	})

	deleted, err := repo.Delete(t.Context(), "m1", "b")
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}
	items, _ := repo.ListByMarket(t.Context(), "m1")
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Fatalf("unexpected remaining players: %+v", items)
	}
	if deleted, _ := repo.Delete(t.Context(), "m1", "b"); deleted {
		t.Fatalf("expected second delete to report missing")
	}
}

func TestFormationRepository_ReturnsCopies(t *testing.T) {
	repo := NewFormationRepository()
	snapshot := formation.Snapshot{
		MarketID:    "m1",
		Slots:       []formation.Slot{{ID: "GK", Capacity: 1}},
		Assignments: map[string][]string{"GK": {"p1"}},
	}
	if err := repo.Upsert(t.Context(), snapshot); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	snapshot.Assignments["GK"][0] = "mutated"

	got, ok, err := repo.GetByMarket(t.Context(), "m1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Assignments["GK"][0] != "p1" {
		t.Fatalf("stored snapshot shares memory with caller")
	}
}
