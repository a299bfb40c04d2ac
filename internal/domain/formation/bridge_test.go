package formation

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRepository struct {
	stored  map[string]Snapshot
	saveErr error
	block   bool
}

func (r *stubRepository) GetByMarket(_ context.Context, marketID string) (Snapshot, bool, error) {
	s, ok := r.stored[marketID]
	return s, ok, nil
}

func (r *stubRepository) Upsert(ctx context.Context, snapshot Snapshot) error {
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.stored == nil {
		r.stored = make(map[string]Snapshot)
	}
	r.stored[snapshot.MarketID] = snapshot
	return nil
}

func TestBridgeLoad_ReconcilesAgainstRoster(t *testing.T) {
	repo := &stubRepository{stored: map[string]Snapshot{
		"market-1": {
			MarketID:    "market-1",
			Layout:      DefaultLayout,
			Slots:       []Slot{{ID: "ST", Top: 15, Left: 50, Capacity: 3}},
			Assignments: map[string][]string{"ST": {"p1", "p9"}},
		},
	}}
	bridge := NewBridge(repo, time.Second)

	got, exists, err := bridge.Load(t.Context(), "market-1", []string{"p1"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatalf("expected stored snapshot")
	}
	if ids := got.AssignedPlayerIDs(); len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("unexpected assigned players: %v", ids)
	}

	_, exists, err = bridge.Load(t.Context(), "market-2", nil)
	if err != nil || exists {
		t.Fatalf("expected missing snapshot, exists=%v err=%v", exists, err)
	}
}

func TestBridgeSave_WrapsRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	bridge := NewBridge(&stubRepository{saveErr: repoErr}, time.Second)

	err := bridge.Save(t.Context(), Snapshot{MarketID: "market-1"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestBridgeSave_BoundedByTimeout(t *testing.T) {
	bridge := NewBridge(&stubRepository{block: true}, 20*time.Millisecond)

	err := bridge.Save(t.Context(), Snapshot{MarketID: "market-1"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestBridgeSave_IgnoresCallerCancellation(t *testing.T) {
	repo := &stubRepository{}
	bridge := NewBridge(repo, time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if err := bridge.Save(ctx, Snapshot{MarketID: "market-1"}); err != nil {
		t.Fatalf("save after caller cancel: %v", err)
	}
	if _, ok := repo.stored["market-1"]; !ok {
		t.Fatalf("snapshot not stored")
	}
}
