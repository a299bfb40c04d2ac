package formation

import (
	"context"
	"fmt"
	"time"
)

const DefaultPersistTimeout = 3 * time.Second

// Bridge writes snapshots through to a Repository and reconciles them on load.
type Bridge struct {
	repo    Repository
	timeout time.Duration
}

func NewBridge(repo Repository, timeout time.Duration) *Bridge {
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}
	return &Bridge{repo: repo, timeout: timeout}
}

// Save outlives the caller's cancellation but not the persist timeout.
func (b *Bridge) Save(ctx context.Context, snapshot Snapshot) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	if err := b.repo.Upsert(ctx, snapshot); err != nil {
		return fmt.Errorf("save formation snapshot market_id=%s: %w", snapshot.MarketID, err)
	}
	return nil
}

// Load returns the reconciled snapshot and whether one was stored.
func (b *Bridge) Load(ctx context.Context, marketID string, rosterIDs []string) (Snapshot, bool, error) {
	snapshot, exists, err := b.Fetch(ctx, marketID)
	if err != nil || !exists {
		return Snapshot{}, false, err
	}
	return snapshot.Reconcile(rosterIDs), true, nil
}

// Fetch returns the stored snapshot as is. Callers that load the roster
// concurrently reconcile afterwards.
func (b *Bridge) Fetch(ctx context.Context, marketID string) (Snapshot, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	snapshot, exists, err := b.repo.GetByMarket(ctx, marketID)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load formation snapshot market_id=%s: %w", marketID, err)
	}
	return snapshot, exists, nil
}
