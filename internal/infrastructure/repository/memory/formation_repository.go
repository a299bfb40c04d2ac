package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
)

type FormationRepository struct {
	mu    sync.RWMutex
	items map[string]formation.Snapshot
}

func NewFormationRepository() *FormationRepository {
	return &FormationRepository{items: make(map[string]formation.Snapshot)}
}

func (r *FormationRepository) GetByMarket(_ context.Context, marketID string) (formation.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[marketID]
	if !ok {
		return formation.Snapshot{}, false, nil
	}
	return cloneSnapshot(item), true, nil
}

func (r *FormationRepository) Upsert(_ context.Context, snapshot formation.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[snapshot.MarketID] = cloneSnapshot(snapshot)
	return nil
}

func cloneSnapshot(item formation.Snapshot) formation.Snapshot {
	copied := item
	copied.Slots = append([]formation.Slot(nil), item.Slots...)
	copied.CustomSlots = append([]formation.Slot(nil), item.CustomSlots...)
	copied.Assignments = make(map[string][]string, len(item.Assignments))
	for slotID, ids := range item.Assignments {
		copied.Assignments[slotID] = append([]string(nil), ids...)
	}
	return copied
}
