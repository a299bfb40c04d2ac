package formation

import (
	"strings"
	"time"
)

// Snapshot is the durable form of a board.
type Snapshot struct {
	MarketID    string
	Layout      string
	Slots       []Slot
	CustomSlots []Slot
	Assignments map[string][]string
	UpdatedAt   time.Time
}

// Reconcile drops assignments that reference players missing from the roster
// or slots missing from the slot list, de-duplicates players and trims each
// slot to its capacity. Applying it twice yields the same snapshot.
func (s Snapshot) Reconcile(rosterIDs []string) Snapshot {
	roster := make(map[string]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		roster[strings.TrimSpace(id)] = struct{}{}
	}

	out := Snapshot{
		MarketID:    s.MarketID,
		Layout:      s.Layout,
		Slots:       reconcileSlots(s.Slots),
		CustomSlots: reconcileSlots(s.CustomSlots),
		Assignments: make(map[string][]string, len(s.Assignments)),
		UpdatedAt:   s.UpdatedAt,
	}

	placed := make(map[string]struct{})
	for _, slot := range out.Slots {
		var kept []string
		for _, playerID := range s.Assignments[slot.ID] {
			if len(kept) >= slot.Capacity {
				break
			}
			if _, ok := roster[playerID]; !ok {
				continue
			}
			if _, dup := placed[playerID]; dup {
				continue
			}
			placed[playerID] = struct{}{}
			kept = append(kept, playerID)
		}
		if len(kept) > 0 {
			out.Assignments[slot.ID] = kept
		}
	}
	return out
}

// AssignedPlayerIDs lists every placed player in slot order.
func (s Snapshot) AssignedPlayerIDs() []string {
	var out []string
	for _, slot := range s.Slots {
		out = append(out, s.Assignments[slot.ID]...)
	}
	return out
}

func reconcileSlots(in []Slot) []Slot {
	if len(in) == 0 {
		return nil
	}
	out := make([]Slot, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, slot := range in {
		slot.ID = strings.TrimSpace(slot.ID)
		if slot.ID == "" {
			continue
		}
		if _, dup := seen[slot.ID]; dup {
			continue
		}
		seen[slot.ID] = struct{}{}
		slot.Top = Clamp(slot.Top)
		slot.Left = Clamp(slot.Left)
		if slot.Capacity < 1 {
			slot.Capacity = 1
		}
		out = append(out, slot)
	}
	return out
}
