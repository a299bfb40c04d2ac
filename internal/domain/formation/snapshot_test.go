package formation

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSnapshotReconcile_DropsStalePlayers(t *testing.T) {
	snapshot := Snapshot{
		MarketID: "market-1",
		Layout:   DefaultLayout,
		Slots: []Slot{
			{ID: "GK", Label: "GK", Top: 85, Left: 50, Capacity: 1},
			{ID: "ST", Label: "ST", Top: 15, Left: 50, Capacity: 3},
		},
		Assignments: map[string][]string{
			"GK":    {"p9"},
			"ST":    {"p1", "p9", "p2"},
			"ghost": {"p3"},
		},
	}

	got := snapshot.Reconcile([]string{"p1", "p2", "p3"})

	want := map[string][]string{"ST": {"p1", "p2"}}
	if diff := cmp.Diff(want, got.Assignments); diff != "" {
		t.Fatalf("unexpected assignments (-want +got):\n%s", diff)
	}
	for _, id := range got.AssignedPlayerIDs() {
		if id == "p9" {
			t.Fatalf("stale player p9 survived reconciliation")
		}
	}
}

func TestSnapshotReconcile_DedupesAndTrimsToCapacity(t *testing.T) {
	snapshot := Snapshot{
		Slots: []Slot{
			{ID: "GK", Top: 85, Left: 50, Capacity: 1},
			{ID: "CM", Top: 40, Left: 35, Capacity: 2},
		},
		Assignments: map[string][]string{
			"GK": {"p1", "p2"},
			"CM": {"p1", "p3", "p4", "p5"},
		},
	}

	got := snapshot.Reconcile([]string{"p1", "p2", "p3", "p4", "p5"})

	want := map[string][]string{"GK": {"p1"}, "CM": {"p3", "p4"}}
	if diff := cmp.Diff(want, got.Assignments); diff != "" {
		t.Fatalf("unexpected assignments (-want +got):\n%s", diff)
	}
}

func TestSnapshotReconcile_IsIdempotent(t *testing.T) {
	faker := gofakeit.New(uint64(42))

	for round := 0; round < 50; round++ {
		snapshot, roster := randomSnapshot(faker)

		once := snapshot.Reconcile(roster)
		twice := once.Reconcile(roster)

		if diff := cmp.Diff(once, twice, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round %d: reconcile not idempotent (-once +twice):\n%s", round, diff)
		}
	}
}

func TestBoardSnapshot_RoundTripsThroughRestore(t *testing.T) {
	board := newTestBoard(t)
	_ = board.Assign("p1", "GK")
	_ = board.Assign("p2", "ST")
	_ = board.Assign("p3", "ST")
	_, _ = board.SetMode(ModeEdit)
	_, _ = board.MoveSlot("LW", 22.5, 12)
	_, _ = board.AddSlot()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	saved := board.Snapshot(now)
	loaded := saved.Reconcile([]string{"p1", "p2", "p3", "p4"})

	if diff := cmp.Diff(saved, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip changed snapshot (-saved +loaded):\n%s", diff)
	}

	restored := NewBoard("market-1", board.catalog)
	if err := restored.Restore(loaded); err != nil {
		t.Fatalf("restore reconciled snapshot: %v", err)
	}
	if diff := cmp.Diff(saved, restored.Snapshot(now), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("restored board differs (-saved +restored):\n%s", diff)
	}
}

// TestBoard_InvariantsHoldForRandomOperations drives the board with random
// assigns and unassigns and checks occupancy and capacity after every step.
func TestBoard_InvariantsHoldForRandomOperations(t *testing.T) {
	faker := gofakeit.New(uint64(7))
	board := newTestBoard(t)
	slots := board.Slots()

	for step := 0; step < 2000; step++ {
		playerID := fmt.Sprintf("p%d", faker.Number(1, 30))
		slot := slots[faker.Number(0, len(slots)-1)]

		before := board.Snapshot(time.Time{})
		if faker.Number(0, 4) == 0 {
			board.Unassign(playerID)
		} else if err := board.Assign(playerID, slot.ID); err != nil {
			if diff := cmp.Diff(before, board.Snapshot(time.Time{}), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("step %d: rejected assign mutated board:\n%s", step, diff)
			}
		}

		seen := make(map[string]string)
		for _, s := range slots {
			occupants := board.OccupantsOf(s.ID)
			if len(occupants) > s.Capacity {
				t.Fatalf("step %d: slot %s over capacity: %v", step, s.ID, occupants)
			}
			for _, id := range occupants {
				if other, dup := seen[id]; dup {
					t.Fatalf("step %d: player %s in %s and %s", step, id, other, s.ID)
				}
				seen[id] = s.ID
			}
		}
	}
}

func randomSnapshot(faker *gofakeit.Faker) (Snapshot, []string) {
	slotCount := faker.Number(1, 12)
	slots := make([]Slot, 0, slotCount)
	assignments := make(map[string][]string, slotCount)
	for i := 0; i < slotCount; i++ {
		id := fmt.Sprintf("s%d", faker.Number(1, 15))
		slots = append(slots, Slot{
			ID:       id,
			Top:      faker.Float64Range(-20, 120),
			Left:     faker.Float64Range(-20, 120),
			Capacity: faker.Number(0, 3),
		})
		for n := faker.Number(0, 5); n > 0; n-- {
			assignments[id] = append(assignments[id], fmt.Sprintf("p%d", faker.Number(1, 20)))
		}
	}

	var roster []string
	for i := 1; i <= 20; i++ {
		if faker.Bool() {
			roster = append(roster, fmt.Sprintf("p%d", i))
		}
	}
	return Snapshot{MarketID: faker.UUID(), Layout: LayoutCustom, Slots: slots, Assignments: assignments}, roster
}
