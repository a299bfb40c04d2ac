package formation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
)

// Mode is the board's display state.
type Mode string

const (
	ModeList Mode = "list"
	ModeView Mode = "view"
	ModeEdit Mode = "edit"
)

func ParseMode(v string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(v))); m {
	case ModeList, ModeView, ModeEdit:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, v)
	}
}

// Board owns the slots of one market's pitch and the players placed on them.
// It is not safe for concurrent use.
type Board struct {
	marketID  string
	catalog   *Catalog
	layout    string
	slots     []Slot
	custom    []Slot
	occupants map[string][]string
	slotOf    map[string]string
	mode      Mode
}

func NewBoard(marketID string, catalog *Catalog) *Board {
	b := &Board{
		marketID:  marketID,
		catalog:   catalog,
		occupants: make(map[string][]string),
		slotOf:    make(map[string]string),
		mode:      ModeList,
	}
	b.Initialize(DefaultLayout)
	return b
}

func (b *Board) MarketID() string { return b.marketID }
func (b *Board) Layout() string   { return b.layout }
func (b *Board) Mode() Mode       { return b.mode }

func (b *Board) Slots() []Slot {
	return cloneSlots(b.slots)
}

func (b *Board) Slot(slotID string) (Slot, bool) {
	idx := slotIndex(b.slots, slotID)
	if idx < 0 {
		return Slot{}, false
	}
	return b.slots[idx], true
}

// Initialize activates a layout and returns its slots. Unknown names, and the
// custom layout before any custom positions exist, fall back to the default.
// Players whose slot is not part of the new layout become unassigned.
func (b *Board) Initialize(layoutName string) []Slot {
	name := strings.TrimSpace(layoutName)

	var slots []Slot
	switch {
	case name == LayoutCustom && len(b.custom) > 0:
		slots = cloneSlots(b.custom)
	default:
		preset, ok := b.catalog.Slots(name)
		if !ok {
			name = DefaultLayout
			preset, _ = b.catalog.Slots(DefaultLayout)
		}
		slots = preset
	}

	b.layout = name
	b.slots = slots
	b.pruneAssignments()
	return b.Slots()
}

// MoveSlot repositions a slot and switches the board to the custom layout.
func (b *Board) MoveSlot(slotID string, top, left float64) (Slot, error) {
	if b.mode != ModeEdit {
		return Slot{}, ErrNotEditMode
	}
	idx := slotIndex(b.slots, slotID)
	if idx < 0 {
		return Slot{}, fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}

	b.slots[idx].Top = Clamp(top)
	b.slots[idx].Left = Clamp(left)
	b.markCustom()
	return b.slots[idx], nil
}

// AddSlot appends a default-labelled slot at the pitch centre.
func (b *Board) AddSlot() (Slot, error) {
	if b.mode != ModeEdit {
		return Slot{}, ErrNotEditMode
	}

	n := len(b.slots) + 1
	for slotIndex(b.slots, fmt.Sprintf("slot-%d", n)) >= 0 {
		n++
	}
	slot := Slot{
		ID:       fmt.Sprintf("slot-%d", n),
		Label:    fmt.Sprintf("POS %d", n),
		Top:      CenterCoordinate,
		Left:     CenterCoordinate,
		Capacity: b.catalog.Capacity().Default,
	}
	b.slots = append(b.slots, slot)
	b.markCustom()
	return slot, nil
}

// RemoveSlot deletes a slot and unassigns its players, returning them.
func (b *Board) RemoveSlot(slotID string) ([]string, error) {
	if b.mode != ModeEdit {
		return nil, ErrNotEditMode
	}
	idx := slotIndex(b.slots, slotID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}

	removed := b.occupants[slotID]
	for _, playerID := range removed {
		delete(b.slotOf, playerID)
	}
	delete(b.occupants, slotID)

	b.slots = append(b.slots[:idx], b.slots[idx+1:]...)
	b.markCustom()
	return removed, nil
}

// Assign moves a player onto a slot. A full slot rejects the player and
// leaves the board untouched.
func (b *Board) Assign(playerID, slotID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return ErrPlayerRequired
	}
	idx := slotIndex(b.slots, slotID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, slotID)
	}
	if current, ok := b.slotOf[playerID]; ok && current == slotID {
		return nil
	}

	slot := b.slots[idx]
	if len(b.occupants[slotID]) >= slot.Capacity {
		return &SlotFullError{SlotID: slotID, Capacity: slot.Capacity}
	}

	b.Unassign(playerID)
	b.occupants[slotID] = append(b.occupants[slotID], playerID)
	b.slotOf[playerID] = slotID
	return nil
}

// Unassign reports whether the player was on the board.
func (b *Board) Unassign(playerID string) bool {
	slotID, ok := b.slotOf[playerID]
	if !ok {
		return false
	}
	delete(b.slotOf, playerID)

	list := b.occupants[slotID]
	out := list[:0]
	for _, id := range list {
		if id != playerID {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		delete(b.occupants, slotID)
	} else {
		b.occupants[slotID] = out
	}
	return true
}

func (b *Board) OccupantsOf(slotID string) []string {
	list := b.occupants[slotID]
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func (b *Board) SlotOf(playerID string) (string, bool) {
	slotID, ok := b.slotOf[playerID]
	return slotID, ok
}

// UnassignedRoster keeps roster order.
func (b *Board) UnassignedRoster(roster []player.Summary) []player.Summary {
	out := make([]player.Summary, 0, len(roster))
	for _, item := range roster {
		if _, placed := b.slotOf[item.ID]; placed {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SetMode switches the display state and reports whether slot coordinates
// must be persisted, which is the case whenever edit mode is left.
func (b *Board) SetMode(mode Mode) (bool, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return false, err
	}
	leavingEdit := b.mode == ModeEdit && mode != ModeEdit
	b.mode = mode
	return leavingEdit, nil
}

// Snapshot captures the durable part of the board.
func (b *Board) Snapshot(now time.Time) Snapshot {
	assignments := make(map[string][]string, len(b.occupants))
	for _, slot := range b.slots {
		if list := b.OccupantsOf(slot.ID); len(list) > 0 {
			assignments[slot.ID] = list
		}
	}
	return Snapshot{
		MarketID:    b.marketID,
		Layout:      b.layout,
		Slots:       b.Slots(),
		CustomSlots: cloneSlots(b.custom),
		Assignments: assignments,
		UpdatedAt:   now,
	}
}

// Restore replaces slots and assignments with a snapshot. The display mode
// is kept. Assignments the board cannot take (unknown slot, full slot, player
// already placed) are skipped and returned joined; a reconciled snapshot
// restores cleanly.
func (b *Board) Restore(s Snapshot) error {
	b.custom = cloneSlots(s.CustomSlots)
	b.occupants = make(map[string][]string)
	b.slotOf = make(map[string]string)

	layout := strings.TrimSpace(s.Layout)
	if len(s.Slots) == 0 {
		b.Initialize(layout)
	} else {
		if layout == "" {
			layout = LayoutCustom
		}
		b.layout = layout
		b.slots = cloneSlots(s.Slots)
		if layout == LayoutCustom && len(b.custom) == 0 {
			b.custom = cloneSlots(b.slots)
		}
	}

	var rejected []error
	for slotID := range s.Assignments {
		if slotIndex(b.slots, slotID) < 0 {
			rejected = append(rejected, fmt.Errorf("%w: %s", ErrSlotNotFound, slotID))
		}
	}
	for _, slot := range b.slots {
		for _, playerID := range s.Assignments[slot.ID] {
			if current, placed := b.slotOf[strings.TrimSpace(playerID)]; placed {
				rejected = append(rejected, fmt.Errorf("player=%s slot=%s: already placed on %s", playerID, slot.ID, current))
				continue
			}
			if err := b.Assign(playerID, slot.ID); err != nil {
				rejected = append(rejected, fmt.Errorf("player=%s slot=%s: %w", playerID, slot.ID, err))
			}
		}
	}
	return errors.Join(rejected...)
}

func (b *Board) markCustom() {
	b.layout = LayoutCustom
	b.custom = cloneSlots(b.slots)
}

// pruneAssignments drops occupants of missing slots and overflow beyond capacity.
func (b *Board) pruneAssignments() {
	previous := b.occupants
	b.occupants = make(map[string][]string, len(previous))
	b.slotOf = make(map[string]string, len(b.slotOf))

	for _, slot := range b.slots {
		list := previous[slot.ID]
		if len(list) > slot.Capacity {
			list = list[:slot.Capacity]
		}
		if len(list) == 0 {
			continue
		}
		b.occupants[slot.ID] = append([]string(nil), list...)
		for _, playerID := range list {
			b.slotOf[playerID] = slot.ID
		}
	}
}
