package formation

import "strings"

// PitchRect is the pitch bounding box in client pixels.
type PitchRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ToPercent converts a pointer position to clamped slot coordinates.
func (r PitchRect) ToPercent(x, y float64) (top, left float64, err error) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0, ErrInvalidPitch
	}
	top = Clamp((y - r.Y) / r.Height * 100)
	left = Clamp((x - r.X) / r.Width * 100)
	return top, left, nil
}

type dragKind int

const (
	dragNone dragKind = iota
	dragPlayer
	dragSlot
)

type dragState struct {
	kind     dragKind
	playerID string
	slotID   string
	originT  float64
	originL  float64
}

// Controller turns drag gestures into board mutations. Its only state is the
// item currently being dragged.
type Controller struct {
	board *Board
	drag  dragState
}

func NewController(board *Board) *Controller {
	return &Controller{board: board}
}

func (c *Controller) Board() *Board {
	return c.board
}

// BeginPlayerDrag replaces any pending drag with a player card.
func (c *Controller) BeginPlayerDrag(playerID string) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return ErrPlayerRequired
	}
	c.drag = dragState{kind: dragPlayer, playerID: playerID}
	return nil
}

// DraggedPlayer returns the pending player payload.
func (c *Controller) DraggedPlayer() (string, bool) {
	if c.drag.kind != dragPlayer {
		return "", false
	}
	return c.drag.playerID, true
}

// DropOnSlot assigns the dragged player. The payload is cleared whether or
// not the drop succeeds.
func (c *Controller) DropOnSlot(slotID string) (string, error) {
	if c.drag.kind != dragPlayer {
		return "", ErrNoDragPayload
	}
	playerID := c.drag.playerID
	c.drag = dragState{}

	switch c.board.Mode() {
	case ModeEdit:
		return playerID, ErrEditMode
	case ModeList:
		return playerID, ErrListMode
	}
	return playerID, c.board.Assign(playerID, slotID)
}

func (c *Controller) CancelDrag() {
	c.drag = dragState{}
}

// RemovePlayer takes a player off the pitch.
func (c *Controller) RemovePlayer(playerID string) (bool, error) {
	if c.board.Mode() == ModeList {
		return false, ErrListMode
	}
	return c.board.Unassign(playerID), nil
}

// BeginSlotDrag picks up a slot box. Only allowed in edit mode.
func (c *Controller) BeginSlotDrag(slotID string) error {
	if c.board.Mode() != ModeEdit {
		return ErrNotEditMode
	}
	slot, ok := c.board.Slot(slotID)
	if !ok {
		return ErrSlotNotFound
	}
	c.drag = dragState{kind: dragSlot, slotID: slot.ID, originT: slot.Top, originL: slot.Left}
	return nil
}

// DragSlotTo moves the dragged slot to absolute coordinates.
func (c *Controller) DragSlotTo(top, left float64) (Slot, error) {
	if c.drag.kind != dragSlot {
		return Slot{}, ErrNoDragPayload
	}
	return c.board.MoveSlot(c.drag.slotID, top, left)
}

// DragSlotBy moves the dragged slot by an offset from where the drag began.
func (c *Controller) DragSlotBy(dTop, dLeft float64) (Slot, error) {
	if c.drag.kind != dragSlot {
		return Slot{}, ErrNoDragPayload
	}
	return c.board.MoveSlot(c.drag.slotID, c.drag.originT+dTop, c.drag.originL+dLeft)
}

// DragSlotToPointer moves the dragged slot under a pointer in pixels.
func (c *Controller) DragSlotToPointer(rect PitchRect, x, y float64) (Slot, error) {
	top, left, err := rect.ToPercent(x, y)
	if err != nil {
		return Slot{}, err
	}
	return c.DragSlotTo(top, left)
}

// EndSlotDrag releases the slot and returns its final position.
func (c *Controller) EndSlotDrag() (Slot, error) {
	if c.drag.kind != dragSlot {
		return Slot{}, ErrNoDragPayload
	}
	slotID := c.drag.slotID
	c.drag = dragState{}

	slot, ok := c.board.Slot(slotID)
	if !ok {
		return Slot{}, ErrSlotNotFound
	}
	return slot, nil
}
