package formation

import (
	"errors"
	"fmt"
)

var (
	ErrSlotNotFound   = errors.New("slot not found")
	ErrSlotFull       = errors.New("slot is full")
	ErrEditMode       = errors.New("player drops are disabled while editing positions")
	ErrNotEditMode    = errors.New("slot changes require edit positions mode")
	ErrListMode       = errors.New("board is in list mode")
	ErrNoDragPayload  = errors.New("nothing is being dragged")
	ErrUnknownLayout  = errors.New("unknown layout")
	ErrUnknownMode    = errors.New("unknown board mode")
	ErrPlayerRequired = errors.New("player id is required")
	ErrInvalidPitch   = errors.New("pitch rectangle must have a positive size")
)

// SlotFullError reports a rejected assignment onto a slot at capacity.
type SlotFullError struct {
	SlotID   string
	Capacity int
}

func (e *SlotFullError) Error() string {
	if e.Capacity == 1 {
		return "max 1 player in this slot"
	}
	return fmt.Sprintf("max %d players in this slot", e.Capacity)
}

func (e *SlotFullError) Is(target error) bool {
	return target == ErrSlotFull
}
