package formation

import "strings"

const (
	MinCoordinate = 5.0
	MaxCoordinate = 95.0

	// CenterCoordinate is where added slots are dropped.
	CenterCoordinate = 50.0

	GoalkeeperSlotID = "GK"
)

// Slot is a named position box on the pitch. Top and Left are percentages of
// the pitch bounding box.
type Slot struct {
	ID       string
	Label    string
	Top      float64
	Left     float64
	Capacity int
}

// Clamp keeps a coordinate inside the pitch.
func Clamp(v float64) float64 {
	switch {
	case v < MinCoordinate:
		return MinCoordinate
	case v > MaxCoordinate:
		return MaxCoordinate
	default:
		return v
	}
}

// CapacityRule assigns default capacities to preset slots.
type CapacityRule struct {
	Default    int
	Goalkeeper int
}

func DefaultCapacityRule() CapacityRule {
	return CapacityRule{Default: 3, Goalkeeper: 1}
}

func (r CapacityRule) normalize() CapacityRule {
	if r.Default <= 0 {
		r.Default = 3
	}
	if r.Goalkeeper <= 0 {
		r.Goalkeeper = 1
	}
	return r
}

func (r CapacityRule) For(slotID string) int {
	r = r.normalize()
	if strings.EqualFold(strings.TrimSpace(slotID), GoalkeeperSlotID) {
		return r.Goalkeeper
	}
	return r.Default
}

func cloneSlots(in []Slot) []Slot {
	if len(in) == 0 {
		return nil
	}
	out := make([]Slot, len(in))
	copy(out, in)
	return out
}

func slotIndex(slots []Slot, slotID string) int {
	for i := range slots {
		if slots[i].ID == slotID {
			return i
		}
	}
	return -1
}
