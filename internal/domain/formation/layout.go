package formation

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	LayoutCustom  = "custom"
	DefaultLayout = "4-3-3"
)

// Position is a preset slot coordinate before capacities are applied.
type Position struct {
	ID    string
	Label string
	Top   float64
	Left  float64
}

// Preset is a named fixed table of positions.
type Preset struct {
	Name      string
	Positions []Position
}

var builtinPresets = []Preset{
	{
		Name: "4-3-3",
		Positions: []Position{
			{ID: "GK", Top: 85, Left: 50},
			{ID: "LB", Top: 70, Left: 15},
			{ID: "CB1", Top: 70, Left: 35},
			{ID: "CB2", Top: 70, Left: 65},
			{ID: "RB", Top: 70, Left: 85},
			{ID: "CDM1", Top: 50, Left: 50},
			{ID: "CM", Top: 40, Left: 35},
			{ID: "RM", Top: 40, Left: 65},
			{ID: "LW", Top: 20, Left: 15},
			{ID: "ST", Top: 15, Left: 50},
			{ID: "RW", Top: 20, Left: 85},
		},
	},
	{
		Name: "4-4-2",
		Positions: []Position{
			{ID: "GK", Top: 85, Left: 50},
			{ID: "LB", Top: 70, Left: 15},
			{ID: "CB1", Top: 70, Left: 35},
			{ID: "CB2", Top: 70, Left: 65},
			{ID: "RB", Top: 70, Left: 85},
			{ID: "LM", Top: 45, Left: 15},
			{ID: "CDM1", Top: 50, Left: 35},
			{ID: "CDM2", Top: 50, Left: 65},
			{ID: "RM", Top: 45, Left: 85},
			{ID: "ST", Top: 20, Left: 35},
			{ID: "RW", Top: 20, Left: 65},
		},
	},
	{
		Name: "3-5-2",
		Positions: []Position{
			{ID: "GK", Top: 85, Left: 50},
			{ID: "CB1", Top: 70, Left: 25},
			{ID: "CB2", Top: 70, Left: 50},
			{ID: "RB", Top: 70, Left: 75},
			{ID: "LM", Top: 45, Left: 10},
			{ID: "CDM1", Top: 50, Left: 35},
			{ID: "CM", Top: 45, Left: 50},
			{ID: "CDM2", Top: 50, Left: 65},
			{ID: "RM", Top: 45, Left: 90},
			{ID: "ST", Top: 20, Left: 35},
			{ID: "RW", Top: 20, Left: 65},
		},
	},
}

// Catalog is the set of preset layouts known to the service.
type Catalog struct {
	presets  map[string][]Slot
	order    []string
	capacity CapacityRule
}

// NewCatalog builds the built-in presets plus any extra ones. Extra presets
// may override a built-in name but never the custom layout.
func NewCatalog(rule CapacityRule, extra ...Preset) (*Catalog, error) {
	c := &Catalog{
		presets:  make(map[string][]Slot, len(builtinPresets)+len(extra)),
		capacity: rule.normalize(),
	}
	for _, preset := range builtinPresets {
		if err := c.add(preset); err != nil {
			return nil, err
		}
	}
	for _, preset := range extra {
		if err := c.add(preset); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(preset Preset) error {
	name := strings.TrimSpace(preset.Name)
	if name == "" {
		return fmt.Errorf("preset name is required")
	}
	if strings.EqualFold(name, LayoutCustom) {
		return fmt.Errorf("preset name %q is reserved", name)
	}
	if len(preset.Positions) == 0 {
		return fmt.Errorf("preset %q has no positions", name)
	}

	slots := make([]Slot, 0, len(preset.Positions))
	seen := make(map[string]struct{}, len(preset.Positions))
	for _, pos := range preset.Positions {
		id := strings.TrimSpace(pos.ID)
		if id == "" {
			return fmt.Errorf("preset %q has a position without id", name)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("preset %q has duplicate position %q", name, id)
		}
		seen[id] = struct{}{}

		label := strings.TrimSpace(pos.Label)
		if label == "" {
			label = defaultLabel(id)
		}
		slots = append(slots, Slot{
			ID:       id,
			Label:    label,
			Top:      Clamp(pos.Top),
			Left:     Clamp(pos.Left),
			Capacity: c.capacity.For(id),
		})
	}

	if _, exists := c.presets[name]; !exists {
		c.order = append(c.order, name)
	}
	c.presets[name] = slots
	return nil
}

// Names returns preset names, built-ins first in declaration order, the rest sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	builtin := len(builtinPresets)
	if len(out) > builtin {
		sort.Strings(out[builtin:])
	}
	return out
}

func (c *Catalog) Has(name string) bool {
	name = strings.TrimSpace(name)
	if name == LayoutCustom {
		return true
	}
	_, ok := c.presets[name]
	return ok
}

// Slots returns a copy of a preset's slots.
func (c *Catalog) Slots(name string) ([]Slot, bool) {
	slots, ok := c.presets[strings.TrimSpace(name)]
	if !ok {
		return nil, false
	}
	return cloneSlots(slots), true
}

func (c *Catalog) Capacity() CapacityRule {
	return c.capacity
}

// defaultLabel strips the ordinal suffix, CB1 becomes CB.
func defaultLabel(id string) string {
	label := strings.TrimRightFunc(id, unicode.IsDigit)
	if label == "" {
		return id
	}
	return label
}
