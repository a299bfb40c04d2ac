package formation

import "testing"

func TestNewCatalog_ExtraPresets(t *testing.T) {
	catalog, err := NewCatalog(CapacityRule{Default: 2, Goalkeeper: 1}, Preset{
		Name: "5-3-2",
		Positions: []Position{
			{ID: "GK", Top: 85, Left: 50},
			{ID: "CB1", Top: 72, Left: 30},
			{ID: "ST", Top: 0, Left: 50},
		},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	names := catalog.Names()
	if len(names) != 4 || names[0] != "4-3-3" || names[3] != "5-3-2" {
		t.Fatalf("unexpected names: %v", names)
	}

	slots, ok := catalog.Slots("5-3-2")
	if !ok {
		t.Fatalf("preset not found")
	}
	if slots[1].Label != "CB" || slots[1].Capacity != 2 {
		t.Fatalf("unexpected CB slot: %+v", slots[1])
	}
	if slots[2].Top != MinCoordinate {
		t.Fatalf("preset coordinates must be clamped: %+v", slots[2])
	}
}

func TestNewCatalog_RejectsInvalidPresets(t *testing.T) {
	cases := []struct {
		name   string
		preset Preset
	}{
		{name: "reserved name", preset: Preset{Name: "custom", Positions: []Position{{ID: "GK"}}}},
		{name: "no positions", preset: Preset{Name: "empty"}},
		{name: "duplicate id", preset: Preset{Name: "dup", Positions: []Position{{ID: "GK"}, {ID: "GK"}}}},
		{name: "missing id", preset: Preset{Name: "blank", Positions: []Position{{Label: "x"}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(DefaultCapacityRule(), tc.preset); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
