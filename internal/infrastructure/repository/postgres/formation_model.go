package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/scouting-board/internal/domain/formation"
)

const formationPayloadVersion = 1

type formationSnapshotTableModel struct {
	MarketID  string    `db:"market_public_id"`
	Layout    string    `db:"layout"`
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

type formationSnapshotInsertModel struct {
	MarketID string `db:"market_public_id"`
	Layout   string `db:"layout"`
	Payload  string `db:"payload"`
}

// formationPayload is the jsonb body of a snapshot row.
type formationPayload struct {
	Version     int                 `json:"version"`
	Slots       []formationSlotBlob `json:"slots"`
	CustomSlots []formationSlotBlob `json:"customSlots,omitempty"`
	Assignments map[string][]string `json:"assignments"`
}

type formationSlotBlob struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Capacity int     `json:"capacity,omitempty"`
}

func encodeFormationPayload(s formation.Snapshot) (string, error) {
	payload := formationPayload{
		Version:     formationPayloadVersion,
		Slots:       slotBlobs(s.Slots),
		CustomSlots: slotBlobs(s.CustomSlots),
		Assignments: s.Assignments,
	}
	if payload.Assignments == nil {
		payload.Assignments = map[string][]string{}
	}

	encoded, err := sonic.MarshalString(payload)
	if err != nil {
		return "", fmt.Errorf("encode formation payload: %w", err)
	}
	return encoded, nil
}

func formationFromRow(row formationSnapshotTableModel, capacity formation.CapacityRule) (formation.Snapshot, error) {
	var payload formationPayload
	if len(row.Payload) > 0 {
		if err := sonic.Unmarshal(row.Payload, &payload); err != nil {
			return formation.Snapshot{}, fmt.Errorf("decode formation payload: %w", err)
		}
	}
	if payload.Version > formationPayloadVersion {
		return formation.Snapshot{}, fmt.Errorf("decode formation payload: unsupported version %d", payload.Version)
	}

	return formation.Snapshot{
		MarketID:    row.MarketID,
		Layout:      row.Layout,
		Slots:       slotsFromBlobs(payload.Slots, capacity),
		CustomSlots: slotsFromBlobs(payload.CustomSlots, capacity),
		Assignments: payload.Assignments,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func slotBlobs(slots []formation.Slot) []formationSlotBlob {
	if len(slots) == 0 {
		return nil
	}
	out := make([]formationSlotBlob, 0, len(slots))
	for _, slot := range slots {
		out = append(out, formationSlotBlob{
			ID:       slot.ID,
			Label:    slot.Label,
			Top:      slot.Top,
			Left:     slot.Left,
			Capacity: slot.Capacity,
		})
	}
	return out
}

// slotsFromBlobs fills capacity for rows written before it was stored.
func slotsFromBlobs(blobs []formationSlotBlob, capacity formation.CapacityRule) []formation.Slot {
	if len(blobs) == 0 {
		return nil
	}
	out := make([]formation.Slot, 0, len(blobs))
	for _, blob := range blobs {
		slot := formation.Slot{
			ID:       blob.ID,
			Label:    blob.Label,
			Top:      blob.Top,
			Left:     blob.Left,
			Capacity: blob.Capacity,
		}
		if slot.Capacity < 1 {
			slot.Capacity = capacity.For(slot.ID)
		}
		out = append(out, slot)
	}
	return out
}
