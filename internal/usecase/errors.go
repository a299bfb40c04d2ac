package usecase

import (
	"errors"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
)

// Sentinels wrapped with fmt.Errorf("%w: ...") and mapped to HTTP statuses by
// the transport layer.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	// ErrDependencyUnavailable covers Anubis and the player data provider.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// rejectionErrors are caller mistakes or board rule violations. Anything else
// reaching a service boundary is an operational failure.
var rejectionErrors = []error{
	ErrInvalidInput,
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
	formation.ErrSlotFull,
	formation.ErrSlotNotFound,
	formation.ErrEditMode,
	formation.ErrNotEditMode,
	formation.ErrListMode,
	formation.ErrNoDragPayload,
	formation.ErrUnknownLayout,
	formation.ErrUnknownMode,
	formation.ErrPlayerRequired,
	formation.ErrInvalidPitch,
	market.ErrDuplicatePlayer,
}

func isRejection(err error) bool {
	for _, target := range rejectionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
