package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "scouting-board"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	recordSpanError(ctx, err, mapped)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

type errorMapping struct {
	targets []error
	mapped  mappedError
}

// errorMappings is checked in order; the first match wins, so specific
// domain errors come before the generic sentinels they may also wrap.
var errorMappings = []errorMapping{
	{
		targets: []error{formation.ErrSlotFull},
		mapped:  mappedError{HTTPStatus: http.StatusConflict, Reason: "slotFull", Status: "FAILED_PRECONDITION"},
	},
	{
		targets: []error{formation.ErrEditMode, formation.ErrNotEditMode, formation.ErrListMode},
		mapped:  mappedError{HTTPStatus: http.StatusConflict, Reason: "boardMode", Status: "FAILED_PRECONDITION"},
	},
	{
		targets: []error{formation.ErrNoDragPayload},
		mapped:  mappedError{HTTPStatus: http.StatusConflict, Reason: "noDragPayload", Status: "FAILED_PRECONDITION"},
	},
	{
		targets: []error{market.ErrDuplicatePlayer},
		mapped:  mappedError{HTTPStatus: http.StatusConflict, Reason: "duplicatePlayer", Status: "ALREADY_EXISTS"},
	},
	{
		targets: []error{formation.ErrSlotNotFound},
		mapped:  mappedError{HTTPStatus: http.StatusNotFound, Reason: "slotNotFound", Status: "NOT_FOUND"},
	},
	{
		targets: []error{formation.ErrUnknownLayout, formation.ErrUnknownMode, formation.ErrPlayerRequired, formation.ErrInvalidPitch},
		mapped:  mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidFormation", Status: "INVALID_ARGUMENT"},
	},
	{
		targets: []error{usecase.ErrInvalidInput},
		mapped:  mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
	},
	{
		targets: []error{usecase.ErrNotFound},
		mapped:  mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
	},
	{
		targets: []error{usecase.ErrUnauthorized},
		mapped:  mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Status: "UNAUTHENTICATED"},
	},
	{
		targets: []error{usecase.ErrForbidden},
		mapped:  mappedError{HTTPStatus: http.StatusForbidden, Reason: "forbidden", Status: "PERMISSION_DENIED"},
	},
	{
		targets: []error{usecase.ErrDependencyUnavailable},
		mapped:  mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"},
	},
}

var internalErrorMapping = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

func mapError(err error) mappedError {
	for _, m := range errorMappings {
		for _, target := range m.targets {
			if errors.Is(err, target) {
				return m.mapped
			}
		}
	}
	return internalErrorMapping
}
