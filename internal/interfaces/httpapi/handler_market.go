package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scouting-board/internal/usecase"
)

func (h *Handler) ListMarkets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMarkets")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.marketService.List(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list markets failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]marketDTO, 0, len(items))
	for _, item := range items {
		out = append(out, marketToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateMarket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMarket")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMarketRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.marketService.Create(ctx, principal, usecase.CreateMarketInput{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create market failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, marketToDTO(item))
}

func (h *Handler) GetMarket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMarket")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	item, err := h.marketService.Get(ctx, principal, marketID)
	if err != nil {
		h.logger.WarnContext(ctx, "get market failed", "market_id", marketID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, marketToDTO(item))
}

func (h *Handler) UpdateMarket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMarket")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMarketRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	item, err := h.marketService.Update(ctx, principal, marketID, usecase.UpdateMarketInput{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update market failed", "market_id", marketID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, marketToDTO(item))
}

func (h *Handler) ListMarketPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMarketPlayers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	items, err := h.marketService.Roster(ctx, principal, marketID)
	if err != nil {
		h.logger.WarnContext(ctx, "list market players failed", "market_id", marketID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]marketPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, marketPlayerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddMarketPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMarketPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addMarketPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	item, err := h.marketService.AddPlayer(ctx, principal, marketID, usecase.AddMarketPlayerInput{
		ProviderID:  req.ProviderID,
		Type:        req.Type,
		Name:        req.Name,
		Position:    req.Position,
		Age:         req.Age,
		CurrentTeam: req.CurrentTeam,
		Priority:    req.Priority,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add market player failed", "market_id", marketID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, marketPlayerToDTO(item))
}

func (h *Handler) UpdateMarketPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMarketPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMarketPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	playerID := pathParam(r, "playerID")
	item, err := h.marketService.UpdatePlayer(ctx, principal, marketID, playerID, usecase.UpdateMarketPlayerInput{
		Position:    req.Position,
		CurrentTeam: req.CurrentTeam,
		Priority:    req.Priority,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update market player failed", "market_id", marketID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, marketPlayerToDTO(item))
}

func (h *Handler) RemoveMarketPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveMarketPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	playerID := pathParam(r, "playerID")
	if err := h.marketService.RemovePlayer(ctx, principal, marketID, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove market player failed", "market_id", marketID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": playerID})
}
