package httpapi

import "net/http"

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateReport")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reportRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	observedOn, err := parseDate("observedOn", req.ObservedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	playerID := pathParam(r, "playerID")
	item, err := h.reportService.Create(ctx, principal, marketID, playerID, req.toInput(observedOn))
	if err != nil {
		h.logger.WarnContext(ctx, "create report failed", "market_id", marketID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reportToDTO(item))
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReports")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.reportService.ListForClub(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "list reports failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportsToDTO(items))
}

func (h *Handler) ListPlayerReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerReports")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	playerID := pathParam(r, "playerID")
	summary, err := h.reportService.ListForPlayer(ctx, principal, marketID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player reports failed", "market_id", marketID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportSummaryToDTO(summary))
}

func (h *Handler) ListProviderReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListProviderReports")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	providerID := pathParam(r, "providerID")
	summary, err := h.reportService.ListForProvider(ctx, principal, providerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list provider reports failed", "provider_id", providerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportSummaryToDTO(summary))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reportID := pathParam(r, "reportID")
	item, err := h.reportService.Get(ctx, principal, reportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateReport")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reportRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	observedOn, err := parseDate("observedOn", req.ObservedOn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reportID := pathParam(r, "reportID")
	item, err := h.reportService.Update(ctx, principal, reportID, req.toInput(observedOn))
	if err != nil {
		h.logger.WarnContext(ctx, "update report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(item))
}
