package httpapi

import "net/http"

func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetails")
	defer span.End()

	providerID := pathParam(r, "providerID")
	details, err := h.detailService.GetDetails(ctx, providerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player details failed", "provider_id", providerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailsToDTO(details))
}
