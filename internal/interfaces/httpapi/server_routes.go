package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerMarketRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/markets", RequireAuth(verifier, http.HandlerFunc(handler.ListMarkets)))
	mux.Handle("POST /v1/markets", RequireAuth(verifier, http.HandlerFunc(handler.CreateMarket)))
	mux.Handle("GET /v1/markets/{marketID}", RequireAuth(verifier, http.HandlerFunc(handler.GetMarket)))
	mux.Handle("PATCH /v1/markets/{marketID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMarket)))
	mux.Handle("GET /v1/markets/{marketID}/players", RequireAuth(verifier, http.HandlerFunc(handler.ListMarketPlayers)))
	mux.Handle("POST /v1/markets/{marketID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddMarketPlayer)))
	mux.Handle("PATCH /v1/markets/{marketID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMarketPlayer)))
	mux.Handle("DELETE /v1/markets/{marketID}/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveMarketPlayer)))
}

func registerFormationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/formation/layouts", RequireAuth(verifier, http.HandlerFunc(handler.ListLayouts)))
	mux.Handle("GET /v1/markets/{marketID}/formation", RequireAuth(verifier, http.HandlerFunc(handler.GetBoard)))
	mux.Handle("PUT /v1/markets/{marketID}/formation/mode", RequireAuth(verifier, http.HandlerFunc(handler.SetBoardMode)))
	mux.Handle("PUT /v1/markets/{marketID}/formation/layout", RequireAuth(verifier, http.HandlerFunc(handler.SelectLayout)))
	mux.Handle("POST /v1/markets/{marketID}/formation/assignments", RequireAuth(verifier, http.HandlerFunc(handler.AssignPlayer)))
	mux.Handle("DELETE /v1/markets/{marketID}/formation/assignments/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UnassignPlayer)))
	mux.Handle("POST /v1/markets/{marketID}/formation/slots", RequireAuth(verifier, http.HandlerFunc(handler.AddSlot)))
	mux.Handle("DELETE /v1/markets/{marketID}/formation/slots/{slotID}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveSlot)))
	mux.Handle("PUT /v1/markets/{marketID}/formation/slots/{slotID}/position", RequireAuth(verifier, http.HandlerFunc(handler.MoveSlot)))
	// Retries the write-through after a failed save.
	mux.Handle("POST /v1/markets/{marketID}/formation/persist", RequireAuth(verifier, http.HandlerFunc(handler.PersistBoard)))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/players/{providerID}/details", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerDetails)))
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/reports", RequireAuth(verifier, http.HandlerFunc(handler.ListReports)))
	mux.Handle("GET /v1/reports/{reportID}", RequireAuth(verifier, http.HandlerFunc(handler.GetReport)))
	mux.Handle("PUT /v1/reports/{reportID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateReport)))
	mux.Handle("GET /v1/markets/{marketID}/players/{playerID}/reports", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayerReports)))
	mux.Handle("POST /v1/markets/{marketID}/players/{playerID}/reports", RequireAuth(verifier, http.HandlerFunc(handler.CreateReport)))
	mux.Handle("GET /v1/players/{providerID}/reports", RequireAuth(verifier, http.HandlerFunc(handler.ListProviderReports)))
}
