package httpapi

import (
	"net/http"
	"testing"

	"github.com/riskibarqy/scouting-board/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

func playerReportsPath(playerID string) string {
	return "/v1/markets/" + memory.MarketIDSummer + "/players/" + playerID + "/reports"
}

func TestReportRoutes_CreateAndSummarize(t *testing.T) {
	router := newTestRouter(t)

	code, created := doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-004"), "head-token",
		`{"positionPlayed":"LW","ratings":{"overall":8,"physical":{"speed":9}},"recommendation":"comprar","tags":["Promesa","promesa"],"observedOn":"2026-06-20","viewingType":"video","minutesObserved":75}`)
	require.Equal(t, http.StatusCreated, code)
	require.Nil(t, created.Error)
	require.Equal(t, "rep-1", created.Data.ID)
	require.Equal(t, "mp-004", created.Data.MarketPlayerID)
	require.Equal(t, "610377", created.Data.ProviderID)
	require.Equal(t, "Nico Williams", created.Data.PlayerName)
	require.Equal(t, "sign", created.Data.Recommendation)
	require.Equal(t, []string{"Promesa"}, created.Data.Tags)
	require.Equal(t, "2026-06-20", created.Data.ObservedOn)
	require.Equal(t, 9, created.Data.Ratings.Physical.Speed)
	require.Equal(t, 7, created.Data.Ratings.Technical.Passing)

	code, summary := doJSONRequest[reportSummaryDTO](t, router, http.MethodGet, playerReportsPath("mp-004"), "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, summary.Data.Total)
	require.Nil(t, summary.Data.Averages)
	require.Equal(t, "rep-1", summary.Data.Latest.ID)

	code, _ = doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-004"), "head-token",
		`{"ratings":{"overall":6}}`)
	require.Equal(t, http.StatusCreated, code)

	code, summary = doJSONRequest[reportSummaryDTO](t, router, http.MethodGet, "/v1/players/610377/reports", "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 2, summary.Data.Total)
	require.NotNil(t, summary.Data.Averages)
	require.Equal(t, 7.0, summary.Data.Averages.Overall)
	require.Equal(t, "rep-2", summary.Data.Latest.ID)
}

func TestReportRoutes_RejectsInvalidAssessment(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "grade above ten", body: `{"ratings":{"overall":11}}`},
		{name: "unknown recommendation", body: `{"recommendation":"loan"}`},
		{name: "malformed date", body: `{"observedOn":"20/06/2026"}`},
		{name: "negative price", body: `{"estimatedPrice":-1}`},
		{name: "unknown field", body: `{"rating":5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out := doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-001"), "head-token", tc.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, "invalidInput", out.Error.Errors[0].Reason)
		})
	}
}

func TestReportRoutes_UnknownPlayer(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-404"), "head-token", `{}`)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "notFound", out.Error.Errors[0].Reason)
}

func TestReportRoutes_UpdateAndVisibility(t *testing.T) {
	router := newTestRouter(t)

	code, created := doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-002"), "head-token",
		`{"ratings":{"overall":7},"notes":"First look"}`)
	require.Equal(t, http.StatusCreated, code)
	reportPath := "/v1/reports/" + created.Data.ID

	code, updated := doJSONRequest[reportDTO](t, router, http.MethodPut, reportPath, "head-token",
		`{"ratings":{"overall":9},"notes":"Second look","recommendation":"follow"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 9, updated.Data.Ratings.Overall)
	require.Equal(t, "Second look", updated.Data.Notes)
	require.Equal(t, memory.UserIDHeadScout, updated.Data.UpdatedBy)

	code, got := doJSONRequest[reportDTO](t, router, http.MethodGet, reportPath, "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "follow", got.Data.Recommendation)

	code, list := doJSONRequest[[]reportDTO](t, router, http.MethodGet, "/v1/reports", "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Data, 1)

	// Scouts only see the reports they wrote.
	code, list = doJSONRequest[[]reportDTO](t, router, http.MethodGet, "/v1/reports", "scout-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, list.Data)

	code, out := doJSONRequest[reportDTO](t, router, http.MethodGet, reportPath, "scout-token", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "notFound", out.Error.Errors[0].Reason)

	code, _ = doJSONRequest[reportDTO](t, router, http.MethodPost, playerReportsPath("mp-002"), "viewer-token", `{}`)
	require.Equal(t, http.StatusForbidden, code)
}
