package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scouting-board/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data  T                `json:"data"`
	Error *googleErrorBody `json:"error"`
}

func doJSONRequest[T any](t *testing.T, router http.Handler, method, path, token, body string) (int, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func marketPlayersPath() string {
	return "/v1/markets/" + memory.MarketIDSummer + "/players"
}

func TestMarketRoutes_CreateReturns201(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketDTO](t, router, http.MethodPost, "/v1/markets", "head-token",
		`{"name":"Winter window 2027","startDate":"2027-01-01","endDate":"2027-01-31"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Nil(t, out.Error)
	require.Equal(t, "Winter window 2027", out.Data.Name)
	require.Equal(t, "2027-01-01", out.Data.StartDate)
	require.Equal(t, "2027-01-31", out.Data.EndDate)
	require.Equal(t, memory.ClubIDDemo, out.Data.ClubID)
}

func TestMarketRoutes_RejectsMalformedDates(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketDTO](t, router, http.MethodPost, "/v1/markets", "head-token",
		`{"name":"Winter","startDate":"2027/01/01"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "invalidInput", out.Error.Errors[0].Reason)
	require.Contains(t, out.Error.Message, "startDate must be YYYY-MM-DD")

	code, out = doJSONRequest[marketDTO](t, router, http.MethodPatch, "/v1/markets/"+memory.MarketIDSummer, "head-token",
		`{"endDate":"31-08-2026"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, out.Error.Message, "endDate must be YYYY-MM-DD")
}

func TestMarketRoutes_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketDTO](t, router, http.MethodPost, "/v1/markets", "head-token",
		`{"name":"Winter","budget":1000}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "invalidInput", out.Error.Errors[0].Reason)
}

func TestMarketRoutes_AddPlayerNeedsProviderIDOrName(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketPlayerDTO](t, router, http.MethodPost, marketPlayersPath(), "head-token",
		`{"position":"CB","priority":"alta"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "invalidInput", out.Error.Errors[0].Reason)
	require.Contains(t, out.Error.Message, "required_without")

	code, out = doJSONRequest[marketPlayerDTO](t, router, http.MethodPost, marketPlayersPath(), "head-token",
		`{"type":"manual","name":"Academy Prospect","position":"CM","age":17}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "Academy Prospect", out.Data.Name)
	require.Equal(t, "manual", out.Data.Type)
	require.Equal(t, memory.MarketIDSummer, out.Data.MarketID)
}

func TestMarketRoutes_DuplicateProviderPlayer(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketPlayerDTO](t, router, http.MethodPost, marketPlayersPath(), "head-token",
		`{"providerId":"703544"}`)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "duplicatePlayer", out.Error.Errors[0].Reason)
	require.Equal(t, "ALREADY_EXISTS", out.Error.Status)
}

func TestMarketRoutes_RemovePlayer(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[map[string]string](t, router, http.MethodDelete, marketPlayersPath()+"/mp-005", "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "mp-005", out.Data["id"])

	code, roster := doJSONRequest[[]marketPlayerDTO](t, router, http.MethodGet, marketPlayersPath(), "head-token", "")
	require.Equal(t, http.StatusOK, code)
	for _, item := range roster.Data {
		require.NotEqual(t, "mp-005", item.ID)
	}

	code, out = doJSONRequest[map[string]string](t, router, http.MethodDelete, marketPlayersPath()+"/mp-005", "head-token", "")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "notFound", out.Error.Errors[0].Reason)
}

func TestMarketRoutes_ViewerCannotWrite(t *testing.T) {
	router := newTestRouter(t)

	code, out := doJSONRequest[marketDTO](t, router, http.MethodPost, "/v1/markets", "viewer-token", `{"name":"Winter"}`)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "forbidden", out.Error.Errors[0].Reason)

	code, _ = doJSONRequest[map[string]string](t, router, http.MethodDelete, marketPlayersPath()+"/mp-001", "viewer-token", "")
	require.Equal(t, http.StatusForbidden, code)
}
