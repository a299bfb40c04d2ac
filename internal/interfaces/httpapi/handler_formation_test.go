package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/user"
	"github.com/riskibarqy/scouting-board/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scouting-board/internal/platform/id"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
	"github.com/riskibarqy/scouting-board/internal/usecase"
	"github.com/stretchr/testify/require"
)

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	principal, ok := v[token]
	if !ok {
		return user.Principal{}, usecase.ErrUnauthorized
	}
	return principal, nil
}

type boardEnvelope struct {
	Data  boardDTO         `json:"data"`
	Error *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	marketRepo := memory.NewMarketRepository(memory.SeedMarkets())
	playerRepo := memory.NewMarketPlayerRepository(memory.SeedMarketPlayers())
	catalog, err := formation.NewCatalog(formation.DefaultCapacityRule())
	require.NoError(t, err)

	logger := logging.NewNop()
	boards := usecase.NewBoardService(marketRepo, playerRepo, memory.NewFormationRepository(), catalog, time.Second, logger)
	markets := usecase.NewMarketService(marketRepo, playerRepo, id.NewSequence("mp-new"))
	markets.SetRosterListener(boards)
	details := usecase.NewPlayerDetailService(nil, nil, 1, logger)
	reports := usecase.NewReportService(marketRepo, playerRepo, memory.NewReportRepository(), id.NewSequence("rep"))

	verifier := staticVerifier{
		"head-token":   {UserID: memory.UserIDHeadScout, ClubID: memory.ClubIDDemo, Roles: []user.Role{user.RoleHeadScout}},
		"viewer-token": {UserID: "user-viewer", ClubID: memory.ClubIDDemo, Roles: []user.Role{user.RoleViewer}},
		"scout-token":  {UserID: memory.UserIDScout, ClubID: memory.ClubIDDemo, Roles: []user.Role{user.RoleScout}},
	}
	return NewRouter(NewHandler(markets, boards, details, reports, logger), verifier, logger, false, nil, nil)
}

func doBoardRequest(t *testing.T, router http.Handler, method, path, token, body string) (int, boardEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out boardEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func boardPath(suffix string) string {
	return "/v1/markets/" + memory.MarketIDSummer + "/formation" + suffix
}

func TestFormationRoutes_AssignAndSlotFull(t *testing.T) {
	router := newTestRouter(t)

	code, out := doBoardRequest(t, router, http.MethodPut, boardPath("/mode"), "head-token", `{"mode":"view"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "view", out.Data.Mode)

	code, out = doBoardRequest(t, router, http.MethodPost, boardPath("/assignments"), "head-token", `{"playerId":"mp-001","slotId":"GK"}`)
	require.Equal(t, http.StatusOK, code)
	require.True(t, out.Data.Persisted)
	for _, slot := range out.Data.Slots {
		if slot.ID == "GK" {
			require.Len(t, slot.Occupants, 1)
			require.Equal(t, "mp-001", slot.Occupants[0].ID)
		}
	}

	code, out = doBoardRequest(t, router, http.MethodPost, boardPath("/assignments"), "head-token", `{"playerId":"mp-002","slotId":"GK"}`)
	require.Equal(t, http.StatusConflict, code)
	require.NotNil(t, out.Error)
	require.Equal(t, "slotFull", out.Error.Errors[0].Reason)
	require.Contains(t, out.Error.Message, "max 1 player in this slot")
}

func TestFormationRoutes_DropRejectedInListMode(t *testing.T) {
	router := newTestRouter(t)

	code, out := doBoardRequest(t, router, http.MethodPost, boardPath("/assignments"), "head-token", `{"playerId":"mp-001","slotId":"GK"}`)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "boardMode", out.Error.Errors[0].Reason)
}

func TestFormationRoutes_EditSlots(t *testing.T) {
	router := newTestRouter(t)

	code, _ := doBoardRequest(t, router, http.MethodPut, boardPath("/mode"), "head-token", `{"mode":"edit"}`)
	require.Equal(t, http.StatusOK, code)

	code, out := doBoardRequest(t, router, http.MethodPost, boardPath("/slots"), "head-token", "")
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, formation.LayoutCustom, out.Data.Layout)
	require.Len(t, out.Data.Slots, 12)

	code, out = doBoardRequest(t, router, http.MethodPut, boardPath("/slots/ST/position"), "head-token", `{"top":120,"left":-4}`)
	require.Equal(t, http.StatusOK, code)
	for _, slot := range out.Data.Slots {
		if slot.ID == "ST" {
			require.Equal(t, float64(formation.MaxCoordinate), slot.Top)
			require.Equal(t, float64(formation.MinCoordinate), slot.Left)
		}
	}

	code, out = doBoardRequest(t, router, http.MethodPut, boardPath("/slots/ST/position"), "head-token", `{"top":10}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "invalidInput", out.Error.Errors[0].Reason)

	code, out = doBoardRequest(t, router, http.MethodDelete, boardPath("/slots/ST"), "head-token", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, out.Data.Slots, 11)
}

func TestFormationRoutes_ViewerCannotMutate(t *testing.T) {
	router := newTestRouter(t)

	code, out := doBoardRequest(t, router, http.MethodPut, boardPath("/layout"), "viewer-token", `{"layout":"4-4-2"}`)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "forbidden", out.Error.Errors[0].Reason)
}

func TestFormationRoutes_RequireBearerToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, boardPath(""), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFormationRoutes_UnknownLayout(t *testing.T) {
	router := newTestRouter(t)

	code, out := doBoardRequest(t, router, http.MethodPut, boardPath("/layout"), "head-token", `{"layout":"2-3-5"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "invalidFormation", out.Error.Errors[0].Reason)
}

func TestPlayerDetailsRoute_DisabledProvider(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/703544/details", nil)
	req.Header.Set("Authorization", "Bearer head-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
