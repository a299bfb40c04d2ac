package httpapi

import (
	"net/http"

	"github.com/riskibarqy/scouting-board/internal/domain/user"
	"github.com/riskibarqy/scouting-board/internal/usecase"
)

type boardAction func(principal user.Principal, marketID string) (usecase.BoardView, error)

func (h *Handler) ListLayouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLayouts")
	defer span.End()

	layouts := h.boardService.Layouts()
	out := make([]layoutDTO, 0, len(layouts))
	for _, item := range layouts {
		out = append(out, layoutToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	h.runBoardAction(w, r.WithContext(ctx), "get board", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.View(ctx, principal, marketID)
	})
}

func (h *Handler) SetBoardMode(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetBoardMode")
	defer span.End()

	var req setBoardModeRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runBoardAction(w, r.WithContext(ctx), "set board mode", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.SetMode(ctx, principal, marketID, req.Mode)
	})
}

func (h *Handler) SelectLayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectLayout")
	defer span.End()

	var req selectLayoutRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runBoardAction(w, r.WithContext(ctx), "select layout", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.SelectLayout(ctx, principal, marketID, req.Layout)
	})
}

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayer")
	defer span.End()

	var req assignPlayerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.runBoardAction(w, r.WithContext(ctx), "assign player", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.AssignPlayer(ctx, principal, marketID, req.PlayerID, req.SlotID)
	})
}

func (h *Handler) UnassignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnassignPlayer")
	defer span.End()

	playerID := pathParam(r, "playerID")
	h.runBoardAction(w, r.WithContext(ctx), "unassign player", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.UnassignPlayer(ctx, principal, marketID, playerID)
	})
}

func (h *Handler) AddSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSlot")
	defer span.End()

	h.runBoardActionWithStatus(w, r.WithContext(ctx), http.StatusCreated, "add slot", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.AddSlot(ctx, principal, marketID)
	})
}

func (h *Handler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSlot")
	defer span.End()

	slotID := pathParam(r, "slotID")
	h.runBoardAction(w, r.WithContext(ctx), "remove slot", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.RemoveSlot(ctx, principal, marketID, slotID)
	})
}

func (h *Handler) MoveSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveSlot")
	defer span.End()

	var req moveSlotRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	slotID := pathParam(r, "slotID")
	h.runBoardAction(w, r.WithContext(ctx), "move slot", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.MoveSlot(ctx, principal, marketID, slotID, req.toInput())
	})
}

func (h *Handler) PersistBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PersistBoard")
	defer span.End()

	h.runBoardAction(w, r.WithContext(ctx), "persist board", func(principal user.Principal, marketID string) (usecase.BoardView, error) {
		return h.boardService.Persist(ctx, principal, marketID)
	})
}

func (h *Handler) runBoardAction(w http.ResponseWriter, r *http.Request, name string, action boardAction) {
	h.runBoardActionWithStatus(w, r, http.StatusOK, name, action)
}

// runBoardActionWithStatus renders the board after an action. A failed
// write-through still answers with the board and its notice.
func (h *Handler) runBoardActionWithStatus(w http.ResponseWriter, r *http.Request, status int, name string, action boardAction) {
	ctx := r.Context()
	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	marketID := pathParam(r, "marketID")
	view, err := action(principal, marketID)
	if err != nil {
		h.logger.WarnContext(ctx, name+" failed", "market_id", marketID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !view.Persisted {
		h.logger.WarnContext(ctx, name+" kept unsaved changes", "market_id", marketID)
	}

	writeSuccess(ctx, w, status, boardToDTO(view))
}
