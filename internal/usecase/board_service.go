package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/domain/user"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
)

const (
	boardResultOK       = "ok"
	boardResultRejected = "rejected"
	boardResultError    = "error"

	// DefaultBoardIdleTTL bounds how long a mounted board is trusted without
	// going back to storage.
	DefaultBoardIdleTTL = 5 * time.Minute

	persistNotice = "changes are kept on the board but could not be saved, retry persisting the formation"
)

// BoardMetrics records board operations and persistence outcomes.
type BoardMetrics interface {
	ObserveBoardOperation(operation, result string)
	ObservePersist(result string, duration time.Duration)
}

type nopBoardMetrics struct{}

func (nopBoardMetrics) ObserveBoardOperation(string, string)   {}
func (nopBoardMetrics) ObservePersist(string, time.Duration) {}

type rosterEnricher interface {
	EnrichRoster(ctx context.Context, roster []player.Summary) []player.Summary
}

type SlotView struct {
	Slot      formation.Slot
	Occupants []player.Summary
}

type BoardView struct {
	MarketID  string
	Mode      formation.Mode
	Layout    string
	Slots     []SlotView
	Available []player.Summary
	Persisted bool
	Notice    string
}

type LayoutView struct {
	Name  string
	Slots []formation.Slot
}

// MoveSlotInput carries exactly one of: absolute coordinates, an offset, or a
// pointer position inside a pitch rectangle.
type MoveSlotInput struct {
	Top       *float64
	Left      *float64
	DeltaTop  *float64
	DeltaLeft *float64
	PointerX  *float64
	PointerY  *float64
	Pitch     *formation.PitchRect
}

type mountedBoard struct {
	mu        sync.Mutex
	loaded    bool
	stale     bool
	evicted   bool
	lastUsed  time.Time
	ctrl      *formation.Controller
	roster    []player.Summary
	persisted bool
	notice    string
}

// BoardService keeps one formation board per market in memory and writes
// every change through to the snapshot store. Mounted boards are local to the
// process; an idle board is remounted from storage and eventually evicted.
type BoardService struct {
	markets  market.Repository
	players  market.PlayerRepository
	catalog  *formation.Catalog
	bridge   *formation.Bridge
	enricher rosterEnricher
	metrics  BoardMetrics
	logger   *logging.Logger
	now      func() time.Time
	idleTTL  time.Duration

	mu        sync.Mutex
	boards    map[string]*mountedBoard
	lastSweep time.Time
}

func NewBoardService(
	markets market.Repository,
	players market.PlayerRepository,
	snapshots formation.Repository,
	catalog *formation.Catalog,
	persistTimeout time.Duration,
	logger *logging.Logger,
) *BoardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BoardService{
		markets: markets,
		players: players,
		catalog: catalog,
		bridge:  formation.NewBridge(snapshots, persistTimeout),
		metrics: nopBoardMetrics{},
		logger:  logger,
		now:     time.Now,
		idleTTL: DefaultBoardIdleTTL,
		boards:  make(map[string]*mountedBoard),
	}
}

// SetIdleTTL changes how long a mounted board may go unused before it is
// reloaded from storage. Zero or less disables expiry.
func (s *BoardService) SetIdleTTL(ttl time.Duration) {
	s.idleTTL = ttl
}

func (s *BoardService) SetEnricher(enricher rosterEnricher) {
	s.enricher = enricher
}

func (s *BoardService) SetMetrics(metrics BoardMetrics) {
	if metrics == nil {
		metrics = nopBoardMetrics{}
	}
	s.metrics = metrics
}

func (s *BoardService) Layouts() []LayoutView {
	names := s.catalog.Names()
	out := make([]LayoutView, 0, len(names))
	for _, name := range names {
		slots, _ := s.catalog.Slots(name)
		out = append(out, LayoutView{Name: name, Slots: slots})
	}
	return out
}

func (s *BoardService) View(ctx context.Context, principal user.Principal, marketID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.View", marketAttr(marketID))
	defer span.End()

	return s.withBoard(ctx, principal, marketID, false, "view", func(context.Context, *mountedBoard) (bool, error) {
		return false, nil
	})
}

func (s *BoardService) SetMode(ctx context.Context, principal user.Principal, marketID, mode string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.SetMode", marketAttr(marketID))
	defer span.End()

	parsed, err := formation.ParseMode(mode)
	if err != nil {
		return BoardView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.withBoard(ctx, principal, marketID, true, "set_mode", func(_ context.Context, mb *mountedBoard) (bool, error) {
		mb.ctrl.CancelDrag()
		return mb.ctrl.Board().SetMode(parsed)
	})
}

func (s *BoardService) SelectLayout(ctx context.Context, principal user.Principal, marketID, layout string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.SelectLayout", marketAttr(marketID))
	defer span.End()

	layout = strings.TrimSpace(layout)
	if !s.catalog.Has(layout) {
		return BoardView{}, fmt.Errorf("%w: %q", formation.ErrUnknownLayout, layout)
	}
	return s.withBoard(ctx, principal, marketID, true, "select_layout", func(_ context.Context, mb *mountedBoard) (bool, error) {
		mb.ctrl.Board().Initialize(layout)
		return true, nil
	})
}

func (s *BoardService) AssignPlayer(ctx context.Context, principal user.Principal, marketID, playerID, slotID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.AssignPlayer", marketAttr(marketID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	slotID = strings.TrimSpace(slotID)
	return s.withBoard(ctx, principal, marketID, true, "assign", func(ctx context.Context, mb *mountedBoard) (bool, error) {
		if !rosterContains(mb.roster, playerID) {
			// The player may have been shortlisted through another instance.
			if err := s.mount(ctx, marketID, mb); err != nil {
				return false, err
			}
			if !rosterContains(mb.roster, playerID) {
				return false, fmt.Errorf("%w: player=%s is not on the market roster", ErrNotFound, playerID)
			}
		}
		if err := mb.ctrl.BeginPlayerDrag(playerID); err != nil {
			return false, err
		}
		if _, err := mb.ctrl.DropOnSlot(slotID); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *BoardService) UnassignPlayer(ctx context.Context, principal user.Principal, marketID, playerID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.UnassignPlayer", marketAttr(marketID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	return s.withBoard(ctx, principal, marketID, true, "unassign", func(_ context.Context, mb *mountedBoard) (bool, error) {
		return mb.ctrl.RemovePlayer(playerID)
	})
}

func (s *BoardService) AddSlot(ctx context.Context, principal user.Principal, marketID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.AddSlot", marketAttr(marketID))
	defer span.End()

	return s.withBoard(ctx, principal, marketID, true, "add_slot", func(_ context.Context, mb *mountedBoard) (bool, error) {
		if _, err := mb.ctrl.Board().AddSlot(); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *BoardService) RemoveSlot(ctx context.Context, principal user.Principal, marketID, slotID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.RemoveSlot", marketAttr(marketID))
	defer span.End()

	slotID = strings.TrimSpace(slotID)
	return s.withBoard(ctx, principal, marketID, true, "remove_slot", func(_ context.Context, mb *mountedBoard) (bool, error) {
		if _, err := mb.ctrl.Board().RemoveSlot(slotID); err != nil {
			return false, err
		}
		return true, nil
	})
}

// MoveSlot performs a whole slot drag: pick up, move, release.
func (s *BoardService) MoveSlot(ctx context.Context, principal user.Principal, marketID, slotID string, input MoveSlotInput) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.MoveSlot", marketAttr(marketID))
	defer span.End()

	if err := validateMoveSlotInput(input); err != nil {
		return BoardView{}, err
	}
	slotID = strings.TrimSpace(slotID)
	return s.withBoard(ctx, principal, marketID, true, "move_slot", func(_ context.Context, mb *mountedBoard) (bool, error) {
		ctrl := mb.ctrl
		if err := ctrl.BeginSlotDrag(slotID); err != nil {
			return false, err
		}

		var err error
		switch {
		case input.Top != nil:
			_, err = ctrl.DragSlotTo(*input.Top, *input.Left)
		case input.DeltaTop != nil || input.DeltaLeft != nil:
			_, err = ctrl.DragSlotBy(floatOrZero(input.DeltaTop), floatOrZero(input.DeltaLeft))
		default:
			_, err = ctrl.DragSlotToPointer(*input.Pitch, *input.PointerX, *input.PointerY)
		}
		if err != nil {
			ctrl.CancelDrag()
			return false, err
		}
		if _, err := ctrl.EndSlotDrag(); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Persist writes the current board again, used to retry after a failed save.
func (s *BoardService) Persist(ctx context.Context, principal user.Principal, marketID string) (BoardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BoardService.Persist", marketAttr(marketID))
	defer span.End()

	return s.withBoard(ctx, principal, marketID, true, "persist", func(context.Context, *mountedBoard) (bool, error) {
		return true, nil
	})
}

// RosterChanged marks a mounted board for reconciliation on its next access.
func (s *BoardService) RosterChanged(_ context.Context, marketID string) {
	s.mu.Lock()
	mb, ok := s.boards[marketID]
	s.mu.Unlock()
	if !ok {
		return
	}

	mb.mu.Lock()
	mb.stale = true
	mb.mu.Unlock()
}

func (s *BoardService) withBoard(
	ctx context.Context,
	principal user.Principal,
	marketID string,
	write bool,
	operation string,
	fn func(context.Context, *mountedBoard) (bool, error),
) (BoardView, error) {
	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, write); err != nil {
		return BoardView{}, err
	}
	marketID = strings.TrimSpace(marketID)

	mb := s.lockBoard(marketID)
	defer mb.mu.Unlock()

	now := s.now()
	if mb.loaded && s.expired(mb, now) {
		// Start over from storage; the display mode survives the remount.
		mb.loaded = false
	}
	mb.lastUsed = now

	if !mb.loaded || mb.stale {
		if err := s.mount(ctx, marketID, mb); err != nil {
			s.metrics.ObserveBoardOperation(operation, boardResultError)
			return BoardView{}, err
		}
	}

	changed, err := fn(ctx, mb)
	if err != nil {
		s.metrics.ObserveBoardOperation(operation, classifyBoardError(err))
		return BoardView{}, err
	}
	if changed {
		s.persist(ctx, marketID, mb)
	}

	s.metrics.ObserveBoardOperation(operation, boardResultOK)
	return s.view(marketID, mb), nil
}

// lockBoard returns the locked board of a market, skipping boards that were
// evicted between the map lookup and the lock.
func (s *BoardService) lockBoard(marketID string) *mountedBoard {
	for {
		mb := s.board(marketID)
		mb.mu.Lock()
		if !mb.evicted {
			return mb
		}
		mb.mu.Unlock()
	}
}

func (s *BoardService) board(marketID string) *mountedBoard {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	mb, ok := s.boards[marketID]
	if !ok {
		mb = &mountedBoard{persisted: true}
		s.boards[marketID] = mb
	}
	return mb
}

// sweepLocked evicts idle boards at most once per idle TTL. Boards that are
// busy or hold unsaved changes stay mounted. s.mu must be held.
func (s *BoardService) sweepLocked() {
	now := s.now()
	if s.idleTTL <= 0 || now.Sub(s.lastSweep) < s.idleTTL {
		return
	}
	s.lastSweep = now

	for marketID, mb := range s.boards {
		if !mb.mu.TryLock() {
			continue
		}
		if s.expired(mb, now) {
			mb.evicted = true
			delete(s.boards, marketID)
		}
		mb.mu.Unlock()
	}
}

// expired reports whether a board sat idle past the TTL. A board whose last
// save failed never expires so the retry keeps the user's changes. mb.mu must
// be held.
func (s *BoardService) expired(mb *mountedBoard, now time.Time) bool {
	return s.idleTTL > 0 && mb.persisted && !mb.lastUsed.IsZero() && now.Sub(mb.lastUsed) > s.idleTTL
}

// mount loads the roster and the stored snapshot concurrently, then
// reconciles. A board that is already loaded only reconciles against the
// fresh roster and keeps its slots and mode.
func (s *BoardService) mount(ctx context.Context, marketID string, mb *mountedBoard) error {
	var (
		entries []market.Player
		stored  formation.Snapshot
		exists  bool
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		entries, err = s.players.ListByMarket(ctx, marketID)
		if err != nil {
			return fmt.Errorf("list market players: %w", err)
		}
		return nil
	})
	if !mb.loaded {
		p.Go(func(ctx context.Context) error {
			var err error
			stored, exists, err = s.bridge.Fetch(ctx, marketID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return fmt.Errorf("mount formation board: %w", err)
	}

	roster := market.Roster(entries)
	if s.enricher != nil {
		roster = s.enricher.EnrichRoster(ctx, roster)
	}
	ids := player.IDs(roster)

	if !mb.loaded {
		board := formation.NewBoard(marketID, s.catalog)
		if mb.ctrl != nil {
			_, _ = board.SetMode(mb.ctrl.Board().Mode())
		}
		if exists {
			s.restore(ctx, board, stored.Reconcile(ids))
		}
		mb.ctrl = formation.NewController(board)
		mb.loaded = true
	} else {
		board := mb.ctrl.Board()
		before := len(board.Snapshot(time.Time{}).AssignedPlayerIDs())
		reconciled := board.Snapshot(s.now().UTC()).Reconcile(ids)
		s.restore(ctx, board, reconciled)
		if len(reconciled.AssignedPlayerIDs()) != before {
			s.persist(ctx, marketID, mb)
		}
	}

	mb.roster = roster
	mb.stale = false
	return nil
}

func (s *BoardService) restore(ctx context.Context, board *formation.Board, snapshot formation.Snapshot) {
	if err := board.Restore(snapshot); err != nil {
		s.logger.WarnContext(ctx, "formation snapshot assignments rejected on restore",
			"market_id", board.MarketID(),
			"layout", snapshot.Layout,
			"error", err,
		)
	}
}

func (s *BoardService) persist(ctx context.Context, marketID string, mb *mountedBoard) {
	start := s.now()
	err := s.bridge.Save(ctx, mb.ctrl.Board().Snapshot(start.UTC()))
	duration := s.now().Sub(start)

	if err != nil {
		s.metrics.ObservePersist("failure", duration)
		s.logger.WarnContext(ctx, "persist formation snapshot failed",
			"market_id", marketID,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		mb.persisted = false
		mb.notice = persistNotice
		return
	}

	s.metrics.ObservePersist("success", duration)
	mb.persisted = true
	mb.notice = ""
}

func (s *BoardService) view(marketID string, mb *mountedBoard) BoardView {
	board := mb.ctrl.Board()
	byID := make(map[string]player.Summary, len(mb.roster))
	for _, item := range mb.roster {
		byID[item.ID] = item
	}

	slots := board.Slots()
	out := BoardView{
		MarketID:  marketID,
		Mode:      board.Mode(),
		Layout:    board.Layout(),
		Slots:     make([]SlotView, 0, len(slots)),
		Available: board.UnassignedRoster(mb.roster),
		Persisted: mb.persisted,
		Notice:    mb.notice,
	}
	for _, slot := range slots {
		ids := board.OccupantsOf(slot.ID)
		occupants := make([]player.Summary, 0, len(ids))
		for _, id := range ids {
			item, ok := byID[id]
			if !ok {
				item = player.Summary{ID: id}
			}
			occupants = append(occupants, item)
		}
		out.Slots = append(out.Slots, SlotView{Slot: slot, Occupants: occupants})
	}
	return out
}

func classifyBoardError(err error) string {
	if isRejection(err) {
		return boardResultRejected
	}
	return boardResultError
}

func validateMoveSlotInput(input MoveSlotInput) error {
	forms := 0
	if input.Top != nil || input.Left != nil {
		if input.Top == nil || input.Left == nil {
			return fmt.Errorf("%w: top and left must be given together", ErrInvalidInput)
		}
		forms++
	}
	if input.DeltaTop != nil || input.DeltaLeft != nil {
		forms++
	}
	if input.PointerX != nil || input.PointerY != nil || input.Pitch != nil {
		if input.PointerX == nil || input.PointerY == nil || input.Pitch == nil {
			return fmt.Errorf("%w: pointer moves need x, y and the pitch rectangle", ErrInvalidInput)
		}
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("%w: give exactly one of absolute position, delta or pointer", ErrInvalidInput)
	}
	return nil
}

func rosterContains(roster []player.Summary, playerID string) bool {
	for _, item := range roster {
		if item.ID == playerID {
			return true
		}
	}
	return false
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
