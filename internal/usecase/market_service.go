package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/domain/user"
	"github.com/riskibarqy/scouting-board/internal/platform/id"
)

const (
	marketNameMaxLength = 120
	marketNotesMaxLen   = 4000
)

type CreateMarketInput struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
	Status    string
}

type UpdateMarketInput struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
	Status    *string
}

type AddMarketPlayerInput struct {
	ProviderID  string
	Type        string
	Name        string
	Position    string
	Age         int
	CurrentTeam string
	Priority    string
	Status      string
	Notes       string
}

type UpdateMarketPlayerInput struct {
	Position    *string
	CurrentTeam *string
	Priority    *string
	Status      *string
	Notes       *string
}

// RosterListener is told when a market's roster changed.
type RosterListener interface {
	RosterChanged(ctx context.Context, marketID string)
}

type MarketService struct {
	markets  market.Repository
	players  market.PlayerRepository
	ids      id.Generator
	listener RosterListener
	now      func() time.Time
}

func NewMarketService(markets market.Repository, players market.PlayerRepository, ids id.Generator) *MarketService {
	return &MarketService{
		markets: markets,
		players: players,
		ids:     ids,
		now:     time.Now,
	}
}

func (s *MarketService) SetRosterListener(listener RosterListener) {
	s.listener = listener
}

func (s *MarketService) List(ctx context.Context, principal user.Principal) ([]market.Market, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.List")
	defer span.End()

	if err := requireClub(principal); err != nil {
		return nil, err
	}

	var (
		items []market.Market
		err   error
	)
	if principal.SeesWholeClub() {
		items, err = s.markets.ListByClub(ctx, principal.ClubID)
	} else {
		items, err = s.markets.ListByCreator(ctx, principal.ClubID, principal.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}
	return items, nil
}

func (s *MarketService) Get(ctx context.Context, principal user.Principal, marketID string) (market.Market, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Get", marketAttr(marketID))
	defer span.End()

	return authorizeMarket(ctx, s.markets, principal, marketID, false)
}

func (s *MarketService) Create(ctx context.Context, principal user.Principal, input CreateMarketInput) (market.Market, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Create")
	defer span.End()

	if err := requireClub(principal); err != nil {
		return market.Market{}, err
	}
	if !principal.CanEdit() {
		return market.Market{}, fmt.Errorf("%w: role cannot create markets", ErrForbidden)
	}

	name, err := validateMarketName(input.Name)
	if err != nil {
		return market.Market{}, err
	}
	status, ok := market.ParseStatus(input.Status)
	if !ok {
		return market.Market{}, fmt.Errorf("%w: unknown market status %q", ErrInvalidInput, input.Status)
	}
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return market.Market{}, err
	}
	notes := strings.TrimSpace(input.Notes)
	if len(notes) > marketNotesMaxLen {
		return market.Market{}, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, marketNotesMaxLen)
	}

	marketID, err := s.ids.NewID()
	if err != nil {
		return market.Market{}, fmt.Errorf("generate market id: %w", err)
	}

	now := s.now().UTC()
	item := market.Market{
		ID:        marketID,
		ClubID:    principal.ClubID,
		Name:      name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Notes:     notes,
		Status:    status,
		CreatedBy: principal.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.markets.Create(ctx, item); err != nil {
		return market.Market{}, fmt.Errorf("create market: %w", err)
	}
	return item, nil
}

func (s *MarketService) Update(ctx context.Context, principal user.Principal, marketID string, input UpdateMarketInput) (market.Market, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Update", marketAttr(marketID))
	defer span.End()

	item, err := authorizeMarket(ctx, s.markets, principal, marketID, true)
	if err != nil {
		return market.Market{}, err
	}

	if input.Name != nil {
		if item.Name, err = validateMarketName(*input.Name); err != nil {
			return market.Market{}, err
		}
	}
	if input.Status != nil {
		status, ok := market.ParseStatus(*input.Status)
		if !ok {
			return market.Market{}, fmt.Errorf("%w: unknown market status %q", ErrInvalidInput, *input.Status)
		}
		item.Status = status
	}
	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		if len(notes) > marketNotesMaxLen {
			return market.Market{}, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, marketNotesMaxLen)
		}
		item.Notes = notes
	}
	if input.StartDate != nil {
		item.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		item.EndDate = input.EndDate
	}
	if err := validateWindow(item.StartDate, item.EndDate); err != nil {
		return market.Market{}, err
	}

	item.UpdatedAt = s.now().UTC()
	if err := s.markets.Update(ctx, item); err != nil {
		return market.Market{}, fmt.Errorf("update market: %w", err)
	}
	return item, nil
}

// Roster returns every market player, discarded ones included.
func (s *MarketService) Roster(ctx context.Context, principal user.Principal, marketID string) ([]market.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Roster", marketAttr(marketID))
	defer span.End()

	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, false); err != nil {
		return nil, err
	}
	items, err := s.players.ListByMarket(ctx, marketID)
	if err != nil {
		return nil, fmt.Errorf("list market players: %w", err)
	}
	return items, nil
}

func (s *MarketService) AddPlayer(ctx context.Context, principal user.Principal, marketID string, input AddMarketPlayerInput) (market.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.AddPlayer", marketAttr(marketID))
	defer span.End()

	item, err := authorizeMarket(ctx, s.markets, principal, marketID, true)
	if err != nil {
		return market.Player{}, err
	}
	if item.Status == market.StatusClosed {
		return market.Player{}, fmt.Errorf("%w: market is closed", ErrInvalidInput)
	}

	entry, err := s.buildPlayer(input)
	if err != nil {
		return market.Player{}, err
	}

	existing, err := s.players.ListByMarket(ctx, marketID)
	if err != nil {
		return market.Player{}, fmt.Errorf("list market players: %w", err)
	}
	for _, other := range existing {
		if entry.ProviderID != "" && other.ProviderID == entry.ProviderID {
			return market.Player{}, fmt.Errorf("%w: provider player %s: %w", ErrInvalidInput, entry.ProviderID, market.ErrDuplicatePlayer)
		}
	}

	entry.ID, err = s.ids.NewID()
	if err != nil {
		return market.Player{}, fmt.Errorf("generate market player id: %w", err)
	}
	now := s.now().UTC()
	entry.MarketID = marketID
	entry.AddedBy = principal.UserID
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if err := s.players.Create(ctx, entry); err != nil {
		if errors.Is(err, market.ErrDuplicatePlayer) {
			return market.Player{}, fmt.Errorf("%w: provider player %s: %w", ErrInvalidInput, entry.ProviderID, market.ErrDuplicatePlayer)
		}
		return market.Player{}, fmt.Errorf("create market player: %w", err)
	}
	s.notifyRoster(ctx, marketID)
	return entry, nil
}

func (s *MarketService) UpdatePlayer(ctx context.Context, principal user.Principal, marketID, playerID string, input UpdateMarketPlayerInput) (market.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.UpdatePlayer", marketAttr(marketID))
	defer span.End()

	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, true); err != nil {
		return market.Player{}, err
	}
	entry, exists, err := s.players.GetByID(ctx, marketID, strings.TrimSpace(playerID))
	if err != nil {
		return market.Player{}, fmt.Errorf("get market player: %w", err)
	}
	if !exists {
		return market.Player{}, fmt.Errorf("%w: market player=%s", ErrNotFound, playerID)
	}

	if input.Priority != nil {
		priority, ok := player.ParsePriority(*input.Priority)
		if !ok {
			return market.Player{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *input.Priority)
		}
		entry.Priority = priority
	}
	if input.Status != nil {
		status, ok := market.ParsePlayerStatus(*input.Status)
		if !ok {
			return market.Player{}, fmt.Errorf("%w: unknown player status %q", ErrInvalidInput, *input.Status)
		}
		entry.Status = status
	}
	if input.Position != nil {
		entry.Position = strings.TrimSpace(*input.Position)
	}
	if input.CurrentTeam != nil {
		entry.CurrentTeam = strings.TrimSpace(*input.CurrentTeam)
	}
	if input.Notes != nil {
		entry.Notes = strings.TrimSpace(*input.Notes)
	}

	entry.UpdatedAt = s.now().UTC()
	if err := s.players.Update(ctx, entry); err != nil {
		return market.Player{}, fmt.Errorf("update market player: %w", err)
	}
	s.notifyRoster(ctx, marketID)
	return entry, nil
}

func (s *MarketService) RemovePlayer(ctx context.Context, principal user.Principal, marketID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.RemovePlayer", marketAttr(marketID))
	defer span.End()

	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, true); err != nil {
		return err
	}
	deleted, err := s.players.Delete(ctx, marketID, strings.TrimSpace(playerID))
	if err != nil {
		return fmt.Errorf("delete market player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: market player=%s", ErrNotFound, playerID)
	}
	s.notifyRoster(ctx, marketID)
	return nil
}

func (s *MarketService) buildPlayer(input AddMarketPlayerInput) (market.Player, error) {
	entry := market.Player{
		ProviderID:  strings.TrimSpace(input.ProviderID),
		Name:        strings.TrimSpace(input.Name),
		Position:    strings.TrimSpace(input.Position),
		CurrentTeam: strings.TrimSpace(input.CurrentTeam),
		Notes:       strings.TrimSpace(input.Notes),
		Age:         input.Age,
	}

	switch market.PlayerType(strings.ToLower(strings.TrimSpace(input.Type))) {
	case market.PlayerTypeManual:
		entry.Type = market.PlayerTypeManual
	case market.PlayerTypeProvider, "":
		entry.Type = market.PlayerTypeProvider
	default:
		return market.Player{}, fmt.Errorf("%w: unknown player type %q", ErrInvalidInput, input.Type)
	}

	if entry.Type == market.PlayerTypeProvider && entry.ProviderID == "" {
		return market.Player{}, fmt.Errorf("%w: player_id is required for provider players", ErrInvalidInput)
	}
	if entry.Type == market.PlayerTypeManual && entry.Name == "" {
		return market.Player{}, fmt.Errorf("%w: player_name is required for manual players", ErrInvalidInput)
	}
	if entry.Age < 0 || entry.Age > 60 {
		return market.Player{}, fmt.Errorf("%w: age out of range", ErrInvalidInput)
	}

	priority, ok := player.ParsePriority(input.Priority)
	if !ok {
		return market.Player{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, input.Priority)
	}
	entry.Priority = priority

	status, ok := market.ParsePlayerStatus(input.Status)
	if !ok {
		return market.Player{}, fmt.Errorf("%w: unknown player status %q", ErrInvalidInput, input.Status)
	}
	entry.Status = status
	return entry, nil
}

func (s *MarketService) notifyRoster(ctx context.Context, marketID string) {
	if s.listener != nil {
		s.listener.RosterChanged(ctx, marketID)
	}
}

// authorizeMarket loads a market the principal may see. Markets of other
// clubs are reported as missing.
func authorizeMarket(ctx context.Context, repo market.Repository, principal user.Principal, marketID string, write bool) (market.Market, error) {
	if err := requireClub(principal); err != nil {
		return market.Market{}, err
	}
	marketID = strings.TrimSpace(marketID)
	if marketID == "" {
		return market.Market{}, fmt.Errorf("%w: market_id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, marketID)
	if err != nil {
		return market.Market{}, fmt.Errorf("get market: %w", err)
	}
	if !exists || item.ClubID != principal.ClubID {
		return market.Market{}, fmt.Errorf("%w: market=%s", ErrNotFound, marketID)
	}
	if !principal.SeesWholeClub() && item.CreatedBy != principal.UserID {
		return market.Market{}, fmt.Errorf("%w: market=%s belongs to another scout", ErrForbidden, marketID)
	}
	if write && !principal.CanEdit() {
		return market.Market{}, fmt.Errorf("%w: role cannot modify markets", ErrForbidden)
	}
	return item, nil
}

func requireClub(principal user.Principal) error {
	if strings.TrimSpace(principal.UserID) == "" {
		return fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}
	if strings.TrimSpace(principal.ClubID) == "" {
		return fmt.Errorf("%w: user is not attached to a club", ErrForbidden)
	}
	return nil
}

func validateMarketName(v string) (string, error) {
	name := strings.TrimSpace(v)
	if name == "" {
		return "", fmt.Errorf("%w: market name is required", ErrInvalidInput)
	}
	if len(name) > marketNameMaxLength {
		return "", fmt.Errorf("%w: market name must be at most %d characters", ErrInvalidInput, marketNameMaxLength)
	}
	return name, nil
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}
	return nil
}
