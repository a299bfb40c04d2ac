package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/report"
	"github.com/riskibarqy/scouting-board/internal/domain/user"
	"github.com/riskibarqy/scouting-board/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
)

const reportTextMaxLen = 4000

// ReportInput carries every assessment field. Updates replace the whole
// assessment, matching how the report form is submitted.
type ReportInput struct {
	PositionPlayed  string
	MatchContext    string
	Ratings         report.Ratings
	Notes           string
	Strengths       string
	Weaknesses      string
	Recommendation  string
	MarketCondition string
	Agent           string
	Tags            []string
	EstimatedPrice  *float64
	ObservedOn      *time.Time
	Viewing         string
	Competition     string
	Opponent        string
	Result          string
	MinutesObserved int
	VideoURL        string
}

type ReportService struct {
	markets market.Repository
	players market.PlayerRepository
	reports report.Repository
	ids     id.Generator
	now     func() time.Time
}

func NewReportService(markets market.Repository, players market.PlayerRepository, reports report.Repository, ids id.Generator) *ReportService {
	return &ReportService{
		markets: markets,
		players: players,
		reports: reports,
		ids:     ids,
		now:     time.Now,
	}
}

// Create files a report against a shortlisted player. Player name and
// provider id are copied from the market entry so the report survives the
// player being removed from the shortlist later.
func (s *ReportService) Create(ctx context.Context, principal user.Principal, marketID, playerID string, input ReportInput) (report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Create", marketAttr(marketID))
	defer span.End()

	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, true); err != nil {
		return report.Report{}, err
	}
	entry, err := s.marketPlayer(ctx, marketID, playerID)
	if err != nil {
		return report.Report{}, err
	}

	item := report.Report{
		ClubID:         principal.ClubID,
		MarketID:       entry.MarketID,
		MarketPlayerID: entry.ID,
		ProviderID:     entry.ProviderID,
		PlayerName:     entry.Summary().DisplayName,
		CreatedBy:      principal.UserID,
	}
	if err := applyReportInput(&item, input); err != nil {
		return report.Report{}, err
	}

	item.ID, err = s.ids.NewID()
	if err != nil {
		return report.Report{}, fmt.Errorf("generate report id: %w", err)
	}
	now := s.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.reports.Create(ctx, item); err != nil {
		return report.Report{}, fmt.Errorf("create scout report: %w", err)
	}
	return item, nil
}

// ListForClub returns the club's reports for admins and head scouts and the
// caller's own reports for everyone else.
func (s *ReportService) ListForClub(ctx context.Context, principal user.Principal) ([]report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListForClub")
	defer span.End()

	if err := requireClub(principal); err != nil {
		return nil, err
	}
	items, err := s.reports.ListByClub(ctx, principal.ClubID)
	if err != nil {
		return nil, fmt.Errorf("list scout reports: %w", err)
	}
	return visibleReports(principal, items), nil
}

func (s *ReportService) ListForPlayer(ctx context.Context, principal user.Principal, marketID, playerID string) (report.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListForPlayer", marketAttr(marketID))
	defer span.End()

	if _, err := authorizeMarket(ctx, s.markets, principal, marketID, false); err != nil {
		return report.Summary{}, err
	}
	entry, err := s.marketPlayer(ctx, marketID, playerID)
	if err != nil {
		return report.Summary{}, err
	}
	items, err := s.reports.ListByMarketPlayer(ctx, entry.MarketID, entry.ID)
	if err != nil {
		return report.Summary{}, fmt.Errorf("list scout reports: %w", err)
	}
	return report.Summarize(items), nil
}

// ListForProvider gathers the club's reports on one provider player across
// every market it was shortlisted in.
func (s *ReportService) ListForProvider(ctx context.Context, principal user.Principal, providerID string) (report.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListForProvider",
		attribute.String("player.provider_id", strings.TrimSpace(providerID)))
	defer span.End()

	if err := requireClub(principal); err != nil {
		return report.Summary{}, err
	}
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return report.Summary{}, fmt.Errorf("%w: provider_id is required", ErrInvalidInput)
	}
	items, err := s.reports.ListByProvider(ctx, principal.ClubID, providerID)
	if err != nil {
		return report.Summary{}, fmt.Errorf("list scout reports: %w", err)
	}
	return report.Summarize(visibleReports(principal, items)), nil
}

func (s *ReportService) Get(ctx context.Context, principal user.Principal, reportID string) (report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Get")
	defer span.End()

	return s.authorizeReport(ctx, principal, reportID, false)
}

// Update replaces the assessment. Only the author, an admin or a head scout
// may change a report.
func (s *ReportService) Update(ctx context.Context, principal user.Principal, reportID string, input ReportInput) (report.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Update")
	defer span.End()

	item, err := s.authorizeReport(ctx, principal, reportID, true)
	if err != nil {
		return report.Report{}, err
	}
	if err := applyReportInput(&item, input); err != nil {
		return report.Report{}, err
	}
	item.UpdatedBy = principal.UserID
	item.UpdatedAt = s.now().UTC()

	if err := s.reports.Update(ctx, item); err != nil {
		return report.Report{}, fmt.Errorf("update scout report: %w", err)
	}
	return item, nil
}

func (s *ReportService) marketPlayer(ctx context.Context, marketID, playerID string) (market.Player, error) {
	marketID = strings.TrimSpace(marketID)
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return market.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	entry, exists, err := s.players.GetByID(ctx, marketID, playerID)
	if err != nil {
		return market.Player{}, fmt.Errorf("get market player: %w", err)
	}
	if !exists {
		return market.Player{}, fmt.Errorf("%w: market player=%s", ErrNotFound, playerID)
	}
	return entry, nil
}

// authorizeReport hides reports of other clubs and, for narrow roles, of
// other scouts behind ErrNotFound.
func (s *ReportService) authorizeReport(ctx context.Context, principal user.Principal, reportID string, write bool) (report.Report, error) {
	if err := requireClub(principal); err != nil {
		return report.Report{}, err
	}
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return report.Report{}, fmt.Errorf("%w: report_id is required", ErrInvalidInput)
	}

	item, exists, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return report.Report{}, fmt.Errorf("get scout report: %w", err)
	}
	if !exists || item.ClubID != principal.ClubID {
		return report.Report{}, fmt.Errorf("%w: report=%s", ErrNotFound, reportID)
	}
	own := item.CreatedBy == principal.UserID
	if !principal.SeesWholeClub() && !own {
		return report.Report{}, fmt.Errorf("%w: report=%s", ErrNotFound, reportID)
	}
	if write && !principal.CanEdit() {
		return report.Report{}, fmt.Errorf("%w: role cannot modify reports", ErrForbidden)
	}
	return item, nil
}

func visibleReports(principal user.Principal, items []report.Report) []report.Report {
	if principal.SeesWholeClub() {
		return items
	}
	out := make([]report.Report, 0, len(items))
	for _, item := range items {
		if item.CreatedBy == principal.UserID {
			out = append(out, item)
		}
	}
	return out
}

func applyReportInput(item *report.Report, input ReportInput) error {
	ratings, err := input.Ratings.Normalize()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	recommendation, ok := report.ParseRecommendation(input.Recommendation)
	if !ok {
		return fmt.Errorf("%w: unknown recommendation %q", ErrInvalidInput, input.Recommendation)
	}
	viewing, ok := report.ParseViewingType(input.Viewing)
	if !ok {
		return fmt.Errorf("%w: unknown viewing type %q", ErrInvalidInput, input.Viewing)
	}
	minutes, err := report.NormalizeMinutes(input.MinutesObserved)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if input.EstimatedPrice != nil && *input.EstimatedPrice < 0 {
		return fmt.Errorf("%w: estimated price must not be negative", ErrInvalidInput)
	}
	videoURL := strings.TrimSpace(input.VideoURL)
	if videoURL != "" {
		if u, err := url.Parse(videoURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: video_url must be an http(s) URL", ErrInvalidInput)
		}
	}
	for name, text := range map[string]string{
		"notes":      input.Notes,
		"strengths":  input.Strengths,
		"weaknesses": input.Weaknesses,
	} {
		if len(strings.TrimSpace(text)) > reportTextMaxLen {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, name, reportTextMaxLen)
		}
	}

	item.PositionPlayed = strings.TrimSpace(input.PositionPlayed)
	item.MatchContext = strings.TrimSpace(input.MatchContext)
	item.Ratings = ratings
	item.Notes = strings.TrimSpace(input.Notes)
	item.Strengths = strings.TrimSpace(input.Strengths)
	item.Weaknesses = strings.TrimSpace(input.Weaknesses)
	item.Recommendation = recommendation
	item.MarketCondition = strings.TrimSpace(input.MarketCondition)
	item.Agent = strings.TrimSpace(input.Agent)
	item.Tags = report.NormalizeTags(input.Tags)
	item.EstimatedPrice = input.EstimatedPrice
	item.ObservedOn = input.ObservedOn
	item.Viewing = viewing
	item.Competition = strings.TrimSpace(input.Competition)
	item.Opponent = strings.TrimSpace(input.Opponent)
	item.Result = strings.TrimSpace(input.Result)
	item.MinutesObserved = minutes
	item.VideoURL = videoURL
	return nil
}
