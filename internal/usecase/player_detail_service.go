package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/scouting-board/internal/domain/player"
	"github.com/riskibarqy/scouting-board/internal/platform/cache"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
)

const (
	playerDetailsCachePrefix = "player-details:"
	defaultEnrichWorkers     = 4
)

// PlayerDetailsProvider fetches display fields from the player data provider.
type PlayerDetailsProvider interface {
	GetPlayerDetails(ctx context.Context, providerID string) (player.Details, error)
}

type PlayerDetailService struct {
	provider PlayerDetailsProvider
	cache    *cache.Store
	workers  int
	logger   *logging.Logger
	now      func() time.Time
}

// NewPlayerDetailService accepts a nil provider, in which case rosters are
// returned as supplied.
func NewPlayerDetailService(provider PlayerDetailsProvider, store *cache.Store, workers int, logger *logging.Logger) *PlayerDetailService {
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerDetailService{
		provider: provider,
		cache:    store,
		workers:  workers,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PlayerDetailService) Enabled() bool {
	return s != nil && s.provider != nil
}

func (s *PlayerDetailService) GetDetails(ctx context.Context, providerID string) (player.Details, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerDetailService.GetDetails")
	defer span.End()

	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return player.Details{}, fmt.Errorf("%w: provider player id is required", ErrInvalidInput)
	}
	if !s.Enabled() {
		return player.Details{}, fmt.Errorf("%w: player data provider is disabled", ErrDependencyUnavailable)
	}

	load := func(ctx context.Context) (any, error) {
		return s.provider.GetPlayerDetails(ctx, providerID)
	}

	var (
		value any
		err   error
	)
	if s.cache != nil {
		value, err = s.cache.GetOrLoad(ctx, playerDetailsCachePrefix+providerID, load)
	} else {
		value, err = load(ctx)
	}
	if err != nil {
		if errors.Is(err, player.ErrDetailsNotFound) {
			return player.Details{}, fmt.Errorf("%w: player=%s", ErrNotFound, providerID)
		}
		return player.Details{}, fmt.Errorf("%w: get player details: %v", ErrDependencyUnavailable, err)
	}

	details, ok := value.(player.Details)
	if !ok {
		return player.Details{}, fmt.Errorf("unexpected cached value type %T", value)
	}
	return details, nil
}

// EnrichRoster overlays provider details on every roster entry that has a
// provider id. Entries whose lookup fails keep their roster fields.
func (s *PlayerDetailService) EnrichRoster(ctx context.Context, roster []player.Summary) []player.Summary {
	out := make([]player.Summary, len(roster))
	copy(out, roster)
	if !s.Enabled() || len(roster) == 0 {
		return out
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerDetailService.EnrichRoster")
	defer span.End()

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		s.logger.WarnContext(ctx, "create enrichment pool failed", "error", err)
		return out
	}
	defer pool.Release()

	now := s.now()
	var workers sync.WaitGroup
	for i := range out {
		providerID := strings.TrimSpace(out[i].ProviderID)
		if providerID == "" {
			continue
		}
		idx := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			details, err := s.GetDetails(ctx, providerID)
			if err != nil {
				s.logger.DebugContext(ctx, "player enrichment skipped", "provider_id", providerID, "error", err)
				return
			}
			out[idx] = out[idx].Enrich(details, now)
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit enrichment task failed", "provider_id", providerID, "error", err)
		}
	}
	workers.Wait()

	return out
}
