package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/scouting-board/external/wyscout"
	"github.com/riskibarqy/scouting-board/internal/config"
	"github.com/riskibarqy/scouting-board/internal/domain/formation"
	"github.com/riskibarqy/scouting-board/internal/domain/market"
	"github.com/riskibarqy/scouting-board/internal/domain/report"
	"github.com/riskibarqy/scouting-board/internal/infrastructure/account/anubis"
	cacherepo "github.com/riskibarqy/scouting-board/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scouting-board/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scouting-board/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scouting-board/internal/interfaces/httpapi"
	"github.com/riskibarqy/scouting-board/internal/observability"
	"github.com/riskibarqy/scouting-board/internal/platform/cache"
	idgen "github.com/riskibarqy/scouting-board/internal/platform/id"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
	"github.com/riskibarqy/scouting-board/internal/platform/resilience"
	"github.com/riskibarqy/scouting-board/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbPingTimeout         = 5 * time.Second
	playerDetailsMaxItems = 5000
)

type repositories struct {
	markets   market.Repository
	players   market.PlayerRepository
	snapshots formation.Repository
	reports   report.Repository
	close     func() error
}

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	layouts, err := config.LoadLayouts(cfg.Formation.LayoutsFile)
	if err != nil {
		return nil, nil, err
	}
	capacity := formation.CapacityRule{
		Default:    cfg.Formation.DefaultCapacity,
		Goalkeeper: cfg.Formation.GoalkeeperCapacity,
	}
	catalog, err := formation.NewCatalog(capacity, layouts...)
	if err != nil {
		return nil, nil, fmt.Errorf("build formation catalog: %w", err)
	}

	repos, err := buildRepositories(cfg, capacity, logger)
	if err != nil {
		return nil, nil, err
	}

	boardSvc := usecase.NewBoardService(
		repos.markets,
		repos.players,
		repos.snapshots,
		catalog,
		cfg.Formation.PersistTimeout,
		logger,
	)
	boardSvc.SetIdleTTL(cfg.Formation.BoardIdleTTL)
	marketSvc := usecase.NewMarketService(repos.markets, repos.players, idgen.NewUUIDGenerator())
	marketSvc.SetRosterListener(boardSvc)
	reportSvc := usecase.NewReportService(repos.markets, repos.players, repos.reports, idgen.NewUUIDGenerator())

	detailSvc := usecase.NewPlayerDetailService(
		buildPlayerProvider(cfg, logger),
		cache.NewBoundedStore(cfg.Wyscout.DetailsTTL, playerDetailsMaxItems),
		cfg.Wyscout.MaxConcurrency,
		logger,
	)
	if detailSvc.Enabled() {
		boardSvc.SetEnricher(detailSvc)
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metrics := observability.NewBoardMetrics()
		boardSvc.SetMetrics(metrics)
		metricsHandler = metrics.Handler()
	}

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		cfg.AnubisBaseURL,
		cfg.AnubisIntrospectURL,
		cfg.AnubisAdminKey,
		anubis.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(marketSvc, boardSvc, detailSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(cfg config.Config, capacity formation.CapacityRule, logger *logging.Logger) (repositories, error) {
	var repos repositories
	if cfg.DBEnabled {
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("postgres repositories enabled", "db_name", dbNameFromURL(cfg.DBURL))
		repos = repositories{
			markets:   postgres.NewMarketRepository(db),
			players:   postgres.NewMarketPlayerRepository(db),
			snapshots: postgres.NewFormationRepository(db, capacity),
			reports:   postgres.NewReportRepository(db),
			close:     db.Close,
		}
	} else {
		logger.Info("database disabled, using in-memory repositories", "reason", "DB_ENABLED=false")
		repos = repositories{
			markets:   memory.NewMarketRepository(memory.SeedMarkets()),
			players:   memory.NewMarketPlayerRepository(memory.SeedMarketPlayers()),
			snapshots: memory.NewFormationRepository(),
			reports:   memory.NewReportRepository(),
			close:     func() error { return nil },
		}
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.markets = cacherepo.NewMarketRepository(repos.markets, store)
		repos.players = cacherepo.NewMarketPlayerRepository(repos.players, store)
		repos.reports = cacherepo.NewReportRepository(repos.reports, store)
	}
	return repos, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary, cfg.ServiceName)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// buildPlayerProvider returns nil when the provider is disabled so the detail
// service degrades to roster fields only.
func buildPlayerProvider(cfg config.Config, logger *logging.Logger) usecase.PlayerDetailsProvider {
	if !cfg.Wyscout.Enabled {
		logger.Info("player data provider disabled", "reason", "WYSCOUT_ENABLED=false")
		return nil
	}

	return wyscout.NewClient(wyscout.ClientConfig{
		BaseURL:           cfg.Wyscout.BaseURL,
		Username:          cfg.Wyscout.Username,
		Password:          cfg.Wyscout.Password,
		Timeout:           cfg.Wyscout.Timeout,
		MaxRetries:        cfg.Wyscout.MaxRetries,
		RequestsPerSecond: cfg.Wyscout.RequestsPerSecond,
		Burst:             cfg.Wyscout.Burst,
		Logger:            logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.Wyscout.CircuitEnabled,
			FailureThreshold: cfg.Wyscout.CircuitFailureCount,
			OpenTimeout:      cfg.Wyscout.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.Wyscout.CircuitHalfOpenMaxReq,
		},
	})
}
