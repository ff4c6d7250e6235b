package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/props-dashboard/internal/config"
	"github.com/riskibarqy/props-dashboard/internal/domain/mapping"
	"github.com/riskibarqy/props-dashboard/internal/domain/prop"
	cacherepo "github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/props-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/props-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/props-dashboard/internal/platform/cache"
	idgen "github.com/riskibarqy/props-dashboard/internal/platform/id"
	"github.com/riskibarqy/props-dashboard/internal/platform/logging"
	"github.com/riskibarqy/props-dashboard/internal/usecase"
)

// App wires repositories, services and the HTTP server. With an empty DB_URL
// (dev only) it runs fully in memory on seeded fixtures; otherwise it reads
// from Postgres and mirrors live changes via LISTEN/NOTIFY.
type App struct {
	Server *http.Server

	board  *usecase.BoardService
	db     *sqlx.DB
	logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var (
		propRepo  prop.Repository
		histRepo  prop.HistoryRepository
		feed      prop.ChangeFeed
		sportRepo mapping.SportRepository
		statRepo  mapping.StatRepository
		db        *sqlx.DB
	)

	if cfg.DBURL == "" {
		memRepo := memory.NewPropRepository(memory.SeedOffers())
		propRepo = memRepo
		histRepo = memRepo
		feed = memory.NewChangeFeed(0)
		sportRepo = memory.NewSportMappingRepository(memory.SeedSportMappings())
		statRepo = memory.NewStatMappingRepository(memory.SeedStatMappings())
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
	} else {
		var err error
		db, err = otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}

		pgRepo := postgres.NewPropRepository(db)
		propRepo = pgRepo
		histRepo = pgRepo
		feed = postgres.NewChangeFeed(cfg.DBURL, cfg.FeedChannel, logger)
		sportRepo = postgres.NewSportMappingRepository(db)
		statRepo = postgres.NewStatMappingRepository(db)
	}

	if store != nil {
		sportRepo = cacherepo.NewSportMappingRepository(sportRepo, store)
		statRepo = cacherepo.NewStatMappingRepository(statRepo, store)
	}

	boardSvc := usecase.NewBoardService(propRepo, feed, store, logger, usecase.BoardServiceConfig{
		BulkFetchLimit: cfg.BoardBulkFetchLimit,
		HighlightTTL:   cfg.BoardHighlightTTL,
	})
	historySvc := usecase.NewHistoryService(histRepo)
	mappingSvc := usecase.NewMappingService(sportRepo, statRepo, idgen.NewRandomGenerator(), logger)

	handler := httpapi.NewHandler(boardSvc, historySvc, mappingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminAPIToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: server,
		board:  boardSvc,
		db:     db,
		logger: logger,
	}, nil
}

// Start bulk-loads the board snapshot and begins draining the change feed.
func (a *App) Start(ctx context.Context) error {
	return a.board.Start(ctx)
}

// Close stops the board drain loop and releases the database pool. The HTTP
// server is shut down by the caller before Close.
func (a *App) Close() error {
	err := a.board.Close()
	if a.db != nil {
		if closeErr := a.db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
