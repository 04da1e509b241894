package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	mountainservice "vershyna/contexts/catalog/mountain-service"
	catalogpostgres "vershyna/contexts/catalog/mountain-service/adapters/postgres"
	accountservice "vershyna/contexts/identity/account-service"
	bcryptadapter "vershyna/contexts/identity/account-service/adapters/bcrypt"
	jwtadapter "vershyna/contexts/identity/account-service/adapters/jwt"
	accountpostgres "vershyna/contexts/identity/account-service/adapters/postgres"
	"vershyna/internal/platform/config"
	"vershyna/internal/platform/db"
	"vershyna/internal/platform/filestore"
	"vershyna/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := catalogpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if err := accountpostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := mountainservice.NewModule(mountainservice.Dependencies{
		Ridges: catalogRepo,
		Peaks:  catalogRepo,
		Routes: catalogRepo,
		Points: catalogRepo,
		Slugs:  catalogRepo,
		Files:  filestore.Local{BaseDir: cfg.MediaDir},
		Clock:  catalogpostgres.SystemClock{},
		Logger: logger,
	})

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accountModule := accountservice.NewModule(accountservice.Dependencies{
		Users:  accountRepo,
		Hasher: bcryptadapter.Hasher{},
		Tokens: jwtadapter.Codec{
			Secret:    []byte(cfg.JWTSecret),
			Algorithm: cfg.JWTAlgorithm,
			TTL:       cfg.TokenTTL,
		},
		Clock:  accountpostgres.SystemClock{},
		Logger: logger,
	})

	server := httpserver.New(catalogModule, accountModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
