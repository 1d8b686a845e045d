package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/infra/db"
	"github.com/finance-planner/backend/internal/infra/dependency"
	"github.com/finance-planner/backend/internal/infra/logger"
	"github.com/finance-planner/backend/internal/integration/cache"
)

// app holds the process-level resources shared by every command.
type app struct {
	cfg      *config.Config
	database *db.Database
	redis    *redis.Client
}

// bootstrap loads configuration, installs the logger and opens the
// database and, when enabled, Redis.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	database, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, database: database}

	if cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, cache.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redis = client
	}

	return a, nil
}

func (a *app) injector() (*dependency.Injector, error) {
	return dependency.NewInjector(a.cfg, a.database.DB(), dependency.Options{Redis: a.redis})
}

func (a *app) Close() {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, a.database.Close())
	if err := errors.Join(errs...); err != nil {
		slog.Error("Failed to release resources", "error", err)
	}
}
