package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/finance-planner/backend/internal/infra/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the recurrence scheduler and the email worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.database.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")

	inj, err := a.injector()
	if err != nil {
		return err
	}

	cfg := a.cfg
	slog.Info("Starting Finance Planner API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"scheduler_enabled", cfg.Scheduler.Enabled,
		"redis_enabled", cfg.Redis.Enabled,
	)

	srv := server.New(server.Config{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, inj.Router.Setup(cfg.Server.Environment))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return srv.Run(gctx) })

	g.Go(func() error {
		inj.RateLimiter.StartCleanup(gctx)
		return nil
	})

	if cfg.Scheduler.Enabled {
		g.Go(func() error { return inj.Scheduler.Start(gctx) })
	} else {
		slog.Info("Recurrence scheduler disabled")
	}

	if cfg.Email.WorkerEnabled {
		g.Go(func() error { return inj.EmailWorker.Start(gctx) })
	} else {
		slog.Info("Email worker disabled")
	}

	return g.Wait()
}
