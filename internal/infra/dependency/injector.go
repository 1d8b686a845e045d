// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/usecase/analytics"
	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/application/usecase/goal"
	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/application/usecase/transaction"
	"github.com/finance-planner/backend/internal/application/usecase/user"
	"github.com/finance-planner/backend/internal/infra/metrics"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/adapters"
	"github.com/finance-planner/backend/internal/integration/cache"
	"github.com/finance-planner/backend/internal/integration/email"
	"github.com/finance-planner/backend/internal/integration/email/templates"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/export"
	"github.com/finance-planner/backend/internal/integration/persistence"
	"github.com/finance-planner/backend/internal/integration/scheduler"
)

// Options overrides collaborators that tests and the CLI swap out. Zero
// values select the production implementation.
type Options struct {
	// Clock defaults to the system clock in the scheduler timezone.
	Clock adapter.Clock
	// Redis enables the shared analytics cache and scheduler lock. Nil
	// selects the no-op cache and the in-process lock.
	Redis *redis.Client
	// Registry receives the application metrics. Nil creates a new one.
	Registry *prometheus.Registry
	// EmailSender defaults to Resend, or to logging when no API key is set.
	EmailSender adapter.EmailSender
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Scheduler   *scheduler.Scheduler
	EmailWorker *email.Worker
	RateLimiter *middleware.RateLimiter
	Registry    *prometheus.Registry
	Clock       adapter.Clock
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		loc, err := cfg.Scheduler.Location()
		if err != nil {
			return nil, fmt.Errorf("failed to load scheduler timezone: %w", err)
		}
		clock = adapters.NewSystemClock(loc)
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.New(registry)

	// Shared cache and lock
	var (
		analyticsCache adapter.AnalyticsCache = cache.NoopAnalyticsCache{}
		schedulerLock  adapter.SchedulerLock  = cache.NewLocalLock()
	)
	if opts.Redis != nil {
		analyticsCache = cache.NewAnalyticsCache(opts.Redis, cfg.Analytics.CacheTTL)
		schedulerLock = cache.NewLock(opts.Redis)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	recurringRepo := persistence.NewRecurringTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	txManager := persistence.NewTxManager(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:               cfg.JWT.Secret,
		AccessTokenDuration:  cfg.JWT.AccessTokenExpiry,
		RefreshTokenDuration: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	retrier := adapters.NewRetrier(adapters.DefaultRetryConfig)

	// Email
	emailService := email.NewService(emailQueueRepo, cfg.Email.MaxRetries)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	sender := opts.EmailSender
	if sender == nil {
		if cfg.Email.ResendAPIKey != "" {
			resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			if cfg.Email.ResendBaseURL != "" {
				if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
					return nil, err
				}
			}
			sender = resendClient
		} else {
			sender = email.LogSender{}
		}
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService, tokenService)
	deleteAccountUseCase := user.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, analyticsCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, analyticsCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, analyticsCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, analyticsCache)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo, map[string]adapter.TransactionExporter{
		"csv":  export.NewCSVExporter(),
		"xlsx": export.NewXLSXExporter(),
	})

	// Create recurring use cases and the scheduler
	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)
	materializeDueUseCase := recurring.NewMaterializeDueUseCase(
		recurringRepo,
		transactionRepo,
		userRepo,
		txManager,
		retrier,
		analyticsCache,
		emailService,
		clock,
	)
	sched := scheduler.New(materializeDueUseCase, schedulerLock, m, scheduler.Config{
		Interval: cfg.Scheduler.Interval,
		LockTTL:  cfg.Scheduler.LockTTL,
	})

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create analytics use cases
	summaryUseCase := analytics.NewGetSummaryUseCase(analyticsRepo, analyticsCache)
	categorySummaryUseCase := analytics.NewGetCategorySummaryUseCase(analyticsRepo, analyticsCache)
	monthlyTrendUseCase := analytics.NewGetMonthlyTrendUseCase(analyticsRepo, analyticsCache)

	// Create controllers
	checks := map[string]controller.HealthChecker{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if opts.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return opts.Redis.Ping(ctx).Err()
		}
	}
	healthController := controller.NewHealthController(checks)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		changePasswordUseCase,
		deleteAccountUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)

	recurringController := controller.NewRecurringController(
		listRecurringUseCase,
		createRecurringUseCase,
		deleteRecurringUseCase,
		sched,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		summaryUseCase,
		categorySummaryUseCase,
		monthlyTrendUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var authRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		authRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		authRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Server.AuthRateLimit, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		transactionController,
		recurringController,
		goalController,
		analyticsController,
		authRateLimiter,
		authMiddleware,
		m,
		registry,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		Scheduler:   sched,
		EmailWorker: emailWorker,
		RateLimiter: authRateLimiter,
		Registry:    registry,
		Clock:       clock,
	}, nil
}
