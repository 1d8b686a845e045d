// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finance-planner/backend/internal/infra/metrics"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringController
	goalController        *controller.GoalController
	analyticsController   *controller.AnalyticsController
	authRateLimiter       *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	metrics               *metrics.Metrics
	gatherer              prometheus.Gatherer
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	goalController *controller.GoalController,
	analyticsController *controller.AnalyticsController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		transactionController: transactionController,
		recurringController:   recurringController,
		goalController:        goalController,
		analyticsController:   analyticsController,
		authRateLimiter:       authRateLimiter,
		authMiddleware:        authMiddleware,
		metrics:               m,
		gatherer:              gatherer,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging())
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.gatherer != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.authController != nil {
		auth := v1.Group("/auth")
		if r.authRateLimiter != nil {
			auth.Use(r.authRateLimiter.Middleware())
		}
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
		}
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	if r.userController != nil {
		users := protected.Group("/users/me")
		{
			users.GET("", r.userController.GetProfile)
			users.PATCH("", r.userController.UpdateProfile)
			users.PUT("/password", r.userController.ChangePassword)
			users.DELETE("", r.userController.DeleteAccount)
		}
	}

	if r.transactionController != nil {
		transactions := protected.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/export", r.transactionController.Export)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.recurringController != nil {
		recurring := protected.Group("/recurring-transactions")
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.POST("/run", r.recurringController.Run)
			recurring.DELETE("/:id", r.recurringController.Delete)
		}
	}

	if r.goalController != nil {
		goals := protected.Group("/savings-goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PUT("/:id", r.goalController.Update)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}
	}

	if r.analyticsController != nil {
		analytics := protected.Group("/analytics")
		{
			analytics.GET("/summary", r.analyticsController.Summary)
			analytics.GET("/category-summary", r.analyticsController.CategorySummary)
			analytics.GET("/monthly-trend", r.analyticsController.MonthlyTrend)
		}
	}
}
