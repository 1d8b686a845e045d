package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/application/usecase/analytics"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the read-only reporting endpoints.
type AnalyticsController struct {
	summaryUseCase         *analytics.GetSummaryUseCase
	categorySummaryUseCase *analytics.GetCategorySummaryUseCase
	monthlyTrendUseCase    *analytics.GetMonthlyTrendUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	categorySummaryUseCase *analytics.GetCategorySummaryUseCase,
	monthlyTrendUseCase *analytics.GetMonthlyTrendUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:         summaryUseCase,
		categorySummaryUseCase: categorySummaryUseCase,
		monthlyTrendUseCase:    monthlyTrendUseCase,
	}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	filter, ok := analyticsFilterFromQuery(ctx)
	if !ok {
		return
	}

	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// CategorySummary handles GET /analytics/category-summary requests.
func (c *AnalyticsController) CategorySummary(ctx *gin.Context) {
	filter, ok := analyticsFilterFromQuery(ctx)
	if !ok {
		return
	}

	rows, err := c.categorySummaryUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySummaryResponse(rows))
}

// MonthlyTrend handles GET /analytics/monthly-trend requests.
func (c *AnalyticsController) MonthlyTrend(ctx *gin.Context) {
	filter, ok := analyticsFilterFromQuery(ctx)
	if !ok {
		return
	}

	points, err := c.monthlyTrendUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendResponse(points))
}

func analyticsFilterFromQuery(ctx *gin.Context) (entity.AnalyticsFilter, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return entity.AnalyticsFilter{}, false
	}

	filter := entity.AnalyticsFilter{
		UserID:   userID,
		Category: strings.TrimSpace(ctx.Query("category")),
	}

	for _, p := range []struct {
		key  string
		dest **time.Time
	}{
		{"start", &filter.StartDate},
		{"end", &filter.EndDate},
	} {
		s := ctx.Query(p.key)
		if s == "" {
			continue
		}
		date, err := entity.ParseDate(s)
		if err != nil {
			badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat))
			return filter, false
		}
		*p.dest = &date
	}

	return filter, true
}
