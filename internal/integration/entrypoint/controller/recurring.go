package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// CycleRunner runs one scheduler cycle on demand over a single owner's rules.
type CycleRunner interface {
	RunForUser(ctx context.Context, userID uuid.UUID) (*recurring.MaterializeDueOutput, error)
}

// RecurringController handles recurring rule endpoints.
type RecurringController struct {
	listUseCase   *recurring.ListRecurringUseCase
	createUseCase *recurring.CreateRecurringUseCase
	deleteUseCase *recurring.DeleteRecurringUseCase
	runner        CycleRunner
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRecurringUseCase,
	createUseCase *recurring.CreateRecurringUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
	runner CycleRunner,
) *RecurringController {
	return &RecurringController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		runner:        runner,
	}
}

// List handles GET /recurring-transactions requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	rules := make([]dto.RecurringResponse, 0, len(output.Recurring))
	for _, r := range output.Recurring {
		rules = append(rules, dto.ToRecurringResponse(r))
	}
	ctx.JSON(http.StatusOK, rules)
}

// Create handles POST /recurring-transactions requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingRecurringFields))
		return
	}

	start, ok := parseRecurringDate(ctx, req.StartDate)
	if !ok {
		return
	}

	input := recurring.CreateRecurringInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        entity.TransactionType(req.Type),
		Frequency:   entity.Frequency(req.Frequency),
		StartDate:   start,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, ok := parseRecurringDate(ctx, *req.EndDate)
		if !ok {
			return
		}
		input.EndDate = &end
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// Delete handles DELETE /recurring-transactions/:id requests. Entries
// already produced by the rule stay in the ledger.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	ruleID, ok := pathID(ctx, "recurring", string(domainerror.ErrCodeMissingRecurringFields))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringInput{ID: ruleID, UserID: userID}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Run handles POST /recurring-transactions/run requests. It materializes the
// caller's due rules as of the server's current day.
func (c *RecurringController) Run(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.runner.RunForUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRunRecurringResponse(output))
}

func parseRecurringDate(ctx *gin.Context, s string) (time.Time, bool) {
	date, err := entity.ParseDate(s)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidRecurringDate))
		return time.Time{}, false
	}
	return date, true
}
