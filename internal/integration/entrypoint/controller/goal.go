package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/application/usecase/goal"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /savings-goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, 0, len(output.Goals))
	for _, g := range output.Goals {
		goals = append(goals, dto.ToGoalResponse(g))
	}
	ctx.JSON(http.StatusOK, goals)
}

// Create handles POST /savings-goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
	}
	if req.TargetDate != nil && *req.TargetDate != "" {
		date, ok := parseGoalDate(ctx, *req.TargetDate)
		if !ok {
			return
		}
		input.TargetDate = &date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /savings-goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal", string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}

	g, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID, UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Update handles PUT /savings-goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal", string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		UserID:       userID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		SavedAmount:  req.SavedAmount,
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			input.ClearTargetDate = true
		} else {
			date, ok := parseGoalDate(ctx, *req.TargetDate)
			if !ok {
				return
			}
			input.TargetDate = &date
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /savings-goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goal", string(domainerror.ErrCodeMissingGoalFields))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID, UserID: userID}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseGoalDate(ctx *gin.Context, s string) (time.Time, bool) {
	date, err := entity.ParseDate(s)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidGoalDate))
		return time.Time{}, false
	}
	return date, true
}
