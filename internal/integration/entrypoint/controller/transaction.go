package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/application/usecase/transaction"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// defaultExportFormat is used when /transactions/export has no format query.
const defaultExportFormat = "xlsx"

// TransactionController handles ledger endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	filter, ok := transactionFilterFromQuery(ctx)
	if !ok {
		return
	}
	filter.UserID = userID

	result, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(result))
}

// Export handles GET /transactions/export requests. It accepts the same
// filters as List and ignores pagination.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	filter, ok := transactionFilterFromQuery(ctx)
	if !ok {
		return
	}
	filter.UserID = userID

	format := strings.ToLower(ctx.DefaultQuery("format", defaultExportFormat))
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		Filter: filter,
		Format: format,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Header("X-Export-Count", strconv.Itoa(output.Count))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "transaction", string(domainerror.ErrCodeMissingTransactionFields))
	if !ok {
		return
	}

	t, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(t))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	date, ok := parseTransactionDate(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Type:     entity.TransactionType(req.Type),
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "transaction", string(domainerror.ErrCodeMissingTransactionFields))
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		Note:          req.Note,
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Date != nil {
		date, ok := parseTransactionDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "transaction", string(domainerror.ErrCodeMissingTransactionFields))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// transactionFilterFromQuery reads the list filters. Unparseable numbers
// fall back to defaults; unparseable dates are rejected.
func transactionFilterFromQuery(ctx *gin.Context) (entity.TransactionFilter, bool) {
	filter := entity.TransactionFilter{
		Category: strings.TrimSpace(ctx.Query("category")),
		Type:     entity.TransactionType(ctx.Query("type")),
		Search:   strings.TrimSpace(ctx.Query("search")),
	}

	if filter.Type != "" && !filter.Type.IsValid() {
		badRequest(ctx, "type must be Income or Expense", string(domainerror.ErrCodeInvalidTransactionType))
		return filter, false
	}

	if s := ctx.Query("start"); s != "" {
		date, ok := parseTransactionDate(ctx, s)
		if !ok {
			return filter, false
		}
		filter.StartDate = &date
	}
	if s := ctx.Query("end"); s != "" {
		date, ok := parseTransactionDate(ctx, s)
		if !ok {
			return filter, false
		}
		filter.EndDate = &date
	}

	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(ctx.Query("offset")); err == nil {
		filter.Offset = offset
	}

	return filter, true
}

func parseTransactionDate(ctx *gin.Context, s string) (time.Time, bool) {
	date, err := entity.ParseDate(s)
	if err != nil {
		badRequest(ctx, "Invalid date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return time.Time{}, false
	}
	return date, true
}
