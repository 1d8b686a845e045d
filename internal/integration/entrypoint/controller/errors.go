// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// respondError maps a domain error to its HTTP status and writes the
// standard error body. Anything unrecognised becomes a 500 with a generic
// message; the cause is only logged.
func respondError(ctx *gin.Context, err error) {
	var (
		authErr *domainerror.AuthError
		txnErr  *domainerror.TransactionError
		recErr  *domainerror.RecurringError
		goalErr *domainerror.GoalError
		anlErr  *domainerror.AnalyticsError
	)

	status, message, code := http.StatusInternalServerError, "An internal error occurred", ""
	switch {
	case errors.As(err, &authErr):
		status, message, code = statusForAuthError(authErr.Code), authErr.Message, string(authErr.Code)
	case errors.As(err, &txnErr):
		status, message, code = statusForTransactionError(txnErr.Code), txnErr.Message, string(txnErr.Code)
	case errors.As(err, &recErr):
		status, message, code = statusForRecurringError(recErr.Code), recErr.Message, string(recErr.Code)
	case errors.As(err, &goalErr):
		status, message, code = statusForGoalError(goalErr.Code), goalErr.Message, string(goalErr.Code)
	case errors.As(err, &anlErr):
		status, message, code = statusForAnalyticsError(anlErr.Code), anlErr.Message, string(anlErr.Code)
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "request failed",
			"request_id", middleware.RequestIDFromContext(ctx.Request.Context()),
			"path", ctx.FullPath(),
			"error", err,
		)
		message = "An internal error occurred"
	}

	_ = ctx.Error(err)
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists,
		domainerror.ErrCodeUsernameExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidUsername,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeInvalidConfirmation,
		domainerror.ErrCodeInvalidTheme,
		domainerror.ErrCodeInvalidCurrency:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func statusForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransactionInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func statusForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSchedulerLocked:
		return http.StatusLocked
	case domainerror.ErrCodeRecurringInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func statusForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func statusForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	if code == domainerror.ErrCodeAnalyticsInternal {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// requireUser reads the authenticated user or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// pathID parses the :id route parameter or writes a 400 with the given code.
func pathID(ctx *gin.Context, what, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + what + " ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Code: code})
}
