package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-planner/backend/internal/application/adapter/mocks"
	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/application/usecase/transaction"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), userID)
		c.Next()
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "taken", nil), http.StatusConflict, "AUTH-010001"},
		{domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "bad", nil), http.StatusUnauthorized, "AUTH-020001"},
		{domainerror.NewTransactionError(domainerror.ErrCodeTransactionNotFound, "gone", nil), http.StatusNotFound, "TXN-020001"},
		{domainerror.NewTransactionError(domainerror.ErrCodeTitleRequired, "title", nil), http.StatusBadRequest, "TXN-010004"},
		{domainerror.NewRecurringError(domainerror.ErrCodeEndBeforeStart, "end", nil), http.StatusBadRequest, "REC-010005"},
		{domainerror.NewRecurringError(domainerror.ErrCodeSchedulerLocked, "busy", domainerror.ErrSchedulerLocked), http.StatusLocked, "REC-030001"},
		{domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "gone", nil), http.StatusNotFound, "GOL-020001"},
		{domainerror.NewAnalyticsError(domainerror.ErrCodeInvalidDateRange, "range", nil), http.StatusBadRequest, "ANL-010001"},
		{fmt.Errorf("wrapped: %w", domainerror.NewGoalError(domainerror.ErrCodeInvalidTargetAmount, "amount", nil)), http.StatusBadRequest, "GOL-010001"},
		{errors.New("connection reset by peer"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { respondError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.code, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "An internal error occurred", body.Error)
			}
		})
	}
}

type stubRunner struct {
	userID *uuid.UUID
	out    *recurring.MaterializeDueOutput
	err    error
}

func (s *stubRunner) RunForUser(_ context.Context, userID uuid.UUID) (*recurring.MaterializeDueOutput, error) {
	s.userID = &userID
	return s.out, s.err
}

func TestRecurringRun(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("runs the caller's rules", func(t *testing.T) {
		userID := uuid.New()
		runner := &stubRunner{out: &recurring.MaterializeDueOutput{Today: day, Candidates: 4, Due: 2, Materialized: 2}}
		router := gin.New()
		router.POST("/recurring/run", withUser(userID), NewRecurringController(nil, nil, nil, runner).Run)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recurring/run", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, runner.userID)
		assert.Equal(t, userID, *runner.userID)

		var body dto.RunRecurringResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, dto.RunRecurringResponse{Today: "2024-03-01", Candidates: 4, Due: 2, Materialized: 2}, body)
	})

	t.Run("date parameter has no effect", func(t *testing.T) {
		runner := &stubRunner{out: &recurring.MaterializeDueOutput{Today: day}}
		router := gin.New()
		router.POST("/recurring/run", withUser(uuid.New()), NewRecurringController(nil, nil, nil, runner).Run)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recurring/run?date=2030-01-01", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body dto.RunRecurringResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "2024-03-01", body.Today)
	})

	t.Run("locked", func(t *testing.T) {
		runner := &stubRunner{err: domainerror.NewRecurringError(domainerror.ErrCodeSchedulerLocked, "A scheduler cycle is already running", domainerror.ErrSchedulerLocked)}
		router := gin.New()
		router.POST("/recurring/run", withUser(uuid.New()), NewRecurringController(nil, nil, nil, runner).Run)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recurring/run", nil))

		assert.Equal(t, http.StatusLocked, w.Code)
		assert.Equal(t, string(domainerror.ErrCodeSchedulerLocked), decodeError(t, w).Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		runner := &stubRunner{}
		router := gin.New()
		router.POST("/recurring/run", NewRecurringController(nil, nil, nil, runner).Run)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recurring/run", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, runner.userID)
	})
}

func TestTransactionList_ParsesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTransactionRepository(ctrl)
	userID := uuid.New()

	repo.EXPECT().FindByFilter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f entity.TransactionFilter) (*entity.TransactionListResult, error) {
			assert.Equal(t, userID, f.UserID)
			assert.Equal(t, "Food", f.Category)
			assert.Equal(t, entity.TransactionTypeExpense, f.Type)
			assert.Equal(t, "milk", f.Search)
			require.NotNil(t, f.StartDate)
			assert.Equal(t, "2024-01-01", f.StartDate.Format(entity.DateLayout))
			assert.Nil(t, f.EndDate)
			assert.Equal(t, 20, f.Limit)
			assert.Equal(t, 40, f.Offset)
			return &entity.TransactionListResult{Total: 0, Limit: f.Limit, Offset: f.Offset}, nil
		})

	c := NewTransactionController(transaction.NewListTransactionsUseCase(repo), nil, nil, nil, nil, nil)
	router := gin.New()
	router.GET("/transactions", withUser(userID), c.List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/transactions?category=Food&type=Expense&search=milk&start=2024-01-01&limit=20&offset=40", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Transactions)
	assert.NotNil(t, body.Transactions)
}

func TestTransactionList_RejectsBadFilters(t *testing.T) {
	c := NewTransactionController(nil, nil, nil, nil, nil, nil)
	router := gin.New()
	router.GET("/transactions", withUser(uuid.New()), c.List)

	for query, code := range map[string]domainerror.TransactionErrorCode{
		"type=expense":    domainerror.ErrCodeInvalidTransactionType,
		"end=2024-13-01":  domainerror.ErrCodeInvalidTransactionDate,
		"start=yesterday": domainerror.ErrCodeInvalidTransactionDate,
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, string(code), decodeError(t, w).Code, query)
	}
}

func TestRequireUser(t *testing.T) {
	router := gin.New()
	router.GET("/goals", NewGoalController(nil, nil, nil, nil, nil).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(domainerror.ErrCodeMissingToken), decodeError(t, w).Code)
}

func TestHealth(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	t.Run("all connected", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthController(map[string]HealthChecker{"database": healthy, "redis": nil}).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, map[string]string{"database": "connected"}, body.Dependencies)
	})

	t.Run("degraded", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthController(map[string]HealthChecker{"database": healthy, "redis": down}).Check)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"disconnected"`)
	})
}
