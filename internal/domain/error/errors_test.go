package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "recurring not found",
			err:      NewRecurringError(ErrCodeRecurringNotFound, "recurring transaction not found", ErrRecurringNotFound),
			sentinel: ErrRecurringNotFound,
			message:  "recurring transaction not found: recurring transaction not found",
		},
		{
			name:     "transaction validation",
			err:      NewTransactionError(ErrCodeInvalidTransactionAmount, "amount must be positive", ErrInvalidTransactionAmount),
			sentinel: ErrInvalidTransactionAmount,
			message:  "amount must be positive: invalid transaction amount",
		},
		{
			name:     "wrapped auth error",
			err:      fmt.Errorf("login: %w", NewAuthError(ErrCodeInvalidCredentials, "invalid credentials", ErrInvalidCredentials)),
			sentinel: ErrInvalidCredentials,
			message:  "login: invalid credentials: invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestCodedErrorWithoutCause(t *testing.T) {
	err := NewGoalError(ErrCodeMissingGoalFields, "title is required", nil)

	assert.Equal(t, "title is required", err.Error())
	assert.Nil(t, errors.Unwrap(err))

	var goalErr *GoalError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &goalErr))
	assert.Equal(t, ErrCodeMissingGoalFields, goalErr.Code)
}
