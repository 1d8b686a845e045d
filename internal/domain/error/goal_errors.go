package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found or is not owned by the caller.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidSavedAmount is returned when the saved amount is negative.
	ErrInvalidSavedAmount = errors.New("saved amount must not be negative")

	// ErrGoalTitleRequired is returned when a goal has no title.
	ErrGoalTitleRequired = errors.New("goal title is required")

	// ErrInvalidGoalStatus is returned when an unknown status is requested.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010001"
	ErrCodeInvalidSavedAmount  GoalErrorCode = "GOL-010002"
	ErrCodeGoalTitleRequired   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalStatus   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalDate     GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010006"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Internal errors (99XXXX)
	ErrCodeGoalInternal GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
