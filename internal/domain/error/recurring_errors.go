package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring rule does not exist or is not owned by the caller.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrInvalidFrequency is returned when a rule is created with an unsupported cadence.
	ErrInvalidFrequency = errors.New("frequency must be Daily, Weekly or Monthly")

	// ErrMissingStartDate is returned when a rule is created without a start date.
	ErrMissingStartDate = errors.New("start date is required")

	// ErrEndBeforeStart is returned when a rule's end date precedes its start date.
	ErrEndBeforeStart = errors.New("end date must not be before start date")

	// ErrFutureRunDate is returned when a cycle is requested for a day after today.
	ErrFutureRunDate = errors.New("run date is in the future")

	// ErrSchedulerLocked is returned when another scheduler cycle currently holds the lock.
	ErrSchedulerLocked = errors.New("recurring scheduler cycle already in progress")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingRecurringFields RecurringErrorCode = "REC-010001"
	ErrCodeInvalidFrequency       RecurringErrorCode = "REC-010002"
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringType   RecurringErrorCode = "REC-010004"
	ErrCodeEndBeforeStart         RecurringErrorCode = "REC-010005"
	ErrCodeInvalidRecurringDate   RecurringErrorCode = "REC-010006"
	ErrCodeFutureRunDate          RecurringErrorCode = "REC-010007"

	// Lookup errors (02XXXX)
	ErrCodeRecurringNotFound RecurringErrorCode = "REC-020001"

	// Scheduler errors (03XXXX)
	ErrCodeSchedulerLocked RecurringErrorCode = "REC-030001"

	// Internal errors (99XXXX)
	ErrCodeRecurringInternal RecurringErrorCode = "REC-990001"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
