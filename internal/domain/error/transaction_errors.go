// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or is not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is neither Income nor Expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or malformed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrTitleRequired is returned when a transaction has no title.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong is returned when the title exceeds the maximum length.
	ErrTitleTooLong = errors.New("title too long")

	// ErrCategoryRequired is returned when a transaction has no category.
	ErrCategoryRequired = errors.New("category is required")

	// ErrCategoryTooLong is returned when the category exceeds the maximum length.
	ErrCategoryTooLong = errors.New("category too long")

	// ErrNoteTooLong is returned when the note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrInvalidExportFormat is returned when an export is requested in an unsupported format.
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTitleRequired            TransactionErrorCode = "TXN-010004"
	ErrCodeTitleTooLong             TransactionErrorCode = "TXN-010005"
	ErrCodeCategoryRequired         TransactionErrorCode = "TXN-010006"
	ErrCodeCategoryTooLong          TransactionErrorCode = "TXN-010007"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"
	ErrCodeInvalidExportFormat      TransactionErrorCode = "TXN-010010"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternal TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
