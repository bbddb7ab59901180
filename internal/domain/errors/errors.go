// Package errors defines the application errors surfaced by the CRM use cases.
package errors

import (
	"github.com/pkg/errors"
)

// Kind classifies an application error by how the caller should react to it.
type Kind string

const (
	// KindNotFound means an id did not resolve to an entity. Callers recover
	// locally: nothing was mutated.
	KindNotFound Kind = "not_found"
	// KindPreconditionViolation means an input was rejected before any mutation.
	KindPreconditionViolation Kind = "precondition_violation"
	// KindConflict means the operation does not apply to the resolved entity.
	KindConflict Kind = "conflict"
	// KindInternal covers everything else.
	KindInternal Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches errors derived from the same predefined error through WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrCustomerNotFound = NewBaseError(
		KindNotFound,
		"CUSTOMER_NOT_FOUND",
		"customer not found",
		"",
	)

	ErrSalesRepNotFound = NewBaseError(
		KindNotFound,
		"SALES_REP_NOT_FOUND",
		"sales representative not found",
		"",
	)

	ErrCustomerNotInPortfolio = NewBaseError(
		KindNotFound,
		"CUSTOMER_NOT_IN_PORTFOLIO",
		"customer not found in portfolio",
		"",
	)

	// Input errors
	ErrInvalidDuration = NewBaseError(
		KindPreconditionViolation,
		"INVALID_DURATION",
		"duration must not be negative",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		KindPreconditionViolation,
		"INVALID_AMOUNT",
		"amount must not be negative",
		"",
	)

	ErrInvalidEmployeeCount = NewBaseError(
		KindPreconditionViolation,
		"INVALID_EMPLOYEE_COUNT",
		"employee count must be positive",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindPreconditionViolation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Variant errors
	ErrNotVIPCustomer = NewBaseError(
		KindConflict,
		"NOT_VIP_CUSTOMER",
		"operation requires a VIP customer",
		"",
	)

	ErrNotCorporateCustomer = NewBaseError(
		KindConflict,
		"NOT_CORPORATE_CUSTOMER",
		"operation requires a corporate customer",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := asAppError(err); ok {
		return appErr.Kind()
	}

	return KindInternal
}

func asAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// IsNotFound reports whether err carries a not-found application error.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsPreconditionViolation reports whether err carries a rejected-input application error.
func IsPreconditionViolation(err error) bool {
	return err != nil && KindOf(err) == KindPreconditionViolation
}
