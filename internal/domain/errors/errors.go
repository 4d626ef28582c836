package errors

import (
	"net/http"

	"pumpdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the error code so that WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Reset handshake errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or malformed bearer credential",
		"",
	)

	ErrPumpNotFound = NewBaseError(
		http.StatusNotFound,
		"PUMP_NOT_FOUND",
		"No fuel pump is registered for this email",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No user account exists for this email",
		"",
	)

	ErrResetNotPending = NewBaseError(
		http.StatusBadRequest,
		"RESET_NOT_PENDING",
		"No password reset is pending for this account",
		"",
	)

	ErrResetMismatch = NewBaseError(
		http.StatusBadRequest,
		"RESET_PASSWORD_MISMATCH",
		"Password does not match the pending reset",
		"",
	)

	ErrCredentialUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_UPDATE_FAILED",
		"Failed to update credentials",
		"",
	)

	ErrStatusClearFailed = NewBaseError(
		http.StatusInternalServerError,
		"RESET_STATUS_CLEAR_FAILED",
		"Password was changed but the reset could not be completed; retry the confirmation",
		"",
	)

	// Credential errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password is too short",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"An account with this username or email already exists",
		"",
	)

	ErrPumpAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PUMP_ALREADY_EXISTS",
		"A fuel pump is already registered for this email",
		"",
	)

	// Back-office record errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		"",
	)

	ErrStaffNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_NOT_FOUND",
		"Staff member not found",
		"",
	)

	ErrShiftNotFound = NewBaseError(
		http.StatusNotFound,
		"SHIFT_NOT_FOUND",
		"Shift not found",
		"",
	)

	ErrShiftAlreadyEnded = NewBaseError(
		http.StatusConflict,
		"SHIFT_ALREADY_ENDED",
		"Shift has already been completed",
		"",
	)

	ErrInventoryNotFound = NewBaseError(
		http.StatusNotFound,
		"INVENTORY_NOT_FOUND",
		"Inventory entry not found",
		"",
	)

	ErrIndentNotFound = NewBaseError(
		http.StatusNotFound,
		"INDENT_NOT_FOUND",
		"Indent not found",
		"",
	)

	ErrIndentNotPending = NewBaseError(
		http.StatusConflict,
		"INDENT_NOT_PENDING",
		"Indent is no longer pending",
		"",
	)

	ErrIndentCustomerMismatch = NewBaseError(
		http.StatusBadRequest,
		"INDENT_CUSTOMER_MISMATCH",
		"Indent belongs to a different customer",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"Referenced record does not exist",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
