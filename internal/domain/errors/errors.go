// Package errors defines the application error taxonomy exposed at the API
// boundary. Delivery-path failures are intentionally not represented here:
// they are logged and recorded on the notification flags, never raised to
// the caller.
package errors

import (
	"net/http"

	"pulse/internal/errors"
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

// Predefined error types
var (
	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	ErrInvalidRecipientKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECIPIENT_KIND",
		"recipient kind must be user, provider or operator",
		"",
	)

	ErrMissingRecipient = NewBaseError(
		http.StatusBadRequest,
		"MISSING_RECIPIENT",
		"a recipient ID is required",
		"",
	)

	ErrMissingContent = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CONTENT",
		"title and message are required",
		"",
	)

	// Schedule-related errors
	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"scheduled notification not found",
		"",
	)

	ErrScheduleTimePast = NewBaseError(
		http.StatusBadRequest,
		"SCHEDULE_TIME_PAST",
		"scheduled time must be strictly in the future",
		"",
	)

	ErrScheduleNotPending = NewBaseError(
		http.StatusConflict,
		"SCHEDULE_NOT_PENDING",
		"only pending schedules can be cancelled",
		"",
	)

	ErrInvalidRecipientTarget = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RECIPIENT_TARGET",
		"unknown recipient target",
		"",
	)

	ErrMissingRecipientList = NewBaseError(
		http.StatusBadRequest,
		"MISSING_RECIPIENT_LIST",
		"a specific-list schedule requires at least one recipient",
		"",
	)

	ErrMissingEntityReference = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ENTITY_REFERENCE",
		"a followers schedule requires a referenced entity",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Realtime connection errors
	ErrConnectionRejected = NewBaseError(
		http.StatusUnauthorized,
		"CONNECTION_REJECTED",
		"realtime connection credentials rejected",
		"",
	)

	ErrMissingDeviceID = NewBaseError(
		http.StatusBadRequest,
		"MISSING_DEVICE_ID",
		"a device-channel connection requires a device ID",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
