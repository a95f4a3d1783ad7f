package errors

import (
	"net/http"

	"carebridge/internal/errors"
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
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Notification permission was not granted",
		"",
	)

	ErrRelevanceLookupFailed = NewBaseError(
		http.StatusInternalServerError,
		"RELEVANCE_LOOKUP_FAILED",
		"Could not resolve family membership",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"No active notification session",
		"",
	)

	// Submission-related errors
	ErrAdLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"AD_LOAD_FAILED",
		"The ad could not be loaded",
		"",
	)

	ErrAdShowFailed = NewBaseError(
		http.StatusBadGateway,
		"AD_SHOW_FAILED",
		"The ad could not be shown",
		"",
	)

	ErrSubmissionInFlight = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_IN_FLIGHT",
		"A submission is already in progress",
		"",
	)

	ErrInvalidSubmissionState = NewBaseError(
		http.StatusConflict,
		"INVALID_SUBMISSION_STATE",
		"The submission cannot do that right now",
		"",
	)

	ErrNoActiveAd = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_AD",
		"There is no ad waiting for this event",
		"",
	)

	// Family-related errors
	ErrPairingNotFound = NewBaseError(
		http.StatusNotFound,
		"PAIRING_NOT_FOUND",
		"No family group is connected to this account",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Action-related errors
	ErrActionNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTION_NOT_FOUND",
		"Action not found",
		"",
	)

	ErrWakeAlertAlreadySent = NewBaseError(
		http.StatusConflict,
		"WAKE_ALERT_ALREADY_SENT",
		"The wake-up alert was already sent today",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Action status can only move forward",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// MediaUploadError is raised when reading, encoding or storing media fails.
// The submission that triggered it never reaches the insert step.
type MediaUploadError struct {
	err  error
	step string
}

// NewMediaUploadError creates a media upload error for the failed step
func NewMediaUploadError(step string, err error) AppError {
	return &MediaUploadError{err: err, step: step}
}

func (e *MediaUploadError) Error() string {
	return errors.Wrapf(e.err, "media upload failed at %s", e.step).Error()
}

func (e *MediaUploadError) Unwrap() error { return e.err }
func (e *MediaUploadError) HTTPCode() int { return http.StatusBadGateway }
func (e *MediaUploadError) ErrorCode() string { return "MEDIA_UPLOAD_FAILED" }
func (e *MediaUploadError) Message() string { return "Failed to upload media" }
func (e *MediaUploadError) Step() string { return e.step }

func (e *MediaUploadError) Details() string {
	if e.err == nil {
		return e.step
	}

	return e.step + ": " + e.err.Error()
}

// ActionInsertError carries the raw backend message of a rejected action insert
type ActionInsertError struct {
	err error
}

// NewActionInsertError wraps a failed action insert
func NewActionInsertError(err error) AppError {
	return &ActionInsertError{err: err}
}

func (e *ActionInsertError) Error() string {
	return errors.Wrap(e.err, "action insert failed").Error()
}

func (e *ActionInsertError) Unwrap() error { return e.err }
func (e *ActionInsertError) HTTPCode() int { return http.StatusInternalServerError }
func (e *ActionInsertError) ErrorCode() string { return "ACTION_INSERT_FAILED" }

// Message returns the backend message verbatim so the client can show it
func (e *ActionInsertError) Message() string {
	if e.err == nil {
		return "Failed to save the action"
	}

	return errors.Cause(e.err).Error()
}

func (e *ActionInsertError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
