// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	"net/http"

	"catrescue/internal/errors"
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
	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username or email already registered",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already in use",
		"",
	)

	ErrPhoneTaken = NewBaseError(
		http.StatusConflict,
		"PHONE_TAKEN",
		"Phone number already in use",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Could not validate credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Cat and pin errors
	ErrCatNotFound = NewBaseError(
		http.StatusNotFound,
		"CAT_NOT_FOUND",
		"Cat not found",
		"",
	)

	ErrPinNotFound = NewBaseError(
		http.StatusNotFound,
		"PIN_NOT_FOUND",
		"Pin not found",
		"",
	)

	ErrCatListedForAdoption = NewBaseError(
		http.StatusForbidden,
		"CAT_LISTED_FOR_ADOPTION",
		"This cat is currently listed for adoption and cannot receive new location pins",
		"",
	)

	ErrCatInStreetLocation = NewBaseError(
		http.StatusForbidden,
		"CAT_IN_STREET_LOCATION",
		"This cat is currently in street location and cannot be listed for adoption",
		"",
	)

	ErrNotCatOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_CAT_OWNER",
		"Only the cat's owner can perform this action",
		"",
	)

	ErrInvalidCondition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONDITION",
		"Unrecognized condition value",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"The cat's current condition cannot be changed",
		"",
	)

	ErrOutOfServiceArea = NewBaseError(
		http.StatusBadRequest,
		"OUT_OF_SERVICE_AREA",
		"Coordinates are outside the supported area",
		"",
	)

	ErrContributionBlocked = NewBaseError(
		http.StatusForbidden,
		"CONTRIBUTION_BLOCKED",
		"Contributions are closed for this cat's current condition",
		"",
	)

	// Adoption listing errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Adoption listing not found",
		"",
	)

	ErrListingAlreadyExists = NewBaseError(
		http.StatusConflict,
		"LISTING_ALREADY_EXISTS",
		"This cat is already listed for adoption",
		"",
	)

	// Adoption request errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Adoption request not found",
		"",
	)

	ErrRequestAlreadyExists = NewBaseError(
		http.StatusConflict,
		"REQUEST_ALREADY_EXISTS",
		"Request already exists",
		"",
	)

	ErrSelfAdoption = NewBaseError(
		http.StatusBadRequest,
		"SELF_ADOPTION",
		"You cannot adopt your own cat",
		"",
	)

	ErrRequestNotPending = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_NOT_PENDING",
		"Only pending requests can be deleted",
		"",
	)

	ErrRequestAlreadyDecided = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_ALREADY_DECIDED",
		"This request has already been decided",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"Action must be Accepted or Rejected",
		"",
	)

	// Notification and device errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Storage errors
	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"Failed to store image",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
