package errors

import (
	"net/http"

	"tetatete/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrPhoneAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_EXISTS",
		"This phone number is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email, phone or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"OAuth authentication failed",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_INVALID",
		"Invalid authorization code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"No category information found",
		"",
	)

	ErrCategoryAlreadyFilled = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_FILLED",
		"Category information is already filled",
		"",
	)

	ErrCategoryInconsistent = NewBaseError(
		http.StatusInternalServerError,
		"CATEGORY_INCONSISTENT",
		"More than one category is filled for the user",
		"",
	)

	// Match-related errors
	ErrSelfMatch = NewBaseError(
		http.StatusBadRequest,
		"SELF_MATCH",
		"You cannot send a like to yourself",
		"",
	)

	ErrCategoryMismatch = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_MISMATCH",
		"Both users must be in the same category",
		"",
	)

	ErrProposalAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROPOSAL_ALREADY_EXISTS",
		"You have already liked this user",
		"",
	)

	ErrProposalNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPOSAL_NOT_FOUND",
		"No like between these users",
		"",
	)

	ErrProposalAlreadyMatched = NewBaseError(
		http.StatusConflict,
		"PROPOSAL_ALREADY_MATCHED",
		"These users are already matched",
		"",
	)

	ErrNoCandidates = NewBaseError(
		http.StatusNotFound,
		"NO_CANDIDATES",
		"No users with the same category",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionRequired = NewBaseError(
		http.StatusPaymentRequired,
		"SUBSCRIPTION_REQUIRED",
		"An active subscription is required for this action",
		"",
	)

	ErrSubscriptionAlreadyActive = NewBaseError(
		http.StatusConflict,
		"SUBSCRIPTION_ALREADY_ACTIVE",
		"The subscription is already active",
		"",
	)

	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"No active subscription found",
		"",
	)

	// Chat-related errors
	ErrChatNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"Chat not found",
		"",
	)

	ErrChatAccessDenied = NewBaseError(
		http.StatusForbidden,
		"CHAT_ACCESS_DENIED",
		"You are not a member of this chat",
		"",
	)

	ErrChatAlreadyJoined = NewBaseError(
		http.StatusConflict,
		"CHAT_ALREADY_JOINED",
		"You are already in this chat",
		"",
	)

	ErrChatAlreadyLeft = NewBaseError(
		http.StatusConflict,
		"CHAT_ALREADY_LEFT",
		"You have already left this chat",
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
