package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies failures independently of the transport that reports them.
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindRemoteUnavailable  Kind = "remote-unavailable"
	KindNotFound           Kind = "not-found"
	KindValidationFailed   Kind = "validation-failed"
	KindGenerationFallback Kind = "generation-fallback"
	KindInternal           Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors
// derived with WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrSessionExpired = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session expired, please sign in again",
		"",
	)

	ErrRemoteUnavailable = NewBaseError(
		KindRemoteUnavailable,
		http.StatusBadGateway,
		"REMOTE_UNAVAILABLE",
		"Spreadsheet service unavailable",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidationFailed,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrGenerationFallback is logged, never returned to callers.
	ErrGenerationFallback = NewBaseError(
		KindGenerationFallback,
		http.StatusOK,
		"GENERATION_FALLBACK",
		"Identifier generated without collision check",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// RemoteCallError reports a failed call to the spreadsheet service, implementing the AppError interface
type RemoteCallError struct {
	base *BaseError
	err  error
}

// NewRemoteCallError attaches the transport cause to one of the predefined errors.
func NewRemoteCallError(base *BaseError, err error, details string) AppError {
	return &RemoteCallError{
		base: base.WithDetails(details),
		err:  err,
	}
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	return errors.Wrap(e.err, e.base.Error()).Error()
}

func (e *RemoteCallError) Unwrap() []error {
	return []error{e.base, e.err}
}

func (e *RemoteCallError) Kind() Kind {
	return e.base.Kind()
}

// HTTPCode returns the HTTP status code
func (e *RemoteCallError) HTTPCode() int {
	return e.base.HTTPCode()
}

// ErrorCode returns the business error code
func (e *RemoteCallError) ErrorCode() string {
	return e.base.ErrorCode()
}

// Message returns the user-friendly error message
func (e *RemoteCallError) Message() string {
	return e.base.Message()
}

// Details returns detailed error information
func (e *RemoteCallError) Details() string {
	return e.base.Details()
}

// KindOf reports the Kind of the first AppError in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
