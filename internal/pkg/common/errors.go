package common

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and HTTP status alongside the cause.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError marks a request-validation failure.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Predefined error codes.
const (
	// Client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// Server errors (5xx)
	ErrCodeInternalError  = "INTERNAL_ERROR"  // 500
	ErrCodeUpstreamError  = "UPSTREAM_ERROR"  // 502
	ErrCodeGatewayTimeout = "GATEWAY_TIMEOUT" // 504
)

// Predefined errors.
var (
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized", http.StatusUnauthorized, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "request timeout", http.StatusRequestTimeout, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError  = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrGatewayTimeout = NewError(ErrCodeGatewayTimeout, "gateway timeout", http.StatusGatewayTimeout, nil)

	// Domain errors
	ErrCacheFull     = NewError("CACHE_FULL", "tip cache is full", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "tip cache is disabled", http.StatusServiceUnavailable, nil)
	ErrCacheMiss     = NewError("CACHE_MISS", "tip cache miss", http.StatusServiceUnavailable, nil)
)

// NewUpstreamError wraps a failed external API call with its HTTP status and
// response body so the submission-level error report carries both.
func NewUpstreamError(service string, status int, body string) *CustomError {
	return &CustomError{
		Code:    ErrCodeUpstreamError,
		Message: fmt.Sprintf("%s API error: %d", service, status),
		Status:  http.StatusBadGateway,
		Err:     fmt.Errorf("%s API error: %d, %s", service, status, body),
	}
}
