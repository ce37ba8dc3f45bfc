package iof

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// APIError represents an error response from the IOF API.
type APIError struct {
	StatusCode int                    `json:"status_code"          yaml:"status_code"`
	Code       string                 `json:"code"                 yaml:"code"`
	Message    string                 `json:"message"              yaml:"message"`
	Details    map[string]interface{} `json:"details,omitempty"    yaml:"details,omitempty"`
	RetryAfter int                    `json:"retry_after,omitempty" yaml:"retry_after,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// errorEnvelope is the error body the IOF API returns.
type errorEnvelope struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

// NewAPIError builds an APIError from a response status and raw body. The
// body is expected to carry an {"error": {...}} envelope; anything else is
// used verbatim as the message.
func NewAPIError(statusCode int, body []byte, headers http.Header) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	} else if len(body) > 0 {
		apiErr.Message = string(body)
	}

	if statusCode == http.StatusTooManyRequests && headers != nil {
		if after, err := strconv.Atoi(headers.Get("Retry-After")); err == nil {
			apiErr.RetryAfter = after
		}
	}

	return apiErr
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrAmbiguousCredentials = errors.New("api key and access token are mutually exclusive")
	ErrCredentialsRequired  = errors.New("api key or access token is required")
	ErrTimeout              = errors.New("request timed out")
	ErrConnection           = errors.New("connection failed")
	ErrNoMoreItems          = errors.New("no more items")
)

// IsAuthenticationError reports whether err is a 401 from the API.
func IsAuthenticationError(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsAuthorizationError reports whether err is a 403 from the API.
func IsAuthorizationError(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFoundError reports whether err is a 404 from the API.
func IsNotFoundError(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsValidationError reports whether err is a 400 or 422 from the API.
func IsValidationError(err error) bool {
	return hasStatus(err, http.StatusBadRequest) || hasStatus(err, http.StatusUnprocessableEntity)
}

// IsRateLimitError reports whether err is a 429 from the API.
func IsRateLimitError(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsServerError reports whether err is a 5xx from the API.
func IsServerError(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
