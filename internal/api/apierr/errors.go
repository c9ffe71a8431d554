package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"accountd/internal/model"
	"accountd/internal/services/lookup"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidUserID      = "INVALID_USER_ID"
	CodeAccountExists      = "ACCOUNT_EXISTS"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Wrapped sentinel messages
// carry the offending value, so the original error text is surfaced.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation errors
	case errors.Is(err, model.ErrInvalidUsername),
		errors.Is(err, model.ErrInvalidPassword),
		errors.Is(err, model.ErrInvalidAge):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, err.Error()}}
	case errors.Is(err, model.ErrInvalidEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidEmail, err.Error()}}
	case errors.Is(err, model.ErrInvalidUserID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidUserID, err.Error()}}

	// Account lifecycle errors
	case errors.Is(err, model.ErrAccountExists):
		return &httpError{http.StatusConflict, APIError{CodeAccountExists, "Account already exists"}}
	case errors.Is(err, model.ErrNoAccount):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "No account exists"}}

	// Lookup errors
	case errors.Is(err, lookup.ErrNetwork):
		return &httpError{http.StatusBadGateway, APIError{CodeUpstreamError, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid password"}}
}

// NewUserNotFoundError creates a not-found error for a remote user lookup
func NewUserNotFoundError(userID int) error {
	return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, fmt.Sprintf("User %d not found", userID)}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
