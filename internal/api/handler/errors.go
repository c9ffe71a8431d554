package handler

import (
	"net/http"

	"accountd/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeValidationFailed   = apierr.CodeValidationFailed
	CodeInvalidEmail       = apierr.CodeInvalidEmail
	CodeInvalidUserID      = apierr.CodeInvalidUserID
	CodeAccountExists      = apierr.CodeAccountExists
	CodeAccountNotFound    = apierr.CodeAccountNotFound
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeUpstreamError      = apierr.CodeUpstreamError
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError() error {
	return apierr.NewInvalidCredentialsError()
}

// NewUserNotFoundError creates a not-found error for a remote user lookup
func NewUserNotFoundError(userID int) error {
	return apierr.NewUserNotFoundError(userID)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
