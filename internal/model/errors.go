package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrInvalidUsername = errors.New("username must be a non-empty string")
	ErrInvalidPassword = errors.New("password must be at least 6 characters long")
	ErrInvalidAge      = errors.New("age must be an integer between 0 and 150")

	// Email shape errors, kept distinct from generic validation so callers
	// can prompt for a corrected address
	ErrInvalidEmail = errors.New("invalid email format")

	// Lookup errors
	ErrInvalidUserID = errors.New("user ID must be a positive integer")

	// Account lifecycle errors
	ErrAccountExists = errors.New("account already exists")
	ErrNoAccount     = errors.New("no account exists")
)
