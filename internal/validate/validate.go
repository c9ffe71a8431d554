// Package validate provides the pure field validators used when
// constructing an account. The functions hold no state; the account
// service depends on them by call.
package validate

import (
	"fmt"
	"strings"

	"accountd/internal/model"
)

// Age bounds for an account holder.
const (
	MinAge = 0
	MaxAge = 150
)

// MinPasswordLength is the minimum accepted password length at creation.
// Note password updates do not re-check this (documented limitation).
const MinPasswordLength = 6

// NormalizeEmail returns the canonical form of an email address:
// surrounding whitespace trimmed and all characters lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Email checks that the address is well-formed after normalization.
// The rules are deliberately shallow: exactly one '@', a non-empty local
// part, and a domain containing at least one dot.
func Email(email string) error {
	normalized := NormalizeEmail(email)

	if normalized == "" {
		return fmt.Errorf("%w: email cannot be empty", model.ErrInvalidEmail)
	}
	if strings.Count(normalized, "@") != 1 {
		return fmt.Errorf("%w: %q must contain exactly one '@' symbol", model.ErrInvalidEmail, email)
	}

	local, domain, _ := strings.Cut(normalized, "@")
	if local == "" || domain == "" {
		return fmt.Errorf("%w: %q must have both local and domain parts", model.ErrInvalidEmail, email)
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("%w: domain of %q must contain at least one dot", model.ErrInvalidEmail, email)
	}

	return nil
}

// Username checks that the username is non-empty after trimming.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return model.ErrInvalidUsername
	}
	return nil
}

// Password checks the minimum length requirement for a new account.
func Password(password string) error {
	if len(password) < MinPasswordLength {
		return model.ErrInvalidPassword
	}
	return nil
}

// Age checks that the age is within the accepted range.
func Age(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: got %d", model.ErrInvalidAge, age)
	}
	return nil
}
