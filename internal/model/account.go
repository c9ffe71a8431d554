package model

import "time"

// Account represents the single managed user account: credentials plus
// profile fields. It is only ever constructed in a fully valid state; see
// the account service for the validating constructor.
type Account struct {
	Username string // trimmed of surrounding whitespace
	Password string // plaintext, compared by equality (documented limitation)
	Email    string // trimmed and lowercased
	Age      int    // 0..150

	CreatedAt time.Time
	LastLogin time.Time // zero until the first successful login
	Active    bool      // defaults to true; reserved for future lifecycle use
}

// HasLoggedIn reports whether the account has ever authenticated.
func (a *Account) HasLoggedIn() bool {
	return !a.LastLogin.IsZero()
}

// AccountInfo is the read-only subset of account fields safe to expose.
// It deliberately excludes the password and both timestamps.
type AccountInfo struct {
	Username string
	Email    string
	Age      int
	Active   bool
}

// Info returns the public snapshot of the account.
func (a *Account) Info() AccountInfo {
	return AccountInfo{
		Username: a.Username,
		Email:    a.Email,
		Age:      a.Age,
		Active:   a.Active,
	}
}
