package response

import (
	"time"

	"accountd/internal/model"
)

// AccountInfo is the public account snapshot in API responses.
// The password and creation/login timestamps are deliberately excluded.
type AccountInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Active   bool   `json:"active"`
}

// AccountInfoFromModel converts a model.AccountInfo to a response AccountInfo
func AccountInfoFromModel(info model.AccountInfo) AccountInfo {
	return AccountInfo{
		Username: info.Username,
		Email:    info.Email,
		Age:      info.Age,
		Active:   info.Active,
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	Authenticated bool       `json:"authenticated"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// AccountAge reports the account's age in whole days
type AccountAge struct {
	Days int `json:"days"`
}
