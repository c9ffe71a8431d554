package request

// CreateAccountRequest is the request body for creating the account
type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Password string `json:"password"`
}

// UpdatePasswordRequest is the request body for changing the password
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
