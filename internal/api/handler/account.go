package handler

import (
	"encoding/json"
	"net/http"

	"accountd/internal/api/request"
	"accountd/internal/api/response"
	"accountd/internal/services/account"
)

// AccountHandler handles account-related endpoints
type AccountHandler struct {
	accountService *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Create handles POST /api/v1/account
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.accountService.Create(req.Username, req.Password, req.Email, req.Age); err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.accountService.Info()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AccountInfoFromModel(info))
}

// Get handles GET /api/v1/account
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.accountService.Info()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountInfoFromModel(info))
}

// Login handles POST /api/v1/account/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ok, err := h.accountService.Login(req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, NewInvalidCredentialsError())
		return
	}

	acct, err := h.accountService.Current()
	if err != nil {
		WriteError(w, err)
		return
	}

	lastLogin := acct.LastLogin
	response.JSON(w, http.StatusOK, response.LoginResponse{
		Authenticated: true,
		LastLogin:     &lastLogin,
	})
}

// UpdatePassword handles PATCH /api/v1/account/password
func (h *AccountHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ok, err := h.accountService.UpdatePassword(req.OldPassword, req.NewPassword)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, NewInvalidCredentialsError())
		return
	}

	response.NoContent(w)
}

// Age handles GET /api/v1/account/age
func (h *AccountHandler) Age(w http.ResponseWriter, r *http.Request) {
	days, err := h.accountService.AgeDays()
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountAge{Days: days})
}
