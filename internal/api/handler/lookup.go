package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"accountd/internal/api/response"
	"accountd/internal/services/lookup"
)

// LookupHandler handles remote user lookup endpoints
type LookupHandler struct {
	client *lookup.Client
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(client *lookup.Client) *LookupHandler {
	return &LookupHandler{
		client: client,
	}
}

// GetUser handles GET /api/v1/users/{id}
func (h *LookupHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	userID, err := strconv.Atoi(idStr)
	if err != nil {
		WriteError(w, NewInvalidRequestError("user id must be an integer"))
		return
	}

	record, err := h.client.FetchUser(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if record == nil {
		// Absent is a normal outcome upstream; it maps to 404 here.
		WriteError(w, NewUserNotFoundError(userID))
		return
	}

	response.JSON(w, http.StatusOK, record)
}
