package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"accountd/internal/api/handler"
	"accountd/internal/api/middleware"
	"accountd/internal/services/account"
	"accountd/internal/services/lookup"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AccountService *account.Service
	LookupClient   *lookup.Client
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.AccountService)
	lookupHandler := handler.NewLookupHandler(cfg.LookupClient)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes
	api.HandleFunc("/account", accountHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/account", accountHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/account/login", accountHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/account/password", accountHandler.UpdatePassword).Methods(http.MethodPatch)
	api.HandleFunc("/account/age", accountHandler.Age).Methods(http.MethodGet)

	// Remote lookup routes
	api.HandleFunc("/users/{id}", lookupHandler.GetUser).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
