// Package lookup fetches user records from a remote read-only service.
// A lookup is a single attempt bounded by a fixed timeout: no retries,
// no caching, no circuit breaking.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"accountd/internal/model"
)

// ErrNetwork covers every transport- or protocol-level failure: timeouts,
// connection errors, unexpected HTTP statuses, and malformed bodies. A 404
// from the remote service is not a network error; it is the normal
// "no such user" outcome and FetchUser reports it as a nil record.
var ErrNetwork = errors.New("network error")

// Doer performs a single blocking HTTP request. *http.Client satisfies it;
// tests substitute a stub.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultTimeout bounds a single lookup request.
const DefaultTimeout = 10 * time.Second

// Client fetches user records from the remote service
type Client struct {
	baseURL string
	http    Doer
	timeout time.Duration
	logger  *slog.Logger
}

// Config holds configuration for the lookup client
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a lookup Client. If doer is nil a plain http.Client is used.
func New(cfg Config, doer Doer, logger *slog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if doer == nil {
		doer = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    doer,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// FetchUser retrieves the record for the given user id. It returns
// (nil, nil) when the remote service reports the user does not exist,
// so callers can tell "absent" apart from a failed fetch.
func (c *Client) FetchUser(ctx context.Context, userID int) (map[string]any, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: got %d", model.ErrInvalidUserID, userID)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for user %d: %v", ErrNetwork, userID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and connection failures both land here.
		c.logger.Warn("user lookup failed",
			slog.Int("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: fetching user %d: %v", ErrNetwork, userID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: fetching user %d: HTTP %d", ErrNetwork, userID, resp.StatusCode)
	}

	var record map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response for user %d: %v", ErrNetwork, userID, err)
	}

	return record, nil
}
