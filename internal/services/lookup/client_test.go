package lookup

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountd/internal/model"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Config{BaseURL: baseURL, Timeout: timeout}, nil, logger)
}

func TestFetchUserReturnsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "name": "John"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	record, err := client.FetchUser(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, float64(42), record["id"])
	assert.Equal(t, "John", record["name"])
}

func TestFetchUserNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	record, err := client.FetchUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFetchUserServerErrorIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	_, err := client.FetchUser(context.Background(), 42)
	require.ErrorIs(t, err, ErrNetwork)
	assert.ErrorContains(t, err, "HTTP 500")
	assert.ErrorContains(t, err, "42")
}

func TestFetchUserMalformedBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	_, err := client.FetchUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchUserTimeoutIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 20*time.Millisecond)

	_, err := client.FetchUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchUserConnectionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(srv.URL, 0)

	_, err := client.FetchUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchUserRejectsNonPositiveIDWithoutRequest(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	_, err := client.FetchUser(context.Background(), -1)
	assert.ErrorIs(t, err, model.ErrInvalidUserID)

	_, err = client.FetchUser(context.Background(), 0)
	assert.ErrorIs(t, err, model.ErrInvalidUserID)

	assert.Equal(t, int64(0), requests.Load())
}
