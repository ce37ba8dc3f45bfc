package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinance-io/iof-client/internal/auth"
	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/contracts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [], "pagination": {"page": 1, "limit": 20, "total": 0, "pages": 0}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/api/v1/contracts", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "pagination")
}

func TestClientAPIKeyHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewAPIKeyCredentials("secret-key"))

	_, err := client.Get(context.Background(), "/api/v1/health", nil)
	require.NoError(t, err)
}

func TestClientBearerTokenHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Api-Key"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewTokenCredentials("my-token"))

	_, err := client.Get(context.Background(), "/api/v1/health", nil)
	require.NoError(t, err)
}

func TestClientTenantHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tenant-42", r.Header.Get("X-Tenant-Id"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithTenantID("tenant-42"))

	_, err := client.Get(context.Background(), "/api/v1/health", nil)
	require.NoError(t, err)
}

func TestClientPostBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "murabaha", body["type"])
		assert.Equal(t, float64(100000), body["principal"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "c-1", "type": "murabaha", "status": "draft"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Post(context.Background(), "/api/v1/contracts", map[string]interface{}{
		"type":      "murabaha",
		"principal": 100000,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClientQueryParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	query := url.Values{}
	query.Set("status", "active")
	query.Set("page", "2")

	_, err := client.Get(context.Background(), "/api/v1/contracts", query)
	require.NoError(t, err)
}

func TestClientNoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Delete(context.Background(), "/api/v1/webhooks/wh-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestClientNotFoundNoRetry(t *testing.T) {
	t.Parallel()

	var attempts int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "not_found", "message": "contract not found"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/api/v1/contracts/missing", nil)
	require.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&attempts))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.True(t, iof.IsNotFoundError(err))
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(2, time.Millisecond, 5*time.Millisecond))

	_, err := client.Get(context.Background(), "/api/v1/contracts", nil)
	require.Error(t, err)
	// RetryMax 2 means one initial attempt plus two retries
	assert.Equal(t, int64(3), atomic.LoadInt64(&attempts))
	assert.True(t, iof.IsServerError(err))
}

func TestClientRetriesRateLimitThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)

			return
		}

		_, _ = w.Write([]byte(`{"id": "c-1"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/api/v1/contracts/c-1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), atomic.LoadInt64(&attempts))
}

func TestClientParsesErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": {"code": "invalid_principal", "message": "principal must be positive", "details": {"field": "principal"}}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Post(context.Background(), "/api/v1/contracts", map[string]string{})
	require.Error(t, err)

	apiErr := &iof.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_principal", apiErr.Code)
	assert.Equal(t, "principal must be positive", apiErr.Message)
	assert.Equal(t, "principal", apiErr.Details["field"])
	assert.True(t, iof.IsValidationError(err))
}

func TestClientUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithUserAgent("custom-agent/2.0"))

	_, err := client.Get(context.Background(), "/api/v1/health", nil)
	require.NoError(t, err)
}
