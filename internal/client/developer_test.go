package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

func TestDeveloperClient_CreateClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/clients", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateOAuthClientRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "portal-app", request.Name)

		oauthClient := iof.OAuthClient{
			ID:           "app-1",
			Name:         request.Name,
			ClientID:     "cid-123",
			ClientSecret: "secret-abc",
			RedirectURIs: request.RedirectURIs,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(oauthClient)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	oauthClient, err := developer.CreateClient(context.Background(), &iof.CreateOAuthClientRequest{
		Name:         "portal-app",
		RedirectURIs: []string{"https://portal.example.com/callback"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cid-123", oauthClient.ClientID)
	assert.Equal(t, "secret-abc", oauthClient.ClientSecret)
}

func TestDeveloperClient_RotateClientSecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/clients/app-1/rotate-secret", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		oauthClient := iof.OAuthClient{ID: "app-1", ClientID: "cid-123", ClientSecret: "secret-new"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(oauthClient)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	oauthClient, err := developer.RotateClientSecret(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, "secret-new", oauthClient.ClientSecret)
}

func TestDeveloperClient_ListAPIKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/api-keys", r.URL.Path)

		response := iof.ListResponse[iof.APIKey]{
			Data: []iof.APIKey{
				{ID: "key-1", Name: "ci", Prefix: "iof_live_", Scopes: []string{"contracts:read"}},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := developer.ListAPIKeys(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	// the key material itself is never echoed on listings
	assert.Empty(t, result.Data[0].Key)
}

func TestDeveloperClient_CreateAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/api-keys", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateAPIKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "ci", request.Name)

		key := iof.APIKey{
			ID:     "key-1",
			Name:   request.Name,
			Key:    "iof_live_plaintext",
			Prefix: "iof_live_",
			Scopes: request.Scopes,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(key)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	key, err := developer.CreateAPIKey(context.Background(), &iof.CreateAPIKeyRequest{
		Name:   "ci",
		Scopes: []string{"contracts:read"},
	})
	require.NoError(t, err)
	assert.Equal(t, "iof_live_plaintext", key.Key)
}

func TestDeveloperClient_DeleteAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/api-keys/key-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	require.NoError(t, developer.DeleteAPIKey(context.Background(), "key-1"))
}

func TestDeveloperClient_GetUsageMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/developer/usage", r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-01-31", r.URL.Query().Get("end_date"))

		metrics := iof.UsageMetrics{
			TotalRequests: 12345,
			TotalErrors:   17,
			ByEndpoint:    map[string]int64{"GET /api/v1/contracts": 9000},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(metrics)
	}))
	defer server.Close()

	developer := &DeveloperClient{http: internalhttp.NewClient(server.URL, nil)}

	metrics, err := developer.GetUsageMetrics(context.Background(), &iof.DateRangeOptions{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12345), metrics.TotalRequests)
	assert.Equal(t, int64(9000), metrics.ByEndpoint["GET /api/v1/contracts"])
}
