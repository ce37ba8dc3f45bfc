package iofclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinance-io/iof-client/pkg/iof"
	"github.com/iofinance-io/iof-client/pkg/iofclient"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := iofclient.New(nil)
	require.ErrorIs(t, err, iof.ErrConfigRequired)
}

func TestNew_MissingBaseURL(t *testing.T) {
	t.Parallel()

	_, err := iofclient.New(&iof.Config{APIKey: "key"})
	require.ErrorIs(t, err, iof.ErrBaseURLRequired)
}

func TestNew_AmbiguousCredentials(t *testing.T) {
	t.Parallel()

	_, err := iofclient.New(&iof.Config{
		BaseURL:     "https://api.iofinance.io",
		APIKey:      "key",
		AccessToken: "token",
	})
	require.ErrorIs(t, err, iof.ErrAmbiguousCredentials)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(iof.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	client, err := iofclient.NewWithAPIKey(server.URL, "my-key")
	require.NoError(t, err)

	status, err := client.Observability().GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(iof.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	client, err := iofclient.NewWithToken(server.URL, "my-token")
	require.NoError(t, err)

	_, err = client.Observability().GetHealth(context.Background())
	require.NoError(t, err)
}
