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

func TestWebhooksClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateWebhookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "https://example.com/hooks/iof", request.URL)
		assert.Equal(t, []string{"contract.executed"}, request.Events)

		webhook := iof.Webhook{
			ID:      "wh-1",
			URL:     request.URL,
			Events:  request.Events,
			Secret:  "whsec_abc",
			Enabled: true,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(webhook)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	webhook, err := webhooks.Create(context.Background(), &iof.CreateWebhookRequest{
		URL:    "https://example.com/hooks/iof",
		Events: []string{"contract.executed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-1", webhook.ID)
	assert.Equal(t, "whsec_abc", webhook.Secret)
	assert.True(t, webhook.Enabled)
}

func TestWebhooksClient_ListFiltersByEnabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("enabled"))

		response := iof.ListResponse[iof.Webhook]{
			Data:       []iof.Webhook{{ID: "wh-2", Enabled: false}},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	enabled := false

	result, err := webhooks.List(context.Background(), &iof.EnabledListOptions{Enabled: &enabled})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.False(t, result.Data[0].Enabled)
}

func TestWebhooksClient_Disable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks/wh-1/disable", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		webhook := iof.Webhook{ID: "wh-1", Enabled: false}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(webhook)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	webhook, err := webhooks.Disable(context.Background(), "wh-1")
	require.NoError(t, err)
	assert.False(t, webhook.Enabled)
}

func TestWebhooksClient_Test(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks/wh-1/test", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		result := iof.WebhookTestResult{WebhookID: "wh-1", Delivered: true, ResponseCode: 200}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := webhooks.Test(context.Background(), "wh-1")
	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, 200, result.ResponseCode)
}

func TestWebhooksClient_RetryDelivery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks/wh-1/deliveries/dl-9/retry", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		delivery := iof.WebhookDelivery{
			ID:        "dl-9",
			WebhookID: "wh-1",
			EventType: "contract.executed",
			Status:    "pending",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(delivery)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	delivery, err := webhooks.RetryDelivery(context.Background(), "wh-1", "dl-9")
	require.NoError(t, err)
	assert.Equal(t, "pending", delivery.Status)
}

func TestWebhooksClient_ListEventTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/webhooks/event-types", r.URL.Path)

		types := []iof.EventType{
			{Name: "contract.created"},
			{Name: "contract.executed"},
			{Name: "zakat.calculated"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types)
	}))
	defer server.Close()

	webhooks := &WebhooksClient{http: internalhttp.NewClient(server.URL, nil)}

	types, err := webhooks.ListEventTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "zakat.calculated", types[2].Name)
}
