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

func TestNotificationsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications", r.URL.Path)
		assert.Equal(t, "email", r.URL.Query().Get("channel"))
		assert.Equal(t, "sent", r.URL.Query().Get("status"))

		response := iof.ListResponse[iof.Notification]{
			Data:       []iof.Notification{{ID: "ntf-1", Channel: "email", Recipient: "ops@example.com", Status: "sent"}},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	notifications := &NotificationsClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := notifications.List(context.Background(), &iof.NotificationListOptions{Channel: "email", Status: "sent"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "ops@example.com", result.Data[0].Recipient)
}

func TestNotificationsClient_SendEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/email", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.SendEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "customer@example.com", request.To)
		assert.Equal(t, "Contract executed", request.Subject)

		notification := iof.Notification{ID: "ntf-2", Channel: "email", Recipient: request.To, Subject: request.Subject, Status: "queued"}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(notification)
	}))
	defer server.Close()

	notifications := &NotificationsClient{http: internalhttp.NewClient(server.URL, nil)}

	notification, err := notifications.SendEmail(context.Background(), &iof.SendEmailRequest{
		To:      "customer@example.com",
		Subject: "Contract executed",
		Body:    "Your murabaha contract is now active.",
	})
	require.NoError(t, err)
	assert.Equal(t, "queued", notification.Status)
	assert.Equal(t, "email", notification.Channel)
}

func TestNotificationsClient_SendSMS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/sms", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.SendSMSRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "+97150000000", request.To)

		notification := iof.Notification{ID: "ntf-3", Channel: "sms", Recipient: request.To, Status: "queued"}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(notification)
	}))
	defer server.Close()

	notifications := &NotificationsClient{http: internalhttp.NewClient(server.URL, nil)}

	notification, err := notifications.SendSMS(context.Background(), &iof.SendSMSRequest{
		To:   "+97150000000",
		Body: "Payment received.",
	})
	require.NoError(t, err)
	assert.Equal(t, "sms", notification.Channel)
}

func TestNotificationsClient_SendFromTemplate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/templates/tpl-1/send", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.SendFromTemplateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "customer@example.com", request.Recipient)
		assert.Equal(t, "CT-100", request.Variables["contract_id"])

		notification := iof.Notification{ID: "ntf-4", Channel: "email", Recipient: request.Recipient, Status: "queued"}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(notification)
	}))
	defer server.Close()

	notifications := &NotificationsClient{http: internalhttp.NewClient(server.URL, nil)}

	notification, err := notifications.SendFromTemplate(context.Background(), "tpl-1", &iof.SendFromTemplateRequest{
		Recipient: "customer@example.com",
		Variables: map[string]interface{}{"contract_id": "CT-100"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ntf-4", notification.ID)
}

func TestNotificationsClient_UpdatePreferences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/preferences/user-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var prefs iof.NotificationPreferences
		require.NoError(t, json.NewDecoder(r.Body).Decode(&prefs))
		assert.False(t, prefs.Channels["sms"])

		prefs.UserID = "user-1"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(prefs)
	}))
	defer server.Close()

	notifications := &NotificationsClient{http: internalhttp.NewClient(server.URL, nil)}

	prefs, err := notifications.UpdatePreferences(context.Background(), "user-1", &iof.NotificationPreferences{
		Channels: map[string]bool{"email": true, "sms": false},
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", prefs.UserID)
	assert.True(t, prefs.Channels["email"])
}
