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

func TestAMLClient_ListRules(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/rules", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("enabled"))

		response := iof.ListResponse[iof.AMLRule]{
			Data: []iof.AMLRule{
				{ID: "rule-1", Name: "large-cash-deposit", Severity: "high", Enabled: true},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	enabled := true

	result, err := aml.ListRules(context.Background(), &iof.EnabledListOptions{Enabled: &enabled})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "large-cash-deposit", result.Data[0].Name)
}

func TestAMLClient_CreateScreening(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/screening", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateAMLScreeningRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "cust-1", request.EntityID)
		assert.Equal(t, "customer", request.EntityType)

		screening := iof.AMLScreening{
			ID:         "scr-1",
			EntityID:   request.EntityID,
			EntityType: request.EntityType,
			Status:     "pending",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(screening)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	screening, err := aml.CreateScreening(context.Background(), &iof.CreateAMLScreeningRequest{
		EntityID:   "cust-1",
		EntityType: "customer",
	})
	require.NoError(t, err)
	assert.Equal(t, "scr-1", screening.ID)
	assert.Equal(t, "pending", screening.Status)
}

func TestAMLClient_ListAlerts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/alerts", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("status"))
		assert.Equal(t, "high", r.URL.Query().Get("severity"))

		response := iof.ListResponse[iof.AMLAlert]{
			Data: []iof.AMLAlert{
				{ID: "alert-1", Severity: "high", Status: "open", EntityID: "cust-1"},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := aml.ListAlerts(context.Background(), &iof.AlertListOptions{
		Status:   "open",
		Severity: "high",
	})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "alert-1", result.Data[0].ID)
}

func TestAMLClient_UpdateAlert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/alerts/alert-1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var request iof.UpdateAMLAlertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.NotNil(t, request.AssignedTo)
		assert.Equal(t, "analyst-7", *request.AssignedTo)

		alert := iof.AMLAlert{ID: "alert-1", Status: "investigating"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(alert)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	assignee := "analyst-7"

	alert, err := aml.UpdateAlert(context.Background(), "alert-1", &iof.UpdateAMLAlertRequest{AssignedTo: &assignee})
	require.NoError(t, err)
	assert.Equal(t, "investigating", alert.Status)
}

func TestAMLClient_CreateCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/cases", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateAMLCaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, []string{"alert-1", "alert-2"}, request.Alerts)

		amlCase := iof.AMLCase{
			ID:       "case-1",
			Title:    request.Title,
			Status:   "open",
			Priority: request.Priority,
			Alerts:   request.Alerts,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(amlCase)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	amlCase, err := aml.CreateCase(context.Background(), &iof.CreateAMLCaseRequest{
		Title:    "structuring pattern on cust-1",
		Priority: "high",
		Alerts:   []string{"alert-1", "alert-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "case-1", amlCase.ID)
	assert.Equal(t, "open", amlCase.Status)
}

func TestAMLClient_CloseCase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/cases/case-1/close", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "false positive", body["resolution"])

		amlCase := iof.AMLCase{ID: "case-1", Status: "closed"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(amlCase)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	amlCase, err := aml.CloseCase(context.Background(), "case-1", "false positive")
	require.NoError(t, err)
	assert.Equal(t, "closed", amlCase.Status)
}

func TestAMLClient_DeleteRule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/aml/rules/rule-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	aml := &AMLClient{http: internalhttp.NewClient(server.URL, nil)}

	require.NoError(t, aml.DeleteRule(context.Background(), "rule-1"))
}
