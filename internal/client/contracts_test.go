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

func TestContractsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		assert.Equal(t, "murabaha", r.URL.Query().Get("type"))

		response := iof.ListResponse[iof.Contract]{
			Data: []iof.Contract{
				{ID: "c-1", Type: "murabaha", Status: "active", Principal: 100000, Currency: "USD"},
				{ID: "c-2", Type: "murabaha", Status: "active", Principal: 250000, Currency: "AED"},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 2, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := contracts.List(context.Background(), &iof.ContractListOptions{
		Status: "active",
		Type:   "murabaha",
	})
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "c-1", result.Data[0].ID)
	assert.Equal(t, 2, result.Pagination.Total)
	assert.False(t, result.HasNextPage())
}

func TestContractsClient_ListSecondPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		response := iof.ListResponse[iof.Contract]{
			Data:       []iof.Contract{{ID: "c-11"}},
			Pagination: iof.PaginationInfo{Page: 2, Limit: 10, Total: 11, Pages: 2},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := contracts.List(context.Background(), &iof.ContractListOptions{
		ListOptions: iof.ListOptions{Page: 2, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Pagination.Page)
}

func TestContractsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		contract := iof.Contract{ID: "c-1", Type: "ijara", Status: "active", Principal: 50000, Currency: "USD"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contract)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	contract, err := contracts.Get(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "ijara", contract.Type)
	assert.Equal(t, float64(50000), contract.Principal)
}

func TestContractsClient_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": "not_found", "message": "contract not found"}}`))
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	_, err := contracts.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, iof.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "getting contract missing")
}

func TestContractsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateContractRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "murabaha", request.Type)
		assert.Equal(t, float64(100000), request.Principal)

		contract := iof.Contract{
			ID:        "c-new",
			Type:      request.Type,
			Status:    "draft",
			Principal: request.Principal,
			Currency:  request.Currency,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(contract)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	contract, err := contracts.Create(context.Background(), &iof.CreateContractRequest{
		Type:      "murabaha",
		Principal: 100000,
		Currency:  "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "c-new", contract.ID)
	assert.Equal(t, "draft", contract.Status)
}

func TestContractsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var request iof.UpdateContractRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.NotNil(t, request.Status)
		assert.Equal(t, "suspended", *request.Status)

		contract := iof.Contract{ID: "c-1", Status: "suspended"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contract)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	status := "suspended"

	contract, err := contracts.Update(context.Background(), "c-1", &iof.UpdateContractRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "suspended", contract.Status)
}

func TestContractsClient_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1/execute", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		contract := iof.Contract{ID: "c-1", Status: "active"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contract)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	contract, err := contracts.Execute(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "active", contract.Status)
}

func TestContractsClient_Terminate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1/terminate", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "early settlement", body["reason"])

		contract := iof.Contract{ID: "c-1", Status: "terminated"}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(contract)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	contract, err := contracts.Terminate(context.Background(), "c-1", "early settlement")
	require.NoError(t, err)
	assert.Equal(t, "terminated", contract.Status)
}

func TestContractsClient_Validate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/validate", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		result := iof.ValidationResult{
			Valid:  false,
			Errors: []string{"principal must be positive"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := contracts.Validate(context.Background(), &iof.CreateContractRequest{Type: "murabaha"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "principal must be positive")
}

func TestContractsClient_GetHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1/history", r.URL.Path)

		response := iof.ListResponse[iof.ContractEvent]{
			Data: []iof.ContractEvent{
				{ID: "ev-1", ContractID: "c-1", Type: "created"},
				{ID: "ev-2", ContractID: "c-1", Type: "executed"},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 2, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	history, err := contracts.GetHistory(context.Background(), "c-1", nil)
	require.NoError(t, err)
	require.Len(t, history.Data, 2)
	assert.Equal(t, "executed", history.Data[1].Type)
}

func TestContractsClient_GetDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/contracts/c-1/documents", r.URL.Path)

		documents := []iof.Document{
			{ID: "doc-1", Name: "agreement.pdf", Type: "agreement"},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(documents)
	}))
	defer server.Close()

	contracts := &ContractsClient{http: internalhttp.NewClient(server.URL, nil)}

	documents, err := contracts.GetDocuments(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "agreement.pdf", documents[0].Name)
}
