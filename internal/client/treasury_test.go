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

func TestTreasuryClient_ListPositions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/treasury/positions", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("currency"))

		response := iof.ListResponse[iof.TreasuryPosition]{
			Data: []iof.TreasuryPosition{
				{ID: "pos-1", AccountID: "acc-1", Currency: "USD", Balance: 500000, Available: 420000, Reserved: 80000},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := treasury.ListPositions(context.Background(), "USD", nil)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, float64(420000), result.Data[0].Available)
}

func TestTreasuryClient_GetPositionByAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/treasury/positions/by-account", r.URL.Path)
		assert.Equal(t, "acc-1", r.URL.Query().Get("account_id"))
		assert.Equal(t, "AED", r.URL.Query().Get("currency"))

		position := iof.TreasuryPosition{ID: "pos-2", AccountID: "acc-1", Currency: "AED", Balance: 100000}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(position)
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	position, err := treasury.GetPositionByAccount(context.Background(), "acc-1", "AED")
	require.NoError(t, err)
	assert.Equal(t, "pos-2", position.ID)
}

func TestTreasuryClient_GetLiquidityForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/treasury/liquidity/forecast", r.URL.Path)
		assert.Equal(t, "acc-1", r.URL.Query().Get("account_id"))
		assert.Equal(t, "90", r.URL.Query().Get("days"))

		forecast := iof.LiquidityForecast{AccountID: "acc-1", Days: 90}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(forecast)
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	forecast, err := treasury.GetLiquidityForecast(context.Background(), "acc-1", 90)
	require.NoError(t, err)
	assert.Equal(t, 90, forecast.Days)
}

func TestTreasuryClient_GetLiquidityForecastDefaultHorizon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(iof.LiquidityForecast{AccountID: "acc-1", Days: 30})
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	_, err := treasury.GetLiquidityForecast(context.Background(), "acc-1", 0)
	require.NoError(t, err)
}

func TestTreasuryClient_GetCashFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/treasury/cash-flow", r.URL.Path)
		assert.Equal(t, "acc-1", r.URL.Query().Get("account_id"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start_date"))

		report := iof.CashFlowReport{AccountID: "acc-1", Inflows: 90000, Outflows: 65000, Net: 25000}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(report)
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	report, err := treasury.GetCashFlow(context.Background(), "acc-1", &iof.DateRangeOptions{
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(25000), report.Net)
}

func TestTreasuryClient_CreateTransfer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/treasury/transfers", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateTreasuryTransferRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "acc-1", request.FromAccountID)
		assert.Equal(t, "acc-2", request.ToAccountID)

		transfer := iof.TreasuryTransfer{
			ID:            "tr-1",
			FromAccountID: request.FromAccountID,
			ToAccountID:   request.ToAccountID,
			Amount:        request.Amount,
			Currency:      request.Currency,
			Status:        "pending",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(transfer)
	}))
	defer server.Close()

	treasury := &TreasuryClient{http: internalhttp.NewClient(server.URL, nil)}

	transfer, err := treasury.CreateTransfer(context.Background(), &iof.CreateTreasuryTransferRequest{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        10000,
		Currency:      "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "tr-1", transfer.ID)
	assert.Equal(t, "pending", transfer.Status)
}
