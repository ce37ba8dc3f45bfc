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

func TestZakatClient_ListCalculations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/zakat/calculations", r.URL.Path)
		assert.Equal(t, "2026", r.URL.Query().Get("year"))

		response := iof.ListResponse[iof.ZakatCalculation]{
			Data: []iof.ZakatCalculation{
				{ID: "zc-1", AccountID: "acc-1", Year: 2026, ZakatDue: 2500, Currency: "USD"},
			},
			Pagination: iof.PaginationInfo{Page: 1, Limit: 20, Total: 1, Pages: 1},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := zakat.ListCalculations(context.Background(), &iof.ZakatCalculationListOptions{Year: 2026})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, float64(2500), result.Data[0].ZakatDue)
}

func TestZakatClient_Calculate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/zakat/calculate", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acc-1", body["account_id"])
		assert.Equal(t, float64(2026), body["year"])

		calculation := iof.ZakatCalculation{
			ID:          "zc-1",
			AccountID:   "acc-1",
			Year:        2026,
			TotalWealth: 100000,
			Nisab:       5525,
			ZakatDue:    2500,
			Currency:    "USD",
			Status:      "pending",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(calculation)
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	calculation, err := zakat.Calculate(context.Background(), "acc-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, "zc-1", calculation.ID)
	assert.Equal(t, float64(2500), calculation.ZakatDue)
}

func TestZakatClient_CreatePayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/zakat/payments", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var request iof.CreateZakatPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "zc-1", request.CalculationID)

		payment := iof.ZakatPayment{
			ID:            "zp-1",
			CalculationID: request.CalculationID,
			Amount:        request.Amount,
			Currency:      request.Currency,
			Status:        "completed",
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(payment)
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	payment, err := zakat.CreatePayment(context.Background(), &iof.CreateZakatPaymentRequest{
		CalculationID: "zc-1",
		Amount:        2500,
		Currency:      "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "zp-1", payment.ID)
	assert.Equal(t, "completed", payment.Status)
}

func TestZakatClient_CalculatePurification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/zakat/purification/calculate", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		result := iof.PurificationResult{
			AccountID:          "acc-1",
			Year:               2026,
			ImpermissibleGains: 1200,
			PurificationDue:    1200,
			Currency:           "USD",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	result, err := zakat.CalculatePurification(context.Background(), "acc-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, float64(1200), result.PurificationDue)
}

func TestZakatClient_GetNisabRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/zakat/nisab", r.URL.Path)
		assert.Equal(t, "AED", r.URL.Query().Get("currency"))

		rates := iof.NisabRates{
			Currency:    "AED",
			GoldNisab:   20300,
			SilverNisab: 1950,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rates)
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	rates, err := zakat.GetNisabRates(context.Background(), "AED")
	require.NoError(t, err)
	assert.Equal(t, float64(20300), rates.GoldNisab)
}

func TestZakatClient_GetNisabRatesDefaultsToUSD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(iof.NisabRates{Currency: "USD"})
	}))
	defer server.Close()

	zakat := &ZakatClient{http: internalhttp.NewClient(server.URL, nil)}

	rates, err := zakat.GetNisabRates(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "USD", rates.Currency)
}
