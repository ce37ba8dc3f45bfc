package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ZakatClient implements iof.ZakatClient.
type ZakatClient struct {
	http *internalhttp.Client
}

func (c *ZakatClient) ListCalculations(ctx context.Context, opts *iof.ZakatCalculationListOptions) (*iof.ListResponse[iof.ZakatCalculation], error) {
	resp, err := c.http.Get(ctx, apiPath("/zakat/calculations"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing zakat calculations: %w", err)
	}

	var result iof.ListResponse[iof.ZakatCalculation]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ZakatClient) GetCalculation(ctx context.Context, calculationID string) (*iof.ZakatCalculation, error) {
	resp, err := c.http.Get(ctx, apiPath("/zakat/calculations/%s", calculationID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting zakat calculation %s: %w", calculationID, err)
	}

	var calculation iof.ZakatCalculation
	if err := decodeInto(resp, &calculation); err != nil {
		return nil, err
	}

	return &calculation, nil
}

func (c *ZakatClient) CreateCalculation(ctx context.Context, req *iof.CreateZakatCalculationRequest) (*iof.ZakatCalculation, error) {
	resp, err := c.http.Post(ctx, apiPath("/zakat/calculations"), req)
	if err != nil {
		return nil, fmt.Errorf("creating zakat calculation: %w", err)
	}

	var calculation iof.ZakatCalculation
	if err := decodeInto(resp, &calculation); err != nil {
		return nil, err
	}

	return &calculation, nil
}

// Calculate runs a server-side zakat assessment for an account year.
func (c *ZakatClient) Calculate(ctx context.Context, accountID string, year int) (*iof.ZakatCalculation, error) {
	body := map[string]interface{}{
		"account_id": accountID,
		"year":       year,
	}

	resp, err := c.http.Post(ctx, apiPath("/zakat/calculate"), body)
	if err != nil {
		return nil, fmt.Errorf("calculating zakat for account %s: %w", accountID, err)
	}

	var calculation iof.ZakatCalculation
	if err := decodeInto(resp, &calculation); err != nil {
		return nil, err
	}

	return &calculation, nil
}

func (c *ZakatClient) ListPayments(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.ZakatPayment], error) {
	resp, err := c.http.Get(ctx, apiPath("/zakat/payments"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing zakat payments: %w", err)
	}

	var result iof.ListResponse[iof.ZakatPayment]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ZakatClient) GetPayment(ctx context.Context, paymentID string) (*iof.ZakatPayment, error) {
	resp, err := c.http.Get(ctx, apiPath("/zakat/payments/%s", paymentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting zakat payment %s: %w", paymentID, err)
	}

	var payment iof.ZakatPayment
	if err := decodeInto(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

func (c *ZakatClient) CreatePayment(ctx context.Context, req *iof.CreateZakatPaymentRequest) (*iof.ZakatPayment, error) {
	resp, err := c.http.Post(ctx, apiPath("/zakat/payments"), req)
	if err != nil {
		return nil, fmt.Errorf("creating zakat payment: %w", err)
	}

	var payment iof.ZakatPayment
	if err := decodeInto(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// CalculatePurification computes the purification amount for impermissible
// gains in an account year.
func (c *ZakatClient) CalculatePurification(ctx context.Context, accountID string, year int) (*iof.PurificationResult, error) {
	body := map[string]interface{}{
		"account_id": accountID,
		"year":       year,
	}

	resp, err := c.http.Post(ctx, apiPath("/zakat/purification/calculate"), body)
	if err != nil {
		return nil, fmt.Errorf("calculating purification for account %s: %w", accountID, err)
	}

	var result iof.PurificationResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetNisabRates returns the nisab thresholds, defaulting to USD.
func (c *ZakatClient) GetNisabRates(ctx context.Context, currency string) (*iof.NisabRates, error) {
	if currency == "" {
		currency = "USD"
	}

	query := url.Values{}
	query.Set("currency", currency)

	resp, err := c.http.Get(ctx, apiPath("/zakat/nisab"), query)
	if err != nil {
		return nil, fmt.Errorf("getting nisab rates: %w", err)
	}

	var rates iof.NisabRates
	if err := decodeInto(resp, &rates); err != nil {
		return nil, err
	}

	return &rates, nil
}
