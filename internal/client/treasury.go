package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// TreasuryClient implements iof.TreasuryClient.
type TreasuryClient struct {
	http *internalhttp.Client
}

func (c *TreasuryClient) ListPositions(ctx context.Context, currency string, opts *iof.ListOptions) (*iof.ListResponse[iof.TreasuryPosition], error) {
	query := opts.ToValues()
	if currency != "" {
		query.Set("currency", currency)
	}

	resp, err := c.http.Get(ctx, apiPath("/treasury/positions"), query)
	if err != nil {
		return nil, fmt.Errorf("listing treasury positions: %w", err)
	}

	var result iof.ListResponse[iof.TreasuryPosition]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *TreasuryClient) GetPosition(ctx context.Context, positionID string) (*iof.TreasuryPosition, error) {
	resp, err := c.http.Get(ctx, apiPath("/treasury/positions/%s", positionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting treasury position %s: %w", positionID, err)
	}

	var position iof.TreasuryPosition
	if err := decodeInto(resp, &position); err != nil {
		return nil, err
	}

	return &position, nil
}

func (c *TreasuryClient) GetPositionByAccount(ctx context.Context, accountID, currency string) (*iof.TreasuryPosition, error) {
	query := url.Values{}
	query.Set("account_id", accountID)

	if currency != "" {
		query.Set("currency", currency)
	}

	resp, err := c.http.Get(ctx, apiPath("/treasury/positions/by-account"), query)
	if err != nil {
		return nil, fmt.Errorf("getting treasury position for account %s: %w", accountID, err)
	}

	var position iof.TreasuryPosition
	if err := decodeInto(resp, &position); err != nil {
		return nil, err
	}

	return &position, nil
}

// GetLiquidityForecast projects liquidity over the horizon in days,
// defaulting to 30.
func (c *TreasuryClient) GetLiquidityForecast(ctx context.Context, accountID string, days int) (*iof.LiquidityForecast, error) {
	if days <= 0 {
		days = 30
	}

	query := url.Values{}
	query.Set("account_id", accountID)
	query.Set("days", strconv.Itoa(days))

	resp, err := c.http.Get(ctx, apiPath("/treasury/liquidity/forecast"), query)
	if err != nil {
		return nil, fmt.Errorf("getting liquidity forecast for account %s: %w", accountID, err)
	}

	var forecast iof.LiquidityForecast
	if err := decodeInto(resp, &forecast); err != nil {
		return nil, err
	}

	return &forecast, nil
}

func (c *TreasuryClient) GetCashFlow(ctx context.Context, accountID string, opts *iof.DateRangeOptions) (*iof.CashFlowReport, error) {
	query := opts.ToValues()
	query.Set("account_id", accountID)

	resp, err := c.http.Get(ctx, apiPath("/treasury/cash-flow"), query)
	if err != nil {
		return nil, fmt.Errorf("getting cash flow for account %s: %w", accountID, err)
	}

	var report iof.CashFlowReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *TreasuryClient) ListTransfers(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.TreasuryTransfer], error) {
	resp, err := c.http.Get(ctx, apiPath("/treasury/transfers"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing treasury transfers: %w", err)
	}

	var result iof.ListResponse[iof.TreasuryTransfer]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *TreasuryClient) CreateTransfer(ctx context.Context, req *iof.CreateTreasuryTransferRequest) (*iof.TreasuryTransfer, error) {
	resp, err := c.http.Post(ctx, apiPath("/treasury/transfers"), req)
	if err != nil {
		return nil, fmt.Errorf("creating treasury transfer: %w", err)
	}

	var transfer iof.TreasuryTransfer
	if err := decodeInto(resp, &transfer); err != nil {
		return nil, err
	}

	return &transfer, nil
}
