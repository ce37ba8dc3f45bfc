package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// PortfoliosClient implements iof.PortfoliosClient.
type PortfoliosClient struct {
	http *internalhttp.Client
}

func (c *PortfoliosClient) List(ctx context.Context, opts *iof.TypeListOptions) (*iof.ListResponse[iof.Portfolio], error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing portfolios: %w", err)
	}

	var result iof.ListResponse[iof.Portfolio]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *PortfoliosClient) Get(ctx context.Context, portfolioID string) (*iof.Portfolio, error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio/%s", portfolioID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting portfolio %s: %w", portfolioID, err)
	}

	var portfolio iof.Portfolio
	if err := decodeInto(resp, &portfolio); err != nil {
		return nil, err
	}

	return &portfolio, nil
}

func (c *PortfoliosClient) Create(ctx context.Context, req *iof.CreatePortfolioRequest) (*iof.Portfolio, error) {
	resp, err := c.http.Post(ctx, apiPath("/portfolio"), req)
	if err != nil {
		return nil, fmt.Errorf("creating portfolio: %w", err)
	}

	var portfolio iof.Portfolio
	if err := decodeInto(resp, &portfolio); err != nil {
		return nil, err
	}

	return &portfolio, nil
}

func (c *PortfoliosClient) Update(ctx context.Context, portfolioID string, req *iof.UpdatePortfolioRequest) (*iof.Portfolio, error) {
	resp, err := c.http.Patch(ctx, apiPath("/portfolio/%s", portfolioID), req)
	if err != nil {
		return nil, fmt.Errorf("updating portfolio %s: %w", portfolioID, err)
	}

	var portfolio iof.Portfolio
	if err := decodeInto(resp, &portfolio); err != nil {
		return nil, err
	}

	return &portfolio, nil
}

func (c *PortfoliosClient) ListHoldings(ctx context.Context, portfolioID string) ([]iof.Holding, error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio/%s/holdings", portfolioID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing holdings of portfolio %s: %w", portfolioID, err)
	}

	var holdings []iof.Holding
	if err := decodeInto(resp, &holdings); err != nil {
		return nil, err
	}

	return holdings, nil
}

func (c *PortfoliosClient) AddHolding(ctx context.Context, portfolioID string, req *iof.AddHoldingRequest) (*iof.Holding, error) {
	resp, err := c.http.Post(ctx, apiPath("/portfolio/%s/holdings", portfolioID), req)
	if err != nil {
		return nil, fmt.Errorf("adding holding to portfolio %s: %w", portfolioID, err)
	}

	var holding iof.Holding
	if err := decodeInto(resp, &holding); err != nil {
		return nil, err
	}

	return &holding, nil
}

func (c *PortfoliosClient) GetPerformance(ctx context.Context, portfolioID string, opts *iof.DateRangeOptions) (*iof.PortfolioPerformance, error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio/%s/performance", portfolioID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting performance of portfolio %s: %w", portfolioID, err)
	}

	var performance iof.PortfolioPerformance
	if err := decodeInto(resp, &performance); err != nil {
		return nil, err
	}

	return &performance, nil
}

func (c *PortfoliosClient) GetMandate(ctx context.Context, portfolioID string) (*iof.InvestmentMandate, error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio/%s/mandate", portfolioID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting mandate of portfolio %s: %w", portfolioID, err)
	}

	var mandate iof.InvestmentMandate
	if err := decodeInto(resp, &mandate); err != nil {
		return nil, err
	}

	return &mandate, nil
}

func (c *PortfoliosClient) SetMandate(ctx context.Context, portfolioID string, mandate *iof.InvestmentMandate) (*iof.InvestmentMandate, error) {
	resp, err := c.http.Put(ctx, apiPath("/portfolio/%s/mandate", portfolioID), mandate)
	if err != nil {
		return nil, fmt.Errorf("setting mandate of portfolio %s: %w", portfolioID, err)
	}

	var updated iof.InvestmentMandate
	if err := decodeInto(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// CheckCompliance verifies the portfolio against its investment mandate.
func (c *PortfoliosClient) CheckCompliance(ctx context.Context, portfolioID string) (*iof.MandateCompliance, error) {
	resp, err := c.http.Get(ctx, apiPath("/portfolio/%s/compliance", portfolioID), nil)
	if err != nil {
		return nil, fmt.Errorf("checking compliance of portfolio %s: %w", portfolioID, err)
	}

	var compliance iof.MandateCompliance
	if err := decodeInto(resp, &compliance); err != nil {
		return nil, err
	}

	return &compliance, nil
}
