package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// AnalyticsClient implements iof.AnalyticsClient. Every view returns a
// free-form iof.AnalyticsReport since the shapes differ per view.
type AnalyticsClient struct {
	http *internalhttp.Client
}

func (c *AnalyticsClient) GetContractsOverview(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/contracts/overview", opts)
}

func (c *AnalyticsClient) GetContractsExposure(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/contracts/exposure", opts)
}

func (c *AnalyticsClient) GetShariahFlags(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/shariah/flags", opts)
}

func (c *AnalyticsClient) GetShariahHeatmap(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/shariah/heatmap", opts)
}

func (c *AnalyticsClient) GetReconciliationExceptions(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/reconciliation/exceptions", opts)
}

func (c *AnalyticsClient) GetUsageMetrics(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/usage/metrics", opts)
}

func (c *AnalyticsClient) GetUsageByRail(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/usage/by-rail", opts)
}

func (c *AnalyticsClient) GetBillingAggregates(ctx context.Context, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	return c.view(ctx, "/analytics/billing/aggregates", opts)
}

// Query runs a named analytics view with arbitrary filters.
func (c *AnalyticsClient) Query(ctx context.Context, viewName string, filters map[string]interface{}) (iof.AnalyticsReport, error) {
	req := &iof.CustomQueryRequest{ViewName: viewName, Filters: filters}

	resp, err := c.http.Post(ctx, apiPath("/analytics/custom"), req)
	if err != nil {
		return nil, fmt.Errorf("running analytics view %s: %w", viewName, err)
	}

	var report iof.AnalyticsReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return report, nil
}

func (c *AnalyticsClient) view(ctx context.Context, path string, opts *iof.AnalyticsOptions) (iof.AnalyticsReport, error) {
	resp, err := c.http.Get(ctx, apiPath(path), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting analytics view %s: %w", path, err)
	}

	var report iof.AnalyticsReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return report, nil
}
