package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ReportingClient implements iof.ReportingClient.
type ReportingClient struct {
	http *internalhttp.Client
}

func (c *ReportingClient) ListReports(ctx context.Context, opts *iof.ReportListOptions) (*iof.ListResponse[iof.Report], error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/reports"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var result iof.ListResponse[iof.Report]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ReportingClient) GetReport(ctx context.Context, reportID string) (*iof.Report, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/reports/%s", reportID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting report %s: %w", reportID, err)
	}

	var report iof.Report
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *ReportingClient) GenerateReport(ctx context.Context, req *iof.GenerateReportRequest) (*iof.Report, error) {
	resp, err := c.http.Post(ctx, apiPath("/reporting/reports"), req)
	if err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	var report iof.Report
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// DownloadReport returns the rendered report bytes.
func (c *ReportingClient) DownloadReport(ctx context.Context, reportID string) ([]byte, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/reports/%s/download", reportID), nil)
	if err != nil {
		return nil, fmt.Errorf("downloading report %s: %w", reportID, err)
	}

	return resp.Body, nil
}

func (c *ReportingClient) ListTemplates(ctx context.Context) ([]iof.ReportTemplate, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/templates"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing report templates: %w", err)
	}

	var templates []iof.ReportTemplate
	if err := decodeInto(resp, &templates); err != nil {
		return nil, err
	}

	return templates, nil
}

func (c *ReportingClient) GetTemplate(ctx context.Context, templateID string) (*iof.ReportTemplate, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/templates/%s", templateID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting report template %s: %w", templateID, err)
	}

	var template iof.ReportTemplate
	if err := decodeInto(resp, &template); err != nil {
		return nil, err
	}

	return &template, nil
}

func (c *ReportingClient) ListDashboards(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.Dashboard], error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/dashboards"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing dashboards: %w", err)
	}

	var result iof.ListResponse[iof.Dashboard]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ReportingClient) GetDashboard(ctx context.Context, dashboardID string) (*iof.Dashboard, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/dashboards/%s", dashboardID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting dashboard %s: %w", dashboardID, err)
	}

	var dashboard iof.Dashboard
	if err := decodeInto(resp, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (c *ReportingClient) GetDashboardData(ctx context.Context, dashboardID string, opts *iof.DateRangeOptions) (*iof.DashboardData, error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/dashboards/%s/data", dashboardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting data for dashboard %s: %w", dashboardID, err)
	}

	var data iof.DashboardData
	if err := decodeInto(resp, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

func (c *ReportingClient) ListScheduled(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.ScheduledReport], error) {
	resp, err := c.http.Get(ctx, apiPath("/reporting/scheduled"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing scheduled reports: %w", err)
	}

	var result iof.ListResponse[iof.ScheduledReport]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ReportingClient) CreateScheduled(ctx context.Context, req *iof.CreateScheduledReportRequest) (*iof.ScheduledReport, error) {
	resp, err := c.http.Post(ctx, apiPath("/reporting/scheduled"), req)
	if err != nil {
		return nil, fmt.Errorf("scheduling report: %w", err)
	}

	var scheduled iof.ScheduledReport
	if err := decodeInto(resp, &scheduled); err != nil {
		return nil, err
	}

	return &scheduled, nil
}

func (c *ReportingClient) DeleteScheduled(ctx context.Context, scheduledID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/reporting/scheduled/%s", scheduledID)); err != nil {
		return fmt.Errorf("deleting scheduled report %s: %w", scheduledID, err)
	}

	return nil
}
