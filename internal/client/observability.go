package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ObservabilityClient implements iof.ObservabilityClient.
type ObservabilityClient struct {
	http *internalhttp.Client
}

func (c *ObservabilityClient) ListSLOs(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.SLOMetric], error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/slos"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing slos: %w", err)
	}

	var result iof.ListResponse[iof.SLOMetric]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ObservabilityClient) GetSLO(ctx context.Context, sloID string) (*iof.SLOMetric, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/slos/%s", sloID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting slo %s: %w", sloID, err)
	}

	var slo iof.SLOMetric
	if err := decodeInto(resp, &slo); err != nil {
		return nil, err
	}

	return &slo, nil
}

func (c *ObservabilityClient) GetSLOSummary(ctx context.Context) (*iof.SLOSummary, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/slos/summary"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting slo summary: %w", err)
	}

	var summary iof.SLOSummary
	if err := decodeInto(resp, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *ObservabilityClient) ListAuditLogs(ctx context.Context, opts *iof.AuditLogListOptions) (*iof.ListResponse[iof.AuditLog], error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/audit-logs"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}

	var result iof.ListResponse[iof.AuditLog]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ObservabilityClient) GetAuditLog(ctx context.Context, logID string) (*iof.AuditLog, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/audit-logs/%s", logID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting audit log %s: %w", logID, err)
	}

	var log iof.AuditLog
	if err := decodeInto(resp, &log); err != nil {
		return nil, err
	}

	return &log, nil
}

// ExportAuditLogs starts an asynchronous export of audit logs for a date
// range.
func (c *ObservabilityClient) ExportAuditLogs(ctx context.Context, opts *iof.DateRangeOptions, format string) (*iof.DataExport, error) {
	body := map[string]string{"format": format}
	if opts != nil {
		if opts.StartDate != "" {
			body["start_date"] = opts.StartDate
		}

		if opts.EndDate != "" {
			body["end_date"] = opts.EndDate
		}
	}

	resp, err := c.http.Post(ctx, apiPath("/observability/audit-logs/export"), body)
	if err != nil {
		return nil, fmt.Errorf("exporting audit logs: %w", err)
	}

	var export iof.DataExport
	if err := decodeInto(resp, &export); err != nil {
		return nil, err
	}

	return &export, nil
}

func (c *ObservabilityClient) ListMonitoringRecords(ctx context.Context, opts *iof.MonitoringListOptions) (*iof.ListResponse[iof.ShariahMonitoringRecord], error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/shariah-monitoring"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing monitoring records: %w", err)
	}

	var result iof.ListResponse[iof.ShariahMonitoringRecord]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ObservabilityClient) GetMonitoringRecord(ctx context.Context, recordID string) (*iof.ShariahMonitoringRecord, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/shariah-monitoring/%s", recordID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting monitoring record %s: %w", recordID, err)
	}

	var record iof.ShariahMonitoringRecord
	if err := decodeInto(resp, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// RunCheck runs a compliance check against a contract.
func (c *ObservabilityClient) RunCheck(ctx context.Context, contractID, checkType string) (*iof.ShariahMonitoringRecord, error) {
	body := map[string]string{
		"contract_id": contractID,
		"check_type":  checkType,
	}

	resp, err := c.http.Post(ctx, apiPath("/observability/shariah-monitoring/check"), body)
	if err != nil {
		return nil, fmt.Errorf("running check on contract %s: %w", contractID, err)
	}

	var record iof.ShariahMonitoringRecord
	if err := decodeInto(resp, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *ObservabilityClient) ListExports(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.DataExport], error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/exports"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}

	var result iof.ListResponse[iof.DataExport]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ObservabilityClient) GetExport(ctx context.Context, exportID string) (*iof.DataExport, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/exports/%s", exportID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting export %s: %w", exportID, err)
	}

	var export iof.DataExport
	if err := decodeInto(resp, &export); err != nil {
		return nil, err
	}

	return &export, nil
}

func (c *ObservabilityClient) CreateExport(ctx context.Context, req *iof.CreateDataExportRequest) (*iof.DataExport, error) {
	resp, err := c.http.Post(ctx, apiPath("/observability/exports"), req)
	if err != nil {
		return nil, fmt.Errorf("creating export: %w", err)
	}

	var export iof.DataExport
	if err := decodeInto(resp, &export); err != nil {
		return nil, err
	}

	return &export, nil
}

// DownloadExport returns the raw bytes of a finished export.
func (c *ObservabilityClient) DownloadExport(ctx context.Context, exportID string) ([]byte, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/exports/%s/download", exportID), nil)
	if err != nil {
		return nil, fmt.Errorf("downloading export %s: %w", exportID, err)
	}

	return resp.Body, nil
}

func (c *ObservabilityClient) GetHealth(ctx context.Context) (*iof.HealthStatus, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/health"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting health: %w", err)
	}

	var health iof.HealthStatus
	if err := decodeInto(resp, &health); err != nil {
		return nil, err
	}

	return &health, nil
}

func (c *ObservabilityClient) GetMetrics(ctx context.Context, opts *iof.DateRangeOptions) (*iof.PlatformMetrics, error) {
	resp, err := c.http.Get(ctx, apiPath("/observability/metrics"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting metrics: %w", err)
	}

	var metrics iof.PlatformMetrics
	if err := decodeInto(resp, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}
