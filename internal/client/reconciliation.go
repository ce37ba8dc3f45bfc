package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ReconciliationClient implements iof.ReconciliationClient.
type ReconciliationClient struct {
	http *internalhttp.Client
}

func (c *ReconciliationClient) ListJobs(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.ReconciliationJob], error) {
	resp, err := c.http.Get(ctx, apiPath("/reconciliation/jobs"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing reconciliation jobs: %w", err)
	}

	var result iof.ListResponse[iof.ReconciliationJob]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ReconciliationClient) GetJob(ctx context.Context, jobID string) (*iof.ReconciliationJob, error) {
	resp, err := c.http.Get(ctx, apiPath("/reconciliation/jobs/%s", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting reconciliation job %s: %w", jobID, err)
	}

	var job iof.ReconciliationJob
	if err := decodeInto(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *ReconciliationClient) CreateJob(ctx context.Context, req *iof.CreateReconciliationJobRequest) (*iof.ReconciliationJob, error) {
	resp, err := c.http.Post(ctx, apiPath("/reconciliation/jobs"), req)
	if err != nil {
		return nil, fmt.Errorf("creating reconciliation job: %w", err)
	}

	var job iof.ReconciliationJob
	if err := decodeInto(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *ReconciliationClient) StartJob(ctx context.Context, jobID string) (*iof.ReconciliationJob, error) {
	resp, err := c.http.Post(ctx, apiPath("/reconciliation/jobs/%s/start", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("starting reconciliation job %s: %w", jobID, err)
	}

	var job iof.ReconciliationJob
	if err := decodeInto(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *ReconciliationClient) CancelJob(ctx context.Context, jobID string) (*iof.ReconciliationJob, error) {
	resp, err := c.http.Post(ctx, apiPath("/reconciliation/jobs/%s/cancel", jobID), nil)
	if err != nil {
		return nil, fmt.Errorf("canceling reconciliation job %s: %w", jobID, err)
	}

	var job iof.ReconciliationJob
	if err := decodeInto(resp, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (c *ReconciliationClient) ListExceptions(ctx context.Context, opts *iof.ExceptionListOptions) (*iof.ListResponse[iof.ReconciliationException], error) {
	resp, err := c.http.Get(ctx, apiPath("/reconciliation/exceptions"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing reconciliation exceptions: %w", err)
	}

	var result iof.ListResponse[iof.ReconciliationException]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ReconciliationClient) GetException(ctx context.Context, exceptionID string) (*iof.ReconciliationException, error) {
	resp, err := c.http.Get(ctx, apiPath("/reconciliation/exceptions/%s", exceptionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting reconciliation exception %s: %w", exceptionID, err)
	}

	var exception iof.ReconciliationException
	if err := decodeInto(resp, &exception); err != nil {
		return nil, err
	}

	return &exception, nil
}

func (c *ReconciliationClient) ResolveException(ctx context.Context, exceptionID, resolution string) (*iof.ReconciliationException, error) {
	body := map[string]interface{}{"resolution": resolution}

	resp, err := c.http.Post(ctx, apiPath("/reconciliation/exceptions/%s/resolve", exceptionID), body)
	if err != nil {
		return nil, fmt.Errorf("resolving reconciliation exception %s: %w", exceptionID, err)
	}

	var exception iof.ReconciliationException
	if err := decodeInto(resp, &exception); err != nil {
		return nil, err
	}

	return &exception, nil
}

func (c *ReconciliationClient) DismissException(ctx context.Context, exceptionID, reason string) (*iof.ReconciliationException, error) {
	body := map[string]interface{}{"reason": reason}

	resp, err := c.http.Post(ctx, apiPath("/reconciliation/exceptions/%s/dismiss", exceptionID), body)
	if err != nil {
		return nil, fmt.Errorf("dismissing reconciliation exception %s: %w", exceptionID, err)
	}

	var exception iof.ReconciliationException
	if err := decodeInto(resp, &exception); err != nil {
		return nil, err
	}

	return &exception, nil
}

// Match records a manual match between a source and a target entry.
func (c *ReconciliationClient) Match(ctx context.Context, sourceID, targetID string) (*iof.MatchResult, error) {
	body := map[string]interface{}{
		"source_id": sourceID,
		"target_id": targetID,
	}

	resp, err := c.http.Post(ctx, apiPath("/reconciliation/match"), body)
	if err != nil {
		return nil, fmt.Errorf("matching %s against %s: %w", sourceID, targetID, err)
	}

	var result iof.MatchResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
