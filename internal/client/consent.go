package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ConsentClient implements iof.ConsentClient.
type ConsentClient struct {
	http *internalhttp.Client
}

func (c *ConsentClient) ListRecords(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.Consent], error) {
	resp, err := c.http.Get(ctx, apiPath("/consent/records"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing consent records: %w", err)
	}

	var result iof.ListResponse[iof.Consent]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ConsentClient) GetRecord(ctx context.Context, consentID string) (*iof.Consent, error) {
	resp, err := c.http.Get(ctx, apiPath("/consent/records/%s", consentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting consent record %s: %w", consentID, err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *ConsentClient) CreateRecord(ctx context.Context, req *iof.CreateConsentRequest) (*iof.Consent, error) {
	resp, err := c.http.Post(ctx, apiPath("/consent/records"), req)
	if err != nil {
		return nil, fmt.Errorf("creating consent record: %w", err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *ConsentClient) WithdrawRecord(ctx context.Context, consentID string) (*iof.Consent, error) {
	resp, err := c.http.Post(ctx, apiPath("/consent/records/%s/withdraw", consentID), nil)
	if err != nil {
		return nil, fmt.Errorf("withdrawing consent record %s: %w", consentID, err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *ConsentClient) ListDataSubjectRequests(ctx context.Context, opts *iof.DataSubjectRequestListOptions) (*iof.ListResponse[iof.DataSubjectRequest], error) {
	resp, err := c.http.Get(ctx, apiPath("/consent/dsr"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing data subject requests: %w", err)
	}

	var result iof.ListResponse[iof.DataSubjectRequest]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ConsentClient) GetDataSubjectRequest(ctx context.Context, requestID string) (*iof.DataSubjectRequest, error) {
	resp, err := c.http.Get(ctx, apiPath("/consent/dsr/%s", requestID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting data subject request %s: %w", requestID, err)
	}

	var request iof.DataSubjectRequest
	if err := decodeInto(resp, &request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (c *ConsentClient) CreateDataSubjectRequest(ctx context.Context, req *iof.CreateDataSubjectRequest) (*iof.DataSubjectRequest, error) {
	resp, err := c.http.Post(ctx, apiPath("/consent/dsr"), req)
	if err != nil {
		return nil, fmt.Errorf("creating data subject request: %w", err)
	}

	var request iof.DataSubjectRequest
	if err := decodeInto(resp, &request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (c *ConsentClient) FulfillDataSubjectRequest(ctx context.Context, requestID string) (*iof.DataSubjectRequest, error) {
	resp, err := c.http.Post(ctx, apiPath("/consent/dsr/%s/fulfill", requestID), nil)
	if err != nil {
		return nil, fmt.Errorf("fulfilling data subject request %s: %w", requestID, err)
	}

	var request iof.DataSubjectRequest
	if err := decodeInto(resp, &request); err != nil {
		return nil, err
	}

	return &request, nil
}
