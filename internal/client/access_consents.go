package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// AccessConsentsClient implements iof.AccessConsentsClient.
type AccessConsentsClient struct {
	http *internalhttp.Client
}

func (c *AccessConsentsClient) List(ctx context.Context, opts *iof.ConsentListOptions) (*iof.ListResponse[iof.Consent], error) {
	resp, err := c.http.Get(ctx, apiPath("/access/consents"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing access consents: %w", err)
	}

	var result iof.ListResponse[iof.Consent]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *AccessConsentsClient) Get(ctx context.Context, consentID string) (*iof.Consent, error) {
	resp, err := c.http.Get(ctx, apiPath("/access/consents/%s", consentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting access consent %s: %w", consentID, err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *AccessConsentsClient) Create(ctx context.Context, req *iof.CreateConsentRequest) (*iof.Consent, error) {
	resp, err := c.http.Post(ctx, apiPath("/access/consents"), req)
	if err != nil {
		return nil, fmt.Errorf("creating access consent: %w", err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *AccessConsentsClient) Revoke(ctx context.Context, consentID string) (*iof.Consent, error) {
	resp, err := c.http.Post(ctx, apiPath("/access/consents/%s/revoke", consentID), nil)
	if err != nil {
		return nil, fmt.Errorf("revoking access consent %s: %w", consentID, err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}

func (c *AccessConsentsClient) Renew(ctx context.Context, consentID string) (*iof.Consent, error) {
	resp, err := c.http.Post(ctx, apiPath("/access/consents/%s/renew", consentID), nil)
	if err != nil {
		return nil, fmt.Errorf("renewing access consent %s: %w", consentID, err)
	}

	var consent iof.Consent
	if err := decodeInto(resp, &consent); err != nil {
		return nil, err
	}

	return &consent, nil
}
