package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// JurisdictionsClient implements iof.JurisdictionsClient. Jurisdictions are
// reference data and come back as plain arrays, not paginated envelopes.
type JurisdictionsClient struct {
	http *internalhttp.Client
}

func (c *JurisdictionsClient) List(ctx context.Context) ([]iof.Jurisdiction, error) {
	resp, err := c.http.Get(ctx, apiPath("/jurisdictions"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing jurisdictions: %w", err)
	}

	var jurisdictions []iof.Jurisdiction
	if err := decodeInto(resp, &jurisdictions); err != nil {
		return nil, err
	}

	return jurisdictions, nil
}

func (c *JurisdictionsClient) Get(ctx context.Context, jurisdictionID string) (*iof.Jurisdiction, error) {
	resp, err := c.http.Get(ctx, apiPath("/jurisdictions/%s", jurisdictionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting jurisdiction %s: %w", jurisdictionID, err)
	}

	var jurisdiction iof.Jurisdiction
	if err := decodeInto(resp, &jurisdiction); err != nil {
		return nil, err
	}

	return &jurisdiction, nil
}

func (c *JurisdictionsClient) GetConfig(ctx context.Context, jurisdictionID string) (*iof.JurisdictionConfig, error) {
	resp, err := c.http.Get(ctx, apiPath("/jurisdictions/%s/config", jurisdictionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting config for jurisdiction %s: %w", jurisdictionID, err)
	}

	var config iof.JurisdictionConfig
	if err := decodeInto(resp, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *JurisdictionsClient) GetRules(ctx context.Context, jurisdictionID string) ([]iof.JurisdictionRule, error) {
	resp, err := c.http.Get(ctx, apiPath("/jurisdictions/%s/rules", jurisdictionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting rules for jurisdiction %s: %w", jurisdictionID, err)
	}

	var rules []iof.JurisdictionRule
	if err := decodeInto(resp, &rules); err != nil {
		return nil, err
	}

	return rules, nil
}
