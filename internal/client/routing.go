package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// RoutingClient implements iof.RoutingClient.
type RoutingClient struct {
	http *internalhttp.Client
}

func (c *RoutingClient) ListRules(ctx context.Context, opts *iof.EnabledListOptions) (*iof.ListResponse[iof.RoutingRule], error) {
	resp, err := c.http.Get(ctx, apiPath("/routing/rules"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing routing rules: %w", err)
	}

	var result iof.ListResponse[iof.RoutingRule]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *RoutingClient) GetRule(ctx context.Context, ruleID string) (*iof.RoutingRule, error) {
	resp, err := c.http.Get(ctx, apiPath("/routing/rules/%s", ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting routing rule %s: %w", ruleID, err)
	}

	var rule iof.RoutingRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *RoutingClient) CreateRule(ctx context.Context, req *iof.CreateRoutingRuleRequest) (*iof.RoutingRule, error) {
	resp, err := c.http.Post(ctx, apiPath("/routing/rules"), req)
	if err != nil {
		return nil, fmt.Errorf("creating routing rule: %w", err)
	}

	var rule iof.RoutingRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *RoutingClient) UpdateRule(ctx context.Context, ruleID string, req *iof.UpdateRoutingRuleRequest) (*iof.RoutingRule, error) {
	resp, err := c.http.Patch(ctx, apiPath("/routing/rules/%s", ruleID), req)
	if err != nil {
		return nil, fmt.Errorf("updating routing rule %s: %w", ruleID, err)
	}

	var rule iof.RoutingRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *RoutingClient) DeleteRule(ctx context.Context, ruleID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/routing/rules/%s", ruleID)); err != nil {
		return fmt.Errorf("deleting routing rule %s: %w", ruleID, err)
	}

	return nil
}

func (c *RoutingClient) EnableRule(ctx context.Context, ruleID string) (*iof.RoutingRule, error) {
	resp, err := c.http.Post(ctx, apiPath("/routing/rules/%s/enable", ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("enabling routing rule %s: %w", ruleID, err)
	}

	var rule iof.RoutingRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *RoutingClient) DisableRule(ctx context.Context, ruleID string) (*iof.RoutingRule, error) {
	resp, err := c.http.Post(ctx, apiPath("/routing/rules/%s/disable", ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("disabling routing rule %s: %w", ruleID, err)
	}

	var rule iof.RoutingRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

// TestRule evaluates one rule against a sample payload without routing it.
func (c *RoutingClient) TestRule(ctx context.Context, ruleID string, payload map[string]interface{}) (*iof.RoutingDecision, error) {
	resp, err := c.http.Post(ctx, apiPath("/routing/rules/%s/test", ruleID), payload)
	if err != nil {
		return nil, fmt.Errorf("testing routing rule %s: %w", ruleID, err)
	}

	var decision iof.RoutingDecision
	if err := decodeInto(resp, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}

// Evaluate runs the full rule set against a payload.
func (c *RoutingClient) Evaluate(ctx context.Context, payload map[string]interface{}) (*iof.RoutingDecision, error) {
	resp, err := c.http.Post(ctx, apiPath("/routing/evaluate"), payload)
	if err != nil {
		return nil, fmt.Errorf("evaluating routing rules: %w", err)
	}

	var decision iof.RoutingDecision
	if err := decodeInto(resp, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}
