package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// RiskClient implements iof.RiskClient.
type RiskClient struct {
	http *internalhttp.Client
}

func (c *RiskClient) ListLimits(ctx context.Context, opts *iof.RiskLimitListOptions) (*iof.ListResponse[iof.RiskLimit], error) {
	resp, err := c.http.Get(ctx, apiPath("/risk/limits"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing risk limits: %w", err)
	}

	var result iof.ListResponse[iof.RiskLimit]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *RiskClient) GetLimit(ctx context.Context, limitID string) (*iof.RiskLimit, error) {
	resp, err := c.http.Get(ctx, apiPath("/risk/limits/%s", limitID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting risk limit %s: %w", limitID, err)
	}

	var limit iof.RiskLimit
	if err := decodeInto(resp, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

func (c *RiskClient) CreateLimit(ctx context.Context, req *iof.CreateRiskLimitRequest) (*iof.RiskLimit, error) {
	resp, err := c.http.Post(ctx, apiPath("/risk/limits"), req)
	if err != nil {
		return nil, fmt.Errorf("creating risk limit: %w", err)
	}

	var limit iof.RiskLimit
	if err := decodeInto(resp, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

func (c *RiskClient) UpdateLimit(ctx context.Context, limitID string, req *iof.UpdateRiskLimitRequest) (*iof.RiskLimit, error) {
	resp, err := c.http.Patch(ctx, apiPath("/risk/limits/%s", limitID), req)
	if err != nil {
		return nil, fmt.Errorf("updating risk limit %s: %w", limitID, err)
	}

	var limit iof.RiskLimit
	if err := decodeInto(resp, &limit); err != nil {
		return nil, err
	}

	return &limit, nil
}

// CheckLimit tests whether an amount fits under a limit without consuming
// any headroom.
func (c *RiskClient) CheckLimit(ctx context.Context, limitID string, amount float64) (*iof.LimitCheckResult, error) {
	body := map[string]float64{"amount": amount}

	resp, err := c.http.Post(ctx, apiPath("/risk/limits/%s/check", limitID), body)
	if err != nil {
		return nil, fmt.Errorf("checking risk limit %s: %w", limitID, err)
	}

	var result iof.LimitCheckResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *RiskClient) GetExposureSummary(ctx context.Context, entityID, currency string) (*iof.ExposureSummary, error) {
	query := url.Values{}
	if entityID != "" {
		query.Set("entity_id", entityID)
	}

	if currency != "" {
		query.Set("currency", currency)
	}

	resp, err := c.http.Get(ctx, apiPath("/risk/exposure"), query)
	if err != nil {
		return nil, fmt.Errorf("getting exposure summary: %w", err)
	}

	var summary iof.ExposureSummary
	if err := decodeInto(resp, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *RiskClient) GetConcentrationRisk(ctx context.Context) (*iof.ConcentrationRisk, error) {
	resp, err := c.http.Get(ctx, apiPath("/risk/concentration"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting concentration risk: %w", err)
	}

	var concentration iof.ConcentrationRisk
	if err := decodeInto(resp, &concentration); err != nil {
		return nil, err
	}

	return &concentration, nil
}

func (c *RiskClient) ListAssessments(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.RiskAssessment], error) {
	resp, err := c.http.Get(ctx, apiPath("/risk/assessments"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing risk assessments: %w", err)
	}

	var result iof.ListResponse[iof.RiskAssessment]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *RiskClient) CreateAssessment(ctx context.Context, req *iof.CreateRiskAssessmentRequest) (*iof.RiskAssessment, error) {
	resp, err := c.http.Post(ctx, apiPath("/risk/assessments"), req)
	if err != nil {
		return nil, fmt.Errorf("creating risk assessment: %w", err)
	}

	var assessment iof.RiskAssessment
	if err := decodeInto(resp, &assessment); err != nil {
		return nil, err
	}

	return &assessment, nil
}
