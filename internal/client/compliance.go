package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ComplianceClient implements iof.ComplianceClient.
type ComplianceClient struct {
	http *internalhttp.Client
}

func (c *ComplianceClient) ListChecks(ctx context.Context, opts *iof.ComplianceCheckListOptions) (*iof.ListResponse[iof.ComplianceCheck], error) {
	resp, err := c.http.Get(ctx, apiPath("/compliance/checks"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing compliance checks: %w", err)
	}

	var result iof.ListResponse[iof.ComplianceCheck]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ComplianceClient) GetCheck(ctx context.Context, checkID string) (*iof.ComplianceCheck, error) {
	resp, err := c.http.Get(ctx, apiPath("/compliance/checks/%s", checkID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting compliance check %s: %w", checkID, err)
	}

	var check iof.ComplianceCheck
	if err := decodeInto(resp, &check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (c *ComplianceClient) CreateCheck(ctx context.Context, req *iof.CreateComplianceCheckRequest) (*iof.ComplianceCheck, error) {
	resp, err := c.http.Post(ctx, apiPath("/compliance/checks"), req)
	if err != nil {
		return nil, fmt.Errorf("creating compliance check: %w", err)
	}

	var check iof.ComplianceCheck
	if err := decodeInto(resp, &check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (c *ComplianceClient) RunCheck(ctx context.Context, checkID string) (*iof.ComplianceCheck, error) {
	resp, err := c.http.Post(ctx, apiPath("/compliance/checks/%s/run", checkID), nil)
	if err != nil {
		return nil, fmt.Errorf("running compliance check %s: %w", checkID, err)
	}

	var check iof.ComplianceCheck
	if err := decodeInto(resp, &check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (c *ComplianceClient) ListRules(ctx context.Context, opts *iof.ComplianceRuleListOptions) (*iof.ListResponse[iof.ComplianceRule], error) {
	resp, err := c.http.Get(ctx, apiPath("/compliance/rules"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing compliance rules: %w", err)
	}

	var result iof.ListResponse[iof.ComplianceRule]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ComplianceClient) GetRule(ctx context.Context, ruleID string) (*iof.ComplianceRule, error) {
	resp, err := c.http.Get(ctx, apiPath("/compliance/rules/%s", ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting compliance rule %s: %w", ruleID, err)
	}

	var rule iof.ComplianceRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *ComplianceClient) CreateRule(ctx context.Context, req *iof.CreateComplianceRuleRequest) (*iof.ComplianceRule, error) {
	resp, err := c.http.Post(ctx, apiPath("/compliance/rules"), req)
	if err != nil {
		return nil, fmt.Errorf("creating compliance rule: %w", err)
	}

	var rule iof.ComplianceRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *ComplianceClient) UpdateRule(ctx context.Context, ruleID string, req *iof.UpdateComplianceRuleRequest) (*iof.ComplianceRule, error) {
	resp, err := c.http.Patch(ctx, apiPath("/compliance/rules/%s", ruleID), req)
	if err != nil {
		return nil, fmt.Errorf("updating compliance rule %s: %w", ruleID, err)
	}

	var rule iof.ComplianceRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *ComplianceClient) GenerateReport(ctx context.Context, req *iof.GenerateComplianceReportRequest) (*iof.ComplianceReport, error) {
	resp, err := c.http.Post(ctx, apiPath("/compliance/reports"), req)
	if err != nil {
		return nil, fmt.Errorf("generating compliance report: %w", err)
	}

	var report iof.ComplianceReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *ComplianceClient) GetStatus(ctx context.Context, entityID, entityType string) (*iof.ComplianceStatus, error) {
	query := url.Values{}
	query.Set("entity_id", entityID)
	query.Set("entity_type", entityType)

	resp, err := c.http.Get(ctx, apiPath("/compliance/status"), query)
	if err != nil {
		return nil, fmt.Errorf("getting compliance status for %s: %w", entityID, err)
	}

	var status iof.ComplianceStatus
	if err := decodeInto(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}
