package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// AMLClient implements iof.AMLClient.
type AMLClient struct {
	http *internalhttp.Client
}

func (c *AMLClient) ListRules(ctx context.Context, opts *iof.EnabledListOptions) (*iof.ListResponse[iof.AMLRule], error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/rules"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing aml rules: %w", err)
	}

	var result iof.ListResponse[iof.AMLRule]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *AMLClient) GetRule(ctx context.Context, ruleID string) (*iof.AMLRule, error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/rules/%s", ruleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting aml rule %s: %w", ruleID, err)
	}

	var rule iof.AMLRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *AMLClient) CreateRule(ctx context.Context, req *iof.CreateAMLRuleRequest) (*iof.AMLRule, error) {
	resp, err := c.http.Post(ctx, apiPath("/aml/rules"), req)
	if err != nil {
		return nil, fmt.Errorf("creating aml rule: %w", err)
	}

	var rule iof.AMLRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *AMLClient) UpdateRule(ctx context.Context, ruleID string, req *iof.UpdateAMLRuleRequest) (*iof.AMLRule, error) {
	resp, err := c.http.Patch(ctx, apiPath("/aml/rules/%s", ruleID), req)
	if err != nil {
		return nil, fmt.Errorf("updating aml rule %s: %w", ruleID, err)
	}

	var rule iof.AMLRule
	if err := decodeInto(resp, &rule); err != nil {
		return nil, err
	}

	return &rule, nil
}

func (c *AMLClient) DeleteRule(ctx context.Context, ruleID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/aml/rules/%s", ruleID)); err != nil {
		return fmt.Errorf("deleting aml rule %s: %w", ruleID, err)
	}

	return nil
}

func (c *AMLClient) ListScreenings(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.AMLScreening], error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/screening"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing aml screenings: %w", err)
	}

	var result iof.ListResponse[iof.AMLScreening]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *AMLClient) GetScreening(ctx context.Context, screeningID string) (*iof.AMLScreening, error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/screening/%s", screeningID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting aml screening %s: %w", screeningID, err)
	}

	var screening iof.AMLScreening
	if err := decodeInto(resp, &screening); err != nil {
		return nil, err
	}

	return &screening, nil
}

func (c *AMLClient) CreateScreening(ctx context.Context, req *iof.CreateAMLScreeningRequest) (*iof.AMLScreening, error) {
	resp, err := c.http.Post(ctx, apiPath("/aml/screening"), req)
	if err != nil {
		return nil, fmt.Errorf("creating aml screening: %w", err)
	}

	var screening iof.AMLScreening
	if err := decodeInto(resp, &screening); err != nil {
		return nil, err
	}

	return &screening, nil
}

func (c *AMLClient) ListAlerts(ctx context.Context, opts *iof.AlertListOptions) (*iof.ListResponse[iof.AMLAlert], error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/alerts"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing aml alerts: %w", err)
	}

	var result iof.ListResponse[iof.AMLAlert]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *AMLClient) GetAlert(ctx context.Context, alertID string) (*iof.AMLAlert, error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/alerts/%s", alertID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting aml alert %s: %w", alertID, err)
	}

	var alert iof.AMLAlert
	if err := decodeInto(resp, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (c *AMLClient) CreateAlert(ctx context.Context, req *iof.CreateAMLAlertRequest) (*iof.AMLAlert, error) {
	resp, err := c.http.Post(ctx, apiPath("/aml/alerts"), req)
	if err != nil {
		return nil, fmt.Errorf("creating aml alert: %w", err)
	}

	var alert iof.AMLAlert
	if err := decodeInto(resp, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (c *AMLClient) UpdateAlert(ctx context.Context, alertID string, req *iof.UpdateAMLAlertRequest) (*iof.AMLAlert, error) {
	resp, err := c.http.Patch(ctx, apiPath("/aml/alerts/%s", alertID), req)
	if err != nil {
		return nil, fmt.Errorf("updating aml alert %s: %w", alertID, err)
	}

	var alert iof.AMLAlert
	if err := decodeInto(resp, &alert); err != nil {
		return nil, err
	}

	return &alert, nil
}

func (c *AMLClient) ListCases(ctx context.Context, opts *iof.CaseListOptions) (*iof.ListResponse[iof.AMLCase], error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/cases"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing aml cases: %w", err)
	}

	var result iof.ListResponse[iof.AMLCase]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *AMLClient) GetCase(ctx context.Context, caseID string) (*iof.AMLCase, error) {
	resp, err := c.http.Get(ctx, apiPath("/aml/cases/%s", caseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting aml case %s: %w", caseID, err)
	}

	var amlCase iof.AMLCase
	if err := decodeInto(resp, &amlCase); err != nil {
		return nil, err
	}

	return &amlCase, nil
}

func (c *AMLClient) CreateCase(ctx context.Context, req *iof.CreateAMLCaseRequest) (*iof.AMLCase, error) {
	resp, err := c.http.Post(ctx, apiPath("/aml/cases"), req)
	if err != nil {
		return nil, fmt.Errorf("creating aml case: %w", err)
	}

	var amlCase iof.AMLCase
	if err := decodeInto(resp, &amlCase); err != nil {
		return nil, err
	}

	return &amlCase, nil
}

func (c *AMLClient) UpdateCase(ctx context.Context, caseID string, req *iof.UpdateAMLCaseRequest) (*iof.AMLCase, error) {
	resp, err := c.http.Patch(ctx, apiPath("/aml/cases/%s", caseID), req)
	if err != nil {
		return nil, fmt.Errorf("updating aml case %s: %w", caseID, err)
	}

	var amlCase iof.AMLCase
	if err := decodeInto(resp, &amlCase); err != nil {
		return nil, err
	}

	return &amlCase, nil
}

// CloseCase closes an investigation case with a resolution note.
func (c *AMLClient) CloseCase(ctx context.Context, caseID, resolution string) (*iof.AMLCase, error) {
	body := map[string]string{"resolution": resolution}

	resp, err := c.http.Post(ctx, apiPath("/aml/cases/%s/close", caseID), body)
	if err != nil {
		return nil, fmt.Errorf("closing aml case %s: %w", caseID, err)
	}

	var amlCase iof.AMLCase
	if err := decodeInto(resp, &amlCase); err != nil {
		return nil, err
	}

	return &amlCase, nil
}
