package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// UnderwritingClient implements iof.UnderwritingClient.
type UnderwritingClient struct {
	http *internalhttp.Client
}

func (c *UnderwritingClient) ListApplications(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.UnderwritingApplication], error) {
	resp, err := c.http.Get(ctx, apiPath("/underwriting/applications"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing underwriting applications: %w", err)
	}

	var result iof.ListResponse[iof.UnderwritingApplication]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *UnderwritingClient) GetApplication(ctx context.Context, applicationID string) (*iof.UnderwritingApplication, error) {
	resp, err := c.http.Get(ctx, apiPath("/underwriting/applications/%s", applicationID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting underwriting application %s: %w", applicationID, err)
	}

	var application iof.UnderwritingApplication
	if err := decodeInto(resp, &application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (c *UnderwritingClient) CreateApplication(ctx context.Context, req *iof.CreateUnderwritingApplicationRequest) (*iof.UnderwritingApplication, error) {
	resp, err := c.http.Post(ctx, apiPath("/underwriting/applications"), req)
	if err != nil {
		return nil, fmt.Errorf("creating underwriting application: %w", err)
	}

	var application iof.UnderwritingApplication
	if err := decodeInto(resp, &application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (c *UnderwritingClient) SubmitApplication(ctx context.Context, applicationID string) (*iof.UnderwritingApplication, error) {
	resp, err := c.http.Post(ctx, apiPath("/underwriting/applications/%s/submit", applicationID), nil)
	if err != nil {
		return nil, fmt.Errorf("submitting underwriting application %s: %w", applicationID, err)
	}

	var application iof.UnderwritingApplication
	if err := decodeInto(resp, &application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (c *UnderwritingClient) DecideApplication(ctx context.Context, applicationID string, req *iof.DecideApplicationRequest) (*iof.UnderwritingDecision, error) {
	resp, err := c.http.Post(ctx, apiPath("/underwriting/applications/%s/decide", applicationID), req)
	if err != nil {
		return nil, fmt.Errorf("deciding underwriting application %s: %w", applicationID, err)
	}

	var decision iof.UnderwritingDecision
	if err := decodeInto(resp, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}

func (c *UnderwritingClient) ScoreApplication(ctx context.Context, applicationID string) (*iof.RiskScore, error) {
	resp, err := c.http.Post(ctx, apiPath("/underwriting/applications/%s/risk-score", applicationID), nil)
	if err != nil {
		return nil, fmt.Errorf("scoring underwriting application %s: %w", applicationID, err)
	}

	var score iof.RiskScore
	if err := decodeInto(resp, &score); err != nil {
		return nil, err
	}

	return &score, nil
}

func (c *UnderwritingClient) ListDecisions(ctx context.Context, opts *iof.DecisionListOptions) (*iof.ListResponse[iof.UnderwritingDecision], error) {
	resp, err := c.http.Get(ctx, apiPath("/underwriting/decisions"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing underwriting decisions: %w", err)
	}

	var result iof.ListResponse[iof.UnderwritingDecision]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *UnderwritingClient) GetDecision(ctx context.Context, decisionID string) (*iof.UnderwritingDecision, error) {
	resp, err := c.http.Get(ctx, apiPath("/underwriting/decisions/%s", decisionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting underwriting decision %s: %w", decisionID, err)
	}

	var decision iof.UnderwritingDecision
	if err := decodeInto(resp, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}

func (c *UnderwritingClient) GetCreditReport(ctx context.Context, customerID string) (*iof.CreditReport, error) {
	query := url.Values{}
	query.Set("customer_id", customerID)

	resp, err := c.http.Get(ctx, apiPath("/underwriting/credit-report"), query)
	if err != nil {
		return nil, fmt.Errorf("getting credit report for customer %s: %w", customerID, err)
	}

	var report iof.CreditReport
	if err := decodeInto(resp, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
