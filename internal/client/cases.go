package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// CasesClient implements iof.CasesClient.
type CasesClient struct {
	http *internalhttp.Client
}

func (c *CasesClient) List(ctx context.Context, opts *iof.CaseListOptions) (*iof.ListResponse[iof.Case], error) {
	resp, err := c.http.Get(ctx, apiPath("/cases"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}

	var result iof.ListResponse[iof.Case]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *CasesClient) Get(ctx context.Context, caseID string) (*iof.Case, error) {
	resp, err := c.http.Get(ctx, apiPath("/cases/%s", caseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting case %s: %w", caseID, err)
	}

	var item iof.Case
	if err := decodeInto(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *CasesClient) Create(ctx context.Context, req *iof.CreateCaseRequest) (*iof.Case, error) {
	resp, err := c.http.Post(ctx, apiPath("/cases"), req)
	if err != nil {
		return nil, fmt.Errorf("creating case: %w", err)
	}

	var item iof.Case
	if err := decodeInto(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *CasesClient) Update(ctx context.Context, caseID string, req *iof.UpdateCaseRequest) (*iof.Case, error) {
	resp, err := c.http.Patch(ctx, apiPath("/cases/%s", caseID), req)
	if err != nil {
		return nil, fmt.Errorf("updating case %s: %w", caseID, err)
	}

	var item iof.Case
	if err := decodeInto(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *CasesClient) Assign(ctx context.Context, caseID, assigneeID string) (*iof.Case, error) {
	body := map[string]interface{}{"assignee_id": assigneeID}

	resp, err := c.http.Post(ctx, apiPath("/cases/%s/assign", caseID), body)
	if err != nil {
		return nil, fmt.Errorf("assigning case %s: %w", caseID, err)
	}

	var item iof.Case
	if err := decodeInto(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *CasesClient) Close(ctx context.Context, caseID, resolution string) (*iof.Case, error) {
	body := map[string]interface{}{"resolution": resolution}

	resp, err := c.http.Post(ctx, apiPath("/cases/%s/close", caseID), body)
	if err != nil {
		return nil, fmt.Errorf("closing case %s: %w", caseID, err)
	}

	var item iof.Case
	if err := decodeInto(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *CasesClient) AddComment(ctx context.Context, caseID, comment string) (*iof.CaseComment, error) {
	body := map[string]interface{}{"comment": comment}

	resp, err := c.http.Post(ctx, apiPath("/cases/%s/comments", caseID), body)
	if err != nil {
		return nil, fmt.Errorf("commenting on case %s: %w", caseID, err)
	}

	var result iof.CaseComment
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *CasesClient) GetHistory(ctx context.Context, caseID string, opts *iof.ListOptions) (*iof.ListResponse[iof.CaseEvent], error) {
	resp, err := c.http.Get(ctx, apiPath("/cases/%s/history", caseID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting history for case %s: %w", caseID, err)
	}

	var result iof.ListResponse[iof.CaseEvent]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
