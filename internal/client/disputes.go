package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// DisputesClient implements iof.DisputesClient.
type DisputesClient struct {
	http *internalhttp.Client
}

func (c *DisputesClient) List(ctx context.Context, opts *iof.DisputeListOptions) (*iof.ListResponse[iof.Dispute], error) {
	resp, err := c.http.Get(ctx, apiPath("/disputes"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing disputes: %w", err)
	}

	var result iof.ListResponse[iof.Dispute]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *DisputesClient) Get(ctx context.Context, disputeID string) (*iof.Dispute, error) {
	resp, err := c.http.Get(ctx, apiPath("/disputes/%s", disputeID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting dispute %s: %w", disputeID, err)
	}

	var dispute iof.Dispute
	if err := decodeInto(resp, &dispute); err != nil {
		return nil, err
	}

	return &dispute, nil
}

func (c *DisputesClient) Create(ctx context.Context, req *iof.CreateDisputeRequest) (*iof.Dispute, error) {
	resp, err := c.http.Post(ctx, apiPath("/disputes"), req)
	if err != nil {
		return nil, fmt.Errorf("creating dispute: %w", err)
	}

	var dispute iof.Dispute
	if err := decodeInto(resp, &dispute); err != nil {
		return nil, err
	}

	return &dispute, nil
}

func (c *DisputesClient) Update(ctx context.Context, disputeID string, req *iof.UpdateDisputeRequest) (*iof.Dispute, error) {
	resp, err := c.http.Patch(ctx, apiPath("/disputes/%s", disputeID), req)
	if err != nil {
		return nil, fmt.Errorf("updating dispute %s: %w", disputeID, err)
	}

	var dispute iof.Dispute
	if err := decodeInto(resp, &dispute); err != nil {
		return nil, err
	}

	return &dispute, nil
}

// Resolve closes a dispute with a resolution note.
func (c *DisputesClient) Resolve(ctx context.Context, disputeID, resolution string) (*iof.Dispute, error) {
	body := map[string]string{"resolution": resolution}

	resp, err := c.http.Post(ctx, apiPath("/disputes/%s/resolve", disputeID), body)
	if err != nil {
		return nil, fmt.Errorf("resolving dispute %s: %w", disputeID, err)
	}

	var dispute iof.Dispute
	if err := decodeInto(resp, &dispute); err != nil {
		return nil, err
	}

	return &dispute, nil
}

// Escalate raises a dispute to the next review tier.
func (c *DisputesClient) Escalate(ctx context.Context, disputeID, reason string) (*iof.Dispute, error) {
	body := map[string]string{"reason": reason}

	resp, err := c.http.Post(ctx, apiPath("/disputes/%s/escalate", disputeID), body)
	if err != nil {
		return nil, fmt.Errorf("escalating dispute %s: %w", disputeID, err)
	}

	var dispute iof.Dispute
	if err := decodeInto(resp, &dispute); err != nil {
		return nil, err
	}

	return &dispute, nil
}

func (c *DisputesClient) ListCollections(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.CollectionCase], error) {
	resp, err := c.http.Get(ctx, apiPath("/disputes/collections"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing collection cases: %w", err)
	}

	var result iof.ListResponse[iof.CollectionCase]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *DisputesClient) GetCollection(ctx context.Context, caseID string) (*iof.CollectionCase, error) {
	resp, err := c.http.Get(ctx, apiPath("/disputes/collections/%s", caseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting collection case %s: %w", caseID, err)
	}

	var collection iof.CollectionCase
	if err := decodeInto(resp, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

func (c *DisputesClient) CreateCollection(ctx context.Context, req *iof.CreateCollectionCaseRequest) (*iof.CollectionCase, error) {
	resp, err := c.http.Post(ctx, apiPath("/disputes/collections"), req)
	if err != nil {
		return nil, fmt.Errorf("creating collection case: %w", err)
	}

	var collection iof.CollectionCase
	if err := decodeInto(resp, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}
