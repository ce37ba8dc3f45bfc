package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// KYCClient implements iof.KYCClient.
type KYCClient struct {
	http *internalhttp.Client
}

func (c *KYCClient) ListCustomers(ctx context.Context, opts *iof.CustomerListOptions) (*iof.ListResponse[iof.Customer], error) {
	resp, err := c.http.Get(ctx, apiPath("/kyc/customers"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var result iof.ListResponse[iof.Customer]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *KYCClient) GetCustomer(ctx context.Context, customerID string) (*iof.Customer, error) {
	resp, err := c.http.Get(ctx, apiPath("/kyc/customers/%s", customerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer %s: %w", customerID, err)
	}

	var customer iof.Customer
	if err := decodeInto(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (c *KYCClient) CreateCustomer(ctx context.Context, req *iof.CreateCustomerRequest) (*iof.Customer, error) {
	resp, err := c.http.Post(ctx, apiPath("/kyc/customers"), req)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var customer iof.Customer
	if err := decodeInto(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

func (c *KYCClient) UpdateCustomer(ctx context.Context, customerID string, req *iof.UpdateCustomerRequest) (*iof.Customer, error) {
	resp, err := c.http.Patch(ctx, apiPath("/kyc/customers/%s", customerID), req)
	if err != nil {
		return nil, fmt.Errorf("updating customer %s: %w", customerID, err)
	}

	var customer iof.Customer
	if err := decodeInto(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

// VerifyCustomer starts identity verification for a customer.
func (c *KYCClient) VerifyCustomer(ctx context.Context, customerID string) (*iof.Customer, error) {
	resp, err := c.http.Post(ctx, apiPath("/kyc/customers/%s/verify", customerID), nil)
	if err != nil {
		return nil, fmt.Errorf("verifying customer %s: %w", customerID, err)
	}

	var customer iof.Customer
	if err := decodeInto(resp, &customer); err != nil {
		return nil, err
	}

	return &customer, nil
}

// ScreenCustomer screens a customer against watchlists.
func (c *KYCClient) ScreenCustomer(ctx context.Context, customerID string) (*iof.ScreeningResult, error) {
	resp, err := c.http.Post(ctx, apiPath("/kyc/customers/%s/screen", customerID), nil)
	if err != nil {
		return nil, fmt.Errorf("screening customer %s: %w", customerID, err)
	}

	var result iof.ScreeningResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *KYCClient) GetCustomerDocuments(ctx context.Context, customerID string) ([]iof.Document, error) {
	resp, err := c.http.Get(ctx, apiPath("/kyc/customers/%s/documents", customerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting documents for customer %s: %w", customerID, err)
	}

	var documents []iof.Document
	if err := decodeInto(resp, &documents); err != nil {
		return nil, err
	}

	return documents, nil
}
