package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ContractsClient implements iof.ContractsClient.
type ContractsClient struct {
	http *internalhttp.Client
}

// List lists contracts with optional status, type and currency filters.
func (c *ContractsClient) List(ctx context.Context, opts *iof.ContractListOptions) (*iof.ListResponse[iof.Contract], error) {
	resp, err := c.http.Get(ctx, apiPath("/contracts"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}

	var result iof.ListResponse[iof.Contract]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Get retrieves a single contract.
func (c *ContractsClient) Get(ctx context.Context, contractID string) (*iof.Contract, error) {
	resp, err := c.http.Get(ctx, apiPath("/contracts/%s", contractID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting contract %s: %w", contractID, err)
	}

	var contract iof.Contract
	if err := decodeInto(resp, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Create creates a contract in draft status.
func (c *ContractsClient) Create(ctx context.Context, req *iof.CreateContractRequest) (*iof.Contract, error) {
	resp, err := c.http.Post(ctx, apiPath("/contracts"), req)
	if err != nil {
		return nil, fmt.Errorf("creating contract: %w", err)
	}

	var contract iof.Contract
	if err := decodeInto(resp, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Update applies a partial update to a contract.
func (c *ContractsClient) Update(ctx context.Context, contractID string, req *iof.UpdateContractRequest) (*iof.Contract, error) {
	resp, err := c.http.Patch(ctx, apiPath("/contracts/%s", contractID), req)
	if err != nil {
		return nil, fmt.Errorf("updating contract %s: %w", contractID, err)
	}

	var contract iof.Contract
	if err := decodeInto(resp, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Execute moves a contract into its active state.
func (c *ContractsClient) Execute(ctx context.Context, contractID string) (*iof.Contract, error) {
	resp, err := c.http.Post(ctx, apiPath("/contracts/%s/execute", contractID), nil)
	if err != nil {
		return nil, fmt.Errorf("executing contract %s: %w", contractID, err)
	}

	var contract iof.Contract
	if err := decodeInto(resp, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Terminate ends a contract with the given reason.
func (c *ContractsClient) Terminate(ctx context.Context, contractID, reason string) (*iof.Contract, error) {
	body := map[string]string{"reason": reason}

	resp, err := c.http.Post(ctx, apiPath("/contracts/%s/terminate", contractID), body)
	if err != nil {
		return nil, fmt.Errorf("terminating contract %s: %w", contractID, err)
	}

	var contract iof.Contract
	if err := decodeInto(resp, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

// Validate dry-runs a contract without persisting it.
func (c *ContractsClient) Validate(ctx context.Context, req *iof.CreateContractRequest) (*iof.ValidationResult, error) {
	resp, err := c.http.Post(ctx, apiPath("/contracts/validate"), req)
	if err != nil {
		return nil, fmt.Errorf("validating contract: %w", err)
	}

	var result iof.ValidationResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetHistory returns a contract's event history.
func (c *ContractsClient) GetHistory(ctx context.Context, contractID string, opts *iof.ListOptions) (*iof.ListResponse[iof.ContractEvent], error) {
	resp, err := c.http.Get(ctx, apiPath("/contracts/%s/history", contractID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting history for contract %s: %w", contractID, err)
	}

	var result iof.ListResponse[iof.ContractEvent]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetDocuments returns the documents attached to a contract.
func (c *ContractsClient) GetDocuments(ctx context.Context, contractID string) ([]iof.Document, error) {
	resp, err := c.http.Get(ctx, apiPath("/contracts/%s/documents", contractID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting documents for contract %s: %w", contractID, err)
	}

	var documents []iof.Document
	if err := decodeInto(resp, &documents); err != nil {
		return nil, err
	}

	return documents, nil
}
