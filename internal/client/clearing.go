package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// ClearingClient implements iof.ClearingClient.
type ClearingClient struct {
	http *internalhttp.Client
}

func (c *ClearingClient) ListBatches(ctx context.Context, opts *iof.StatusListOptions) (*iof.ListResponse[iof.ClearingBatch], error) {
	resp, err := c.http.Get(ctx, apiPath("/clearing/batches"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing clearing batches: %w", err)
	}

	var result iof.ListResponse[iof.ClearingBatch]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ClearingClient) GetBatch(ctx context.Context, batchID string) (*iof.ClearingBatch, error) {
	resp, err := c.http.Get(ctx, apiPath("/clearing/batches/%s", batchID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting clearing batch %s: %w", batchID, err)
	}

	var batch iof.ClearingBatch
	if err := decodeInto(resp, &batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func (c *ClearingClient) CreateBatch(ctx context.Context, req *iof.CreateClearingBatchRequest) (*iof.ClearingBatch, error) {
	resp, err := c.http.Post(ctx, apiPath("/clearing/batches"), req)
	if err != nil {
		return nil, fmt.Errorf("creating clearing batch: %w", err)
	}

	var batch iof.ClearingBatch
	if err := decodeInto(resp, &batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func (c *ClearingClient) ProcessBatch(ctx context.Context, batchID string) (*iof.ClearingBatch, error) {
	resp, err := c.http.Post(ctx, apiPath("/clearing/batches/%s/process", batchID), nil)
	if err != nil {
		return nil, fmt.Errorf("processing clearing batch %s: %w", batchID, err)
	}

	var batch iof.ClearingBatch
	if err := decodeInto(resp, &batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func (c *ClearingClient) SettleBatch(ctx context.Context, batchID string) (*iof.ClearingBatch, error) {
	resp, err := c.http.Post(ctx, apiPath("/clearing/batches/%s/settle", batchID), nil)
	if err != nil {
		return nil, fmt.Errorf("settling clearing batch %s: %w", batchID, err)
	}

	var batch iof.ClearingBatch
	if err := decodeInto(resp, &batch); err != nil {
		return nil, err
	}

	return &batch, nil
}

func (c *ClearingClient) ListTransactions(ctx context.Context, opts *iof.ClearingTransactionListOptions) (*iof.ListResponse[iof.ClearingTransaction], error) {
	resp, err := c.http.Get(ctx, apiPath("/clearing/transactions"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing clearing transactions: %w", err)
	}

	var result iof.ListResponse[iof.ClearingTransaction]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ClearingClient) GetTransaction(ctx context.Context, transactionID string) (*iof.ClearingTransaction, error) {
	resp, err := c.http.Get(ctx, apiPath("/clearing/transactions/%s", transactionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting clearing transaction %s: %w", transactionID, err)
	}

	var transaction iof.ClearingTransaction
	if err := decodeInto(resp, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// CalculateNetting computes net positions across the given participants.
func (c *ClearingClient) CalculateNetting(ctx context.Context, participantIDs []string) (*iof.NettingResult, error) {
	body := map[string]interface{}{"participant_ids": participantIDs}

	resp, err := c.http.Post(ctx, apiPath("/clearing/netting/calculate"), body)
	if err != nil {
		return nil, fmt.Errorf("calculating netting: %w", err)
	}

	var result iof.NettingResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *ClearingClient) GetSettlementPositions(ctx context.Context, batchID string) ([]iof.SettlementPosition, error) {
	resp, err := c.http.Get(ctx, apiPath("/clearing/batches/%s/positions", batchID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting settlement positions for batch %s: %w", batchID, err)
	}

	var positions []iof.SettlementPosition
	if err := decodeInto(resp, &positions); err != nil {
		return nil, err
	}

	return positions, nil
}
