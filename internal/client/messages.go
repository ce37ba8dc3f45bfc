package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// MessagesClient implements iof.MessagesClient.
type MessagesClient struct {
	http *internalhttp.Client
}

func (c *MessagesClient) List(ctx context.Context, opts *iof.MessageListOptions) (*iof.ListResponse[iof.Message], error) {
	resp, err := c.http.Get(ctx, apiPath("/messages"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	var result iof.ListResponse[iof.Message]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *MessagesClient) Get(ctx context.Context, messageID string) (*iof.Message, error) {
	resp, err := c.http.Get(ctx, apiPath("/messages/%s", messageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting message %s: %w", messageID, err)
	}

	var message iof.Message
	if err := decodeInto(resp, &message); err != nil {
		return nil, err
	}

	return &message, nil
}

func (c *MessagesClient) Create(ctx context.Context, req *iof.CreateMessageRequest) (*iof.Message, error) {
	resp, err := c.http.Post(ctx, apiPath("/messages"), req)
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	var message iof.Message
	if err := decodeInto(resp, &message); err != nil {
		return nil, err
	}

	return &message, nil
}

// Parse submits a raw message payload for parsing into structured fields.
func (c *MessagesClient) Parse(ctx context.Context, raw string) (*iof.ParsedMessage, error) {
	body := map[string]interface{}{"message": raw}

	resp, err := c.http.Post(ctx, apiPath("/messages/parse"), body)
	if err != nil {
		return nil, fmt.Errorf("parsing message: %w", err)
	}

	var parsed iof.ParsedMessage
	if err := decodeInto(resp, &parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func (c *MessagesClient) Validate(ctx context.Context, req *iof.CreateMessageRequest) (*iof.ValidationResult, error) {
	resp, err := c.http.Post(ctx, apiPath("/messages/validate"), req)
	if err != nil {
		return nil, fmt.Errorf("validating message: %w", err)
	}

	var result iof.ValidationResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *MessagesClient) GetStatus(ctx context.Context, messageID string) (*iof.MessageStatus, error) {
	resp, err := c.http.Get(ctx, apiPath("/messages/%s/status", messageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting status of message %s: %w", messageID, err)
	}

	var status iof.MessageStatus
	if err := decodeInto(resp, &status); err != nil {
		return nil, err
	}

	return &status, nil
}
