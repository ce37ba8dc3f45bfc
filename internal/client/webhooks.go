package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// WebhooksClient implements iof.WebhooksClient.
type WebhooksClient struct {
	http *internalhttp.Client
}

func (c *WebhooksClient) List(ctx context.Context, opts *iof.EnabledListOptions) (*iof.ListResponse[iof.Webhook], error) {
	resp, err := c.http.Get(ctx, apiPath("/webhooks"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var result iof.ListResponse[iof.Webhook]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*iof.Webhook, error) {
	resp, err := c.http.Get(ctx, apiPath("/webhooks/%s", webhookID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook %s: %w", webhookID, err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

func (c *WebhooksClient) Create(ctx context.Context, req *iof.CreateWebhookRequest) (*iof.Webhook, error) {
	resp, err := c.http.Post(ctx, apiPath("/webhooks"), req)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

func (c *WebhooksClient) Update(ctx context.Context, webhookID string, req *iof.UpdateWebhookRequest) (*iof.Webhook, error) {
	resp, err := c.http.Patch(ctx, apiPath("/webhooks/%s", webhookID), req)
	if err != nil {
		return nil, fmt.Errorf("updating webhook %s: %w", webhookID, err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/webhooks/%s", webhookID)); err != nil {
		return fmt.Errorf("deleting webhook %s: %w", webhookID, err)
	}

	return nil
}

func (c *WebhooksClient) Enable(ctx context.Context, webhookID string) (*iof.Webhook, error) {
	resp, err := c.http.Post(ctx, apiPath("/webhooks/%s/enable", webhookID), nil)
	if err != nil {
		return nil, fmt.Errorf("enabling webhook %s: %w", webhookID, err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

func (c *WebhooksClient) Disable(ctx context.Context, webhookID string) (*iof.Webhook, error) {
	resp, err := c.http.Post(ctx, apiPath("/webhooks/%s/disable", webhookID), nil)
	if err != nil {
		return nil, fmt.Errorf("disabling webhook %s: %w", webhookID, err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

// Test sends a synthetic event to the webhook endpoint.
func (c *WebhooksClient) Test(ctx context.Context, webhookID string) (*iof.WebhookTestResult, error) {
	resp, err := c.http.Post(ctx, apiPath("/webhooks/%s/test", webhookID), nil)
	if err != nil {
		return nil, fmt.Errorf("testing webhook %s: %w", webhookID, err)
	}

	var result iof.WebhookTestResult
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *WebhooksClient) ListDeliveries(ctx context.Context, webhookID string, opts *iof.StatusListOptions) (*iof.ListResponse[iof.WebhookDelivery], error) {
	resp, err := c.http.Get(ctx, apiPath("/webhooks/%s/deliveries", webhookID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing deliveries for webhook %s: %w", webhookID, err)
	}

	var result iof.ListResponse[iof.WebhookDelivery]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *WebhooksClient) GetDelivery(ctx context.Context, webhookID, deliveryID string) (*iof.WebhookDelivery, error) {
	resp, err := c.http.Get(ctx, apiPath("/webhooks/%s/deliveries/%s", webhookID, deliveryID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting delivery %s for webhook %s: %w", deliveryID, webhookID, err)
	}

	var delivery iof.WebhookDelivery
	if err := decodeInto(resp, &delivery); err != nil {
		return nil, err
	}

	return &delivery, nil
}

func (c *WebhooksClient) RetryDelivery(ctx context.Context, webhookID, deliveryID string) (*iof.WebhookDelivery, error) {
	resp, err := c.http.Post(ctx, apiPath("/webhooks/%s/deliveries/%s/retry", webhookID, deliveryID), nil)
	if err != nil {
		return nil, fmt.Errorf("retrying delivery %s for webhook %s: %w", deliveryID, webhookID, err)
	}

	var delivery iof.WebhookDelivery
	if err := decodeInto(resp, &delivery); err != nil {
		return nil, err
	}

	return &delivery, nil
}

func (c *WebhooksClient) ListEventTypes(ctx context.Context) ([]iof.EventType, error) {
	resp, err := c.http.Get(ctx, apiPath("/webhooks/event-types"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhook event types: %w", err)
	}

	var types []iof.EventType
	if err := decodeInto(resp, &types); err != nil {
		return nil, err
	}

	return types, nil
}
