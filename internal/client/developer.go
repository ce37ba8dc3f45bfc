package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// DeveloperClient implements iof.DeveloperClient.
type DeveloperClient struct {
	http *internalhttp.Client
}

func (c *DeveloperClient) ListClients(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.OAuthClient], error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/clients"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing developer clients: %w", err)
	}

	var result iof.ListResponse[iof.OAuthClient]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *DeveloperClient) GetClient(ctx context.Context, clientID string) (*iof.OAuthClient, error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/clients/%s", clientID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting developer client %s: %w", clientID, err)
	}

	var oauthClient iof.OAuthClient
	if err := decodeInto(resp, &oauthClient); err != nil {
		return nil, err
	}

	return &oauthClient, nil
}

func (c *DeveloperClient) CreateClient(ctx context.Context, req *iof.CreateOAuthClientRequest) (*iof.OAuthClient, error) {
	resp, err := c.http.Post(ctx, apiPath("/developer/clients"), req)
	if err != nil {
		return nil, fmt.Errorf("creating developer client: %w", err)
	}

	var oauthClient iof.OAuthClient
	if err := decodeInto(resp, &oauthClient); err != nil {
		return nil, err
	}

	return &oauthClient, nil
}

func (c *DeveloperClient) UpdateClient(ctx context.Context, clientID string, req *iof.UpdateOAuthClientRequest) (*iof.OAuthClient, error) {
	resp, err := c.http.Patch(ctx, apiPath("/developer/clients/%s", clientID), req)
	if err != nil {
		return nil, fmt.Errorf("updating developer client %s: %w", clientID, err)
	}

	var oauthClient iof.OAuthClient
	if err := decodeInto(resp, &oauthClient); err != nil {
		return nil, err
	}

	return &oauthClient, nil
}

func (c *DeveloperClient) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/developer/clients/%s", clientID)); err != nil {
		return fmt.Errorf("deleting developer client %s: %w", clientID, err)
	}

	return nil
}

// RotateClientSecret issues a fresh secret for a client app. The response is
// the only place the new secret appears.
func (c *DeveloperClient) RotateClientSecret(ctx context.Context, clientID string) (*iof.OAuthClient, error) {
	resp, err := c.http.Post(ctx, apiPath("/developer/clients/%s/rotate-secret", clientID), nil)
	if err != nil {
		return nil, fmt.Errorf("rotating secret for developer client %s: %w", clientID, err)
	}

	var oauthClient iof.OAuthClient
	if err := decodeInto(resp, &oauthClient); err != nil {
		return nil, err
	}

	return &oauthClient, nil
}

func (c *DeveloperClient) ListAPIKeys(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.APIKey], error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/api-keys"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}

	var result iof.ListResponse[iof.APIKey]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *DeveloperClient) GetAPIKey(ctx context.Context, keyID string) (*iof.APIKey, error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/api-keys/%s", keyID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting api key %s: %w", keyID, err)
	}

	var key iof.APIKey
	if err := decodeInto(resp, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

func (c *DeveloperClient) CreateAPIKey(ctx context.Context, req *iof.CreateAPIKeyRequest) (*iof.APIKey, error) {
	resp, err := c.http.Post(ctx, apiPath("/developer/api-keys"), req)
	if err != nil {
		return nil, fmt.Errorf("creating api key: %w", err)
	}

	var key iof.APIKey
	if err := decodeInto(resp, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

func (c *DeveloperClient) DeleteAPIKey(ctx context.Context, keyID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/developer/api-keys/%s", keyID)); err != nil {
		return fmt.Errorf("deleting api key %s: %w", keyID, err)
	}

	return nil
}

func (c *DeveloperClient) RotateAPIKey(ctx context.Context, keyID string) (*iof.APIKey, error) {
	resp, err := c.http.Post(ctx, apiPath("/developer/api-keys/%s/rotate", keyID), nil)
	if err != nil {
		return nil, fmt.Errorf("rotating api key %s: %w", keyID, err)
	}

	var key iof.APIKey
	if err := decodeInto(resp, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

func (c *DeveloperClient) ListWebhooks(ctx context.Context, opts *iof.ListOptions) (*iof.ListResponse[iof.Webhook], error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/webhooks"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing developer webhooks: %w", err)
	}

	var result iof.ListResponse[iof.Webhook]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *DeveloperClient) CreateWebhook(ctx context.Context, req *iof.CreateWebhookRequest) (*iof.Webhook, error) {
	resp, err := c.http.Post(ctx, apiPath("/developer/webhooks"), req)
	if err != nil {
		return nil, fmt.Errorf("creating developer webhook: %w", err)
	}

	var webhook iof.Webhook
	if err := decodeInto(resp, &webhook); err != nil {
		return nil, err
	}

	return &webhook, nil
}

func (c *DeveloperClient) GetUsageMetrics(ctx context.Context, opts *iof.DateRangeOptions) (*iof.UsageMetrics, error) {
	resp, err := c.http.Get(ctx, apiPath("/developer/usage"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting usage metrics: %w", err)
	}

	var metrics iof.UsageMetrics
	if err := decodeInto(resp, &metrics); err != nil {
		return nil, err
	}

	return &metrics, nil
}
