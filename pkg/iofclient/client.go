// Package iofclient provides the constructors for the IOF API client.
package iofclient

import (
	"fmt"

	"github.com/iofinance-io/iof-client/internal/client"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// New creates a client from the given configuration.
func New(config *iof.Config) (iof.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client authenticating with an API key.
func NewWithAPIKey(baseURL, apiKey string) (iof.Client, error) {
	return New(&iof.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithToken creates a client authenticating with a bearer token.
func NewWithToken(baseURL, accessToken string) (iof.Client, error) {
	return New(&iof.Config{
		BaseURL:     baseURL,
		AccessToken: accessToken,
	})
}
