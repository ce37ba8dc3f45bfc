// Package auth holds the credential types the transport injects into
// requests.
package auth

import "github.com/iofinance-io/iof-client/pkg/iof"

// Credentials contributes the authentication header for a request.
type Credentials interface {
	// Apply returns the header name and value to set, or ok=false when no
	// credential is configured.
	Apply() (name, value string, ok bool)
}

// APIKeyCredentials authenticates with a static API key.
type APIKeyCredentials struct {
	key string
}

// NewAPIKeyCredentials returns credentials for the given key.
func NewAPIKeyCredentials(key string) *APIKeyCredentials {
	return &APIKeyCredentials{key: key}
}

func (c *APIKeyCredentials) Apply() (string, string, bool) {
	if c.key == "" {
		return "", "", false
	}

	return "X-Api-Key", c.key, true
}

// TokenCredentials authenticates with a static bearer token.
type TokenCredentials struct {
	token string
}

// NewTokenCredentials returns credentials for the given access token.
func NewTokenCredentials(token string) *TokenCredentials {
	return &TokenCredentials{token: token}
}

func (c *TokenCredentials) Apply() (string, string, bool) {
	if c.token == "" {
		return "", "", false
	}

	return "Authorization", "Bearer " + c.token, true
}

// FromConfig builds credentials from client configuration. It rejects
// configurations that set both an API key and an access token.
func FromConfig(config *iof.Config) (Credentials, error) {
	switch {
	case config.APIKey != "" && config.AccessToken != "":
		return nil, iof.ErrAmbiguousCredentials
	case config.APIKey != "":
		return NewAPIKeyCredentials(config.APIKey), nil
	case config.AccessToken != "":
		return NewTokenCredentials(config.AccessToken), nil
	default:
		return nil, nil
	}
}
