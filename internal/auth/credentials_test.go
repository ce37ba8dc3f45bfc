package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iofinance-io/iof-client/internal/auth"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

func TestAPIKeyCredentials(t *testing.T) {
	t.Parallel()

	name, value, ok := auth.NewAPIKeyCredentials("secret").Apply()
	require.True(t, ok)
	assert.Equal(t, "X-Api-Key", name)
	assert.Equal(t, "secret", value)

	_, _, ok = auth.NewAPIKeyCredentials("").Apply()
	assert.False(t, ok)
}

func TestTokenCredentials(t *testing.T) {
	t.Parallel()

	name, value, ok := auth.NewTokenCredentials("my-token").Apply()
	require.True(t, ok)
	assert.Equal(t, "Authorization", name)
	assert.Equal(t, "Bearer my-token", value)

	_, _, ok = auth.NewTokenCredentials("").Apply()
	assert.False(t, ok)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	credentials, err := auth.FromConfig(&iof.Config{APIKey: "key"})
	require.NoError(t, err)
	name, _, ok := credentials.Apply()
	require.True(t, ok)
	assert.Equal(t, "X-Api-Key", name)

	credentials, err = auth.FromConfig(&iof.Config{AccessToken: "token"})
	require.NoError(t, err)
	name, _, ok = credentials.Apply()
	require.True(t, ok)
	assert.Equal(t, "Authorization", name)
}

func TestFromConfigAmbiguous(t *testing.T) {
	t.Parallel()

	_, err := auth.FromConfig(&iof.Config{APIKey: "key", AccessToken: "token"})
	require.ErrorIs(t, err, iof.ErrAmbiguousCredentials)
}

func TestFromConfigAnonymous(t *testing.T) {
	t.Parallel()

	credentials, err := auth.FromConfig(&iof.Config{})
	require.NoError(t, err)
	assert.Nil(t, credentials)
}
