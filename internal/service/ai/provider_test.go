package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/service/ai"
)

func TestNewProvider_MissingAPIKey(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderGemini})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)
}

func TestNewProvider_InvalidProvider(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: "grok", APIKey: "key"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestNewProvider_Names(t *testing.T) {
	for _, id := range ai.Providers() {
		p, err := ai.NewProvider(ai.Config{Provider: id, APIKey: "key"})
		require.NoError(t, err, "provider %s", id)
		require.Equal(t, id, p.Name())
	}
}

func TestValidProvider(t *testing.T) {
	require.True(t, ai.ValidProvider(ai.ProviderGemini))
	require.True(t, ai.ValidProvider(ai.ProviderDeepSeek))
	require.False(t, ai.ValidProvider(""))
	require.False(t, ai.ValidProvider("grok"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, limiter.GetLimit())

	limiter.SetLimit(20)
	require.Equal(t, 20, limiter.GetLimit())
}
