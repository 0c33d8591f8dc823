package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderWithoutAPIKey(t *testing.T) {
	for _, pt := range []ProviderType{ProviderOpenAI, ProviderGemini} {
		t.Run(string(pt), func(t *testing.T) {
			provider, err := NewProvider(&ProviderConfig{Type: pt})
			require.NoError(t, err)

			assert.Contains(t, provider.GetProviderName(), "unconfigured")

			_, err = provider.GenerateResponse(context.Background(), "system", "user")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not configured")
		})
	}
}

func TestNewProviderUnknownType(t *testing.T) {
	_, err := NewProvider(&ProviderConfig{Type: "mystery"})
	require.Error(t, err)
}
