package llm

import (
	"context"
	"fmt"
	"os"
)

// Provider interface for the generative model backends
type Provider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType for the factory
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)

// ProviderConfig for creating a provider
type ProviderConfig struct {
	Type ProviderType

	// API Keys
	OpenAIKey string
	GeminiKey string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider factory for the configured model backend. A missing API key
// does not fail construction: the service must still boot and serve
// deterministic fallback replies, so the returned provider errors on every
// call instead and the engine's retry/fallback path takes over.
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return newUnconfiguredProvider("openai", "OPENAI_API_KEY is not set"), nil
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return newUnconfiguredProvider("gemini", "GEMINI_API_KEY is not set"), nil
		}
		return NewGeminiProvider(cfg.GeminiKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// unconfiguredProvider stands in when credentials are absent. Every call
// fails with the configuration error, which the caller handles like any other
// model failure.
type unconfiguredProvider struct {
	name   string
	reason string
}

func newUnconfiguredProvider(name, reason string) *unconfiguredProvider {
	return &unconfiguredProvider{name: name, reason: reason}
}

func (p *unconfiguredProvider) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return "", fmt.Errorf("%s provider not configured: %s", p.name, p.reason)
}

func (p *unconfiguredProvider) GetProviderName() string {
	return p.name + " (unconfigured)"
}

// LoadProviderFromEnv loads provider config from environment variables
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("LLM_PROVIDER")
	if providerType == "" {
		providerType = "gemini" // default
	}

	cfg := &ProviderConfig{
		Type:      ProviderType(providerType),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiKey: os.Getenv("GEMINI_API_KEY"),
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.Model = model
	} else {
		// Provider-specific defaults
		switch cfg.Type {
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		case ProviderGemini:
			cfg.Model = "gemini-2.5-flash-lite"
		}
	}

	// Review replies are short, keep the budget small
	cfg.Temperature = 0.7
	cfg.MaxTokens = 256

	return cfg, nil
}
