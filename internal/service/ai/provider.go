package ai

import (
	"context"
	"errors"

	"inkatlas/backend/internal/model"
)

// Provider defines the interface for AI landmark providers.
type Provider interface {
	// Name returns the provider identifier.
	Name() string
	// FindLandmarks asks the provider for literary landmarks in a city.
	// Returned records carry no ID or cover URL; the caller assigns those.
	// An empty slice with a nil error means the provider found nothing.
	FindLandmarks(ctx context.Context, city string) ([]model.Landmark, error)
	// Test sends a test message and returns the response.
	Test(ctx context.Context) (string, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // gemini, openai, deepseek, anthropic
	APIKey   string
}

// Provider identifiers. Each provider requires its own credential; the
// check is per provider, never generic.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderDeepSeek  = "deepseek"
	ProviderAnthropic = "anthropic"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	// ErrCallFailed marks transport or authentication failures.
	ErrCallFailed = errors.New("search failed, check API key")
	// ErrBadResponse marks malformed JSON or schema-invalid records.
	ErrBadResponse = errors.New("malformed provider response")
)

// Providers lists the supported provider identifiers.
func Providers() []string {
	return []string{ProviderGemini, ProviderOpenAI, ProviderDeepSeek, ProviderAnthropic}
}

// ValidProvider reports whether id names a supported provider.
func ValidProvider(id string) bool {
	switch id {
	case ProviderGemini, ProviderOpenAI, ProviderDeepSeek, ProviderAnthropic:
		return true
	}
	return false
}

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiProvider(cfg.APIKey)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey)
	case ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.APIKey)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey)
	default:
		return nil, ErrInvalidProvider
	}
}
