package service

import (
	"context"
	"encoding/json"
	"fmt"

	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/repository"
	"inkatlas/backend/internal/service/ai"
)

// KeyAISettings is the settings row holding the whole AI configuration as
// one JSON blob. Whole-object writes keep saves atomic; there is no partial
// merge and no schema version, so readers must tolerate absent fields.
const KeyAISettings = "ai.settings"

// AISettings holds the selected provider, one credential per provider and
// the provider-call rate limit. A zero RateLimit means the built-in default.
type AISettings struct {
	Provider     string `json:"provider"`
	GeminiKey    string `json:"geminiKey"`
	OpenAIKey    string `json:"openaiKey"`
	DeepSeekKey  string `json:"deepseekKey"`
	AnthropicKey string `json:"anthropicKey"`
	RateLimit    int    `json:"rateLimit"`
}

// DefaultAISettings is the baseline configuration used when nothing is
// stored or the stored value is corrupt.
func DefaultAISettings() AISettings {
	return AISettings{Provider: ai.ProviderGemini}
}

// CredentialFor returns the credential for a specific provider. Each
// provider requires its own key; there is no shared credential.
func (s AISettings) CredentialFor(provider string) string {
	switch provider {
	case ai.ProviderGemini:
		return s.GeminiKey
	case ai.ProviderOpenAI:
		return s.OpenAIKey
	case ai.ProviderDeepSeek:
		return s.DeepSeekKey
	case ai.ProviderAnthropic:
		return s.AnthropicKey
	default:
		return ""
	}
}

// HasCredential reports whether the currently selected provider has a
// non-empty credential.
func (s AISettings) HasCredential() bool {
	return s.CredentialFor(s.Provider) != ""
}

// SettingsService provides AI settings management.
type SettingsService interface {
	// Get returns the stored AI configuration with unmasked credentials.
	// Missing or corrupt stored data yields the defaults.
	Get(ctx context.Context) (AISettings, error)
	// Save replaces the stored configuration with one atomic write.
	Save(ctx context.Context, settings AISettings) error
	// Test probes the given provider configuration with a one-shot message.
	Test(ctx context.Context, provider, apiKey string) (string, error)
}

type settingsService struct {
	repo    repository.SettingsRepository
	limiter *ai.RateLimiter
}

// NewSettingsService creates a new settings service. A non-nil limiter is
// retuned whenever a saved configuration changes the rate limit.
func NewSettingsService(repo repository.SettingsRepository, limiter *ai.RateLimiter) SettingsService {
	return &settingsService{repo: repo, limiter: limiter}
}

func (s *settingsService) Get(ctx context.Context) (AISettings, error) {
	setting, err := s.repo.Get(ctx, KeyAISettings)
	if err != nil {
		return DefaultAISettings(), fmt.Errorf("get ai settings: %w", err)
	}
	if setting == nil || setting.Value == "" {
		return DefaultAISettings(), nil
	}

	settings := DefaultAISettings()
	if err := json.Unmarshal([]byte(setting.Value), &settings); err != nil {
		logger.Warn("ai settings corrupt, using defaults", "module", "service", "action", "fetch", "resource", "settings", "result", "failed", "error", err)
		return DefaultAISettings(), nil
	}
	if !ai.ValidProvider(settings.Provider) {
		settings.Provider = ai.ProviderGemini
	}
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings AISettings) error {
	if !ai.ValidProvider(settings.Provider) {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalid, settings.Provider)
	}
	if settings.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit %d", ErrInvalid, settings.RateLimit)
	}

	blob, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal ai settings: %w", err)
	}
	if err := s.repo.Set(ctx, KeyAISettings, string(blob)); err != nil {
		return fmt.Errorf("save ai settings: %w", err)
	}
	if s.limiter != nil {
		s.limiter.SetLimit(settings.RateLimit)
	}
	logger.Info("ai settings saved", "module", "service", "action", "save", "resource", "settings", "result", "ok", "provider", settings.Provider)
	return nil
}

func (s *settingsService) Test(ctx context.Context, provider, apiKey string) (string, error) {
	p, err := ai.NewProvider(ai.Config{Provider: provider, APIKey: apiKey})
	if err != nil {
		return "", err
	}
	return p.Test(ctx)
}
