package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"inkatlas/backend/internal/model"
)

const anthropicModel = "claude-sonnet-4-5"

// AnthropicProvider implements Provider for the Anthropic API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: client, model: anthropicModel}, nil
}

// Name returns the provider identifier.
func (p *AnthropicProvider) Name() string {
	return ProviderAnthropic
}

// FindLandmarks sends the landmark search as a message request and parses
// the text reply after stripping markdown code fences.
func (p *AnthropicProvider) FindLandmarks(ctx context.Context, city string) ([]model.Landmark, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 8192,
		System: []anthropic.TextBlockParam{
			{Text: GetLandmarkSystemPrompt(true)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(GetLandmarkUserPrompt(city))),
		},
		Temperature: anthropic.Float(chatTemperature),
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", ProviderAnthropic, ErrCallFailed, err)
	}

	var text string
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += v.Text
		}
	}

	content := StripCodeFences(text)
	if content == "" {
		return []model.Landmark{}, nil
	}
	landmarks, err := ParseLandmarks([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProviderAnthropic, err)
	}
	return landmarks, nil
}

// Test sends a test message and returns the response.
func (p *AnthropicProvider) Test(ctx context.Context) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 50,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("Hello world")),
		},
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	for _, block := range resp.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			return v.Text, nil
		}
	}
	return "", nil
}
