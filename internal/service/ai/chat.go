package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"inkatlas/backend/internal/model"
)

const (
	openaiModel     = "gpt-4o"
	deepseekModel   = "deepseek-chat"
	deepseekBaseURL = "https://api.deepseek.com"

	// Fixed sampling temperature for landmark search completions.
	chatTemperature = 0.7
)

// ChatProvider implements Provider over the generic chat-completion API.
// One implementation serves both OpenAI and DeepSeek; the two differ only
// in base URL and model identifier.
type ChatProvider struct {
	client openai.Client
	name   string
	model  string
}

func newChatProvider(name, apiKey, baseURL, model string) (*ChatProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &ChatProvider{
		client: openai.NewClient(opts...),
		name:   name,
		model:  model,
	}, nil
}

// NewOpenAIProvider creates a chat provider against the OpenAI API.
func NewOpenAIProvider(apiKey string) (*ChatProvider, error) {
	return newChatProvider(ProviderOpenAI, apiKey, "", openaiModel)
}

// NewDeepSeekProvider creates a chat provider against the DeepSeek API.
func NewDeepSeekProvider(apiKey string) (*ChatProvider, error) {
	return newChatProvider(ProviderDeepSeek, apiKey, deepseekBaseURL, deepseekModel)
}

// Name returns the provider identifier.
func (p *ChatProvider) Name() string {
	return p.name
}

// FindLandmarks sends the landmark search as a system+user message pair and
// parses the completion text after stripping markdown code fences.
func (p *ChatProvider) FindLandmarks(ctx context.Context, city string) ([]model.Landmark, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(GetLandmarkSystemPrompt(true)),
			openai.UserMessage(GetLandmarkUserPrompt(city)),
		},
		Temperature: openai.Float(chatTemperature),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", p.name, ErrCallFailed, apiErrorMessage(err))
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w: empty completion", p.name, ErrBadResponse)
	}

	content := StripCodeFences(resp.Choices[0].Message.Content)
	if content == "" {
		return []model.Landmark{}, nil
	}
	landmarks, err := ParseLandmarks([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	return landmarks, nil
}

// Test sends a test message and returns the response.
func (p *ChatProvider) Test(ctx context.Context) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Hello world"),
		},
		MaxTokens: openai.Int(50),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// apiErrorMessage prefers the provider's embedded error message when present.
func apiErrorMessage(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
