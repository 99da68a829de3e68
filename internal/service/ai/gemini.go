package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"inkatlas/backend/internal/model"
)

const (
	geminiModel      = "gemini-2.5-flash"
	geminiImageModel = "gemini-2.5-flash-image"
)

// GeminiProvider implements Provider for the Gemini API using the native SDK.
// Searches run with the google-search tool enabled so the model can ground
// answers in current information.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &GeminiProvider{apiKey: apiKey, model: geminiModel}, nil
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

// client construction is cheap with API-key auth, so a fresh client per call
// keeps the provider stateless.
func (p *GeminiProvider) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %v", ErrCallFailed, err)
	}
	return client, nil
}

// FindLandmarks issues a single generation request with a strict response
// schema. An empty text payload yields an empty list, not an error.
func (p *GeminiProvider) FindLandmarks(ctx context.Context, city string) ([]model.Landmark, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(GetLandmarkSystemPrompt(false), genai.RoleUser),
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    landmarkSchema(),
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(GetLandmarkUserPrompt(city)), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %v", ErrCallFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return []model.Landmark{}, nil
	}
	landmarks, err := ParseLandmarks([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return landmarks, nil
}

// Test sends a test message and returns the response.
func (p *GeminiProvider) Test(ctx context.Context) (string, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text("Hello world"), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// EditedImage is the payload produced by an image editing request.
type EditedImage struct {
	Data     []byte
	MIMEType string
}

// EditImage sends the image and a free-text instruction to the image model
// and returns the first inline image payload in the response. A (nil, nil)
// return means the model produced no image; callers distinguish that from a
// failed call.
func (p *GeminiProvider) EditImage(ctx context.Context, data []byte, mimeType, instruction string) (*EditedImage, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(GetEditImagePrompt(instruction)),
		}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, geminiImageModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %v", ErrCallFailed, err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &EditedImage{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}
	return nil, nil
}

func localizedSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"en": {Type: genai.TypeString},
			"zh": {Type: genai.TypeString},
		},
		Required: []string{"en", "zh"},
	}
}

func landmarkSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":         localizedSchema(),
				"bookTitle":    localizedSchema(),
				"author":       localizedSchema(),
				"quote":        localizedSchema(),
				"travelerNote": localizedSchema(),
				"lat":          {Type: genai.TypeNumber},
				"lng":          {Type: genai.TypeNumber},
			},
			Required: []string{"name", "bookTitle", "author", "quote", "travelerNote", "lat", "lng"},
		},
	}
}
