package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkatlas/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

// Request/Response types

type aiSettingsResponse struct {
	Provider     string `json:"provider"`
	GeminiKey    string `json:"geminiKey"`
	OpenAIKey    string `json:"openaiKey"`
	DeepSeekKey  string `json:"deepseekKey"`
	AnthropicKey string `json:"anthropicKey"`
	RateLimit    int    `json:"rateLimit"`
}

type aiSettingsRequest struct {
	Provider     string `json:"provider"`
	GeminiKey    string `json:"geminiKey"`
	OpenAIKey    string `json:"openaiKey"`
	DeepSeekKey  string `json:"deepseekKey"`
	AnthropicKey string `json:"anthropicKey"`
	RateLimit    int    `json:"rateLimit"`
}

type aiTestRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

type aiTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/ai", h.GetAISettings)
	g.PUT("/settings/ai", h.UpdateAISettings)
	g.POST("/settings/ai/test", h.TestAI)
}

// GetAISettings returns the AI configuration with masked API keys.
func (h *SettingsHandler) GetAISettings(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get settings"})
	}

	return c.JSON(http.StatusOK, maskSettings(settings))
}

// UpdateAISettings replaces the AI configuration. An empty or masked key
// keeps the stored key for that provider.
func (h *SettingsHandler) UpdateAISettings(c echo.Context) error {
	var req aiSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	ctx := c.Request().Context()
	stored, err := h.service.Get(ctx)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get settings"})
	}

	settings := service.AISettings{
		Provider:     req.Provider,
		GeminiKey:    resolveKey(req.GeminiKey, stored.GeminiKey),
		OpenAIKey:    resolveKey(req.OpenAIKey, stored.OpenAIKey),
		DeepSeekKey:  resolveKey(req.DeepSeekKey, stored.DeepSeekKey),
		AnthropicKey: resolveKey(req.AnthropicKey, stored.AnthropicKey),
		RateLimit:    req.RateLimit,
	}

	if err := h.service.Save(ctx, settings); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, maskSettings(settings))
}

// TestAI probes a provider configuration with a one-shot message. A masked
// key in the request is swapped for the stored key of that provider.
func (h *SettingsHandler) TestAI(c echo.Context) error {
	var req aiTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.Provider == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "provider is required"})
	}

	ctx := c.Request().Context()
	apiKey := req.APIKey
	if apiKey == "" || isMaskedKey(apiKey) {
		stored, err := h.service.Get(ctx)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get settings"})
		}
		apiKey = stored.CredentialFor(req.Provider)
	}

	message, err := h.service.Test(ctx, req.Provider, apiKey)
	if err != nil {
		return c.JSON(http.StatusOK, aiTestResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, aiTestResponse{
		Success: true,
		Message: message,
	})
}

func maskSettings(settings service.AISettings) aiSettingsResponse {
	return aiSettingsResponse{
		Provider:     settings.Provider,
		GeminiKey:    maskAPIKey(settings.GeminiKey),
		OpenAIKey:    maskAPIKey(settings.OpenAIKey),
		DeepSeekKey:  maskAPIKey(settings.DeepSeekKey),
		AnthropicKey: maskAPIKey(settings.AnthropicKey),
		RateLimit:    settings.RateLimit,
	}
}

// resolveKey keeps the stored key when the client sends back a masked or
// empty value.
func resolveKey(incoming, stored string) string {
	if incoming == "" || isMaskedKey(incoming) {
		return stored
	}
	return incoming
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	// Find prefix (e.g., "sk-" for OpenAI)
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	prefix := apiKey[:prefixEnd]
	suffix := apiKey[len(apiKey)-3:]
	return prefix + "***" + suffix
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	if len(key) == 0 || len(key) >= 20 {
		return false
	}
	for i := 0; i <= len(key)-3; i++ {
		if key[i:i+3] == "***" {
			return true
		}
	}
	return false
}
