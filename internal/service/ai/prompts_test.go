package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/service/ai"
)

func TestGetLandmarkSystemPrompt(t *testing.T) {
	prompt := ai.GetLandmarkSystemPrompt(false)
	require.Contains(t, prompt, "at least 10 real-world locations")
	require.Contains(t, prompt, "travelerNote")
	require.NotContains(t, prompt, "Output strictly raw JSON")
}

func TestGetLandmarkSystemPrompt_RawJSONSuffix(t *testing.T) {
	prompt := ai.GetLandmarkSystemPrompt(true)
	require.Contains(t, prompt, "Output strictly raw JSON.")
}

func TestGetLandmarkUserPrompt_QuotesCity(t *testing.T) {
	prompt := ai.GetLandmarkUserPrompt("Buenos Aires")
	require.Contains(t, prompt, `"Buenos Aires"`)
}

func TestGetEditImagePrompt(t *testing.T) {
	prompt := ai.GetEditImagePrompt("age this photo 100 years")
	require.Contains(t, prompt, "age this photo 100 years")
	require.Contains(t, prompt, "Maintain the aspect ratio")
}
