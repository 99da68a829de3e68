package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/model"
)

func TestLocalizedText_Get(t *testing.T) {
	text := model.LocalizedText{EN: "London", ZH: "伦敦"}
	require.Equal(t, "London", text.Get(model.LanguageEN))
	require.Equal(t, "伦敦", text.Get(model.LanguageZH))
}

func TestLocalizedText_Get_FallsBackToEnglish(t *testing.T) {
	text := model.LocalizedText{EN: "London"}
	require.Equal(t, "London", text.Get(model.LanguageZH))
}

func TestLocalizedText_Get_Empty(t *testing.T) {
	var text model.LocalizedText
	require.Equal(t, "", text.Get(model.LanguageZH))
	require.True(t, text.Empty())
}

func TestLanguage_Valid(t *testing.T) {
	require.True(t, model.LanguageEN.Valid())
	require.True(t, model.LanguageZH.Valid())
	require.False(t, model.Language("fr").Valid())
	require.False(t, model.Language("").Valid())
}
