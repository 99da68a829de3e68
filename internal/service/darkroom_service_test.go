package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/service"
	"inkatlas/backend/internal/service/ai"
)

type editorStub struct {
	gotMIME        string
	gotInstruction string
	result         *ai.EditedImage
	err            error
}

func (e *editorStub) EditImage(_ context.Context, _ []byte, mimeType, instruction string) (*ai.EditedImage, error) {
	e.gotMIME = mimeType
	e.gotInstruction = instruction
	return e.result, e.err
}

func newDarkroomService(t *testing.T, settings service.AISettings, editor service.ImageEditor, editorErr error) service.DarkroomService {
	t.Helper()
	repo := newSettingsRepoStub()
	settingsSvc := service.NewSettingsService(repo, nil)
	if settings.Provider != "" {
		require.NoError(t, settingsSvc.Save(context.Background(), settings))
	}
	factory := func(string) (service.ImageEditor, error) {
		if editorErr != nil {
			return nil, editorErr
		}
		return editor, nil
	}
	return service.NewDarkroomService(settingsSvc, ai.NewRateLimiter(100), factory)
}

func TestAgePhoto_Success(t *testing.T) {
	editor := &editorStub{result: &ai.EditedImage{Data: []byte{0x1}, MIMEType: "image/png"}}
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		editor, nil)

	edited, err := svc.AgePhoto(context.Background(), []byte("img"), "image/jpeg", "age it")
	require.NoError(t, err)
	require.NotNil(t, edited)
	require.Equal(t, []byte{0x1}, edited.Data)
	require.Equal(t, "image/jpeg", editor.gotMIME)
	require.Equal(t, "age it", editor.gotInstruction)
}

func TestAgePhoto_DefaultMIMEType(t *testing.T) {
	editor := &editorStub{result: &ai.EditedImage{Data: []byte{0x1}, MIMEType: "image/png"}}
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		editor, nil)

	_, err := svc.AgePhoto(context.Background(), []byte("img"), "", "age it")
	require.NoError(t, err)
	require.Equal(t, "image/png", editor.gotMIME)
}

func TestAgePhoto_MissingGeminiKey(t *testing.T) {
	// A configured OpenAI key does not unlock the darkroom; editing is
	// Gemini-only.
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderOpenAI, OpenAIKey: "key"},
		&editorStub{}, nil)

	_, err := svc.AgePhoto(context.Background(), []byte("img"), "image/png", "age it")
	require.ErrorIs(t, err, service.ErrMissingCredential)
}

func TestAgePhoto_NoImageProduced(t *testing.T) {
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		&editorStub{result: nil}, nil)

	edited, err := svc.AgePhoto(context.Background(), []byte("img"), "image/png", "age it")
	require.NoError(t, err, "a model that returns no image is a soft failure")
	require.Nil(t, edited)
}

func TestAgePhoto_EditorError(t *testing.T) {
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		&editorStub{err: errors.New("quota exceeded")}, nil)

	_, err := svc.AgePhoto(context.Background(), []byte("img"), "image/png", "age it")
	require.ErrorIs(t, err, service.ErrProvider)
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestAgePhoto_FactoryError(t *testing.T) {
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		nil, errors.New("bad client"))

	_, err := svc.AgePhoto(context.Background(), []byte("img"), "image/png", "age it")
	require.Error(t, err)
	require.Contains(t, err.Error(), "create editor")
}

func TestAgePhoto_InvalidInput(t *testing.T) {
	svc := newDarkroomService(t,
		service.AISettings{Provider: ai.ProviderGemini, GeminiKey: "key"},
		&editorStub{}, nil)

	_, err := svc.AgePhoto(context.Background(), nil, "image/png", "age it")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.AgePhoto(context.Background(), []byte("img"), "image/png", "")
	require.ErrorIs(t, err, service.ErrInvalid)
}
