package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/service/ai"
)

// MaxConcurrentEdits caps in-flight image editing requests; image
// generation calls are slow and large.
const MaxConcurrentEdits = 2

// ImageEditor is the capability the darkroom needs from a provider.
// *ai.GeminiProvider implements it; image editing is Gemini-only.
type ImageEditor interface {
	EditImage(ctx context.Context, data []byte, mimeType, instruction string) (*ai.EditedImage, error)
}

// EditorFactory builds an image editor from a credential. Injectable for tests.
type EditorFactory func(apiKey string) (ImageEditor, error)

// DarkroomService runs the AI photo-aging filter. A (nil, nil) result means
// the model produced no image; the caller treats that as a soft failure and
// keeps the prior image.
type DarkroomService interface {
	AgePhoto(ctx context.Context, image []byte, mimeType, instruction string) (*ai.EditedImage, error)
}

type darkroomService struct {
	settings  SettingsService
	limiter   *ai.RateLimiter
	sem       *semaphore.Weighted
	newEditor EditorFactory
}

// NewDarkroomService creates a new darkroom service.
func NewDarkroomService(settings SettingsService, limiter *ai.RateLimiter, newEditor EditorFactory) DarkroomService {
	if newEditor == nil {
		newEditor = func(apiKey string) (ImageEditor, error) {
			return ai.NewGeminiProvider(apiKey)
		}
	}
	return &darkroomService{
		settings:  settings,
		limiter:   limiter,
		sem:       semaphore.NewWeighted(MaxConcurrentEdits),
		newEditor: newEditor,
	}
}

func (s *darkroomService) AgePhoto(ctx context.Context, image []byte, mimeType, instruction string) (*ai.EditedImage, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalid)
	}
	if instruction == "" {
		return nil, fmt.Errorf("%w: empty instruction", ErrInvalid)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		logger.Warn("settings unavailable, using defaults", "module", "service", "action", "edit", "resource", "settings", "result", "failed", "error", err)
	}
	if cfg.GeminiKey == "" {
		return nil, ErrMissingCredential
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire edit slot: %w", err)
	}
	defer s.sem.Release(1)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	editor, err := s.newEditor(cfg.GeminiKey)
	if err != nil {
		return nil, fmt.Errorf("create editor: %w", err)
	}

	edited, err := editor.EditImage(ctx, image, mimeType, instruction)
	if err != nil {
		logger.Warn("image edit failed", "module", "service", "action", "edit", "resource", "image", "result", "failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if edited == nil {
		logger.Info("image edit produced no image", "module", "service", "action", "edit", "resource", "image", "result", "failed")
		return nil, nil
	}
	logger.Info("image edit completed", "module", "service", "action", "edit", "resource", "image", "result", "ok", "bytes", len(edited.Data))
	return edited, nil
}
