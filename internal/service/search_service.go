package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"inkatlas/backend/internal/catalog"
	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/repository"
	"inkatlas/backend/internal/service/ai"
)

// Coordinate is a WGS84 map position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ViewState is the session view state: what the map is currently showing.
// It is owned exclusively by the SearchService; failed searches never
// mutate it.
type ViewState struct {
	CityName   string           `json:"cityName"`
	Center     Coordinate       `json:"center"`
	Landmarks  []model.Landmark `json:"landmarks"`
	SelectedID string           `json:"selectedId,omitempty"`
	Searching  bool             `json:"searching"`
	Language   model.Language   `json:"language"`
	Source     string           `json:"source"`
	Warning    string           `json:"warning,omitempty"`
}

// ProviderFactory builds a provider adapter from a config. Injectable so
// tests can script provider behavior.
type ProviderFactory func(cfg ai.Config) (ai.Provider, error)

// SearchService orchestrates city searches: it decides between the bundled
// catalog and a provider call, applies the offline fallback, and owns the
// session view state.
//
// In-flight searches are serialized by cancel-and-replace: issuing a new
// search cancels the previous provider call, and a stale completion is
// discarded by a generation check before commit.
type SearchService struct {
	settings    SettingsService
	history     repository.HistoryRepository
	limiter     *ai.RateLimiter
	newProvider ProviderFactory

	mu         sync.Mutex
	state      ViewState
	catalogKey string // catalog key of the displayed entry, "" for provider results
	generation uint64
	cancel     context.CancelFunc
}

// NewSearchService creates a search service showing the default city.
func NewSearchService(
	settings SettingsService,
	history repository.HistoryRepository,
	limiter *ai.RateLimiter,
	newProvider ProviderFactory,
) *SearchService {
	s := &SearchService{
		settings:    settings,
		history:     history,
		limiter:     limiter,
		newProvider: newProvider,
	}
	// Initial view: Florence in Chinese, from the bundled catalog.
	entry, _ := catalog.Lookup("florence")
	s.state = ViewState{
		Language: model.LanguageZH,
	}
	s.applyCatalogLocked("florence", entry)
	return s
}

// State returns a snapshot of the current view state.
func (s *SearchService) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SelectLandmark marks a landmark from the current list as selected.
func (s *SearchService) SelectLandmark(id string) (ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.state.Landmarks {
		if l.ID == id {
			s.state.SelectedID = id
			return s.snapshotLocked(), nil
		}
	}
	return s.snapshotLocked(), fmt.Errorf("%w: landmark %q", ErrNotFound, id)
}

// ClearSelection closes the landmark detail view.
func (s *SearchService) ClearSelection() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedID = ""
	return s.snapshotLocked()
}

// SetLanguage switches the active display language. A catalog-sourced city
// name is re-localized; a provider-sourced name stays the raw search input.
func (s *SearchService) SetLanguage(lang model.Language) (ViewState, error) {
	if !lang.Valid() {
		return s.State(), fmt.Errorf("%w: language %q", ErrInvalid, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Language = lang
	if s.catalogKey != "" {
		if entry, ok := catalog.Lookup(s.catalogKey); ok {
			s.state.CityName = entry.Name.Get(lang)
		}
	}
	return s.snapshotLocked(), nil
}

// Search runs the search decision tree for a city.
//
//  1. Catalog hit without a usable credential: display the catalog entry,
//     no network call.
//  2. Otherwise a missing credential fails before any network call.
//  3. Provider call: non-empty result is displayed with the raw input as
//     city name; an empty result is a no-results failure with no fallback;
//     an adapter failure falls back to the catalog for known cities with a
//     combined warning, and fails otherwise.
func (s *SearchService) Search(ctx context.Context, city string) (ViewState, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return s.State(), fmt.Errorf("%w: empty city", ErrInvalid)
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		// Get already fell back to defaults; a storage error only costs
		// the configured credential.
		logger.Warn("settings unavailable, using defaults", "module", "service", "action", "search", "resource", "settings", "result", "failed", "error", err)
	}

	entry, inCatalog := catalog.Lookup(city)
	credential := cfg.CredentialFor(cfg.Provider)

	if credential == "" {
		if inCatalog {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.state.SelectedID = ""
			s.state.Warning = ""
			s.applyCatalogLocked(catalog.Key(city), entry)
			s.record(ctx, city, cfg.Provider, model.SourceCatalog, len(entry.Landmarks))
			logger.Info("catalog search", "module", "service", "action", "search", "resource", "landmark", "result", "ok", "city", city, "count", len(entry.Landmarks))
			return s.snapshotLocked(), nil
		}
		s.record(ctx, city, cfg.Provider, model.SourceFailed, 0)
		return s.State(), ErrMissingCredential
	}

	// Enter the searching phase: cancel any in-flight search, clear the
	// selected landmark detail.
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	sctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.Searching = true
	s.state.SelectedID = ""
	s.mu.Unlock()
	defer cancel()

	landmarks, searchErr := s.callProvider(sctx, cfg, credential, city)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer search owns the view state now.
		return s.snapshotLocked(), ErrSuperseded
	}
	s.state.Searching = false
	s.cancel = nil

	switch {
	case searchErr == nil && len(landmarks) > 0:
		s.enrich(landmarks, cfg.Provider, city)
		s.state.CityName = city
		s.state.Center = Coordinate{Lat: landmarks[0].Lat, Lng: landmarks[0].Lng}
		s.state.Landmarks = landmarks
		s.state.Source = model.SourceProvider
		s.state.Warning = ""
		s.catalogKey = ""
		s.record(ctx, city, cfg.Provider, model.SourceProvider, len(landmarks))
		logger.Info("provider search", "module", "service", "action", "search", "resource", "landmark", "result", "ok", "city", city, "provider", cfg.Provider, "count", len(landmarks))
		return s.snapshotLocked(), nil

	case searchErr == nil:
		// Empty result: a no-data outcome, never a fallback trigger.
		s.record(ctx, city, cfg.Provider, model.SourceFailed, 0)
		logger.Info("provider search empty", "module", "service", "action", "search", "resource", "landmark", "result", "failed", "city", city, "provider", cfg.Provider)
		return s.snapshotLocked(), fmt.Errorf("%w for %q", ErrNoResults, city)

	case inCatalog:
		s.applyCatalogLocked(catalog.Key(city), entry)
		s.state.Warning = fmt.Sprintf("%v: loaded offline archive instead", searchErr)
		s.state.Source = model.SourceFallback
		s.record(ctx, city, cfg.Provider, model.SourceFallback, len(entry.Landmarks))
		logger.Warn("provider search failed, catalog fallback", "module", "service", "action", "search", "resource", "landmark", "result", "ok", "city", city, "provider", cfg.Provider, "error", searchErr)
		return s.snapshotLocked(), nil

	default:
		s.record(ctx, city, cfg.Provider, model.SourceFailed, 0)
		logger.Warn("provider search failed", "module", "service", "action", "search", "resource", "landmark", "result", "failed", "city", city, "provider", cfg.Provider, "error", searchErr)
		return s.snapshotLocked(), fmt.Errorf("%w: %v", ErrProvider, searchErr)
	}
}

func (s *SearchService) callProvider(ctx context.Context, cfg AISettings, credential, city string) ([]model.Landmark, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	provider, err := s.newProvider(ai.Config{Provider: cfg.Provider, APIKey: credential})
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return provider.FindLandmarks(ctx, city)
}

// enrich assigns display IDs and placeholder covers and caps grounding
// reviews, mirroring what the catalog entries already carry.
func (s *SearchService) enrich(landmarks []model.Landmark, provider, city string) {
	for i := range landmarks {
		landmarks[i].ID = fmt.Sprintf("ai-%s-%s-%d", provider, catalog.Key(city), i)
		landmarks[i].CoverURL = fmt.Sprintf("https://picsum.photos/200/300?random=%d", rand.IntN(1000))
		if len(landmarks[i].Reviews) > model.MaxReviews {
			landmarks[i].Reviews = landmarks[i].Reviews[:model.MaxReviews]
		}
	}
}

// applyCatalogLocked displays a catalog entry. The city name uses the
// catalog's localized name for the active language, not the raw input.
func (s *SearchService) applyCatalogLocked(key string, entry model.City) {
	s.state.CityName = entry.Name.Get(s.state.Language)
	s.state.Center = Coordinate{Lat: entry.Lat, Lng: entry.Lng}
	s.state.Landmarks = entry.Landmarks
	s.state.Searching = false
	s.state.Source = model.SourceCatalog
	s.catalogKey = key
}

func (s *SearchService) snapshotLocked() ViewState {
	snapshot := s.state
	snapshot.Landmarks = make([]model.Landmark, len(s.state.Landmarks))
	copy(snapshot.Landmarks, s.state.Landmarks)
	return snapshot
}

// record stores a settled search in the history; failures are non-fatal.
func (s *SearchService) record(ctx context.Context, city, provider, source string, count int) {
	if s.history == nil {
		return
	}
	rec := model.SearchRecord{
		City:        city,
		Provider:    provider,
		Source:      source,
		ResultCount: count,
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		logger.Warn("search history insert failed", "module", "service", "action", "save", "resource", "history", "result", "failed", "error", err)
	}
}
