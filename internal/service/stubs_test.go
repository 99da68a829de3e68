package service_test

import (
	"context"
	"sync"
	"time"

	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/service/ai"
)

// settingsRepoStub is an in-memory repository.SettingsRepository.
type settingsRepoStub struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{data: map[string]string{}}
}

func (s *settingsRepoStub) Get(_ context.Context, key string) (*model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return &model.Setting{Key: key, Value: value, UpdatedAt: time.Now()}, nil
}

func (s *settingsRepoStub) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[key] = value
	return nil
}

func (s *settingsRepoStub) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// historyRepoStub records inserted search records in memory.
type historyRepoStub struct {
	mu        sync.Mutex
	records   []model.SearchRecord
	insertErr error
}

func (h *historyRepoStub) Insert(_ context.Context, rec model.SearchRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.insertErr != nil {
		return h.insertErr
	}
	h.records = append(h.records, rec)
	return nil
}

func (h *historyRepoStub) List(_ context.Context, limit int) ([]model.SearchRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if limit > len(h.records) {
		limit = len(h.records)
	}
	out := make([]model.SearchRecord, limit)
	copy(out, h.records[len(h.records)-limit:])
	return out, nil
}

func (h *historyRepoStub) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var kept []model.SearchRecord
	var deleted int64
	for _, rec := range h.records {
		if rec.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	h.records = kept
	return deleted, nil
}

func (h *historyRepoStub) last() (model.SearchRecord, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.records) == 0 {
		return model.SearchRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// providerStub is a scripted ai.Provider.
type providerStub struct {
	name      string
	landmarks []model.Landmark
	err       error
	// blockUntil, when set, delays FindLandmarks until the channel closes
	// or the context is cancelled.
	blockUntil chan struct{}
	started    chan struct{} // closed when FindLandmarks is entered
}

func (p *providerStub) Name() string { return p.name }

func (p *providerStub) FindLandmarks(ctx context.Context, _ string) ([]model.Landmark, error) {
	if p.started != nil {
		close(p.started)
	}
	if p.blockUntil != nil {
		select {
		case <-p.blockUntil:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	out := make([]model.Landmark, len(p.landmarks))
	copy(out, p.landmarks)
	return out, nil
}

func (p *providerStub) Test(context.Context) (string, error) {
	return "ok", nil
}

func stubFactory(p *providerStub) func(cfg ai.Config) (ai.Provider, error) {
	return func(ai.Config) (ai.Provider, error) { return p, nil }
}

func stubLandmark(name string, lat, lng float64) model.Landmark {
	return model.Landmark{
		Name:         model.LocalizedText{EN: name, ZH: name},
		Lat:          lat,
		Lng:          lng,
		BookTitle:    model.LocalizedText{EN: "Book", ZH: "书"},
		Author:       model.LocalizedText{EN: "Author", ZH: "作者"},
		Quote:        model.LocalizedText{EN: "Quote", ZH: "引文"},
		TravelerNote: model.LocalizedText{EN: "Note", ZH: "提示"},
	}
}
