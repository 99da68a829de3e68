package service

import (
	"context"
	"fmt"
	"time"

	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/repository"
)

// DefaultHistoryLimit bounds history listings when the caller asks for
// nothing or too much.
const DefaultHistoryLimit = 50

const maxHistoryLimit = 200

// HistoryService lists and prunes the search history.
type HistoryService interface {
	List(ctx context.Context, limit int) ([]model.SearchRecord, error)
	// Prune deletes records older than the retention window and returns
	// how many were removed.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

type historyService struct {
	repo repository.HistoryRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	records, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

func (s *historyService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	if deleted > 0 {
		logger.Info("search history pruned", "module", "service", "action", "delete", "resource", "history", "result", "ok", "deleted", deleted)
	}
	return deleted, nil
}
