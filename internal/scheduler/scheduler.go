package scheduler

import (
	"context"
	"sync"
	"time"

	"inkatlas/backend/internal/logger"
	"inkatlas/backend/internal/service"
)

// Scheduler periodically prunes old search history records.
type Scheduler struct {
	historyService service.HistoryService
	interval       time.Duration
	retention      time.Duration
	stopCh         chan struct{}
	wg             sync.WaitGroup
	cancelFunc     context.CancelFunc // cancels the current prune operation
	mu             sync.Mutex         // protects cancelFunc
}

func New(historyService service.HistoryService, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		historyService: historyService,
		interval:       interval,
		retention:      retention,
		stopCh:         make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "prune", "resource", "history", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "prune", "resource", "history", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.prune()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.prune()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if _, err := s.historyService.Prune(ctx, s.retention); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled prune cancelled", "module", "scheduler", "action", "prune", "resource", "history", "result", "cancelled")
			return
		}
		logger.Error("scheduled prune failed", "module", "scheduler", "action", "prune", "resource", "history", "result", "failed", "error", err)
	}
}
