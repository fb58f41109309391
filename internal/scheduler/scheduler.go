package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/pkg/logger"
)

// Scheduler periodically purges namespaces that have been soft deleted for
// longer than the retention window.
type Scheduler struct {
	ratelimitService service.RatelimitService
	interval         time.Duration
	retention        time.Duration
	stopCh           chan struct{}
	wg               sync.WaitGroup
	cancelFunc       context.CancelFunc // cancels the current purge
	mu               sync.Mutex         // protects cancelFunc and closing stopCh
}

func New(ratelimitService service.RatelimitService, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		ratelimitService: ratelimitService,
		interval:         interval,
		retention:        retention,
		stopCh:           make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "interval", s.interval, "retention", s.retention)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	close(s.stopCh)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	s.wg.Wait()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.purge()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purge()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) purge() {
	// a purge never outlives its interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	select {
	case <-s.stopCh:
		// a tick raced with Stop
		s.mu.Unlock()
		cancel()
		return
	default:
	}
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	purged, err := s.ratelimitService.PurgeDeletedNamespaces(ctx, s.retention)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled purge cancelled")
			return
		}
		logger.Error("scheduled purge", "error", err)
		return
	}
	logger.Debug("scheduled purge completed", "purged", purged)
}
