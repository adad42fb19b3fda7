package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Target is anything that can drop entries idle for longer than a TTL.
type Target interface {
	Sweep(now time.Time, ttl time.Duration) int
}

// Sweeper periodically expires idle sessions.
//
// Sweeper runs a single background goroutine that calls [Target.Sweep] on a
// fixed interval. All lifecycle methods (Start, Stop) are safe for
// concurrent use and idempotent.
type Sweeper struct {
	target   Target
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a [Sweeper].
//
// Parameters:
//   - target: Store whose idle entries are removed
//   - ttl: Idle time after which an entry is removed
//   - interval: Time between sweeps
//   - logger: Logger for sweep events
//
// The sweeper does nothing until [Sweeper.Start] is called.
func New(target Target, ttl, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		target:   target,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start begins sweeping in the background until ctx is cancelled or
// [Sweeper.Stop] is called. Calling Start more than once has no effect.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the background goroutine and waits for it to exit.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SweepOnce()
		case <-ctx.Done():
			return
		}
	}
}

// SweepOnce runs a single sweep and returns the number of removed entries.
func (s *Sweeper) SweepOnce() int {
	removed := s.target.Sweep(s.now(), s.ttl)
	if removed > 0 {
		s.logger.Info("expired idle sessions", "count", removed, "ttl", s.ttl.String())
	}
	return removed
}
