package sweeper

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTarget struct {
	calls   atomic.Int32
	removed int

	mu      sync.Mutex
	lastTTL time.Duration
}

func (f *fakeTarget) Sweep(_ time.Time, ttl time.Duration) int {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastTTL = ttl
	f.mu.Unlock()
	return f.removed
}

func TestSweepOnce(t *testing.T) {
	target := &fakeTarget{removed: 3}
	s := New(target, time.Hour, time.Minute, testLogger())

	if got := s.SweepOnce(); got != 3 {
		t.Errorf("SweepOnce() = %d, want 3", got)
	}
	if target.lastTTL != time.Hour {
		t.Errorf("Sweep() ttl = %v, want 1h", target.lastTTL)
	}
}

func TestStart_SweepsOnInterval(t *testing.T) {
	target := &fakeTarget{}
	s := New(target, time.Hour, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	deadline := time.After(1 * time.Second)
	for target.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("Sweep() called %d times, want at least 2", target.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()
}

func TestStop_Idempotent(t *testing.T) {
	s := New(&fakeTarget{}, time.Hour, time.Minute, testLogger())

	// stop before start is a no-op
	s.Stop()

	s.Start(context.Background())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	target := &fakeTarget{}
	s := New(target, time.Hour, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("sweeper goroutine did not exit after context cancel")
	}

	calls := target.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if target.calls.Load() != calls {
		t.Error("Sweep() still called after context cancel")
	}
}
