package kernel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// TimerConfig describes a clear-on-compare-match timer: the counter runs at
// ClockHz/Prescaler and fires when it passes Compare.
type TimerConfig struct {
	ClockHz   uint32
	Prescaler uint32
	Compare   uint32
}

// DefaultTimer is a 16 MHz clock divided by 1024 matching at 16, a period of
// about 1.088ms.
var DefaultTimer = TimerConfig{ClockHz: 16_000_000, Prescaler: 1024, Compare: 16}

var ErrTimerConfig = errors.New("kernel: invalid timer config")

// Validate checks that the timer has a positive period.
func (c TimerConfig) Validate() error {
	if c.ClockHz == 0 {
		return fmt.Errorf("%w: zero clock", ErrTimerConfig)
	}
	if c.Prescaler == 0 {
		return fmt.Errorf("%w: zero prescaler", ErrTimerConfig)
	}
	return nil
}

// Period returns the time between firings.
func (c TimerConfig) Period() time.Duration {
	if c.ClockHz == 0 {
		return 0
	}
	counts := uint64(c.Prescaler) * (uint64(c.Compare) + 1)
	return time.Duration(counts * uint64(time.Second) / uint64(c.ClockHz))
}

// Scheduler runs one task per timer firing. A firing disarms the scheduler
// for the length of the task; firings that arrive while it is disarmed are
// skipped and counted as overruns.
type Scheduler struct {
	mu      sync.Mutex
	task    func()
	enabled atomic.Bool
	armed   atomic.Bool

	runs     atomic.Uint64
	overruns atomic.Uint64
}

// NewScheduler returns a disabled scheduler for task.
func NewScheduler(task func()) *Scheduler {
	return &Scheduler{task: task}
}

// Enable arms the scheduler.
func (s *Scheduler) Enable() {
	s.enabled.Store(true)
	s.armed.Store(true)
}

// Disable stops future firings. A task already running completes.
func (s *Scheduler) Disable() {
	s.enabled.Store(false)
	s.armed.Store(false)
}

// Enabled reports whether the scheduler accepts firings.
func (s *Scheduler) Enabled() bool { return s.enabled.Load() }

// Fire is the timer event. It reports whether the task ran.
func (s *Scheduler) Fire() bool {
	if !s.armed.CompareAndSwap(true, false) {
		if s.enabled.Load() {
			s.overruns.Add(1)
		}
		return false
	}

	s.mu.Lock()
	if s.task != nil {
		s.task()
	}
	s.mu.Unlock()
	s.runs.Add(1)

	if s.enabled.Load() {
		s.armed.Store(true)
	}
	return true
}

// Run enables the scheduler and fires once per tick until ctx is done or
// ticks is closed.
func (s *Scheduler) Run(ctx context.Context, ticks <-chan uint64) error {
	s.Enable()
	defer s.Disable()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			s.Fire()
		}
	}
}

// Runs returns how many times the task ran.
func (s *Scheduler) Runs() uint64 { return s.runs.Load() }

// Overruns returns how many firings were skipped.
func (s *Scheduler) Overruns() uint64 { return s.overruns.Load() }
