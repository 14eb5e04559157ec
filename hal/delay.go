package hal

import "time"

// SleepDelay settles lines with time.Sleep.
type SleepDelay struct{}

func (SleepDelay) Delay(d time.Duration) { time.Sleep(d) }

// SpinDelay busy-waits. Kernel sleeps on Linux overshoot microsecond delays
// by an order of magnitude.
type SpinDelay struct{}

func (SpinDelay) Delay(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}

// tickerTime emits one tick per period from a background ticker. Ticks are
// dropped while the consumer is behind.
type tickerTime struct {
	ch     chan uint64
	seq    uint64
	period time.Duration
	stop   chan struct{}
}

func newTickerTime(period time.Duration) *tickerTime {
	if period <= 0 {
		period = time.Millisecond
	}
	t := &tickerTime{
		ch:     make(chan uint64, 16),
		period: period,
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *tickerTime) run() {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}
}

func (t *tickerTime) Ticks() <-chan uint64  { return t.ch }
func (t *tickerTime) Period() time.Duration { return t.period }

func (t *tickerTime) Close() error {
	close(t.stop)
	return nil
}
