package matrix

import "time"

// DefaultSettle is the delay between control-line edges. Shorter delays
// corrupt reads on the reference board.
const DefaultSettle = 4 * time.Microsecond

// Bus is the shift-register interface of the matrix board.
//
// Load is active low: a low level latches every switch into the registers.
// Each rising clock edge shifts the next switch onto the sense line. The sense
// line reads low while the switch under it is closed.
type Bus interface {
	SetLoad(high bool)
	SetClock(high bool)
	Sense() bool
}

// Delayer waits for a line to settle.
type Delayer interface {
	Delay(d time.Duration)
}

// Sampler reads one full matrix snapshot per Scan.
type Sampler struct {
	bus    Bus
	delay  Delayer
	settle time.Duration
}

// NewSampler returns a sampler on bus. A nil delay skips settling.
func NewSampler(bus Bus, delay Delayer, settle time.Duration) *Sampler {
	return &Sampler{bus: bus, delay: delay, settle: settle}
}

func (s *Sampler) wait() {
	if s.delay != nil && s.settle > 0 {
		s.delay.Delay(s.settle)
	}
}

// Scan latches the matrix and shifts every key's reading into m.
func (s *Sampler) Scan(m *Matrix) {
	s.bus.SetLoad(false)
	s.wait()
	s.bus.SetLoad(true)
	s.wait()

	for i := 0; i < NumKeys; i++ {
		m.Sample(i, !s.bus.Sense())
		s.bus.SetClock(false)
		s.wait()
		s.bus.SetClock(true)
		s.wait()
	}
}
