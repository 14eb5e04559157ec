package hal

import (
	"fmt"
	"sync"

	"matrixkb/firmware/grayscale"
	"matrixkb/firmware/matrix"
)

// SimRegisters is the number of 8-bit parallel-in serial-out registers in
// the simulated chain, one per matrix row.
const SimRegisters = matrix.Rows

// SimConfig configures a simulated board.
type SimConfig struct {
	// Chatter is the number of scans after each switch transition during
	// which the contact reads alternately inverted and true.
	Chatter int
}

// SimBoard is a virtual keyboard circuit. The matrix side is a chain of
// parallel-in serial-out registers: load low copies every switch in,
// each rising clock edge moves the next switch onto the sense line, and a
// closed switch reads low. The light side is a 24x12-bit shift register
// that copies into the outputs on a rising latch edge.
type SimBoard struct {
	mu sync.Mutex

	switches [matrix.NumKeys]bool
	bounce   [matrix.NumKeys]int
	chatter  int

	regs   [SimRegisters]uint8 // bit set = switch closed
	pos    int
	sclk   bool
	loads  uint64
	loadLo bool

	shift   [grayscale.Channels * grayscale.Bits]bool
	data    bool
	lclk    bool
	latch   bool
	blank   bool
	out     grayscale.Frame
	latches uint64

	matrixBus *PinMatrix
	lightBus  *PinLights
}

// NewSimBoard wires a simulated board behind virtual pins.
func NewSimBoard(cfg SimConfig) (*SimBoard, error) {
	b := &SimBoard{chatter: cfg.Chatter, blank: true}

	mb, err := NewPinMatrix(
		newOutputWire("LOAD", b.setLoad),
		newOutputWire("SCLK", b.setMatrixClock),
		newInputWire("SENSE", b.sense),
	)
	if err != nil {
		return nil, fmt.Errorf("sim board: %w", err)
	}
	lb, err := NewPinLights(
		newOutputWire("SIN", b.setData),
		newOutputWire("LCLK", b.setLightClock),
		newOutputWire("XLAT", b.setLatch),
		newOutputWire("BLANK", b.setBlank),
	)
	if err != nil {
		return nil, fmt.Errorf("sim board: %w", err)
	}
	b.matrixBus = mb
	b.lightBus = lb
	return b, nil
}

func (b *SimBoard) Matrix() matrix.Bus    { return b.matrixBus }
func (b *SimBoard) Lights() grayscale.Bus { return b.lightBus }
func (b *SimBoard) Delay() Delayer        { return nil }

// Err returns the first bus error on either chain.
func (b *SimBoard) Err() error {
	if err := b.matrixBus.Err(); err != nil {
		return err
	}
	return b.lightBus.Err()
}

// SetSwitch closes or opens a physical switch.
func (b *SimBoard) SetSwitch(key int, closed bool) {
	if key < 0 || key >= matrix.NumKeys {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.switches[key] != closed {
		b.switches[key] = closed
		b.bounce[key] = b.chatter
	}
}

// Switch reports the physical state of a switch.
func (b *SimBoard) Switch(key int) bool {
	if key < 0 || key >= matrix.NumKeys {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.switches[key]
}

// Outputs returns the latched intensities, or all zero while blanked.
func (b *SimBoard) Outputs() grayscale.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.blank {
		return grayscale.Frame{}
	}
	return b.out
}

// Counters returns how many loads and latches the board has seen.
func (b *SimBoard) Counters() (loads, latches uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loads, b.latches
}

// contact returns what key k reads at this load, consuming one bounce step.
func (b *SimBoard) contact(k int) bool {
	closed := b.switches[k]
	if n := b.bounce[k]; n > 0 {
		b.bounce[k] = n - 1
		if n%2 == 1 {
			closed = !closed
		}
	}
	return closed
}

func (b *SimBoard) setLoad(high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !high && !b.loadLo {
		b.loads++
		for r := range b.regs {
			var v uint8
			for c := 0; c < matrix.Cols; c++ {
				if b.contact(matrix.Index(r, c)) {
					v |= 0x80 >> c
				}
			}
			b.regs[r] = v
		}
		b.pos = 0
	}
	b.loadLo = !high
}

func (b *SimBoard) setMatrixClock(high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if high && !b.sclk && !b.loadLo {
		b.pos++
	}
	b.sclk = high
}

// sense is the serial output of the last register. Past the end of the
// chain it reads the pulled-up serial input.
func (b *SimBoard) sense() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pos >= matrix.NumKeys {
		return true
	}
	r, c := b.pos/matrix.Cols, b.pos%matrix.Cols
	return b.regs[r]&(0x80>>c) == 0
}

func (b *SimBoard) setData(high bool) {
	b.mu.Lock()
	b.data = high
	b.mu.Unlock()
}

func (b *SimBoard) setLightClock(high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if high && !b.lclk {
		copy(b.shift[:len(b.shift)-1], b.shift[1:])
		b.shift[len(b.shift)-1] = b.data
	}
	b.lclk = high
}

func (b *SimBoard) setLatch(high bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if high && !b.latch {
		b.latches++
		for i := 0; i < grayscale.Channels; i++ {
			var v uint16
			for _, bit := range b.shift[i*grayscale.Bits : (i+1)*grayscale.Bits] {
				v <<= 1
				if bit {
					v |= 1
				}
			}
			b.out[grayscale.Channels-1-i] = v
		}
	}
	b.latch = high
}

func (b *SimBoard) setBlank(high bool) {
	b.mu.Lock()
	b.blank = high
	b.mu.Unlock()
}
