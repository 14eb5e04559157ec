package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

func checkConfig(name string, caps GPIOCaps, mode GPIOMode, pull GPIOPull) error {
	switch mode {
	case GPIOModeInput:
		if caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", name)
		}
	case GPIOModeOutput:
		if caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", name)
		}
	case GPIOPullDown:
		if caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", name)
	}
	return nil
}

// wirePin is a virtual pin attached to a simulated circuit. Writes are
// forwarded to onWrite; reads come from onRead, or the last written level.
type wirePin struct {
	mu         sync.Mutex
	name       string
	caps       GPIOCaps
	configured bool
	mode       GPIOMode
	level      bool

	onWrite func(level bool)
	onRead  func() bool
}

func newOutputWire(name string, onWrite func(bool)) *wirePin {
	return &wirePin{name: name, caps: GPIOCapOutput, onWrite: onWrite}
}

func newInputWire(name string, onRead func() bool) *wirePin {
	return &wirePin{name: name, caps: GPIOCapInput | GPIOCapPullUp, onRead: onRead}
}

func (p *wirePin) Name() string   { return p.name }
func (p *wirePin) Caps() GPIOCaps { return p.caps }

func (p *wirePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, p.caps, mode, pull); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
	p.configured = true
	return nil
}

func (p *wirePin) Read() (bool, error) {
	p.mu.Lock()
	if !p.configured {
		p.mu.Unlock()
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	read := p.onRead
	level := p.level
	p.mu.Unlock()

	if read != nil {
		return read(), nil
	}
	return level, nil
}

func (p *wirePin) Write(level bool) error {
	p.mu.Lock()
	if p.mode != GPIOModeOutput || !p.configured {
		p.mu.Unlock()
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	write := p.onWrite
	p.mu.Unlock()

	if write != nil {
		write(level)
	}
	return nil
}

// gpioLED drives an LED through a GPIO pin, ignoring write errors.
type gpioLED struct {
	pin GPIOPin
}

func (l gpioLED) High() { _ = l.pin.Write(true) }
func (l gpioLED) Low()  { _ = l.pin.Write(false) }

// busFault keeps the first error seen on a bus. Bus operations cannot fail
// mid-scan, so callers poll Err between periods.
type busFault struct {
	mu  sync.Mutex
	err error
}

func (f *busFault) record(err error) {
	if err == nil {
		return
	}
	f.mu.Lock()
	if f.err == nil {
		f.err = err
	}
	f.mu.Unlock()
}

// Err returns the first pin error, if any.
func (f *busFault) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// PinMatrix is a matrix.Bus backed by three GPIO pins.
type PinMatrix struct {
	busFault
	load, clock, sense GPIOPin
}

// NewPinMatrix configures load and clock as outputs and sense as a pulled-up
// input. Load idles high.
func NewPinMatrix(load, clock, sense GPIOPin) (*PinMatrix, error) {
	if load == nil || clock == nil || sense == nil {
		return nil, fmt.Errorf("gpio: matrix bus: missing pin")
	}
	if err := load.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	if err := clock.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	if err := sense.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		return nil, err
	}
	if err := load.Write(true); err != nil {
		return nil, err
	}
	return &PinMatrix{load: load, clock: clock, sense: sense}, nil
}

func (b *PinMatrix) SetLoad(high bool)  { b.record(b.load.Write(high)) }
func (b *PinMatrix) SetClock(high bool) { b.record(b.clock.Write(high)) }

func (b *PinMatrix) Sense() bool {
	level, err := b.sense.Read()
	if err != nil {
		b.record(err)
		return true
	}
	return level
}

// PinLights is a grayscale.Bus backed by four GPIO pins.
type PinLights struct {
	busFault
	data, clock, latch, blank GPIOPin
}

// NewPinLights configures every line as an output. Blank starts high so the
// outputs stay dark until the driver enables them.
func NewPinLights(data, clock, latch, blank GPIOPin) (*PinLights, error) {
	pins := []GPIOPin{data, clock, latch, blank}
	for _, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("gpio: light bus: missing pin")
		}
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, err
		}
	}
	if err := blank.Write(true); err != nil {
		return nil, err
	}
	return &PinLights{data: data, clock: clock, latch: latch, blank: blank}, nil
}

func (b *PinLights) SetData(high bool)  { b.record(b.data.Write(high)) }
func (b *PinLights) SetClock(high bool) { b.record(b.clock.Write(high)) }
func (b *PinLights) SetLatch(high bool) { b.record(b.latch.Write(high)) }
func (b *PinLights) SetBlank(high bool) { b.record(b.blank.Write(high)) }
