// Package grayscale drives a chain of bit-serial 12-bit PWM LED channels
// with the keyboard lock indicators.
package grayscale

import (
	"time"

	"matrixkb/firmware/keycode"
)

const (
	Channels = 24
	Bits     = 12
	Max      = 1<<Bits - 1
)

// Channels carrying the lock indicators.
const (
	ChannelNumLock    = 9
	ChannelCapsLock   = 10
	ChannelScrollLock = 11
)

// DefaultSettle is the delay after each line change.
const DefaultSettle = 4 * time.Microsecond

// Bus is the serial interface of the LED chain. Data is sampled on the rising
// clock edge; a latch pulse loads the shifted frame into the outputs. Blank
// high turns every output off.
type Bus interface {
	SetData(high bool)
	SetClock(high bool)
	SetLatch(high bool)
	SetBlank(high bool)
}

// Delayer waits for a line to settle.
type Delayer interface {
	Delay(d time.Duration)
}

// Frame is one intensity value per channel.
type Frame [Channels]uint16

// Driver owns the frame buffer and shifts it out.
type Driver struct {
	bus    Bus
	delay  Delayer
	settle time.Duration
	frame  Frame
	locks  uint8
}

// NewDriver returns a driver on bus. A nil delay skips settling.
func NewDriver(bus Bus, delay Delayer, settle time.Duration) *Driver {
	return &Driver{bus: bus, delay: delay, settle: settle}
}

func (d *Driver) wait() {
	if d.delay != nil && d.settle > 0 {
		d.delay.Delay(d.settle)
	}
}

// Configure brings every line to its idle level and enables the outputs.
func (d *Driver) Configure() {
	d.bus.SetLatch(false)
	d.bus.SetClock(false)
	d.bus.SetData(false)
	d.bus.SetBlank(false)
}

// SetLocks sets the indicator channels from a lock byte.
func (d *Driver) SetLocks(locks uint8) {
	locks &= keycode.LEDMask
	d.locks = locks
	d.frame[ChannelNumLock] = level(locks&keycode.LEDNumLock != 0)
	d.frame[ChannelCapsLock] = level(locks&keycode.LEDCapsLock != 0)
	d.frame[ChannelScrollLock] = level(locks&keycode.LEDScrollLock != 0)
}

func level(on bool) uint16 {
	if on {
		return Max
	}
	return 0
}

// Write shifts the whole frame out, last channel and most significant bit
// first, then latches it. Every line edge is followed by the settle delay.
func (d *Driver) Write() {
	d.bus.SetLatch(false)
	for ch := Channels - 1; ch >= 0; ch-- {
		v := d.frame[ch]
		for bit := Bits - 1; bit >= 0; bit-- {
			d.bus.SetClock(false)
			d.wait()
			d.bus.SetData(v&(1<<bit) != 0)
			d.wait()
			d.bus.SetClock(true)
			d.wait()
		}
	}
	d.bus.SetClock(false)
	d.wait()
	d.bus.SetLatch(true)
	d.wait()
	d.bus.SetLatch(false)
}

// Update shows locks on the chain.
func (d *Driver) Update(locks uint8) {
	d.SetLocks(locks)
	d.Write()
}

// Frame returns a copy of the frame buffer.
func (d *Driver) Frame() Frame { return d.frame }

// Locks returns the lock byte last shown.
func (d *Driver) Locks() uint8 { return d.locks }
