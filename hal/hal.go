package hal

import (
	"errors"
	"time"

	"matrixkb/firmware/grayscale"
	"matrixkb/firmware/hid"
	"matrixkb/firmware/matrix"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// RGB565 packs an 8-bit-per-channel color into a PixelFormatRGB565 pixel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Delayer waits for a bus line to settle.
type Delayer interface {
	Delay(d time.Duration)
}

// Board is the keyboard circuit: the shift-register chain behind the switch
// matrix and the grayscale LED chain.
type Board interface {
	Matrix() matrix.Bus
	Lights() grayscale.Bus

	// Delay returns nil when lines settle instantly.
	Delay() Delayer
}

// USB is the keyboard's HID endpoint: reports go out, lock indicators come
// back from the host.
type USB interface {
	hid.Sink
	hid.LockSource
}

// Time provides the scan tick stream.
type Time interface {
	Ticks() <-chan uint64
	Period() time.Duration
}

// Simulator is implemented by boards whose switches are virtual.
type Simulator interface {
	SetSwitch(key int, closed bool)
	Switch(key int) bool

	// Outputs returns the intensities the LED chain is showing.
	Outputs() grayscale.Frame
}

// KeyEvent is a switch transition requested by an input device.
type KeyEvent struct {
	Key   int
	Press bool
}

// HAL provides the only contact point between the firmware and the outside
// world.
type HAL interface {
	Logger() Logger
	LED() LED
	Board() Board
	USB() USB
	Display() Display
	Time() Time
}
