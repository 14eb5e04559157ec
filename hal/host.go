//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"matrixkb/firmware/layout"
)

// HostConfig configures the simulated keyboard.
type HostConfig struct {
	Sim   SimConfig
	Locks uint8

	// Period is the scan period. Zero selects 1ms.
	Period time.Duration

	// Layout maps PC keys back to matrix switches in window mode.
	Layout *layout.Table

	Width, Height int

	// Log replaces the stdout logger.
	Log Logger
}

type hostHAL struct {
	logger Logger
	led    *hostLED
	board  *SimBoard
	usb    *SimUSB
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL around a simulated board.
func New(cfg HostConfig) (HAL, error) {
	return newHost(cfg)
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	logger := cfg.Log
	if logger == nil {
		logger = &hostLogger{w: os.Stdout}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 320, 200
	}
	if cfg.Layout == nil {
		cfg.Layout = &layout.Pontus
	}
	board, err := NewSimBoard(cfg.Sim)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		board:  board,
		usb:    NewSimUSB(cfg.Locks),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    newHostKeyboard(cfg.Layout),
		t:      newHostTime(cfg.Period),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Board() Board     { return h.board }
func (h *hostHAL) USB() USB         { return h.usb }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostLED is the activity LED. It logs edges only.
type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger Logger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.on = true
		l.logger.WriteLineString("led: HIGH")
	}
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.on = false
		l.logger.WriteLineString("led: LOW")
	}
}
