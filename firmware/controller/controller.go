// Package controller runs one scan period of the keyboard: sample the
// matrix, debounce, dispatch transitions, refresh the lock LEDs.
package controller

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"matrixkb/firmware/grayscale"
	"matrixkb/firmware/hid"
	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Delayer waits for a bus line to settle.
type Delayer interface {
	Delay(d time.Duration)
}

// Config tunes the pipeline.
type Config struct {
	Layout *layout.Table
	Policy hid.Policy

	// MatrixSettle and LightSettle are the line settle delays. Zero
	// selects the package defaults; negative disables settling.
	MatrixSettle time.Duration
	LightSettle  time.Duration

	// Trace logs every edge and report.
	Trace bool
}

// Hardware is everything the controller touches.
type Hardware struct {
	Matrix matrix.Bus
	Lights grayscale.Bus
	Delay  Delayer
	Sink   hid.Sink
	Locks  hid.LockSource
	Log    Logger
}

var ErrNoBus = errors.New("controller: missing bus")

// Controller owns all keyboard state.
type Controller struct {
	mu sync.Mutex

	sampler *matrix.Sampler
	keys    matrix.Matrix
	disp    *hid.Dispatcher
	leds    *grayscale.Driver
	locks   hid.LockSource
	log     Logger
	trace   bool

	cycles  uint64
	reports uint64
}

func settle(d, def time.Duration) time.Duration {
	switch {
	case d == 0:
		return def
	case d < 0:
		return 0
	}
	return d
}

// New wires a controller to hw and configures the LED chain.
func New(cfg Config, hw Hardware) (*Controller, error) {
	if hw.Matrix == nil {
		return nil, fmt.Errorf("%w: matrix", ErrNoBus)
	}
	if hw.Lights == nil {
		return nil, fmt.Errorf("%w: lights", ErrNoBus)
	}
	if cfg.Layout == nil {
		cfg.Layout = &layout.Pontus
	}

	c := &Controller{
		locks: hw.Locks,
		log:   hw.Log,
		trace: cfg.Trace && hw.Log != nil,
	}
	var md matrix.Delayer
	var gd grayscale.Delayer
	if hw.Delay != nil {
		md, gd = hw.Delay, hw.Delay
	}
	c.sampler = matrix.NewSampler(hw.Matrix, md, settle(cfg.MatrixSettle, matrix.DefaultSettle))
	c.leds = grayscale.NewDriver(hw.Lights, gd, settle(cfg.LightSettle, grayscale.DefaultSettle))
	c.disp = hid.NewDispatcher(cfg.Layout, hid.SinkFunc(func(r hid.Report) {
		c.reports++
		if c.trace {
			c.log.WriteLineString("report: " + r.String())
		}
		if hw.Sink != nil {
			hw.Sink.SendReport(r)
		}
	}), cfg.Policy)

	c.leds.Configure()
	return c, nil
}

// Step runs one scan period.
func (c *Controller) Step() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sampler.Scan(&c.keys)
	for _, ev := range c.keys.Filter() {
		if c.trace {
			c.log.WriteLineString(fmt.Sprintf("key %d: %s", ev.Key, ev.Edge))
		}
		c.disp.Handle(ev)
	}

	var locks uint8
	if c.locks != nil {
		locks = c.locks.LockState()
	}
	c.leds.Update(locks)
	c.cycles++
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Cycles    uint64
	Reports   uint64
	Pressed   [matrix.NumKeys]bool
	History   [matrix.NumKeys]uint8
	Report    hid.Report
	Modifiers uint8
	Queue     [hid.Capacity]uint8
	Frame     grayscale.Frame
	Locks     uint8
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Cycles:    c.cycles,
		Reports:   c.reports,
		Report:    c.disp.Report(),
		Modifiers: c.disp.Modifiers(),
		Queue:     c.disp.Queue(),
		Frame:     c.leds.Frame(),
		Locks:     c.leds.Locks(),
	}
	for i := 0; i < matrix.NumKeys; i++ {
		k := c.keys.Key(i)
		s.Pressed[i] = k.Pressed
		s.History[i] = k.History
	}
	return s
}

// Reset releases every key without sending a report.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keys.Reset()
	c.disp.Reset()
}
