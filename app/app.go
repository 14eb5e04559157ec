// Package app wires the keyboard controller to a HAL: the scan scheduler,
// the report mailbox and, where a display exists, the status view.
package app

import (
	"context"
	"fmt"
	"time"

	"matrixkb/firmware/controller"
	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
	"matrixkb/firmware/layout"
	"matrixkb/hal"
	"matrixkb/kernel"
)

// Config is the firmware configuration.
type Config struct {
	Timer kernel.TimerConfig

	// Layout names a built-in layout. Table, when set, takes precedence and
	// Layout only labels it.
	Layout string
	Table  *layout.Table

	Policy hid.Policy

	MatrixSettle time.Duration
	LightSettle  time.Duration

	// Trace logs every edge and report from inside the scan period.
	Trace bool

	// LogReports logs reports and lock changes as observers see them.
	LogReports bool
}

// DefaultConfig returns the board defaults.
func DefaultConfig() Config {
	return Config{
		Timer:  kernel.DefaultTimer,
		Layout: layout.Default,
		Policy: hid.EvictOldest,
	}
}

// App is one running keyboard.
type App struct {
	h     hal.HAL
	cfg   Config
	log   hal.Logger
	name  string
	ctl   *controller.Controller
	sched *kernel.Scheduler
	mbox  kernel.Mailbox
	view  *view

	last  hid.Report
	locks uint8
}

// New builds the controller on h's board and arms the scheduler.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Timer.Validate(); err != nil {
		return nil, err
	}
	table, name := cfg.Table, cfg.Layout
	switch {
	case table != nil && name == "":
		name = "custom"
	case table == nil:
		var ok bool
		if name == "" {
			name = layout.Default
		}
		if table, ok = layout.ByName(name); !ok {
			return nil, fmt.Errorf("app: unknown layout %q", name)
		}
	}

	board := h.Board()
	if board == nil {
		return nil, fmt.Errorf("app: %w: board", hal.ErrNotImplemented)
	}

	a := &App{h: h, cfg: cfg, log: h.Logger(), name: name}
	hw := controller.Hardware{
		Matrix: board.Matrix(),
		Lights: board.Lights(),
		Sink:   reportSink{a: a},
		Locks:  &lockWatch{a: a},
		Log:    a.log,
	}
	if d := board.Delay(); d != nil {
		hw.Delay = d
	}
	ctl, err := controller.New(controller.Config{
		Layout:       table,
		Policy:       cfg.Policy,
		MatrixSettle: cfg.MatrixSettle,
		LightSettle:  cfg.LightSettle,
		Trace:        cfg.Trace,
	}, hw)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.ctl = ctl
	a.sched = kernel.NewScheduler(ctl.Step)

	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			a.view = newView(fb, table)
		}
	}

	a.logf("matrixkb: layout %s, period %v, overflow %s", name, cfg.Timer.Period(), cfg.Policy)
	a.sched.Enable()
	return a, nil
}

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// Controller returns the controller.
func (a *App) Controller() *controller.Controller { return a.ctl }

// Scheduler returns the scan scheduler.
func (a *App) Scheduler() *kernel.Scheduler { return a.sched }

// LastReport returns the newest report seen by observers.
func (a *App) LastReport() hid.Report { return a.last }

// Step runs one period per pending tick, then drains the mailbox and
// redraws. It never blocks; host runners call it once per frame.
func (a *App) Step() error {
	ticks := a.h.Time().Ticks()
drain:
	for {
		select {
		case <-ticks:
			a.sched.Fire()
		default:
			break drain
		}
	}
	a.observe()
	if a.view != nil {
		sim, _ := a.h.Board().(hal.Simulator)
		return a.view.render(a.name, a.ctl.Snapshot(), sim)
	}
	return nil
}

// Run starts the keyboard and blocks until ctx is done.
func Run(ctx context.Context, h hal.HAL, cfg Config) error {
	a, err := New(h, cfg)
	if err != nil {
		return err
	}
	go a.observeEvery(ctx, 10*time.Millisecond)
	return a.sched.Run(ctx, h.Time().Ticks())
}

func (a *App) observe() {
	a.mbox.Drain(a.handle)
}

func (a *App) observeEvery(ctx context.Context, d time.Duration) {
	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.observe()
		}
	}
}

func (a *App) handle(msg kernel.Message) {
	switch msg.Kind {
	case kernel.MsgReport:
		var r hid.Report
		if err := r.UnmarshalBinary(msg.Payload()); err != nil {
			a.logf("app: %v", err)
			return
		}
		a.last = r
		if a.cfg.LogReports {
			a.logf("report %d: % x", msg.Seq, msg.Payload())
		}
	case kernel.MsgLocks:
		a.locks = msg.Data[0]
		if a.cfg.LogReports {
			a.logf("locks %d: num=%t caps=%t scroll=%t", msg.Seq,
				a.locks&keycode.LEDNumLock != 0,
				a.locks&keycode.LEDCapsLock != 0,
				a.locks&keycode.LEDScrollLock != 0)
		}
	}
}

// reportSink forwards reports to USB, mirrors them into the mailbox and
// lights the activity LED while anything is held.
type reportSink struct {
	a *App
}

func (s reportSink) SendReport(r hid.Report) {
	if usb := s.a.h.USB(); usb != nil {
		usb.SendReport(r)
	}
	b := r.Boot()
	s.a.mbox.Publish(kernel.MsgReport, b[:])

	if led := s.a.h.LED(); led != nil {
		if r.Empty() {
			led.Low()
		} else {
			led.High()
		}
	}
}

// lockWatch reads the host lock state once per period and publishes changes.
type lockWatch struct {
	a    *App
	last uint8
	init bool
}

func (w *lockWatch) LockState() uint8 {
	usb := w.a.h.USB()
	if usb == nil {
		return 0
	}
	locks := usb.LockState() & keycode.LEDMask
	if !w.init || locks != w.last {
		w.init = true
		w.last = locks
		w.a.mbox.Publish(kernel.MsgLocks, []byte{locks})
	}
	return locks
}
