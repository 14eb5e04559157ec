//go:build linux && !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GadgetConfig selects the GPIO lines and HID gadget device of a Linux
// board wired to the keyboard PCB. Pin names are periph registry names
// such as "GPIO17".
type GadgetConfig struct {
	Load, MatrixClock, Sense string
	Data, LightClock, Latch  string
	Blank                    string

	// Status is an optional activity LED pin.
	Status string

	// Device is the HID gadget character device, e.g. /dev/hidg0.
	Device string

	Period time.Duration
	Log    Logger
}

var errNoPin = errors.New("gpio: no such pin")

type periphPin struct {
	p gpio.PinIO
}

func openPeriphPin(name string) (*periphPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", errNoPin, name)
	}
	return &periphPin{p: p}, nil
}

func (p *periphPin) Name() string { return p.p.Name() }

func (p *periphPin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.Name(), p.Caps(), mode, pull); err != nil {
		return err
	}
	var err error
	if mode == GPIOModeOutput {
		err = p.p.Out(gpio.Low)
	} else {
		pp := gpio.Float
		switch pull {
		case GPIOPullUp:
			pp = gpio.PullUp
		case GPIOPullDown:
			pp = gpio.PullDown
		}
		err = p.p.In(pp, gpio.NoEdge)
	}
	if err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
	}
	return nil
}

func (p *periphPin) Read() (bool, error) {
	return p.p.Read() == gpio.High, nil
}

func (p *periphPin) Write(level bool) error {
	if err := p.p.Out(gpio.Level(level)); err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
	}
	return nil
}

type nullLED struct{}

func (nullLED) High() {}
func (nullLED) Low()  {}

type gadgetHAL struct {
	logger Logger
	led    LED
	board  *PinBoard
	usb    *hidgDevice
	t      *tickerTime
}

func (h *gadgetHAL) Logger() Logger   { return h.logger }
func (h *gadgetHAL) LED() LED         { return h.led }
func (h *gadgetHAL) Board() Board     { return h.board }
func (h *gadgetHAL) USB() USB         { return h.usb }
func (h *gadgetHAL) Display() Display { return nil }
func (h *gadgetHAL) Time() Time       { return h.t }

// Close stops the tick source and releases the gadget device.
func (h *gadgetHAL) Close() error {
	_ = h.t.Close()
	return h.usb.Close()
}

// NewGadget initializes periph and opens every configured line. The
// returned closer releases the HID device.
func NewGadget(cfg GadgetConfig) (HAL, io.Closer, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("gadget: periph init: %w", err)
	}
	logger := cfg.Log
	if logger == nil {
		logger = &hostLogger{w: os.Stdout}
	}

	open := func(names ...string) ([]GPIOPin, error) {
		pins := make([]GPIOPin, 0, len(names))
		for _, n := range names {
			p, err := openPeriphPin(n)
			if err != nil {
				return nil, err
			}
			pins = append(pins, p)
		}
		return pins, nil
	}

	pins, err := open(cfg.Load, cfg.MatrixClock, cfg.Sense, cfg.Data, cfg.LightClock, cfg.Latch, cfg.Blank)
	if err != nil {
		return nil, nil, fmt.Errorf("gadget: %w", err)
	}
	board, err := NewPinBoard(BoardPins{
		Load:        pins[0],
		MatrixClock: pins[1],
		Sense:       pins[2],
		Data:        pins[3],
		LightClock:  pins[4],
		Latch:       pins[5],
		Blank:       pins[6],
	}, SpinDelay{})
	if err != nil {
		return nil, nil, fmt.Errorf("gadget: %w", err)
	}

	var led LED = nullLED{}
	if cfg.Status != "" {
		sp, err := openPeriphPin(cfg.Status)
		if err != nil {
			return nil, nil, fmt.Errorf("gadget: %w", err)
		}
		if err := sp.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, nil, fmt.Errorf("gadget: %w", err)
		}
		led = gpioLED{pin: sp}
	}

	dev := cfg.Device
	if dev == "" {
		dev = "/dev/hidg0"
	}
	usb, err := openHIDG(dev, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("gadget: %w", err)
	}

	h := &gadgetHAL{
		logger: logger,
		led:    led,
		board:  board,
		usb:    usb,
		t:      newTickerTime(cfg.Period),
	}
	return h, h, nil
}
