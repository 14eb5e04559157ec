//go:build tinygo && baremetal

package hal

import (
	"machine"
	"machine/usb/hid/keyboard"
	"strconv"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machinePin adapts a machine.Pin to GPIOPin.
type machinePin struct {
	pin machine.Pin
}

func (p machinePin) Name() string { return "GP" + strconv.Itoa(int(p.pin)) }

func (p machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.Name(), p.Caps(), mode, pull); err != nil {
		return err
	}
	cfg := machine.PinConfig{Mode: machine.PinOutput}
	if mode == GPIOModeInput {
		switch pull {
		case GPIOPullUp:
			cfg.Mode = machine.PinInputPullup
		case GPIOPullDown:
			cfg.Mode = machine.PinInputPulldown
		default:
			cfg.Mode = machine.PinInput
		}
	}
	p.pin.Configure(cfg)
	return nil
}

func (p machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

// hidKeyboard is the subset of the TinyGo USB keyboard the sink uses.
type hidKeyboard interface {
	Down(c keyboard.Keycode) error
	Up(c keyboard.Keycode) error
	NumLockLed() bool
	CapsLockLed() bool
	ScrollLockLed() bool
}

// usbKeyboard replays report differences as Down/Up calls, so the USB stack
// builds the same report the dispatcher did. The stack sends a report per
// call, so the host can see intermediate states within one edge.
type usbKeyboard struct {
	kb    hidKeyboard
	log   Logger
	prev  hid.Report
	fails uint32
}

func newUSBKeyboard(kb hidKeyboard, log Logger) *usbKeyboard {
	return &usbKeyboard{kb: kb, log: log}
}

func (u *usbKeyboard) SendReport(r hid.Report) {
	err := replayReport(u.prev, r, func(code uint16, down bool) error {
		if down {
			return u.kb.Down(keyboard.Keycode(code))
		}
		return u.kb.Up(keyboard.Keycode(code))
	})
	u.prev = r
	if err != nil {
		u.fails++
		if u.fails == 1 && u.log != nil {
			u.log.WriteLineString("usb: " + err.Error())
		}
	}
}

func (u *usbKeyboard) LockState() uint8 {
	var locks uint8
	if u.kb.NumLockLed() {
		locks |= keycode.LEDNumLock
	}
	if u.kb.CapsLockLed() {
		locks |= keycode.LEDCapsLock
	}
	if u.kb.ScrollLockLed() {
		locks |= keycode.LEDScrollLock
	}
	return locks
}
