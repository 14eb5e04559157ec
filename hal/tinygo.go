//go:build tinygo && baremetal

package hal

import (
	"machine"
	"machine/usb/hid/keyboard"
	"time"
)

// Pico (RP2040/RP2350) wiring of the keyboard PCB.
const (
	pinLoad       = machine.GP2
	pinMatrixClk  = machine.GP3
	pinSense      = machine.GP4
	pinLightData  = machine.GP5
	pinLightClk   = machine.GP6
	pinLightLatch = machine.GP7
	pinLightBlank = machine.GP8
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	board  Board
	usb    *usbKeyboard
	t      *tickerTime
}

// New returns the Pico HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The scan period follows
// the given timer period.
func New(period time.Duration) HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	h := &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		usb:    newUSBKeyboard(keyboard.Port(), logger),
		t:      newTickerTime(period),
	}
	board, err := NewPinBoard(BoardPins{
		Load:        machinePin{pinLoad},
		MatrixClock: machinePin{pinMatrixClk},
		Sense:       machinePin{pinSense},
		Data:        machinePin{pinLightData},
		LightClock:  machinePin{pinLightClk},
		Latch:       machinePin{pinLightLatch},
		Blank:       machinePin{pinLightBlank},
	}, SleepDelay{})
	if err != nil {
		// Board stays nil; app.New reports it.
		logger.WriteLineString("hal: " + err.Error())
		return h
	}
	h.board = board
	return h
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Board() Board     { return h.board }
func (h *tinyGoHAL) USB() USB         { return h.usb }
func (h *tinyGoHAL) Display() Display { return nil }
func (h *tinyGoHAL) Time() Time       { return h.t }
