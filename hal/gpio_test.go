package hal

import (
	"errors"
	"testing"
)

func TestWirePinConfigure(t *testing.T) {
	var written []bool
	out := newOutputWire("OUT", func(level bool) { written = append(written, level) })

	if err := out.Write(true); err == nil {
		t.Fatal("Write before Configure succeeded")
	}
	if err := out.Configure(GPIOModeInput, GPIOPullNone); err == nil {
		t.Fatal("output wire accepted input mode")
	}
	if err := out.Configure(GPIOModeOutput, GPIOPullUp); err == nil {
		t.Fatal("output wire accepted a pull-up")
	}
	if err := out.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := out.Write(true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := out.Write(false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(written) != 2 || !written[0] || written[1] {
		t.Fatalf("written = %v, want [true false]", written)
	}
	level, err := out.Read()
	if err != nil || level {
		t.Fatalf("Read() = %v, %v; want false, nil", level, err)
	}

	in := newInputWire("IN", func() bool { return true })
	if err := in.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := in.Write(true); err == nil {
		t.Fatal("input wire accepted a write")
	}
	level, err = in.Read()
	if err != nil || !level {
		t.Fatalf("Read() = %v, %v; want true, nil", level, err)
	}
}

var errStuck = errors.New("stuck")

type failPin struct{ wirePin }

func (p *failPin) Write(bool) error { return errStuck }

func TestPinMatrixKeepsFirstError(t *testing.T) {
	load := newOutputWire("LOAD", nil)
	clock := &failPin{wirePin{name: "CLK", caps: GPIOCapOutput}}
	sense := newInputWire("SENSE", func() bool { return true })

	b, err := NewPinMatrix(load, clock, sense)
	if err != nil {
		t.Fatalf("NewPinMatrix: %v", err)
	}
	if b.Err() != nil {
		t.Fatalf("Err() = %v before any fault", b.Err())
	}
	b.SetClock(true)
	b.SetClock(false)
	if !errors.Is(b.Err(), errStuck) {
		t.Fatalf("Err() = %v, want errStuck", b.Err())
	}
	if !b.Sense() {
		t.Fatal("Sense() = false, want pulled-up high")
	}

	if _, err := NewPinMatrix(nil, clock, sense); err == nil {
		t.Fatal("NewPinMatrix accepted a nil pin")
	}
}

func TestPinLightsStartBlanked(t *testing.T) {
	var blank []bool
	l, err := NewPinLights(
		newOutputWire("D", nil),
		newOutputWire("C", nil),
		newOutputWire("L", nil),
		newOutputWire("B", func(v bool) { blank = append(blank, v) }),
	)
	if err != nil {
		t.Fatalf("NewPinLights: %v", err)
	}
	if len(blank) != 1 || !blank[0] {
		t.Fatalf("blank writes = %v, want [true]", blank)
	}
	l.SetBlank(false)
	if len(blank) != 2 || blank[1] {
		t.Fatalf("blank writes = %v, want [true false]", blank)
	}
}
