package hal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

func testPins() BoardPins {
	return BoardPins{
		Load:        newOutputWire("LOAD", nil),
		MatrixClock: newOutputWire("SCLK", nil),
		Sense:       newInputWire("SENSE", func() bool { return true }),
		Data:        newOutputWire("DATA", nil),
		LightClock:  newOutputWire("LCLK", nil),
		Latch:       newOutputWire("LATCH", nil),
		Blank:       newOutputWire("BLANK", nil),
	}
}

func TestNewPinBoard(t *testing.T) {
	b, err := NewPinBoard(testPins(), SpinDelay{})
	require.NoError(t, err)
	assert.NotNil(t, b.Matrix())
	assert.NotNil(t, b.Lights())
	assert.Equal(t, SpinDelay{}, b.Delay())
	assert.NoError(t, b.Err())
}

func TestNewPinBoardFailsWithoutBoard(t *testing.T) {
	p := testPins()
	p.Load = newInputWire("LOAD", nil)
	b, err := NewPinBoard(p, nil)
	assert.ErrorContains(t, err, "board: matrix: gpio: pin LOAD: output unsupported")
	assert.Nil(t, b)

	p = testPins()
	p.Blank = nil
	b, err = NewPinBoard(p, nil)
	assert.ErrorContains(t, err, "board: lights")
	assert.Nil(t, b)
}

type stroke struct {
	code uint16
	down bool
}

func TestReplayReportReleasesBeforePresses(t *testing.T) {
	var prev, next hid.Report
	prev.Modifiers = keycode.ModLeftCtrl
	prev.Keys = [hid.Capacity]uint8{keycode.F, keycode.E, keycode.D, keycode.C, keycode.B, keycode.A}
	next.Modifiers = keycode.ModLeftShift
	next.Keys = [hid.Capacity]uint8{keycode.G, keycode.F, keycode.E, keycode.D, keycode.C, keycode.B}

	var got []stroke
	err := replayReport(prev, next, func(code uint16, down bool) error {
		got = append(got, stroke{code, down})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []stroke{
		{keycodeModifier | keycode.ModLeftCtrl, false},
		{keycodeUsage | keycode.A, false},
		{keycodeModifier | keycode.ModLeftShift, true},
		{keycodeUsage | keycode.G, true},
	}, got)
}

func TestReplayReportPressesOldestFirst(t *testing.T) {
	var next hid.Report
	next.Keys[0], next.Keys[1] = keycode.B, keycode.A

	var got []stroke
	require.NoError(t, replayReport(hid.Report{}, next, func(code uint16, down bool) error {
		got = append(got, stroke{code, down})
		return nil
	}))
	assert.Equal(t, []stroke{{keycodeUsage | keycode.A, true}, {keycodeUsage | keycode.B, true}}, got)
}

func TestReplayReportKeepsGoingAfterError(t *testing.T) {
	var next hid.Report
	next.Keys[0], next.Keys[1] = keycode.B, keycode.A

	errBusy := errors.New("endpoint busy")
	calls := 0
	err := replayReport(hid.Report{}, next, func(uint16, bool) error {
		calls++
		return errBusy
	})
	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 2, calls)
}
