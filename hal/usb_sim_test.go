package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

func TestSimUSBTogglesLocksOnNewUsage(t *testing.T) {
	u := NewSimUSB(0)

	caps := hid.Report{Keys: [hid.Capacity]uint8{keycode.CapsLock}}
	u.SendReport(caps)
	assert.Equal(t, uint8(keycode.LEDCapsLock), u.LockState())

	// Still held, plus another key: no second toggle.
	u.SendReport(hid.Report{Keys: [hid.Capacity]uint8{keycode.A, keycode.CapsLock}})
	assert.Equal(t, uint8(keycode.LEDCapsLock), u.LockState())

	u.SendReport(hid.Report{})
	u.SendReport(hid.Report{Keys: [hid.Capacity]uint8{keycode.NumLock, keycode.CapsLock}})
	assert.Equal(t, uint8(keycode.LEDNumLock), u.LockState())

	last, n := u.Last()
	assert.Equal(t, uint64(4), n)
	assert.True(t, last.Contains(keycode.NumLock))
}

func TestSimUSBSetLocksMasks(t *testing.T) {
	u := NewSimUSB(0xFF)
	assert.Equal(t, uint8(keycode.LEDMask), u.LockState())
	u.SetLocks(keycode.LEDScrollLock)
	assert.Equal(t, uint8(keycode.LEDScrollLock), u.LockState())
}
