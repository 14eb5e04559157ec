package hal

import (
	"sync"
	"sync/atomic"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

// SimUSB stands in for the host computer. It records reports and toggles
// num, caps and scroll lock the way an operating system does: when the
// lock key's usage appears in a report that did not already hold it.
type SimUSB struct {
	mu      sync.Mutex
	prev    hid.Report
	reports uint64

	locks atomic.Uint32
}

// NewSimUSB returns a host with the given lock indicators lit.
func NewSimUSB(locks uint8) *SimUSB {
	u := &SimUSB{}
	u.SetLocks(locks)
	return u
}

func (u *SimUSB) SendReport(r hid.Report) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var toggle uint8
	for _, k := range r.Keys {
		if bit := keycode.LockFor(k); bit != 0 && !u.prev.Contains(k) {
			toggle |= bit
		}
	}
	if toggle != 0 {
		u.locks.Store(u.locks.Load() ^ uint32(toggle))
	}
	u.prev = r
	u.reports++
}

func (u *SimUSB) LockState() uint8 {
	return uint8(u.locks.Load())
}

// SetLocks overrides the host's lock state.
func (u *SimUSB) SetLocks(locks uint8) {
	u.locks.Store(uint32(locks & keycode.LEDMask))
}

// Last returns the most recent report and the number received.
func (u *SimUSB) Last() (hid.Report, uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.prev, u.reports
}
