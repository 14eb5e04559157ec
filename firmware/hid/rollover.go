package hid

import "fmt"

// Capacity is the number of non-modifier keys a boot report can carry.
const Capacity = 6

// Empty marks an unused rollover slot. It is never a valid key index.
const Empty = 0xFF

// Policy decides what Push does when the rollover is full.
type Policy uint8

const (
	// EvictOldest drops the least recent key to make room.
	EvictOldest Policy = iota
	// RejectNewest ignores the new key.
	RejectNewest
)

func (p Policy) String() string {
	switch p {
	case EvictOldest:
		return "evict-oldest"
	case RejectNewest:
		return "reject-newest"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy parses the String form of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "evict-oldest", "":
		return EvictOldest, nil
	case "reject-newest":
		return RejectNewest, nil
	}
	return 0, fmt.Errorf("hid: unknown overflow policy %q", s)
}

// Rollover is the ordered set of held non-modifier keys. Slot 0 holds the
// most recent press; occupied slots are contiguous from the front.
type Rollover struct {
	slots  [Capacity]uint8
	n      int
	policy Policy
}

// NewRollover returns an empty rollover using policy on overflow.
func NewRollover(policy Policy) Rollover {
	r := Rollover{policy: policy}
	r.Reset()
	return r
}

// Reset empties every slot.
func (r *Rollover) Reset() {
	for i := range r.slots {
		r.slots[i] = Empty
	}
	r.n = 0
}

// Policy returns the overflow policy.
func (r *Rollover) Policy() Policy { return r.policy }

// Len returns the number of held keys.
func (r *Rollover) Len() int { return r.n }

// At returns the key in slot i, or Empty.
func (r *Rollover) At(i int) uint8 {
	if i < 0 || i >= r.n {
		return Empty
	}
	return r.slots[i]
}

// Slots returns a copy of every slot, unused ones set to Empty.
func (r *Rollover) Slots() [Capacity]uint8 {
	return r.slots
}

// Contains reports whether key is held.
func (r *Rollover) Contains(key uint8) bool {
	return r.indexOf(key) >= 0
}

func (r *Rollover) indexOf(key uint8) int {
	for i := 0; i < r.n; i++ {
		if r.slots[i] == key {
			return i
		}
	}
	return -1
}

// Push inserts key at the front. It reports whether key is held afterwards.
// A key already held is left in place.
func (r *Rollover) Push(key uint8) bool {
	if key == Empty {
		return false
	}
	if r.Contains(key) {
		return true
	}
	if r.n == Capacity {
		if r.policy == RejectNewest {
			return false
		}
		r.n--
	}
	copy(r.slots[1:r.n+1], r.slots[:r.n])
	r.slots[0] = key
	r.n++
	return true
}

// Remove drops key and closes the gap, keeping the order of the rest.
// It reports whether key was held.
func (r *Rollover) Remove(key uint8) bool {
	i := r.indexOf(key)
	if i < 0 {
		return false
	}
	copy(r.slots[i:r.n-1], r.slots[i+1:r.n])
	r.n--
	r.slots[r.n] = Empty
	return true
}
