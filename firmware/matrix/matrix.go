// Package matrix samples the key switch matrix through its shift-register
// chain and debounces every switch over an 8-sample window.
package matrix

// Geometry of the switch matrix. Key indices run row-major, matching the
// order bits leave the shift-register chain.
const (
	Rows    = 9
	Cols    = 8
	NumKeys = Rows * Cols
)

// Window patterns that confirm a transition. The newest sample is bit 0.
const (
	PressPattern   uint8 = 0b01111111
	ReleasePattern uint8 = 0b10000000
)

// Edge is a confirmed transition of one key.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgePress
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgePress:
		return "press"
	case EdgeRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Index returns the key index of a matrix position.
func Index(row, col int) int {
	return row*Cols + col
}

// Key is one physical switch.
type Key struct {
	Pressed bool
	History uint8
}

// Sample ORs a raw reading into the newest history bit.
func (k *Key) Sample(closed bool) {
	if closed {
		k.History |= 1
	}
}

// Debounce evaluates the window, records a confirmed transition, and shifts
// the oldest sample out.
func (k *Key) Debounce() Edge {
	e := EdgeNone
	switch {
	case k.History == PressPattern && !k.Pressed:
		k.Pressed = true
		e = EdgePress
	case k.History == ReleasePattern && k.Pressed:
		k.Pressed = false
		e = EdgeRelease
	}
	k.History <<= 1
	return e
}

// Event pairs a key index with its edge.
type Event struct {
	Key  int
	Edge Edge
}

// Matrix is the state of every switch plus the edges of the last filter pass.
type Matrix struct {
	keys   [NumKeys]Key
	events [NumKeys]Event
	n      int
}

// Reset releases every key and clears all history.
func (m *Matrix) Reset() {
	*m = Matrix{}
}

// Key returns a copy of the state of key i.
func (m *Matrix) Key(i int) Key {
	if i < 0 || i >= NumKeys {
		return Key{}
	}
	return m.keys[i]
}

// Pressed reports the confirmed state of key i.
func (m *Matrix) Pressed(i int) bool {
	return m.Key(i).Pressed
}

// Sample feeds one raw reading for key i.
func (m *Matrix) Sample(i int, closed bool) {
	if i < 0 || i >= NumKeys {
		return
	}
	m.keys[i].Sample(closed)
}

// Filter debounces every key once, in index order. The returned slice is
// owned by m and valid until the next call.
func (m *Matrix) Filter() []Event {
	m.n = 0
	for i := range m.keys {
		if e := m.keys[i].Debounce(); e != EdgeNone {
			m.events[m.n] = Event{Key: i, Edge: e}
			m.n++
		}
	}
	return m.events[:m.n]
}
