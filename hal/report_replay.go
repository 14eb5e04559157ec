package hal

import "matrixkb/firmware/hid"

// Key codes of stacks that take one key at a time carry their usage page
// in the high byte, as TinyGo's keyboard.Keycode does.
const (
	keycodeModifier = 0xE000
	keycodeUsage    = 0xF000
)

// replayReport turns the difference between two reports into single key
// strokes. Releases go first so the stack never holds more keys than
// either report; presses follow oldest first, leaving the newest key at
// the front. Every stroke is attempted and the first error is returned.
func replayReport(prev, next hid.Report, stroke func(code uint16, down bool) error) error {
	var first error
	do := func(code uint16, down bool) {
		if err := stroke(code, down); err != nil && first == nil {
			first = err
		}
	}

	for bit := uint8(1); bit != 0; bit <<= 1 {
		if prev.Modifiers&bit != 0 && next.Modifiers&bit == 0 {
			do(keycodeModifier|uint16(bit), false)
		}
	}
	for _, k := range prev.Keys {
		if k != 0 && !next.Contains(k) {
			do(keycodeUsage|uint16(k), false)
		}
	}
	for bit := uint8(1); bit != 0; bit <<= 1 {
		if next.Modifiers&bit != 0 && prev.Modifiers&bit == 0 {
			do(keycodeModifier|uint16(bit), true)
		}
	}
	for i := len(next.Keys) - 1; i >= 0; i-- {
		if k := next.Keys[i]; k != 0 && !prev.Contains(k) {
			do(keycodeUsage|uint16(k), true)
		}
	}
	return first
}
