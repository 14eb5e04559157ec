// Package keycode holds the USB HID keyboard usage codes, modifier bits and
// LED output bits used by the controller.
package keycode

// Modifier bits of the report's modifier byte.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// Lock indicator bits as sent by the host in the LED output report.
const (
	LEDNumLock    = 0x01
	LEDCapsLock   = 0x02
	LEDScrollLock = 0x04

	// LEDMask covers the indicators the controller drives.
	LEDMask = LEDNumLock | LEDCapsLock | LEDScrollLock
)

// Usage codes (Keyboard/Keypad usage page).
const (
	None = 0x00

	A = 0x04
	B = 0x05
	C = 0x06
	D = 0x07
	E = 0x08
	F = 0x09
	G = 0x0A
	H = 0x0B
	I = 0x0C
	J = 0x0D
	K = 0x0E
	L = 0x0F
	M = 0x10
	N = 0x11
	O = 0x12
	P = 0x13
	Q = 0x14
	R = 0x15
	S = 0x16
	T = 0x17
	U = 0x18
	V = 0x19
	W = 0x1A
	X = 0x1B
	Y = 0x1C
	Z = 0x1D

	Num1 = 0x1E
	Num2 = 0x1F
	Num3 = 0x20
	Num4 = 0x21
	Num5 = 0x22
	Num6 = 0x23
	Num7 = 0x24
	Num8 = 0x25
	Num9 = 0x26
	Num0 = 0x27

	Enter      = 0x28
	Escape     = 0x29
	Backspace  = 0x2A
	Tab        = 0x2B
	Space      = 0x2C
	Minus      = 0x2D
	Equal      = 0x2E
	LeftBrace  = 0x2F
	RightBrace = 0x30
	Backslash  = 0x31
	NonUSHash  = 0x32
	Semicolon  = 0x33
	Apostrophe = 0x34
	Grave      = 0x35
	Comma      = 0x36
	Period     = 0x37
	Slash      = 0x38
	CapsLock   = 0x39

	F1  = 0x3A
	F2  = 0x3B
	F3  = 0x3C
	F4  = 0x3D
	F5  = 0x3E
	F6  = 0x3F
	F7  = 0x40
	F8  = 0x41
	F9  = 0x42
	F10 = 0x43
	F11 = 0x44
	F12 = 0x45

	PrintScreen = 0x46
	ScrollLock  = 0x47
	Pause       = 0x48
	Insert      = 0x49
	Home        = 0x4A
	PageUp      = 0x4B
	Delete      = 0x4C
	End         = 0x4D
	PageDown    = 0x4E
	Right       = 0x4F
	Left        = 0x50
	Down        = 0x51
	Up          = 0x52
	NumLock     = 0x53

	NonUSBackslash = 0x64
	Application    = 0x65
)

// LockFor returns the LED bit the host toggles when usage is pressed, or 0.
func LockFor(usage uint8) uint8 {
	switch usage {
	case NumLock:
		return LEDNumLock
	case CapsLock:
		return LEDCapsLock
	case ScrollLock:
		return LEDScrollLock
	}
	return 0
}
