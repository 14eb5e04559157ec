package keymap

import (
	"strings"

	"matrixkb/firmware/keycode"
	"matrixkb/firmware/layout"
)

func usage(code uint8) layout.Entry { return layout.Entry{Code: code} }
func mod(bit uint8) layout.Entry    { return layout.Entry{Modifier: true, Code: bit} }

// names resolves key names. Short and long spellings both work.
var names = map[string]layout.Entry{
	"NO":          {},
	"TRNS":        {},
	"TRANSPARENT": {},

	"A": usage(keycode.A), "B": usage(keycode.B), "C": usage(keycode.C),
	"D": usage(keycode.D), "E": usage(keycode.E), "F": usage(keycode.F),
	"G": usage(keycode.G), "H": usage(keycode.H), "I": usage(keycode.I),
	"J": usage(keycode.J), "K": usage(keycode.K), "L": usage(keycode.L),
	"M": usage(keycode.M), "N": usage(keycode.N), "O": usage(keycode.O),
	"P": usage(keycode.P), "Q": usage(keycode.Q), "R": usage(keycode.R),
	"S": usage(keycode.S), "T": usage(keycode.T), "U": usage(keycode.U),
	"V": usage(keycode.V), "W": usage(keycode.W), "X": usage(keycode.X),
	"Y": usage(keycode.Y), "Z": usage(keycode.Z),

	"1": usage(keycode.Num1), "2": usage(keycode.Num2), "3": usage(keycode.Num3),
	"4": usage(keycode.Num4), "5": usage(keycode.Num5), "6": usage(keycode.Num6),
	"7": usage(keycode.Num7), "8": usage(keycode.Num8), "9": usage(keycode.Num9),
	"0": usage(keycode.Num0),

	"ENT": usage(keycode.Enter), "ENTER": usage(keycode.Enter),
	"ESC": usage(keycode.Escape), "ESCAPE": usage(keycode.Escape),
	"BSPC": usage(keycode.Backspace), "BSPACE": usage(keycode.Backspace),
	"TAB": usage(keycode.Tab),
	"SPC": usage(keycode.Space), "SPACE": usage(keycode.Space),
	"MINS": usage(keycode.Minus), "MINUS": usage(keycode.Minus),
	"EQL": usage(keycode.Equal), "EQUAL": usage(keycode.Equal),
	"LBRC": usage(keycode.LeftBrace), "LBRACKET": usage(keycode.LeftBrace),
	"RBRC": usage(keycode.RightBrace), "RBRACKET": usage(keycode.RightBrace),
	"BSLS": usage(keycode.Backslash), "BSLASH": usage(keycode.Backslash),
	"NUHS": usage(keycode.NonUSHash), "NONUS_HASH": usage(keycode.NonUSHash),
	"SCLN": usage(keycode.Semicolon), "SCOLON": usage(keycode.Semicolon),
	"QUOT": usage(keycode.Apostrophe), "QUOTE": usage(keycode.Apostrophe),
	"GRV": usage(keycode.Grave), "GRAVE": usage(keycode.Grave),
	"COMM": usage(keycode.Comma), "COMMA": usage(keycode.Comma),
	"DOT": usage(keycode.Period),
	"SLSH": usage(keycode.Slash), "SLASH": usage(keycode.Slash),
	"CAPS": usage(keycode.CapsLock), "CAPSLOCK": usage(keycode.CapsLock),

	"F1": usage(keycode.F1), "F2": usage(keycode.F2), "F3": usage(keycode.F3),
	"F4": usage(keycode.F4), "F5": usage(keycode.F5), "F6": usage(keycode.F6),
	"F7": usage(keycode.F7), "F8": usage(keycode.F8), "F9": usage(keycode.F9),
	"F10": usage(keycode.F10), "F11": usage(keycode.F11), "F12": usage(keycode.F12),

	"PSCR": usage(keycode.PrintScreen), "PSCREEN": usage(keycode.PrintScreen),
	"SLCK": usage(keycode.ScrollLock), "SCROLLLOCK": usage(keycode.ScrollLock),
	"PAUS": usage(keycode.Pause), "PAUSE": usage(keycode.Pause),
	"INS": usage(keycode.Insert), "INSERT": usage(keycode.Insert),
	"HOME": usage(keycode.Home),
	"PGUP": usage(keycode.PageUp),
	"DEL": usage(keycode.Delete), "DELETE": usage(keycode.Delete),
	"END":  usage(keycode.End),
	"PGDN": usage(keycode.PageDown),
	"RGHT": usage(keycode.Right), "RIGHT": usage(keycode.Right),
	"LEFT": usage(keycode.Left),
	"DOWN": usage(keycode.Down),
	"UP":   usage(keycode.Up),
	"NLCK": usage(keycode.NumLock), "NUMLOCK": usage(keycode.NumLock),
	"NUBS": usage(keycode.NonUSBackslash), "NONUS_BSLASH": usage(keycode.NonUSBackslash),
	"APP": usage(keycode.Application), "APPLICATION": usage(keycode.Application),

	"LCTL": mod(keycode.ModLeftCtrl), "LCTRL": mod(keycode.ModLeftCtrl),
	"LSFT": mod(keycode.ModLeftShift), "LSHIFT": mod(keycode.ModLeftShift),
	"LALT": mod(keycode.ModLeftAlt),
	"LGUI": mod(keycode.ModLeftGUI),
	"RCTL": mod(keycode.ModRightCtrl), "RCTRL": mod(keycode.ModRightCtrl),
	"RSFT": mod(keycode.ModRightShift), "RSHIFT": mod(keycode.ModRightShift),
	"RALT": mod(keycode.ModRightAlt),
	"RGUI": mod(keycode.ModRightGUI),
}

// Lookup resolves a key name such as "ESC", "KC_LCTL" or "nubs".
func Lookup(name string) (layout.Entry, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "KC_")
	e, ok := names[n]
	return e, ok
}
