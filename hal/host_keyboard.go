//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"matrixkb/firmware/keycode"
	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
)

type keyBinding struct {
	key   ebiten.Key
	entry layout.Entry
}

func usageKey(k ebiten.Key, code uint8) keyBinding {
	return keyBinding{key: k, entry: layout.Entry{Code: code}}
}

func modKey(k ebiten.Key, bit uint8) keyBinding {
	return keyBinding{key: k, entry: layout.Entry{Modifier: true, Code: bit}}
}

var pcKeys = []keyBinding{
	usageKey(ebiten.KeyA, keycode.A), usageKey(ebiten.KeyB, keycode.B),
	usageKey(ebiten.KeyC, keycode.C), usageKey(ebiten.KeyD, keycode.D),
	usageKey(ebiten.KeyE, keycode.E), usageKey(ebiten.KeyF, keycode.F),
	usageKey(ebiten.KeyG, keycode.G), usageKey(ebiten.KeyH, keycode.H),
	usageKey(ebiten.KeyI, keycode.I), usageKey(ebiten.KeyJ, keycode.J),
	usageKey(ebiten.KeyK, keycode.K), usageKey(ebiten.KeyL, keycode.L),
	usageKey(ebiten.KeyM, keycode.M), usageKey(ebiten.KeyN, keycode.N),
	usageKey(ebiten.KeyO, keycode.O), usageKey(ebiten.KeyP, keycode.P),
	usageKey(ebiten.KeyQ, keycode.Q), usageKey(ebiten.KeyR, keycode.R),
	usageKey(ebiten.KeyS, keycode.S), usageKey(ebiten.KeyT, keycode.T),
	usageKey(ebiten.KeyU, keycode.U), usageKey(ebiten.KeyV, keycode.V),
	usageKey(ebiten.KeyW, keycode.W), usageKey(ebiten.KeyX, keycode.X),
	usageKey(ebiten.KeyY, keycode.Y), usageKey(ebiten.KeyZ, keycode.Z),

	usageKey(ebiten.KeyDigit1, keycode.Num1), usageKey(ebiten.KeyDigit2, keycode.Num2),
	usageKey(ebiten.KeyDigit3, keycode.Num3), usageKey(ebiten.KeyDigit4, keycode.Num4),
	usageKey(ebiten.KeyDigit5, keycode.Num5), usageKey(ebiten.KeyDigit6, keycode.Num6),
	usageKey(ebiten.KeyDigit7, keycode.Num7), usageKey(ebiten.KeyDigit8, keycode.Num8),
	usageKey(ebiten.KeyDigit9, keycode.Num9), usageKey(ebiten.KeyDigit0, keycode.Num0),

	usageKey(ebiten.KeyEnter, keycode.Enter),
	usageKey(ebiten.KeyEscape, keycode.Escape),
	usageKey(ebiten.KeyBackspace, keycode.Backspace),
	usageKey(ebiten.KeyTab, keycode.Tab),
	usageKey(ebiten.KeySpace, keycode.Space),
	usageKey(ebiten.KeyMinus, keycode.Minus),
	usageKey(ebiten.KeyEqual, keycode.Equal),
	usageKey(ebiten.KeyBracketLeft, keycode.LeftBrace),
	usageKey(ebiten.KeyBracketRight, keycode.RightBrace),
	usageKey(ebiten.KeyBackslash, keycode.Backslash),
	usageKey(ebiten.KeySemicolon, keycode.Semicolon),
	usageKey(ebiten.KeyQuote, keycode.Apostrophe),
	usageKey(ebiten.KeyBackquote, keycode.Grave),
	usageKey(ebiten.KeyComma, keycode.Comma),
	usageKey(ebiten.KeyPeriod, keycode.Period),
	usageKey(ebiten.KeySlash, keycode.Slash),
	usageKey(ebiten.KeyCapsLock, keycode.CapsLock),
	usageKey(ebiten.KeyIntlBackslash, keycode.NonUSBackslash),
	usageKey(ebiten.KeyContextMenu, keycode.Application),

	usageKey(ebiten.KeyF1, keycode.F1), usageKey(ebiten.KeyF2, keycode.F2),
	usageKey(ebiten.KeyF3, keycode.F3), usageKey(ebiten.KeyF4, keycode.F4),
	usageKey(ebiten.KeyF5, keycode.F5), usageKey(ebiten.KeyF6, keycode.F6),
	usageKey(ebiten.KeyF7, keycode.F7), usageKey(ebiten.KeyF8, keycode.F8),
	usageKey(ebiten.KeyF9, keycode.F9), usageKey(ebiten.KeyF10, keycode.F10),
	usageKey(ebiten.KeyF11, keycode.F11), usageKey(ebiten.KeyF12, keycode.F12),

	usageKey(ebiten.KeyPrintScreen, keycode.PrintScreen),
	usageKey(ebiten.KeyScrollLock, keycode.ScrollLock),
	usageKey(ebiten.KeyPause, keycode.Pause),
	usageKey(ebiten.KeyInsert, keycode.Insert),
	usageKey(ebiten.KeyHome, keycode.Home),
	usageKey(ebiten.KeyPageUp, keycode.PageUp),
	usageKey(ebiten.KeyDelete, keycode.Delete),
	usageKey(ebiten.KeyEnd, keycode.End),
	usageKey(ebiten.KeyPageDown, keycode.PageDown),
	usageKey(ebiten.KeyArrowRight, keycode.Right),
	usageKey(ebiten.KeyArrowLeft, keycode.Left),
	usageKey(ebiten.KeyArrowDown, keycode.Down),
	usageKey(ebiten.KeyArrowUp, keycode.Up),
	usageKey(ebiten.KeyNumLock, keycode.NumLock),

	modKey(ebiten.KeyControlLeft, keycode.ModLeftCtrl),
	modKey(ebiten.KeyShiftLeft, keycode.ModLeftShift),
	modKey(ebiten.KeyAltLeft, keycode.ModLeftAlt),
	modKey(ebiten.KeyMetaLeft, keycode.ModLeftGUI),
	modKey(ebiten.KeyControlRight, keycode.ModRightCtrl),
	modKey(ebiten.KeyShiftRight, keycode.ModRightShift),
	modKey(ebiten.KeyAltRight, keycode.ModRightAlt),
	modKey(ebiten.KeyMetaRight, keycode.ModRightGUI),
}

type boundKey struct {
	key ebiten.Key
	sw  int
}

// hostKeyboard turns PC key presses into switch events for the first
// matrix position whose layout entry produces the same usage.
type hostKeyboard struct {
	ch    chan KeyEvent
	bound []boundKey
}

func newHostKeyboard(t *layout.Table) *hostKeyboard {
	k := &hostKeyboard{ch: make(chan KeyEvent, 64)}
	for _, b := range pcKeys {
		for i := 0; i < matrix.NumKeys; i++ {
			if t.Lookup(i) == b.entry {
				k.bound = append(k.bound, boundKey{key: b.key, sw: i})
				break
			}
		}
	}
	return k
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(key int, press bool) {
		select {
		case k.ch <- KeyEvent{Key: key, Press: press}:
		default:
		}
	}
	for _, b := range k.bound {
		if inpututil.IsKeyJustPressed(b.key) {
			emit(b.sw, true)
		}
		if inpututil.IsKeyJustReleased(b.key) {
			emit(b.sw, false)
		}
	}
}
