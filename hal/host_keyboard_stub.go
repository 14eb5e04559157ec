//go:build !tinygo && !cgo

package hal

import "matrixkb/firmware/layout"

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard(*layout.Table) *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
