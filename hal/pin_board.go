package hal

import (
	"fmt"

	"matrixkb/firmware/grayscale"
	"matrixkb/firmware/matrix"
)

// BoardPins are the seven lines of the keyboard PCB.
type BoardPins struct {
	Load, MatrixClock, Sense GPIOPin
	Data, LightClock, Latch  GPIOPin
	Blank                    GPIOPin
}

// PinBoard is a Board driven through GPIO pins.
type PinBoard struct {
	m     *PinMatrix
	l     *PinLights
	delay Delayer
}

// NewPinBoard configures both chains. On error no board is returned, so a
// HAL never hands out a bus it failed to set up.
func NewPinBoard(p BoardPins, delay Delayer) (*PinBoard, error) {
	m, err := NewPinMatrix(p.Load, p.MatrixClock, p.Sense)
	if err != nil {
		return nil, fmt.Errorf("board: matrix: %w", err)
	}
	l, err := NewPinLights(p.Data, p.LightClock, p.Latch, p.Blank)
	if err != nil {
		return nil, fmt.Errorf("board: lights: %w", err)
	}
	return &PinBoard{m: m, l: l, delay: delay}, nil
}

func (b *PinBoard) Matrix() matrix.Bus    { return b.m }
func (b *PinBoard) Lights() grayscale.Bus { return b.l }
func (b *PinBoard) Delay() Delayer        { return b.delay }

// Err returns the first GPIO error on either chain.
func (b *PinBoard) Err() error {
	if err := b.m.Err(); err != nil {
		return err
	}
	return b.l.Err()
}
