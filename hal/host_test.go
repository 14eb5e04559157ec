//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostTimeFirstStepEmitsRequested(t *testing.T) {
	ht := newHostTime(0)
	assert.Equal(t, time.Millisecond, ht.Period())

	ht.step(3)
	assert.Len(t, ht.Ticks(), 3)
	ht.stepN(2)
	require.Len(t, ht.Ticks(), 5)
	for want := uint64(1); want <= 5; want++ {
		assert.Equal(t, want, <-ht.Ticks())
	}
}

func TestRunHeadlessTicksAndScript(t *testing.T) {
	steps, err := ParseScript("+4 ~2 -4")
	require.NoError(t, err)

	var h *hostHAL
	var calls int
	err = RunHeadless(context.Background(), func(hh HAL) func() error {
		h = hh.(*hostHAL)
		return func() error {
			calls++
			return nil
		}
	}, HeadlessConfig{Ticks: 5, Script: steps})
	require.NoError(t, err)

	assert.Equal(t, 5, calls)
	assert.Len(t, h.Time().Ticks(), 5, "nothing drained the ticks")
	assert.False(t, h.board.Switch(4))
}

func TestRunHeadlessStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{})
	assert.ErrorIs(t, err, boom)
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHostDefaults(t *testing.T) {
	h, err := newHost(HostConfig{})
	require.NoError(t, err)
	fb := h.Display().Framebuffer()
	assert.Equal(t, 320, fb.Width())
	assert.Equal(t, 200, fb.Height())

	fb.ClearRGB(0xFF, 0, 0)
	assert.Equal(t, []byte{0x00, 0xF8}, fb.Buffer()[:2])
	require.NoError(t, fb.Present())
	assert.Equal(t, uint64(1), h.fb.frames)
}
