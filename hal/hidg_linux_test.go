//go:build linux && !tinygo

package hal

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
)

// stalledHost is a gadget endpoint whose host never polls: writes block
// until the endpoint closes. LED reports are fed through leds.
type stalledHost struct {
	leds    chan []byte
	closed  chan struct{}
	once    sync.Once
	mu      sync.Mutex
	written [][]byte
	release chan struct{}
}

func newStalledHost() *stalledHost {
	return &stalledHost{
		leds:    make(chan []byte),
		closed:  make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (h *stalledHost) Read(p []byte) (int, error) {
	select {
	case b := <-h.leds:
		return copy(p, b), nil
	case <-h.closed:
		return 0, io.EOF
	}
}

func (h *stalledHost) Write(p []byte) (int, error) {
	select {
	case <-h.release:
	case <-h.closed:
		return 0, io.ErrClosedPipe
	}
	h.mu.Lock()
	h.written = append(h.written, append([]byte(nil), p...))
	h.mu.Unlock()
	return len(p), nil
}

func (h *stalledHost) Close() error {
	h.once.Do(func() { close(h.closed) })
	return nil
}

type lineSink struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineSink) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *lineSink) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func TestHIDGSendReportDoesNotWaitForHost(t *testing.T) {
	host := newStalledHost()
	log := &lineSink{}
	d := newHIDGDevice(host, log)

	done := make(chan struct{})
	go func() {
		r := hid.Report{Modifiers: keycode.ModLeftShift}
		for i := 0; i < 3*hidgQueue; i++ {
			d.SendReport(r)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("SendReport blocked on a host that does not poll")
	}

	assert.GreaterOrEqual(t, d.drops.Load(), uint64(hidgQueue-1))
	assert.Equal(t, uint64(0), d.writes.Load())
	require.NoError(t, d.Close())
	assert.Contains(t, log.lines, "hidg: host not polling, dropping reports")
}

func TestHIDGWritesBootReportsAndReadsLEDs(t *testing.T) {
	host := newStalledHost()
	close(host.release)
	d := newHIDGDevice(host, &lineSink{})

	var r hid.Report
	r.Keys[0] = keycode.A
	d.SendReport(r)
	require.Eventually(t, func() bool { return d.writes.Load() == 1 }, 5*time.Second, time.Millisecond)

	host.mu.Lock()
	assert.Equal(t, []byte{0, 0, keycode.A, 0, 0, 0, 0, 0}, host.written[0])
	host.mu.Unlock()

	host.leds <- []byte{keycode.LEDCapsLock | 0x10}
	require.Eventually(t, func() bool { return d.LockState() == keycode.LEDCapsLock }, 5*time.Second, time.Millisecond)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
}
