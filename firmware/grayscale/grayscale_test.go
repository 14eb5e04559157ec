package grayscale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/keycode"
)

// chainRecorder shifts data in on rising clock edges and captures the
// shifted bits on each rising latch edge.
type chainRecorder struct {
	data, clock, latch, blank bool

	shifted []bool
	latched [][]bool
	order   []string
}

func (c *chainRecorder) SetData(high bool) { c.data = high; c.order = append(c.order, "data") }

func (c *chainRecorder) SetClock(high bool) {
	if high && !c.clock {
		c.shifted = append(c.shifted, c.data)
	}
	c.clock = high
	c.order = append(c.order, "clock")
}

func (c *chainRecorder) SetLatch(high bool) {
	if high && !c.latch {
		c.latched = append(c.latched, c.shifted)
		c.shifted = nil
	}
	c.latch = high
	c.order = append(c.order, "latch")
}

func (c *chainRecorder) SetBlank(high bool) { c.blank = high; c.order = append(c.order, "blank") }

// decode turns a latched stream back into channel values.
func decode(t *testing.T, bits []bool) Frame {
	t.Helper()
	require.Len(t, bits, Channels*Bits)
	var f Frame
	for i := 0; i < Channels; i++ {
		ch := Channels - 1 - i
		var v uint16
		for _, b := range bits[i*Bits : (i+1)*Bits] {
			v <<= 1
			if b {
				v |= 1
			}
		}
		f[ch] = v
	}
	return f
}

func TestConfigureEnablesOutputs(t *testing.T) {
	c := &chainRecorder{blank: true}
	d := NewDriver(c, nil, 0)
	d.Configure()
	assert.False(t, c.blank)
	assert.False(t, c.latch)
	assert.False(t, c.clock)
}

func TestLockChannels(t *testing.T) {
	c := &chainRecorder{}
	d := NewDriver(c, nil, 0)
	d.Configure()

	d.Update(keycode.LEDNumLock | keycode.LEDScrollLock)
	require.Len(t, c.latched, 1)
	f := decode(t, c.latched[0])

	var want Frame
	want[ChannelNumLock] = Max
	want[ChannelScrollLock] = Max
	assert.Equal(t, want, f)
	assert.Equal(t, want, d.Frame())
	assert.False(t, c.latch, "latch returns low")

	d.Update(keycode.LEDCapsLock | 0xF8)
	f = decode(t, c.latched[1])
	want = Frame{}
	want[ChannelCapsLock] = Max
	assert.Equal(t, want, f, "bits above scroll lock are ignored")
	assert.Equal(t, uint8(keycode.LEDCapsLock), d.Locks())
}

func TestWriteIsMSBFirstFromLastChannel(t *testing.T) {
	c := &chainRecorder{}
	d := NewDriver(c, nil, 0)
	d.frame[Channels-1] = 0x800
	d.frame[0] = 0x001
	d.Write()

	bits := c.latched[0]
	assert.True(t, bits[0], "first bit out is the MSB of the last channel")
	for i := 1; i < len(bits)-1; i++ {
		assert.False(t, bits[i], "bit %d", i)
	}
	assert.True(t, bits[len(bits)-1], "last bit out is the LSB of channel 0")
}

func TestWriteSequence(t *testing.T) {
	c := &chainRecorder{}
	delay := &countDelay{}
	d := NewDriver(c, delay, DefaultSettle)
	d.Write()

	require.Equal(t, "latch", c.order[0])
	body := c.order[1 : 1+3*Channels*Bits]
	for i := 0; i < Channels*Bits; i++ {
		assert.Equal(t, []string{"clock", "data", "clock"}, body[i*3:i*3+3])
	}
	assert.Equal(t, []string{"clock", "latch", "latch"}, c.order[1+3*Channels*Bits:])
	assert.Equal(t, 3*Channels*Bits+2, delay.n)
}

// waitRecorder logs settle delays into the chain's line log.
type waitRecorder struct{ c *chainRecorder }

func (w waitRecorder) Delay(time.Duration) { w.c.order = append(w.c.order, "wait") }

func TestWriteSettlesAfterEveryEdge(t *testing.T) {
	c := &chainRecorder{}
	d := NewDriver(c, waitRecorder{c}, DefaultSettle)
	d.Write()

	require.Equal(t, "latch", c.order[0], "latch drops without a settle")
	body := c.order[1 : 1+6*Channels*Bits]
	for i := 0; i < Channels*Bits; i++ {
		require.Equal(t, []string{"clock", "wait", "data", "wait", "clock", "wait"}, body[i*6:i*6+6], "bit %d", i)
	}
	assert.Equal(t, []string{"clock", "wait", "latch", "wait", "latch"}, c.order[1+6*Channels*Bits:])
}

type countDelay struct{ n int }

func (d *countDelay) Delay(time.Duration) { d.n++ }
