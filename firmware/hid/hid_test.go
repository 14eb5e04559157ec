package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/keycode"
	"matrixkb/firmware/layout"
)

func TestReportBootLayout(t *testing.T) {
	r := Report{
		Modifiers: keycode.ModLeftShift | keycode.ModRightAlt,
		Keys:      [Capacity]uint8{keycode.A, keycode.B},
	}
	assert.Equal(t, [ReportSize]byte{0x42, 0, 0x04, 0x05, 0, 0, 0, 0}, r.Boot())

	data, err := r.MarshalBinary()
	require.NoError(t, err)
	var back Report
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, r, back)

	assert.Error(t, back.UnmarshalBinary(data[:7]))
	assert.Equal(t, "mod=42 keys=[04 05 00 00 00 00]", r.String())
	assert.True(t, r.Contains(keycode.B))
	assert.False(t, r.Contains(0))
	assert.True(t, Report{}.Empty())
}

func checkInvariants(t *testing.T, r *Rollover) {
	t.Helper()
	slots := r.Slots()
	seen := map[uint8]bool{}
	for i, s := range slots {
		if i < r.Len() {
			require.NotEqual(t, uint8(Empty), s, "slot %d inside length", i)
			require.False(t, seen[s], "duplicate %d", s)
			seen[s] = true
		} else {
			require.Equal(t, uint8(Empty), s, "slot %d beyond length", i)
		}
	}
	require.LessOrEqual(t, r.Len(), Capacity)
}

func TestRolloverCompaction(t *testing.T) {
	r := NewRollover(EvictOldest)
	for _, k := range []uint8{1, 2, 3, 4} {
		r.Push(k)
		checkInvariants(t, &r)
	}
	assert.Equal(t, [Capacity]uint8{4, 3, 2, 1, Empty, Empty}, r.Slots())

	assert.True(t, r.Remove(3))
	checkInvariants(t, &r)
	assert.Equal(t, [Capacity]uint8{4, 2, 1, Empty, Empty, Empty}, r.Slots())

	assert.False(t, r.Remove(9))
	assert.Equal(t, 3, r.Len())

	assert.True(t, r.Remove(1))
	assert.True(t, r.Remove(4))
	assert.Equal(t, [Capacity]uint8{2, Empty, Empty, Empty, Empty, Empty}, r.Slots())
}

func TestRolloverNoDuplicates(t *testing.T) {
	r := NewRollover(EvictOldest)
	r.Push(7)
	r.Push(8)
	assert.True(t, r.Push(7))
	assert.Equal(t, [Capacity]uint8{8, 7, Empty, Empty, Empty, Empty}, r.Slots())
	assert.False(t, r.Push(Empty))
	checkInvariants(t, &r)
}

func TestRolloverOverflow(t *testing.T) {
	t.Run("evict oldest", func(t *testing.T) {
		r := NewRollover(EvictOldest)
		for k := uint8(10); k < 17; k++ {
			assert.True(t, r.Push(k))
			checkInvariants(t, &r)
		}
		assert.Equal(t, [Capacity]uint8{16, 15, 14, 13, 12, 11}, r.Slots())
		assert.False(t, r.Contains(10))
	})
	t.Run("reject newest", func(t *testing.T) {
		r := NewRollover(RejectNewest)
		for k := uint8(10); k < 16; k++ {
			assert.True(t, r.Push(k))
		}
		assert.False(t, r.Push(16))
		checkInvariants(t, &r)
		assert.Equal(t, [Capacity]uint8{15, 14, 13, 12, 11, 10}, r.Slots())
	})
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{EvictOldest, RejectNewest} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, EvictOldest, p)
	_, err = ParsePolicy("drop")
	assert.Error(t, err)
	assert.Equal(t, "Policy(7)", Policy(7).String())
}

type recordSink struct {
	reports []Report
}

func (s *recordSink) SendReport(r Report) { s.reports = append(s.reports, r) }

func (s *recordSink) last() Report { return s.reports[len(s.reports)-1] }

// testTable maps keys 0..9 to A..J, 10 to left shift, 11 to right ctrl.
func testTable() *layout.Table {
	var t layout.Table
	for k := 0; k < 10; k++ {
		t[k] = layout.Entry{Code: keycode.A + uint8(k)}
	}
	t[10] = layout.Entry{Modifier: true, Code: keycode.ModLeftShift}
	t[11] = layout.Entry{Modifier: true, Code: keycode.ModRightCtrl}
	return &t
}

func TestDispatcherPressReleaseOrder(t *testing.T) {
	sink := &recordSink{}
	d := NewDispatcher(testTable(), sink, EvictOldest)

	d.Press(0)   // A
	d.Press(1)   // B
	d.Release(0) // A up
	d.Press(2)   // C

	require.Len(t, sink.reports, 4, "one report per edge")
	assert.Equal(t, Report{Keys: [Capacity]uint8{keycode.A}}, sink.reports[0])
	assert.Equal(t, Report{Keys: [Capacity]uint8{keycode.B, keycode.A}}, sink.reports[1])
	assert.Equal(t, Report{Keys: [Capacity]uint8{keycode.B}}, sink.reports[2])
	assert.Equal(t, Report{Keys: [Capacity]uint8{keycode.C, keycode.B}}, sink.reports[3])
	assert.Equal(t, [Capacity]uint8{2, 1, Empty, Empty, Empty, Empty}, d.Queue())
	assert.Equal(t, sink.last(), d.Report())
}

func TestDispatcherModifiersStayOutOfQueue(t *testing.T) {
	sink := &recordSink{}
	d := NewDispatcher(testTable(), sink, EvictOldest)

	d.Press(10)
	d.Press(11)
	d.Press(3)
	assert.Equal(t, uint8(keycode.ModLeftShift|keycode.ModRightCtrl), d.Modifiers())
	assert.Equal(t, Report{
		Modifiers: keycode.ModLeftShift | keycode.ModRightCtrl,
		Keys:      [Capacity]uint8{keycode.D},
	}, sink.last())

	d.Release(10)
	assert.Equal(t, uint8(keycode.ModRightCtrl), d.Modifiers())
	assert.Equal(t, [Capacity]uint8{3, Empty, Empty, Empty, Empty, Empty}, d.Queue())

	d.Release(11)
	d.Release(3)
	assert.True(t, sink.last().Empty())
}

func TestDispatcherSeventhPress(t *testing.T) {
	for _, tc := range []struct {
		policy Policy
		want   [Capacity]uint8
	}{
		{EvictOldest, [Capacity]uint8{keycode.G, keycode.F, keycode.E, keycode.D, keycode.C, keycode.B}},
		{RejectNewest, [Capacity]uint8{keycode.F, keycode.E, keycode.D, keycode.C, keycode.B, keycode.A}},
	} {
		t.Run(tc.policy.String(), func(t *testing.T) {
			sink := &recordSink{}
			d := NewDispatcher(testTable(), sink, tc.policy)
			for k := 0; k < 7; k++ {
				d.Press(k)
			}
			require.Len(t, sink.reports, 7)
			assert.Equal(t, tc.want, sink.last().Keys)

			// Releasing a key that fell out of the rollover changes nothing.
			before := sink.last()
			d.Release(0)
			if tc.policy == EvictOldest {
				assert.Equal(t, before, sink.last())
			}
		})
	}
}

func TestDispatcherIgnoresOutOfRange(t *testing.T) {
	sink := &recordSink{}
	d := NewDispatcher(testTable(), sink, EvictOldest)
	d.Press(-1)
	d.Press(1000)
	d.Release(72)
	assert.Empty(t, sink.reports)
}

func TestDispatcherRepeatedPressKeepsOneEntry(t *testing.T) {
	sink := &recordSink{}
	d := NewDispatcher(testTable(), sink, EvictOldest)
	d.Press(4)
	d.Press(4)
	assert.Equal(t, Report{Keys: [Capacity]uint8{keycode.E}}, sink.last())

	d.Reset()
	assert.Equal(t, Report{}, d.Report())
	assert.Equal(t, uint8(0), d.Modifiers())
}

func TestNilSink(t *testing.T) {
	d := NewDispatcher(testTable(), nil, EvictOldest)
	d.Press(0)
	assert.Equal(t, uint8(keycode.A), d.Report().Keys[0])

	var got Report
	d = NewDispatcher(testTable(), SinkFunc(func(r Report) { got = r }), EvictOldest)
	d.Press(1)
	assert.Equal(t, uint8(keycode.B), got.Keys[0])
}
