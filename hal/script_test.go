package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/grayscale"
)

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("# caps lock tap\n+5 ~7, -5\n\n~10\n")
	require.NoError(t, err)
	assert.Equal(t, []ScriptStep{
		{Op: ScriptPress, N: 5},
		{Op: ScriptWait, N: 7},
		{Op: ScriptRelease, N: 5},
		{Op: ScriptWait, N: 10},
	}, steps)
	assert.Equal(t, "+5", steps[0].String())
	assert.Equal(t, "~7", steps[1].String())

	for _, bad := range []string{"5", "+", "+x", "*3", "+72", "~-1"} {
		_, err := ParseScript(bad)
		assert.Error(t, err, bad)
	}
}

type simRecorder struct {
	switches map[int]bool
	log      []string
}

func (s *simRecorder) SetSwitch(k int, closed bool) {
	s.switches[k] = closed
	op := ScriptRelease
	if closed {
		op = ScriptPress
	}
	s.log = append(s.log, ScriptStep{Op: op, N: k}.String())
}
func (s *simRecorder) Switch(k int) bool        { return s.switches[k] }
func (s *simRecorder) Outputs() grayscale.Frame { return grayscale.Frame{} }

func TestScriptRunnerWaitsWholePeriods(t *testing.T) {
	steps, err := ParseScript("+3 ~2 -3 +4")
	require.NoError(t, err)
	sim := &simRecorder{switches: map[int]bool{}}
	r := newScriptRunner(steps)

	r.Tick(sim)
	assert.Equal(t, []string{"+3"}, sim.log)
	assert.False(t, r.Done())

	r.Tick(sim)
	assert.Equal(t, []string{"+3"}, sim.log, "second period of the wait")

	r.Tick(sim)
	assert.Equal(t, []string{"+3", "-3", "+4"}, sim.log)
	assert.True(t, r.Done())
}
