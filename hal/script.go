package hal

import (
	"fmt"
	"strconv"
	"strings"

	"matrixkb/firmware/matrix"
)

// ScriptOp is one headless script action.
type ScriptOp uint8

const (
	ScriptPress ScriptOp = iota + 1
	ScriptRelease
	ScriptWait
)

// ScriptStep is one parsed token: "+N" closes switch N, "-N" opens it and
// "~N" lets N scan periods pass.
type ScriptStep struct {
	Op ScriptOp
	N  int
}

func (s ScriptStep) String() string {
	switch s.Op {
	case ScriptPress:
		return "+" + strconv.Itoa(s.N)
	case ScriptRelease:
		return "-" + strconv.Itoa(s.N)
	case ScriptWait:
		return "~" + strconv.Itoa(s.N)
	}
	return "?"
}

// ParseScript parses tokens separated by spaces, commas or newlines. Lines
// starting with '#' are comments.
func ParseScript(src string) ([]ScriptStep, error) {
	var steps []ScriptStep
	for lineNo, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		for _, tok := range fields {
			st, err := parseStep(tok)
			if err != nil {
				return nil, fmt.Errorf("script: line %d: %w", lineNo+1, err)
			}
			steps = append(steps, st)
		}
	}
	return steps, nil
}

func parseStep(tok string) (ScriptStep, error) {
	if len(tok) < 2 {
		return ScriptStep{}, fmt.Errorf("bad token %q", tok)
	}
	var op ScriptOp
	switch tok[0] {
	case '+':
		op = ScriptPress
	case '-':
		op = ScriptRelease
	case '~':
		op = ScriptWait
	default:
		return ScriptStep{}, fmt.Errorf("bad token %q", tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 {
		return ScriptStep{}, fmt.Errorf("bad number in %q", tok)
	}
	if op != ScriptWait && n >= matrix.NumKeys {
		return ScriptStep{}, fmt.Errorf("key %d out of range in %q", n, tok)
	}
	return ScriptStep{Op: op, N: n}, nil
}

// scriptRunner applies a script one scan period at a time.
type scriptRunner struct {
	steps []ScriptStep
	next  int
	wait  int
}

func newScriptRunner(steps []ScriptStep) *scriptRunner {
	return &scriptRunner{steps: steps}
}

// Done reports whether every step has been applied and every wait elapsed.
func (r *scriptRunner) Done() bool {
	return r.next >= len(r.steps) && r.wait == 0
}

// Tick is called once before each period. It applies switch steps up to the
// next wait and counts the current period against it.
func (r *scriptRunner) Tick(sim Simulator) {
	for r.wait == 0 && r.next < len(r.steps) {
		st := r.steps[r.next]
		r.next++
		switch st.Op {
		case ScriptPress:
			sim.SetSwitch(st.N, true)
		case ScriptRelease:
			sim.SetSwitch(st.N, false)
		case ScriptWait:
			r.wait = st.N
		}
	}
	if r.wait > 0 {
		r.wait--
	}
}
