//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig

	// Hz paces the loop in wall time. Zero runs periods back to back.
	Hz int

	// Ticks stops the run after that many periods. Zero runs until the
	// script finishes, or forever without a script.
	Ticks uint64

	Script []ScriptStep
}

// RunHeadless drives the simulated keyboard one scan period per loop
// iteration without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h, err := newHost(cfg.Host)
	if err != nil {
		return err
	}
	step := newApp(h)

	var pace <-chan time.Time
	if cfg.Hz > 0 {
		d := time.Second / time.Duration(cfg.Hz)
		if d <= 0 {
			return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
		}
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var script *scriptRunner
	if len(cfg.Script) > 0 {
		script = newScriptRunner(cfg.Script)
	}

	var tick uint64
	for {
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
		if cfg.Ticks == 0 && script != nil && script.Done() {
			return nil
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if script != nil {
			script.Tick(h.board)
		}
		h.t.stepN(1)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if err := h.board.Err(); err != nil {
			return err
		}
		tick++
	}
}
