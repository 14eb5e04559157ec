package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"matrixkb/app"
	"matrixkb/hal"
)

type Headless struct {
	Firmware `embed:""`
	SimFlags `embed:""`

	Hz         int    `help:"Scan periods per second of wall time; 0 runs back to back" default:"0" env:"MATRIXKB_HZ"`
	Ticks      uint64 `help:"Stop after this many scan periods; 0 stops when the script ends" env:"MATRIXKB_TICKS"`
	Script     string `help:"Inline script: +N presses key N, -N releases it, ~N waits N periods"`
	ScriptFile string `help:"Read the script from a file" type:"existingfile"`
}

func (c *Headless) script() ([]hal.ScriptStep, error) {
	src := c.Script
	if c.ScriptFile != "" {
		if src != "" {
			return nil, errors.New("--script and --script-file are exclusive")
		}
		data, err := os.ReadFile(c.ScriptFile)
		if err != nil {
			return nil, err
		}
		src = string(data)
	}
	steps, err := hal.ParseScript(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return steps, nil
}

// Run is called by kong when the headless command is executed.
func (c *Headless) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, logger)
}

func (c *Headless) run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := c.appConfig()
	if err != nil {
		return err
	}
	hc, err := c.hostConfig(cfg, logger)
	if err != nil {
		return err
	}
	steps, err := c.script()
	if err != nil {
		return err
	}
	if c.Hz < 0 {
		return fmt.Errorf("hz must not be negative: %d", c.Hz)
	}

	var a *app.App
	err = hal.RunHeadless(ctx, appFactory(cfg, &a), hal.HeadlessConfig{
		Host:   hc,
		Hz:     c.Hz,
		Ticks:  c.Ticks,
		Script: steps,
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if a != nil {
		ctl := a.Controller().Snapshot()
		logger.Info("Headless run finished",
			"periods", a.Scheduler().Runs(),
			"overruns", a.Scheduler().Overruns(),
			"reports", ctl.Reports,
			"report", ctl.Report.String(),
			"locks", ctl.Locks)
	}
	return err
}
