//go:build linux

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"matrixkb/app"
	"matrixkb/hal"
	"matrixkb/internal/log"
)

// Run is called by kong when the gadget command is executed.
func (g *Gadget) Run(logger *slog.Logger) error {
	cfg, err := g.appConfig()
	if err != nil {
		return err
	}
	h, closer, err := hal.NewGadget(hal.GadgetConfig{
		Load:        g.Load,
		MatrixClock: g.MatrixClock,
		Sense:       g.Sense,
		Data:        g.Data,
		LightClock:  g.LightClock,
		Latch:       g.Latch,
		Blank:       g.Blank,
		Status:      g.Status,
		Device:      g.Device,
		Period:      cfg.Timer.Period(),
		Log:         log.Lines{L: logger, Level: slog.LevelInfo},
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting gadget", "device", g.Device, "layout", cfg.Layout, "period", cfg.Timer.Period())
	err = app.Run(ctx, h, cfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
