package cmd

import (
	"log/slog"

	"matrixkb/hal"
)

type Sim struct {
	Firmware `embed:""`
	SimFlags `embed:""`
}

// Run opens the simulator window and blocks until it closes.
func (s *Sim) Run(logger *slog.Logger) error {
	cfg, err := s.appConfig()
	if err != nil {
		return err
	}
	hc, err := s.hostConfig(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("Starting simulator", "layout", cfg.Layout, "period", cfg.Timer.Period(), "chatter", s.Chatter)
	return hal.RunWindow(hc, appFactory(cfg, nil))
}
