//go:build !linux

package cmd

import (
	"fmt"
	"log/slog"

	"matrixkb/hal"
)

func (g *Gadget) Run(logger *slog.Logger) error {
	return fmt.Errorf("gadget: %w on this platform", hal.ErrNotImplemented)
}
