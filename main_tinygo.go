//go:build tinygo

package main

import (
	"context"

	"matrixkb/app"
	"matrixkb/hal"
)

func main() {
	cfg := app.DefaultConfig()
	h := hal.New(cfg.Timer.Period())
	if err := app.Run(context.Background(), h, cfg); err != nil {
		h.Logger().WriteLineString("matrixkb: " + err.Error())
	}
	select {}
}
