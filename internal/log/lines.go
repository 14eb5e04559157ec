package log

import (
	"context"
	"log/slog"
)

// Lines adapts a slog.Logger to the firmware's newline-delimited logger.
// Every line becomes one record at the given level.
type Lines struct {
	L     *slog.Logger
	Level slog.Level
}

func (l Lines) WriteLineString(s string) {
	l.L.Log(context.Background(), l.Level, s)
}

func (l Lines) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
