package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestConsoleSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	logger, closers, err := SetupLogger(Options{Level: "debug", Stdout: &out, Stderr: &errOut})
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("scan started")
	logger.Error("bus fault")
	logger.Log(nil, LevelTrace, "too quiet")

	assert.Contains(t, out.String(), "scan started")
	assert.NotContains(t, out.String(), "bus fault")
	assert.Contains(t, errOut.String(), "bus fault")
	assert.NotContains(t, errOut.String(), "scan started")
	assert.NotContains(t, out.String(), "too quiet")
}

func TestLogFile(t *testing.T) {
	var errOut bytes.Buffer
	path := filepath.Join(t.TempDir(), "kb.log")
	logger, closers, err := SetupLogger(Options{Level: "info", File: path, JSON: true, Stderr: &errOut})
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("report", "keys", 2)
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"report"`)
	assert.Contains(t, errOut.String(), `"keys":2`)
}

func TestLines(t *testing.T) {
	var out bytes.Buffer
	logger, _, err := SetupLogger(Options{Level: "trace", Stdout: &out, Stderr: &out})
	require.NoError(t, err)

	l := Lines{L: logger, Level: LevelTrace}
	l.WriteLineString("key 3: press")
	l.WriteLineBytes([]byte("report: mod=00"))
	assert.Contains(t, out.String(), "key 3: press")
	assert.Contains(t, out.String(), "report: mod=00")
}
