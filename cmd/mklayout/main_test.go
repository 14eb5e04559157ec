//go:build !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReproducesLayout(t *testing.T) {
	want, err := os.ReadFile("../../firmware/layout/testb_gen.go")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("../../firmware/layout"))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out := filepath.Join(t.TempDir(), "testb_gen.go")
	require.NoError(t, run("keymaps/testb.toml", out, "layout", "TestB"))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, run(filepath.Join(dir, "missing.yaml"), "", "layout", "X"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("matrix:\n  - [A]\n"), 0o644))
	out := filepath.Join(dir, "bad_gen.go")
	assert.Error(t, run(bad, out, "layout", "Bad"))
	assert.NoFileExists(t, out)
}
