package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	j, y, tm := ConfigCandidatePaths("/tmp/kb.toml")
	require.NotEmpty(t, tm)
	assert.Equal(t, "/tmp/kb.toml", tm[0])
	assert.NotContains(t, j, "/tmp/kb.toml")
	assert.NotContains(t, y, "/tmp/kb.toml")

	j, _, _ = ConfigCandidatePaths("/tmp/kb.conf")
	assert.Equal(t, "/tmp/kb.conf", j[0])

	_, y, _ = ConfigCandidatePaths("/tmp/kb.yml")
	assert.Equal(t, "/tmp/kb.yml", y[0])
}

func TestConfigCandidatePathsSystem(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no system-wide config on windows")
	}
	_, y, _ := ConfigCandidatePaths("")
	assert.Contains(t, y, filepath.Join("/etc", "matrixkb", "matrixkb.yaml"))
	assert.Contains(t, y, filepath.Join("/etc", "matrixkb", "config.yml"))
}

func TestDefaultConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultConfigPath("yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "matrixkb", "config.yaml"), p)

	p, err = DefaultConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "matrixkb", "config.json"), p)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a", "b", "config.toml")
	require.NoError(t, EnsureDir(p))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
}
