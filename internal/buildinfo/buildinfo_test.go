package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	v, c := Version, Commit
	t.Cleanup(func() { Version, Commit = v, c })

	Version, Commit = "dev", "unknown"
	assert.Equal(t, "dev", Short())
	Commit = "1a2b3c"
	assert.Equal(t, "1a2b3c", Short())
	Version = "v0.2.0"
	assert.Equal(t, "v0.2.0", Short())
	assert.Contains(t, Long(), "commit 1a2b3c")
}
