package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrixkb/firmware/keycode"
	"matrixkb/firmware/matrix"
)

func TestPontusWiring(t *testing.T) {
	assert.Equal(t, Entry{Code: keycode.Escape}, Pontus.Lookup(matrix.Index(8, 0)))
	assert.Equal(t, Entry{Code: keycode.RightBrace}, Pontus.Lookup(0))
	assert.Equal(t, Entry{Modifier: true, Code: keycode.ModLeftShift}, Pontus.Lookup(matrix.NumKeys-1))
	assert.Equal(t, Entry{Modifier: true, Code: keycode.ModLeftCtrl}, Pontus.Lookup(matrix.Index(8, 5)))
	assert.Equal(t, Entry{Code: keycode.NonUSBackslash}, Pontus.Lookup(matrix.Index(8, 6)))
	assert.True(t, Pontus.Lookup(matrix.Index(2, 3)).Unassigned())
}

func TestTestLayouts(t *testing.T) {
	digits := []uint8{
		keycode.Num0, keycode.Num1, keycode.Num2, keycode.Num3, keycode.Num4,
		keycode.Num5, keycode.Num6, keycode.Num7, keycode.Num8,
	}
	for r := 0; r < matrix.Rows; r++ {
		for c := 0; c < matrix.Cols; c++ {
			k := matrix.Index(r, c)
			assert.Equal(t, Entry{Code: digits[r]}, TestA.Lookup(k), "testa key %d", k)
			assert.Equal(t, Entry{Code: digits[c]}, TestB.Lookup(k), "testb key %d", k)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	assert.Equal(t, Entry{}, Pontus.Lookup(-1))
	assert.Equal(t, Entry{}, Pontus.Lookup(matrix.NumKeys))

	var nilTable *Table
	assert.Equal(t, Entry{}, nilTable.Lookup(0))
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		tbl, ok := ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, tbl)
	}
	_, ok := ByName(Default)
	assert.True(t, ok)
	_, ok = ByName("qwertz")
	assert.False(t, ok)
	assert.Equal(t, []string{"fredrik", "pontus", "testa", "testb"}, Names())
}

func TestFredrikSharesPontusWiring(t *testing.T) {
	tbl, ok := ByName("fredrik")
	require.True(t, ok)
	assert.Same(t, &Pontus, tbl)
}
