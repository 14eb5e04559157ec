// Package layout maps matrix key indices to HID usages or modifier bits.
//
// Tables are generated from the keymap files under keymaps/ by mklayout.
package layout

import (
	"sort"

	"matrixkb/firmware/matrix"
)

//go:generate go run ../../cmd/mklayout -in keymaps/pontus.yaml -var Pontus -out pontus_gen.go
//go:generate go run ../../cmd/mklayout -in keymaps/testa.yaml -var TestA -out testa_gen.go
//go:generate go run ../../cmd/mklayout -in keymaps/testb.toml -var TestB -out testb_gen.go

// Entry is the meaning of one key. For a modifier, Code is the modifier bit;
// otherwise it is a usage code. The zero Entry is an unassigned key.
type Entry struct {
	Modifier bool
	Code     uint8
}

// Unassigned reports whether the key produces nothing.
func (e Entry) Unassigned() bool {
	return !e.Modifier && e.Code == 0
}

// Table holds one entry per key, in scan order.
type Table [matrix.NumKeys]Entry

// Lookup returns the entry of key k, or the zero Entry when k is out of range.
func (t *Table) Lookup(k int) Entry {
	if t == nil || k < 0 || k >= len(t) {
		return Entry{}
	}
	return t[k]
}

// The fredrik board routes its switches exactly like pontus, so it shares
// the table.
var tables = map[string]*Table{
	"fredrik": &Pontus,
	"pontus":  &Pontus,
	"testa":   &TestA,
	"testb":   &TestB,
}

// Default is the layout used when none is selected.
const Default = "pontus"

// ByName returns a built-in layout.
func ByName(name string) (*Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// Names lists the built-in layouts, sorted.
func Names() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
