package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"matrixkb/firmware/layout"
)

type Layouts struct {
	Keys bool `help:"Also count the assigned keys of each layout"`
}

func (l *Layouts) Run(k *kong.Context) error {
	for _, name := range layout.Names() {
		line := name
		if name == layout.Default {
			line += " (default)"
		}
		if l.Keys {
			t, _ := layout.ByName(name)
			n := 0
			for _, e := range t {
				if !e.Unassigned() {
					n++
				}
			}
			line = fmt.Sprintf("%s: %d keys", line, n)
		}
		if _, err := fmt.Fprintln(k.Stdout, line); err != nil {
			return err
		}
	}
	return nil
}
