package keymap

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
)

func entryLiteral(e layout.Entry) string {
	switch {
	case e.Modifier:
		return fmt.Sprintf("{Modifier: true, Code: 0x%02X}", e.Code)
	case e.Code == 0:
		return "{}"
	default:
		return fmt.Sprintf("{Code: 0x%02X}", e.Code)
	}
}

// Generate writes Go source declaring the keymap as a layout.Table named
// varName in package pkg. source is recorded in the generated header.
func Generate(w io.Writer, f *File, pkg, varName, source string) error {
	t, err := f.Table()
	if err != nil {
		return err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mklayout from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	qual := ""
	if pkg != "layout" {
		fmt.Fprintf(&b, "import \"matrixkb/firmware/layout\"\n\n")
		qual = "layout."
	}

	fmt.Fprintf(&b, "// %s is the %s keymap.\n", varName, f.Name)
	fmt.Fprintf(&b, "var %s = %sTable{\n", varName, qual)
	for r := 0; r < matrix.Rows; r++ {
		fmt.Fprintf(&b, "\t// row %d: %s\n", r, strings.ToUpper(strings.Join(f.Matrix[r], " ")))
		lits := make([]string, matrix.Cols)
		for c := range lits {
			lits[c] = entryLiteral(t[matrix.Index(r, c)])
		}
		fmt.Fprintf(&b, "\t%s,\n", strings.Join(lits, ", "))
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("keymap: format generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("keymap: write generated source: %w", err)
	}
	return nil
}
