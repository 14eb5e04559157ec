//go:build !tinygo

// Command mklayout turns a keymap file into a Go layout table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"matrixkb/internal/keymap"
)

func main() {
	var inPath, outPath, varName, pkg string
	flag.StringVar(&inPath, "in", "", "Keymap file (.yaml, .yml or .toml).")
	flag.StringVar(&outPath, "out", "", "Output Go file (default stdout).")
	flag.StringVar(&varName, "var", "", "Name of the generated table variable.")
	flag.StringVar(&pkg, "pkg", "layout", "Package of the generated file.")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "error: -in is required")
		os.Exit(2)
	}
	if varName == "" {
		fmt.Fprintln(os.Stderr, "error: -var is required")
		os.Exit(2)
	}

	if err := run(inPath, outPath, pkg, varName); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, pkg, varName string) error {
	f, err := keymap.Load(inPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := keymap.Generate(&buf, f, pkg, varName, filepath.ToSlash(inPath)); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	if outPath == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	tmp := outPath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %q: %w", outPath, err)
	}
	return nil
}
