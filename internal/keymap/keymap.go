// Package keymap loads keymap files and turns them into layout tables.
//
// A keymap file names the key at every matrix position, one row per scan
// row, in YAML or TOML:
//
//	name: pontus
//	matrix:
//	  - [RBRC, BSPC, A, B, C, RSFT, BSLS, ENT]
//	  ...
package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"matrixkb/firmware/layout"
	"matrixkb/firmware/matrix"
)

var (
	ErrUnknownKey = errors.New("keymap: unknown key name")
	ErrGeometry   = errors.New("keymap: matrix geometry mismatch")
	ErrFormat     = errors.New("keymap: unsupported file format")
)

// Format selects the decoder for a keymap file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// File is a decoded keymap file.
type File struct {
	Name   string     `yaml:"name" toml:"name"`
	Matrix [][]string `yaml:"matrix" toml:"matrix"`
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("keymap: decode yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("keymap: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return &f, nil
}

// Load reads and decodes a keymap file.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: read %q: %w", path, err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Table resolves every key name. Rows must match the matrix geometry.
func (f *File) Table() (*layout.Table, error) {
	if len(f.Matrix) != matrix.Rows {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrGeometry, len(f.Matrix), matrix.Rows)
	}
	var t layout.Table
	for r, row := range f.Matrix {
		if len(row) != matrix.Cols {
			return nil, fmt.Errorf("%w: row %d has %d keys, want %d", ErrGeometry, r, len(row), matrix.Cols)
		}
		for c, name := range row {
			e, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownKey, name, r, c)
			}
			t[matrix.Index(r, c)] = e
		}
	}
	return &t, nil
}
