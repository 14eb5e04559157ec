package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"matrixkb/internal/configpaths"
)

// ConfigInit writes a configuration file holding the defaults of one
// command's flags. Keys are the flag names in snake case, nested under
// their prefixes.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"sim,headless,gadget"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output  string `help:"Destination file (defaults to the user config directory)" type:"path"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	var t reflect.Type
	switch c.Command {
	case "sim":
		t = reflect.TypeOf(Sim{})
	case "headless":
		t = reflect.TypeOf(Headless{})
	case "gadget":
		t = reflect.TypeOf(Gadget{})
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}
	root := templateOf(t)
	root["log"] = templateOf(reflect.TypeOf(LogConfig{}))

	data, err := marshalTemplate(root, c.Format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		if dest, err = configpaths.DefaultConfigPath(c.Format); err != nil {
			return err
		}
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func marshalTemplate(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json", "":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// templateOf maps every flag of a kong command struct to its default.
func templateOf(t reflect.Type) map[string]any {
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			sub := templateOf(f.Type)
			if name := strings.TrimSuffix(f.Tag.Get("prefix"), "."); name != "" {
				out[name] = sub
				continue
			}
			for k, v := range sub {
				out[k] = v
			}
			continue
		}
		key := f.Tag.Get("name")
		if key == "" {
			key = snakeCase(f.Name)
		}
		out[key] = defaultValue(f.Type, f.Tag.Get("default"))
	}
	return out
}

func defaultValue(t reflect.Type, def string) any {
	if t == reflect.TypeOf(time.Duration(0)) {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Slice:
		if def == "" {
			return []string{}
		}
		return strings.Split(def, ",")
	default:
		return def
	}
}

// snakeCase turns a Go field name into snake case, keeping acronyms such
// as JSON together.
func snakeCase(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) {
			prevLower := i > 0 && !unicode.IsUpper(r[i-1])
			nextLower := i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) && unicode.IsUpper(r[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}
