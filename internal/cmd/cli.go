// Package cmd holds the matrixkb host commands.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"matrixkb/app"
	"matrixkb/firmware/hid"
	"matrixkb/firmware/keycode"
	"matrixkb/firmware/layout"
	"matrixkb/hal"
	"matrixkb/internal/keymap"
	"matrixkb/internal/log"
	"matrixkb/kernel"
)

// CLI is the root command line.
type CLI struct {
	Version kong.VersionFlag `help:"Print the version and exit"`
	Config  string           `help:"Configuration file (json, yaml or toml)" type:"path" env:"MATRIXKB_CONFIG"`
	Log     LogConfig        `embed:"" prefix:"log."`

	Sim        Sim        `cmd:"" help:"Run the keyboard simulator window"`
	Headless   Headless   `cmd:"" help:"Run the simulated keyboard without a window"`
	Gadget     Gadget     `cmd:"" help:"Drive a keyboard board from Linux GPIO and a HID gadget"`
	Layouts    Layouts    `cmd:"" help:"List the built-in layouts"`
	ConfigInit ConfigInit `cmd:"" name:"config-init" help:"Generate a configuration template"`
}

type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"MATRIXKB_LOG_LEVEL"`
	File  string `help:"Log file path" env:"MATRIXKB_LOG_FILE"`
	JSON  bool   `help:"Log as JSON lines" env:"MATRIXKB_LOG_JSON"`
}

type Timer struct {
	ClockHz   uint32 `help:"Timer input clock in Hz" default:"16000000" env:"MATRIXKB_TIMER_CLOCK_HZ"`
	Prescaler uint32 `help:"Timer prescaler" default:"1024" env:"MATRIXKB_TIMER_PRESCALER"`
	Compare   uint32 `help:"Timer compare value; the period is prescaler*(compare+1)/clock" default:"16" env:"MATRIXKB_TIMER_COMPARE"`
}

// Firmware are the controller flags shared by every keyboard command.
type Firmware struct {
	Layout       string        `help:"Built-in layout" default:"pontus" env:"MATRIXKB_LAYOUT"`
	Keymap       string        `help:"Keymap file (yaml or toml); replaces --layout" type:"existingfile" env:"MATRIXKB_KEYMAP"`
	Policy       string        `help:"Behavior when a seventh key is pressed" enum:"evict-oldest,reject-newest" default:"evict-oldest" env:"MATRIXKB_POLICY"`
	Timer        Timer         `embed:"" prefix:"timer."`
	MatrixSettle time.Duration `help:"Settle delay between matrix control edges" default:"4us" env:"MATRIXKB_MATRIX_SETTLE"`
	LightSettle  time.Duration `help:"Settle delay between LED chain edges" default:"4us" env:"MATRIXKB_LIGHT_SETTLE"`
	Trace        bool          `help:"Log every key edge and report from the scan loop" env:"MATRIXKB_TRACE"`
	LogReports   bool          `help:"Log reports and lock changes" env:"MATRIXKB_LOG_REPORTS"`
}

// appConfig resolves the flags into a firmware configuration.
func (f *Firmware) appConfig() (app.Config, error) {
	cfg := app.DefaultConfig()
	cfg.Timer = kernel.TimerConfig{
		ClockHz:   f.Timer.ClockHz,
		Prescaler: f.Timer.Prescaler,
		Compare:   f.Timer.Compare,
	}
	if err := cfg.Timer.Validate(); err != nil {
		return cfg, err
	}

	policy, err := hid.ParsePolicy(f.Policy)
	if err != nil {
		return cfg, err
	}
	cfg.Policy = policy
	cfg.MatrixSettle = f.MatrixSettle
	cfg.LightSettle = f.LightSettle
	cfg.Trace = f.Trace
	cfg.LogReports = f.LogReports

	if f.Keymap != "" {
		km, err := keymap.Load(f.Keymap)
		if err != nil {
			return cfg, err
		}
		table, err := km.Table()
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.Keymap, err)
		}
		cfg.Layout, cfg.Table = km.Name, table
		return cfg, nil
	}

	table, ok := layout.ByName(f.Layout)
	if !ok {
		return cfg, fmt.Errorf("unknown layout %q (have %s)", f.Layout, strings.Join(layout.Names(), ", "))
	}
	cfg.Layout, cfg.Table = f.Layout, table
	return cfg, nil
}

// SimFlags configure the simulated board.
type SimFlags struct {
	Chatter int      `help:"Scans of contact chatter after every switch transition" default:"0" env:"MATRIXKB_CHATTER"`
	Locks   []string `help:"Lock indicators the host starts with (num, caps, scroll)" env:"MATRIXKB_LOCKS"`
}

func (s *SimFlags) hostConfig(cfg app.Config, logger *slog.Logger) (hal.HostConfig, error) {
	if s.Chatter < 0 {
		return hal.HostConfig{}, fmt.Errorf("chatter must not be negative: %d", s.Chatter)
	}
	locks, err := lockMask(s.Locks)
	if err != nil {
		return hal.HostConfig{}, err
	}
	return hal.HostConfig{
		Sim:    hal.SimConfig{Chatter: s.Chatter},
		Locks:  locks,
		Period: cfg.Timer.Period(),
		Layout: cfg.Table,
		Log:    log.Lines{L: logger, Level: slog.LevelInfo},
	}, nil
}

func lockMask(names []string) (uint8, error) {
	var m uint8
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "num":
			m |= keycode.LEDNumLock
		case "caps":
			m |= keycode.LEDCapsLock
		case "scroll":
			m |= keycode.LEDScrollLock
		default:
			return 0, fmt.Errorf("unknown lock %q", n)
		}
	}
	return m, nil
}

// appFactory builds an app on each HAL the runners create. The last app
// built is stored in *built.
func appFactory(cfg app.Config, built **app.App) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		a, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		if built != nil {
			*built = a
		}
		return a.Step
	}
}
