// Package config loads the application configuration: embedded YAML
// defaults, an optional YAML file, then command-line overrides.
package config

import (
	_ "embed"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"life-ca/internal/core"
	"life-ca/internal/patterns"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxGridSide bounds each grid dimension.
const MaxGridSide = 4096

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application settings.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// GridConfig holds board dimensions.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // pixels per cell
}

// SimulationConfig holds stepping and seeding settings.
type SimulationConfig struct {
	TickHz  int     `yaml:"tick_hz"`
	Workers int     `yaml:"workers"`
	Pattern string  `yaml:"pattern"` // empty starts all dead
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"` // used by the random pattern
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	TargetFPS  int    `yaml:"target_fps"`
	AliveColor string `yaml:"alive_color"`
	DeadColor  string `yaml:"dead_color"`
	ShowHUD    bool   `yaml:"show_hud"`
	ShowGrid   bool   `yaml:"show_grid"`
}

// TelemetryConfig holds logging and run-output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a YAML file over the embedded defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %s", path)
	}
	return cfg, nil
}

// Parse builds a Config from command-line arguments. The -config flag names
// a YAML file; any other flag the user passes overrides the file. extra
// binds tool-specific flags onto the same FlagSet.
func Parse(name string, args []string, extra ...func(fs *flag.FlagSet)) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "YAML configuration file")
	overrides := Default()
	overrides.Bind(fs)
	for _, bind := range extra {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid arguments")
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		cfg.copyFlag(overrides, f.Name)
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "w", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "h", c.Grid.Height, "grid height in cells")
	fs.IntVar(&c.Grid.CellSize, "cell", c.Grid.CellSize, "pixels per cell")
	fs.IntVar(&c.Simulation.TickHz, "tps", c.Simulation.TickHz, "generations per second")
	fs.IntVar(&c.Simulation.Workers, "workers", c.Simulation.Workers, "row bands stepped concurrently")
	fs.StringVar(&c.Simulation.Pattern, "pattern", c.Simulation.Pattern,
		"startup pattern ("+strings.Join(patterns.Names(), ", ")+"); empty starts dead")
	fs.Int64Var(&c.Simulation.Seed, "seed", c.Simulation.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Simulation.Density, "density", c.Simulation.Density, "alive fraction for the random pattern")
	fs.IntVar(&c.Display.TargetFPS, "fps", c.Display.TargetFPS, "frame-rate cap")
	fs.BoolVar(&c.Display.ShowHUD, "hud", c.Display.ShowHUD, "show the status line")
	fs.BoolVar(&c.Display.ShowGrid, "grid", c.Display.ShowGrid, "show grid lines")
	fs.StringVar(&c.Telemetry.OutputDir, "out", c.Telemetry.OutputDir, "directory for run telemetry")
	fs.StringVar(&c.Telemetry.LogLevel, "log", c.Telemetry.LogLevel, "log level (debug, info, warn, error)")
}

func (c *Config) copyFlag(src *Config, name string) {
	switch name {
	case "w":
		c.Grid.Width = src.Grid.Width
	case "h":
		c.Grid.Height = src.Grid.Height
	case "cell":
		c.Grid.CellSize = src.Grid.CellSize
	case "tps":
		c.Simulation.TickHz = src.Simulation.TickHz
	case "workers":
		c.Simulation.Workers = src.Simulation.Workers
	case "pattern":
		c.Simulation.Pattern = src.Simulation.Pattern
	case "seed":
		c.Simulation.Seed = src.Simulation.Seed
	case "density":
		c.Simulation.Density = src.Simulation.Density
	case "fps":
		c.Display.TargetFPS = src.Display.TargetFPS
	case "hud":
		c.Display.ShowHUD = src.Display.ShowHUD
	case "grid":
		c.Display.ShowGrid = src.Display.ShowGrid
	case "out":
		c.Telemetry.OutputDir = src.Telemetry.OutputDir
	case "log":
		c.Telemetry.LogLevel = src.Telemetry.LogLevel
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return errors.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Grid.Width > MaxGridSide || c.Grid.Height > MaxGridSide:
		return errors.Errorf("grid size must be at most %dx%d, got %dx%d",
			MaxGridSide, MaxGridSide, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.Grid.CellSize)
	case c.Simulation.TickHz <= 0:
		return errors.Errorf("tick rate must be positive, got %d", c.Simulation.TickHz)
	case c.Simulation.TickHz > core.MaxTPS:
		return errors.Errorf("tick rate must be at most %d, got %d", core.MaxTPS, c.Simulation.TickHz)
	case c.Simulation.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Simulation.Workers)
	case c.Simulation.Density < 0 || c.Simulation.Density > 1:
		return errors.Errorf("density must be within [0,1], got %g", c.Simulation.Density)
	case c.Display.TargetFPS <= 0:
		return errors.Errorf("target fps must be positive, got %d", c.Display.TargetFPS)
	}
	if _, ok := patterns.Lookup(c.Simulation.Pattern); !ok {
		return errors.Errorf("unknown pattern %q", c.Simulation.Pattern)
	}
	if _, err := ParseColor(c.Display.AliveColor); err != nil {
		return errors.Wrap(err, "alive_color")
	}
	if _, err := ParseColor(c.Display.DeadColor); err != nil {
		return errors.Wrap(err, "dead_color")
	}
	if _, err := ParseLevel(c.Telemetry.LogLevel); err != nil {
		return err
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "[WriteYAML] failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "[WriteYAML] failed to write file: %s", path)
	}
	return nil
}

// ParseColor decodes a #rrggbb or #rrggbbaa string.
func ParseColor(s string) (color.RGBA, error) {
	var c color.RGBA
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		c.A = 0xff
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return c, errors.Errorf("invalid colour %q", s)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return c, errors.Errorf("invalid colour %q", s)
		}
	default:
		return c, errors.Errorf("invalid colour %q", s)
	}
	return c, nil
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, errors.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// Colors returns the parsed alive and dead colours. Call Validate first.
func (c *Config) Colors() (alive, dead color.RGBA) {
	alive, _ = ParseColor(c.Display.AliveColor)
	dead, _ = ParseColor(c.Display.DeadColor)
	return alive, dead
}
