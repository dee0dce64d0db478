// Package config loads brickstack settings from a YAML file.
//
// Every field is optional; Default supplies the values used when a field is
// absent. Command-line flags are applied on top of the loaded Config by the
// CLI before Validate is called.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output and log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the YAML document.
type Config struct {
	// Input is the brick file to read; "-" or empty means standard input.
	Input string `yaml:"input"`

	Log     Log     `yaml:"log"`
	Cascade Cascade `yaml:"cascade"`
	Output  Output  `yaml:"output"`
}

// Log configures structured logging.
type Log struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Cascade configures the parallel chain-reaction analysis.
type Cascade struct {
	// Workers bounds concurrent cascade runs; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Output configures how results are printed.
type Output struct {
	Format string `yaml:"format"` // text | json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:   "-",
		Log:     Log{Level: "info", Format: FormatText},
		Cascade: Cascade{Workers: 0},
		Output:  Output{Format: FormatText},
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields and bounds.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if !validFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want text or json)", ErrInvalidConfig, c.Output.Format)
	}
	if c.Cascade.Workers < 0 {
		return fmt.Errorf("%w: cascade.workers must not be negative (%d)", ErrInvalidConfig, c.Cascade.Workers)
	}

	return nil
}

// Logger builds a slog.Logger writing to w according to c.Log.
// Invalid levels fall back to info; call Validate first to reject them.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}

	return level, nil
}

func validFormat(s string) bool {
	return strings.EqualFold(s, FormatText) || strings.EqualFold(s, FormatJSON)
}
