// Package config holds the settings shared by every command.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/alexiusacademia/stringlift/internal/store"
	"github.com/alexiusacademia/stringlift/internal/units"
)

// Config is populated from persistent flags.
type Config struct {
	StateDir   string           // where the form state is persisted
	NoSave     bool             // do not persist the form after a run
	Digits     int              // decimals shown for lift values
	CustomUnit units.LengthUnit // unit of custom diameter entries
	Verbose    bool             // debug logging
}

// Default returns the settings used when no flag overrides them.
func Default() *Config {
	return &Config{
		StateDir:   store.DefaultDir(),
		Digits:     1,
		CustomUnit: units.Inch,
	}
}

// BindFlags registers the settings on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.StateDir, "state-dir", c.StateDir, "Directory where the last-entered form is kept")
	fs.BoolVar(&c.NoSave, "no-save", c.NoSave, "Do not remember the values entered on this run")
	fs.IntVar(&c.Digits, "digits", c.Digits, "Decimals shown for lift values")
	fs.Var(&c.CustomUnit, "custom-unit", "Unit of custom diameters (mm, in, m)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Log debug information to stderr")
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.StateDir == "" {
		return fmt.Errorf("state directory must not be empty")
	}
	if c.Digits < 0 || c.Digits > 12 {
		return fmt.Errorf("digits must be between 0 and 12, got %d", c.Digits)
	}
	return nil
}

// Logger builds the process logger. Output goes to w at info level, or
// debug level when Verbose is set.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
