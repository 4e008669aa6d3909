package app

import (
	"errors"
	"flag"
	"fmt"
)

// Shell names accepted by Config.Shell.
const (
	ShellWindow   = "window"
	ShellTerminal = "term"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownShell is returned for an unrecognized -shell value.
	ErrUnknownShell = errors.New("unknown shell")
)

// Config represents the command-line parameters for the application.
type Config struct {
	Shell string

	Width     int
	Height    int
	PathWidth int
	Seed      int64

	Scale        int
	ScreenWidth  int
	ScreenHeight int

	Rate     int
	MinRate  int
	MaxRate  int
	RateStep int

	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Shell:        ShellWindow,
		Width:        100,
		Height:       50,
		PathWidth:    1,
		Scale:        5,
		ScreenWidth:  1280,
		ScreenHeight: 720,
		Rate:         30,
		MinRate:      30,
		MaxRate:      300,
		RateStep:     30,
		LogLevel:     "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Shell, "shell", c.Shell, "front end: window or term")
	fs.IntVar(&c.Width, "w", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "maze height in cells")
	fs.IntVar(&c.PathWidth, "path", c.PathWidth, "corridor width in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation (0 = time based)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.ScreenWidth, "screen-w", c.ScreenWidth, "window width")
	fs.IntVar(&c.ScreenHeight, "screen-h", c.ScreenHeight, "window height")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generation steps per second")
	fs.IntVar(&c.MinRate, "min-rate", c.MinRate, "lowest selectable rate")
	fs.IntVar(&c.MaxRate, "max-rate", c.MaxRate, "highest selectable rate")
	fs.IntVar(&c.RateStep, "rate-step", c.RateStep, "rate change per key press")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Validate reports the first unusable value. Rate is clamped into
// [MinRate, MaxRate] rather than rejected.
func (c *Config) Validate() error {
	switch c.Shell {
	case ShellWindow, ShellTerminal:
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownShell, c.Shell)
	}
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"path width", c.PathWidth},
		{"scale", c.Scale},
		{"screen width", c.ScreenWidth},
		{"screen height", c.ScreenHeight},
		{"min rate", c.MinRate},
		{"rate step", c.RateStep},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.MaxRate < c.MinRate {
		return fmt.Errorf("%w: max rate %d below min rate %d", ErrInvalidConfig, c.MaxRate, c.MinRate)
	}
	c.Rate = c.clampRate(c.Rate)
	return nil
}

func (c *Config) clampRate(rate int) int {
	if rate < c.MinRate {
		return c.MinRate
	}
	if rate > c.MaxRate {
		return c.MaxRate
	}
	return rate
}
