package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Config represents the command-line parameters for the application. Every
// field can also be set from a LIFE_* environment variable, which takes
// precedence over the flag defaults but not over explicit flags.
type Config struct {
	Width    int               `env:"LIFE_WIDTH"`
	Height   int               `env:"LIFE_HEIGHT"`
	Cell     int               `env:"LIFE_CELL"`
	TPS      int               `env:"LIFE_TPS"`
	Seed     int64             `env:"LIFE_SEED"`
	Boundary core.BoundaryMode `env:"LIFE_BOUNDARY"`
	Pattern  string            `env:"LIFE_PATTERN"`
	Workers  int               `env:"LIFE_WORKERS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    120,
		Height:   80,
		Cell:     10,
		TPS:      core.DefaultTPS,
		Seed:     42,
		Boundary: core.DefaultBoundary,
		Workers:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize action")
	fs.TextVar(&c.Boundary, "boundary", c.Boundary, "edge policy: clamped or wrapped")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "RLE file or preset name to load at startup")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (1 = serial)")
}

// Load applies environment overrides, then parses args into fs, then
// validates the result.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "[Load] failed to parse environment")
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Load] failed to parse flags")
	}
	return c.Validate()
}

// Validate rejects dimensions and rates the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.Cell < 1:
		return fmt.Errorf("cell size %d must be positive", c.Cell)
	case c.TPS < 1:
		return fmt.Errorf("tps %d must be at least 1", c.TPS)
	case c.Workers < 1:
		return fmt.Errorf("workers %d must be at least 1", c.Workers)
	}
	return nil
}
