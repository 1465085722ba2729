package utils

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/display"
)

const (
	defaultHeight      = 100
	defaultRandomRatio = 0.15
	defaultInterval    = 20 * time.Millisecond
	defaultHistory     = 5
)

// Config holds the configuration for the game
type Config struct {
	Width              int           `json:"width"`
	Height             int           `json:"height"`
	CellSize           int           `json:"cell_size"`
	RandomRatio        float64       `json:"random_ratio"`
	GenerationInterval time.Duration `json:"generation_interval"`
	MaxGenerations     int           `json:"max_generations"`
	Seed               int64         `json:"seed"`
	UseMemoryPool      bool          `json:"use_memory_pool"`
	UseBoundedGrid     bool          `json:"use_bounded_grid"`
	History            int           `json:"history"`
	Pattern            string        `json:"pattern"`
	Plain              bool          `json:"plain"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:             defaultHeight,
		RandomRatio:        defaultRandomRatio,
		GenerationInterval: defaultInterval,
		UseMemoryPool:      true,
		History:            defaultHistory,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 derives 3:2 from height)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "window pixels per cell (0 derives from height)")
	fs.Float64Var(&c.RandomRatio, "ratio", c.RandomRatio, "fraction of cells toggled at start")
	fs.DurationVar(&c.GenerationInterval, "interval", c.GenerationInterval, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses the clock)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle generation buffers")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "only evolve the bounding box of the live cells")
	fs.IntVar(&c.History, "history", c.History, "generations remembered for stagnation checks (0 disables them)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern stamped at the center: glider, blinker or none")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print X/O text instead of drawing a screen")
}

// Resolve fills the derived fields: a 3:2 width and a cell size inverse to the height
func (c *Config) Resolve() {
	width, cellSize := display.DefaultDimensions(c.Height)
	if c.Width == 0 {
		c.Width = width
	}
	if c.CellSize == 0 {
		c.CellSize = cellSize
	}
}

// Validate checks the resolved configuration
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.RandomRatio < 0 {
		return errors.Errorf("[Validate] random ratio must not be negative, got %v", c.RandomRatio)
	}
	if c.GenerationInterval <= 0 {
		return errors.Errorf("[Validate] generation interval must be positive, got %v", c.GenerationInterval)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.History < 0 {
		return errors.Errorf("[Validate] history must not be negative, got %d", c.History)
	}
	return nil
}

// ParseConfig builds the configuration from a JSON file named by -config (if present)
// with command-line flags layered on top. A missing defaultFile falls back to
// defaults unless -config named it explicitly.
func ParseConfig(name string, args []string, defaultFile string) (Config, error) {
	path := defaultFile
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	probe.StringVar(&path, "config", path, "")
	probeCfg := DefaultConfig()
	probeCfg.Bind(probe)
	// flag errors are reported by the second pass
	_ = probe.Parse(args)

	explicit := false
	probe.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	config, err := LoadConfig(path)
	if err != nil {
		if explicit || !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		log.Printf("using default configuration (%s not found)", path)
		config = DefaultConfig()
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", path, "JSON configuration file")
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseConfig]")
	}

	config.Resolve()
	return config, config.Validate()
}
