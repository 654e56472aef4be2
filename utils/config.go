package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the playback runner
type Config struct {
	Rows                int                `json:"rows"`
	Cols                int                `json:"cols"`
	FrameRate           time.Duration      `json:"frame_rate"`
	Boundary            model.BoundaryMode `json:"boundary"`
	Fill                string             `json:"fill"`
	Seed                int64              `json:"seed"`
	Workers             int                `json:"workers"`
	UseMemoryPool       bool               `json:"use_memory_pool"`
	MaxGenerations      int                `json:"max_generations"`
	StopOnStagnation    bool               `json:"stop_on_stagnation"`
	StagnationThreshold int                `json:"stagnation_threshold"`
	PatternFile         string             `json:"pattern_file"`
	OutputFile          string             `json:"output_file"`
	PlacePattern        string             `json:"place_pattern"`
	PlaceRow            int                `json:"place_row"`
	PlaceCol            int                `json:"place_col"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                20,
		Cols:                20,
		FrameRate:           250 * time.Millisecond,
		Boundary:            model.Finite,
		Fill:                "random",
		Seed:                0, // 0 seeds from the clock
		Workers:             1,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file over the defaults
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

// Bind attaches the configuration to the provided FlagSet so flags override
// values already loaded from file.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.TextVar(&c.Boundary, "boundary", c.Boundary, "boundary mode: Finite, Reflective, Toroidal or Infinite")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: random or empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grid buffers on resize")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop when the grid settles into a cycle")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "consecutive stagnant generations before stopping")
	fs.StringVar(&c.PatternFile, "load", c.PatternFile, "saved pattern to load before playback")
	fs.StringVar(&c.OutputFile, "save", c.OutputFile, "file to save the final grid to")
	fs.StringVar(&c.PlacePattern, "place", c.PlacePattern, "built-in pattern to place before playback")
	fs.IntVar(&c.PlaceRow, "place-row", c.PlaceRow, "row of the placed pattern's top-left cell")
	fs.IntVar(&c.PlaceCol, "place-col", c.PlaceCol, "column of the placed pattern's top-left cell")
}

// FillMode maps the Fill setting onto the engine's fill strategy
func (c Config) FillMode() (model.Fill, error) {
	switch strings.ToLower(c.Fill) {
	case "random", "":
		return model.FillRandom, nil
	case "empty":
		return model.FillEmpty, nil
	}
	return model.FillRandom, errors.Wrapf(ErrInvalidConfig, "[FillMode] unknown fill %q", c.Fill)
}

// Validate rejects settings the runner cannot honor
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	}
	if c.StopOnStagnation && c.StagnationThreshold <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold must be positive, got %d", c.StagnationThreshold)
	}
	if _, err := c.FillMode(); err != nil {
		return err
	}
	if c.PlacePattern != "" {
		if _, err := model.BuiltinPattern(c.PlacePattern); err != nil {
			return errors.Wrap(err, "[Validate]")
		}
	}
	return nil
}
