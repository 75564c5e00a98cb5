package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Size             int           `json:"size"`
	Pattern          string        `json:"pattern"`
	OriginRow        int           `json:"origin_row"`
	OriginCol        int           `json:"origin_col"`
	FrameRate        time.Duration `json:"frame_rate"`
	MaxGenerations   int           `json:"max_generations"`
	Glyph            string        `json:"glyph"`
	Color            bool          `json:"color"`
	ClearScreen      bool          `json:"clear_screen"`
	StopWhenStagnant bool          `json:"stop_when_stagnant"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           30,
		Pattern:        "glider",
		FrameRate:      150 * time.Millisecond,
		MaxGenerations: 0, // run until interrupted
		Glyph:          "x",
	}
}

// LoadConfig loads configuration from JSON file
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

// Validate checks that the config can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Pattern == "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] pattern must be set")
	case len([]rune(c.Glyph)) != 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] glyph must be a single character, got %q", c.Glyph)
	}
	return nil
}

// GlyphRune returns the configured alive glyph
func (c Config) GlyphRune() rune {
	for _, r := range c.Glyph {
		return r
	}
	return 'x'
}
