package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	InitialPoints int           `json:"initial_points"`
	Iterations    int           `json:"iterations"`
	Verbose       bool          `json:"verbose"`
	Neighborhood  string        `json:"neighborhood"`
	Seed          int64         `json:"seed"`
	UseParallel   bool          `json:"use_parallel"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	FrameRate     time.Duration `json:"frame_rate"`
	ClearScreen   bool          `json:"clear_screen"`
	LogLevel      string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         20,
		Height:        20,
		InitialPoints: 80,
		Iterations:    10,
		Neighborhood:  "moore",
		UseMemoryPool: true,
		LogLevel:      "info",
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

// Validate rejects settings that would fail before the first generation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.InitialPoints < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] initial points must not be negative, got %d", c.InitialPoints)
	case c.InitialPoints > c.Width*c.Height:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %d initial points do not fit a %dx%d board",
			c.InitialPoints, c.Width, c.Height)
	case c.Iterations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] iterations must not be negative, got %d", c.Iterations)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	return nil
}
