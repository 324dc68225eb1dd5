package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 30, "height": 15, "initial_points": 40, "iterations": 7,
		"neighborhood": "von-neumann", "seed": 12, "frame_rate": 1000000}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig unexpected error: %v", err)
	}

	if config.Width != 30 || config.Height != 15 {
		t.Errorf("size = %dx%d, want 30x15", config.Width, config.Height)
	}
	if config.InitialPoints != 40 || config.Iterations != 7 || config.Seed != 12 {
		t.Errorf("got %+v", config)
	}
	if config.Neighborhood != "von-neumann" {
		t.Errorf("Neighborhood = %q", config.Neighborhood)
	}
	if config.FrameRate != time.Millisecond {
		t.Errorf("FrameRate = %s, want 1ms", config.FrameRate)
	}
	// unset keys keep their defaults
	if !config.UseMemoryPool || config.LogLevel != "info" {
		t.Errorf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("missing file err = %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"negative points", func(c *Config) { c.InitialPoints = -1 }},
		{"points over capacity", func(c *Config) { c.Width, c.Height, c.InitialPoints = 3, 3, 10 }},
		{"negative iterations", func(c *Config) { c.Iterations = -1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	full := DefaultConfig()
	full.Width, full.Height, full.InitialPoints = 3, 3, 9
	if err := full.Validate(); err != nil {
		t.Errorf("full board rejected: %v", err)
	}
}
