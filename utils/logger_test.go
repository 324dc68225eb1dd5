package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

func TestNewLoggerFiltersLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("NewLogger unexpected error: %v", err)
	}

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line passed a warn filter: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "level=warn") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud"); errors.Cause(err) != ErrInvalidConfig {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
