package utils

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"frame_rate": 250000000, "max_generations": 12, "debug": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.FrameRate != 250*time.Millisecond {
		t.Errorf("FrameRate = %v, want 250ms", config.FrameRate)
	}
	if config.MaxGenerations != 12 || !config.Debug {
		t.Errorf("unexpected config %+v", config)
	}
	if config.BoardPath != DefaultBoardPath {
		t.Errorf("BoardPath = %q, want default %q", config.BoardPath, DefaultBoardPath)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		missing bool
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			missing: true,
		},
		{
			name: "bad json",
			path: func(t *testing.T) string { return writeFile(t, "config.json", `{"frame_rate":`) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("LoadConfig() succeeded, want error")
			}
			if got := os.IsNotExist(errors.Cause(err)); got != tt.missing {
				t.Errorf("not-exist cause = %v, want %v (err: %v)", got, tt.missing, err)
			}
			if config.FrameRate == 0 {
				t.Error("LoadConfig() on error should still return usable defaults")
			}
		})
	}
}

func TestLoadConfigLeavesValidationToCaller(t *testing.T) {
	path := writeFile(t, "config.json", `{"board_json": ""}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if err = config.Validate(); err == nil {
		t.Error("Validate() accepted a config with no board source")
	}

	config.CreateBoard = true
	if err = config.Validate(); err != nil {
		t.Errorf("Validate() after enabling create_board: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"negative frame rate", func(c *Config) { c.FrameRate = -1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"no board source", func(c *Config) { c.BoardPath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); err == nil {
				t.Errorf("Validate() accepted %+v", config)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}

	config := DefaultConfig()
	config.BoardPath = ""
	config.CreateBoard = true
	if err := config.Validate(); err != nil {
		t.Errorf("interactive config without a board path: %v", err)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 100*time.Millisecond)
	if !almostEqual(s.AveragePopulation, 10) {
		t.Errorf("AveragePopulation = %v, want 10", s.AveragePopulation)
	}
	if !almostEqual(s.GenerationsPerSecond, 10) {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 0)
	if !almostEqual(s.AveragePopulation, 11) {
		t.Errorf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.Population != 20 {
		t.Errorf("unexpected stats %+v", s)
	}

	s.Update(1234, 20, 0)
	if summary := s.Summary(); !strings.HasPrefix(summary, "1,234 generations") {
		t.Errorf("Summary() = %q", summary)
	}
}

func TestLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(&buf, false)
	quiet.Debugf("cell [%d, %d] born", 1, 2)
	if buf.Len() != 0 {
		t.Errorf("debug line written with debug disabled: %q", buf.String())
	}

	quiet.Warnf("careful")
	if !strings.Contains(buf.String(), "[GOL-WARN] ") || !strings.Contains(buf.String(), "careful") {
		t.Errorf("warn line missing: %q", buf.String())
	}

	buf.Reset()
	loud := NewLogger(&buf, true)
	loud.Debugf("cell [%d, %d] born", 1, 2)
	if !strings.Contains(buf.String(), "[GOL-DEBUG] ") || !strings.Contains(buf.String(), "cell [1, 2] born") {
		t.Errorf("debug line missing: %q", buf.String())
	}
	if !loud.DebugEnabled() || quiet.DebugEnabled() {
		t.Error("DebugEnabled() does not follow the constructor flag")
	}
}
