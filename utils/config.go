package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DefaultBoardPath is the bundled pattern loaded when no board is given
const DefaultBoardPath = "boards/glider.json"

// Config holds the configuration for the game
type Config struct {
	FrameRate      time.Duration `json:"frame_rate"`
	BoardPath      string        `json:"board_json"`
	CreateBoard    bool          `json:"create_board"`
	MaxGenerations int           `json:"max_generations"`
	ShowStatus     bool          `json:"show_status"`
	Debug          bool          `json:"debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:      100 * time.Millisecond,
		BoardPath:      DefaultBoardPath,
		CreateBoard:    false,
		MaxGenerations: 0, // run until interrupted
		ShowStatus:     false,
		Debug:          false,
	}
}

// LoadConfig loads configuration from JSON file. The result is not validated,
// callers apply their overrides first and then call Validate.
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

// Validate checks the values that would otherwise stall or break the game loop
func (c Config) Validate() error {
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.BoardPath == "" && !c.CreateBoard {
		return errors.New("board_json is required unless create_board is set")
	}
	return nil
}
