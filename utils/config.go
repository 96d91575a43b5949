package utils

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Height     int     `json:"height"      env:"GOL_HEIGHT"`
	Width      int     `json:"width"       env:"GOL_WIDTH"`
	Density    float64 `json:"density"     env:"GOL_DENSITY"`
	Seed       int64   `json:"seed"        env:"GOL_SEED"`
	Color      bool    `json:"color"       env:"GOL_COLOR"`
	ShowStats  bool    `json:"show_stats"  env:"GOL_SHOW_STATS"`
	ShowCounts bool    `json:"show_counts" env:"GOL_SHOW_COUNTS"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:     20 + 2, // interior rows plus the border
		Width:      40 + 2,
		Density:    0.6,
		Seed:       0, // draw a fresh seed on every run
		Color:      false,
		ShowStats:  true,
		ShowCounts: false,
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

// ApplyEnv overrides config fields whose GOL_* variable is set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}
