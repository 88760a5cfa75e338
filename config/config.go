package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Settings control the command-line runner. Flags override file values.
type Settings struct {
	LogLevel string `yaml:"log_level"`
	Games    int    `yaml:"games"`
	Seed     uint64 `yaml:"seed"`
	MaxMoves int    `yaml:"max_moves"`
	Script   string `yaml:"script"`
}

func Default() Settings {
	return Settings{
		LogLevel: "info",
		Games:    10,
		MaxMoves: 1000,
	}
}

// Load reads settings from path, or from the XDG config location when path
// is empty. No config file at all just yields the defaults.
func Load(path string) (Settings, error) {
	settings := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile("fanorona/config.yaml")
		if err != nil {
			return settings, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse config %s: %w", path, err)
	}
	return settings, nil
}
