package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TileDump holds configuration for the tiledump tool.
type TileDump struct {
	// Client data
	DataDir      string `yaml:"data_dir"`
	TileDataFile string `yaml:"tiledata_file"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Max files decoded concurrently
	Workers int `yaml:"workers"`
}

// DefaultTileDump returns TileDump config with sensible defaults.
func DefaultTileDump() TileDump {
	return TileDump{
		DataDir:      ".",
		TileDataFile: "tiledata.mul",
		LogLevel:     "info",
		Workers:      4,
	}
}

// Path returns the tiledata file location. Absolute file names ignore DataDir.
func (c TileDump) Path() string {
	if filepath.IsAbs(c.TileDataFile) {
		return c.TileDataFile
	}
	return filepath.Join(c.DataDir, c.TileDataFile)
}

// LoadTileDump loads tiledump config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTileDump(path string) (TileDump, error) {
	cfg := DefaultTileDump()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
