package commands

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings hold export preferences loaded from an optional yaml file.
type Settings struct {
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"`
}

func DefaultSettings() *Settings {
	return &Settings{
		OutputDir: ".",
		Format:    "csv",
	}
}

// LoadSettings reads settings from path. An empty path yields the
// defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("output_dir", ".")
	v.SetDefault("format", "csv")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse export settings: %w", err)
	}
	return &settings, nil
}
