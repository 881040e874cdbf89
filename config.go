// Package main provides the entry point for the clipsmith application.
package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Public types (alphabetical)

// Config holds the optional settings read from the clipsmith
// configuration file. Every field has a zero value that means
// "not configured"; command-line flags always take precedence.
type Config struct {
	// FFmpegPath overrides search-path resolution of the FFmpeg binary.
	FFmpegPath string `toml:"ffmpeg_path"`

	// OutputDir is the default directory for generated artifacts.
	OutputDir string `toml:"output_dir"`
}

// Private functions (alphabetical)

// defaultConfigPath returns the per-user location of the clipsmith
// configuration file, or an empty string when the user configuration
// directory cannot be determined.
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "clipsmith", "config.toml")
}

// loadConfig reads the TOML configuration from path. An empty path falls
// back to the per-user default location. A missing file is not an error;
// it yields an empty configuration.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}

	config := &Config{}
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	return config, nil
}
