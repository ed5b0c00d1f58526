package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by Load when no file path applies.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/minesweeper.yaml"

// Load loads the minesweeper configuration and reports where it came from.
// Search order: customPath -> ~/.minesweeper/config.yaml -> ./configs/minesweeper.yaml -> embedded default
// Every file is decoded over Default(), so omitted keys keep their defaults.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, LocalPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minesweeper", "config.yaml")
}
