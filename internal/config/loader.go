package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in configuration in LoadDragon's result.
const SourceEmbedded = "embedded"

// LoadDragon loads Dragon Eat Dragon configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadDragon(customPath string) (DragonConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, customPath, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("dragon.yaml"), filepath.Join("configs", "dragon.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDragonYAML)
	if err != nil {
		return DefaultDragonConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads and decodes a config file over the defaults.
func loadFile(path string) (DragonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultDragonConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals YAML on top of DefaultDragonConfig.
func decode(data []byte) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultDragonConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
