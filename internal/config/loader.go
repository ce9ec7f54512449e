package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWorm loads the Gravity Worm configuration.
// Search order: customPath -> ~/.worm/configs/worm.yaml -> ./configs/worm.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadWorm(customPath string) (WormConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultWormConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseWorm(data)
		if err != nil {
			return DefaultWormConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("worm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseWorm(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "worm.yaml")); err == nil {
		if cfg, err := parseWorm(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseWorm(defaultWormYAML)
	if err != nil {
		return DefaultWormConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// parseWorm decodes YAML on top of the defaults and validates the result.
func parseWorm(data []byte) (WormConfig, error) {
	cfg := DefaultWormConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg WormConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worm", "configs", filename)
}

// ApplySpeedPreset overrides the tick period from a preset.
// An empty preset leaves the config untouched.
func ApplySpeedPreset(cfg *WormConfig, preset SpeedPreset) {
	if ms := TickMSForPreset(preset); ms > 0 {
		cfg.Timing.TickMS = ms
	}
}
