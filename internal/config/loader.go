package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.skyrush/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	var cfg RunnerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyrush", "configs", filename)
}

// sanitize clamps malformed values instead of rejecting the config.
func sanitize(cfg RunnerConfig) RunnerConfig {
	if cfg.World.LaneCount < 1 {
		cfg.World.LaneCount = 1
	}
	if cfg.World.LaneCount%2 == 0 {
		cfg.World.LaneCount++ // Lanes index around a center lane
	}
	if cfg.World.LaneWidth <= 0 {
		cfg.World.LaneWidth = 4.0
	}
	if cfg.World.MaxDelta <= 0 {
		cfg.World.MaxDelta = 0.1
	}
	if cfg.World.MaxLevel < 1 {
		cfg.World.MaxLevel = 1
	}
	if cfg.Letters.Word == "" {
		cfg.Letters.Word = "SKYRUSH"
	}
	return cfg
}
