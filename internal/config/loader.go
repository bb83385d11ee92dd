package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFuelRun loads Fuel Run configuration.
// Search order: customPath -> ~/.fuelrun/configs/fuelrun.yaml -> ./configs/fuelrun.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped silently when unusable.
func LoadFuelRun(customPath string) (FuelRunConfig, error) {
	cfg := DefaultFuelRunConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("fuelrun.yaml"); userCfgPath != "" {
		if c, ok := decodeFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := decodeFile(filepath.Join("configs", "fuelrun.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	return ParseFuelRun(defaultFuelRunYAML)
}

// ParseFuelRun decodes YAML on top of the defaults and validates the result.
func ParseFuelRun(data []byte) (FuelRunConfig, error) {
	cfg := DefaultFuelRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFuelRunConfig(), fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultFuelRunConfig(), err
	}
	return cfg, nil
}

func decodeFile(path string) (FuelRunConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FuelRunConfig{}, false
	}
	cfg, err := ParseFuelRun(data)
	if err != nil {
		return FuelRunConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fuelrun", "configs", filename)
}

// ApplyFuelRunPreset modifies the config based on a difficulty preset.
func ApplyFuelRunPreset(cfg *FuelRunConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.StartingAmmo = 150
		cfg.Spawner.Initial = 4 * cfg.Spawner.Initial / 3
	case DifficultyHard:
		cfg.Player.StartingAmmo = 70
		cfg.Spawner.Decay = 0.85
	}
}
