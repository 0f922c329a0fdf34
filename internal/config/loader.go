package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the board configuration.
// Search order: customPath -> ~/.match3/configs/board.yaml ->
// ./configs/board.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (BoardConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "board.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultBoardYAML)
	if err != nil {
		return DefaultBoardConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults.
func parse(data []byte) (BoardConfig, error) {
	cfg := DefaultBoardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BoardConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
