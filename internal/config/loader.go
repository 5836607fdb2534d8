package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadSpiderDash loads the game configuration.
// Search order: customPath -> ~/.spiderdash/configs/spiderdash.yaml -> ./configs/spiderdash.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
func LoadSpiderDash(customPath string) (SpiderDashConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpiderDashConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SpiderDashConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("spiderdash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "spiderdash.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration.
func Default() SpiderDashConfig {
	var cfg SpiderDashConfig
	if err := yaml.Unmarshal(defaultSpiderDashYAML, &cfg); err != nil {
		return DefaultSpiderDashConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SpiderDashConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpiderDashConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SpiderDashConfig{}, err
	}
	return cfg, nil
}

// Validate checks that every value can drive a playable game.
func (c SpiderDashConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Window.TickRate)
	case c.Window.Title == "":
		return fmt.Errorf("%w: empty window title", ErrInvalid)
	case c.Assets.Dir == "":
		return fmt.Errorf("%w: empty assets dir", ErrInvalid)
	case c.Controls.Jump == "":
		return fmt.Errorf("%w: no jump key", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spiderdash", "configs", filename)
}
