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

// LoadWorms loads the worms configuration. Files are decoded over the
// defaults, so a file only needs the keys it changes.
// Search order: customPath -> ~/.worms/configs/worms.yaml -> ./configs/worms.yaml -> embedded default
func LoadWorms(customPath string) (WormsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WormsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseWorms(data)
		if err != nil {
			return WormsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("worms.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseWorms(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/worms.yaml"); err == nil {
		if cfg, err := parseWorms(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseWorms(defaultWormsYAML)
	if err != nil {
		return DefaultWormsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseWorms(data []byte) (WormsConfig, error) {
	cfg := DefaultWormsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worms", "configs", filename)
}

// Validate reports the first setting the simulation cannot run with.
func (c WormsConfig) Validate() error {
	t := c.Terrain
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: terrain size %dx%d must be positive", ErrInvalid, t.Width, t.Height)
	case len(t.Octaves) == 0:
		return fmt.Errorf("%w: terrain needs at least one octave", ErrInvalid)
	case t.JitterChance < 0 || t.JitterChance > 1:
		return fmt.Errorf("%w: jitter_chance %.2f outside [0, 1]", ErrInvalid, t.JitterChance)
	case t.Smoothing.Iterations < 0:
		return fmt.Errorf("%w: smoothing iterations %d is negative", ErrInvalid, t.Smoothing.Iterations)
	case t.Smoothing.Keep < 0 || t.Smoothing.Keep > 1:
		return fmt.Errorf("%w: smoothing keep %.2f outside [0, 1]", ErrInvalid, t.Smoothing.Keep)
	case c.Collision.BlockSize <= 0:
		return fmt.Errorf("%w: collision block_size %d must be positive", ErrInvalid, c.Collision.BlockSize)
	case c.Collision.FillRatio < 0 || c.Collision.FillRatio >= 1:
		return fmt.Errorf("%w: collision fill_ratio %.2f outside [0, 1)", ErrInvalid, c.Collision.FillRatio)
	case c.Blast.Radius <= 0:
		return fmt.Errorf("%w: blast radius %d must be positive", ErrInvalid, c.Blast.Radius)
	case c.Blast.SplashFactor <= 0:
		return fmt.Errorf("%w: blast splash_factor must be positive", ErrInvalid)
	case c.Locomotion.Speed <= 0:
		return fmt.Errorf("%w: locomotion speed must be positive", ErrInvalid)
	case c.Locomotion.ClimbSlowAfter < 0 || c.Locomotion.ClimbCrawlAfter < 0:
		return fmt.Errorf("%w: climb delays must not be negative", ErrInvalid)
	case c.Physics.WormWidth <= 0 || c.Physics.WormHeight <= 0:
		return fmt.Errorf("%w: worm size must be positive", ErrInvalid)
	case c.Weapon.AimMin >= c.Weapon.AimMax || c.Weapon.AimStep <= 0:
		return fmt.Errorf("%w: aim range [%.0f, %.0f] step %.0f", ErrInvalid, c.Weapon.AimMin, c.Weapon.AimMax, c.Weapon.AimStep)
	case c.Weapon.Fuse <= 0:
		return fmt.Errorf("%w: weapon fuse must be positive", ErrInvalid)
	case c.Match.WormsPerTeam <= 0 || c.Match.Health <= 0:
		return fmt.Errorf("%w: match needs worms with health", ErrInvalid)
	case c.Match.TurnTime <= 0:
		return fmt.Errorf("%w: turn_time must be positive", ErrInvalid)
	case 2*c.Match.SpawnMargin >= t.Width:
		return fmt.Errorf("%w: spawn_margin %d leaves no room on a %d wide field", ErrInvalid, c.Match.SpawnMargin, t.Width)
	}
	return nil
}
