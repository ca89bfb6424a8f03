package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads Block Dodge configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// The first file that exists wins; an invalid file is an error, not skipped.
// Files may be partial; missing keys keep their default values.
// The result is validated before it is returned.
func Load(customPath string) (DodgeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DodgeConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory, then local configs directory.
	// Missing files are skipped; a file that exists must be valid.
	candidates := []struct {
		path   string
		source string
	}{
		{userConfigPath("dodge.yaml"), SourceUser},
		{filepath.Join("configs", "dodge.yaml"), SourceLocal},
	}
	for _, c := range candidates {
		if c.path == "" {
			continue
		}
		cfg, found, err := loadFile(c.path)
		if err != nil {
			return DodgeConfig{}, "", err
		}
		if found {
			return cfg, c.source, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultDodgeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// loadFile reads and parses one search-path file.
// A missing file is not an error; found reports whether it existed.
func loadFile(path string) (cfg DodgeConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DodgeConfig{}, false, nil
	}
	if err != nil {
		return DodgeConfig{}, true, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return DodgeConfig{}, true, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run with.
// All problems are reported together.
func (c DodgeConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive number, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("powerups.width", c.PowerUps.Width)
	positive("powerups.height", c.PowerUps.Height)
	positive("difficulty.base_rate", c.Difficulty.BaseRate)
	probability("obstacles.spawn_chance", c.Obstacles.SpawnChance)
	probability("powerups.spawn_chance", c.PowerUps.SpawnChance)

	if c.PowerUps.Duration <= 0 {
		errs = append(errs, fmt.Errorf("powerups.duration must be positive, got %d", c.PowerUps.Duration))
	}
	if c.Difficulty.Every <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.every must be positive, got %d", c.Difficulty.Every))
	}
	if math.IsNaN(c.Difficulty.Increment) || math.IsInf(c.Difficulty.Increment, 0) || c.Difficulty.Increment < 0 {
		errs = append(errs, fmt.Errorf("difficulty.increment must be a non-negative number, got %v", c.Difficulty.Increment))
	}

	if c.Player.Width > c.Field.Width || c.Obstacles.Width > c.Field.Width || c.PowerUps.Width > c.Field.Width {
		errs = append(errs, errors.New("entities must fit inside the field width"))
	}
	if c.Player.StartX < 0 || c.Player.StartX+c.Player.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("player.start_x must keep the player inside the field, got %v", c.Player.StartX))
	}
	if c.Player.StartY < 0 || c.Player.StartY+c.Player.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("player.start_y must keep the player inside the field, got %v", c.Player.StartY))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
