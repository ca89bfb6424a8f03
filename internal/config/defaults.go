package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// Default returns the hardcoded Block Dodge configuration.
// It matches the embedded defaults/dodge.yaml.
func Default() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			StartX: 240,
			StartY: 400,
			Width:  20,
			Height: 20,
			Speed:  5,
		},
		Obstacles: ObstacleConfig{
			Width:       50,
			Height:      20,
			SpawnChance: 0.02,
		},
		PowerUps: PowerUpConfig{
			Width:       20,
			Height:      20,
			SpawnChance: 0.01,
			Duration:    200,
		},
		Difficulty: DifficultyConfig{
			BaseRate:  2.0,
			Increment: 0.5,
			Every:     500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
