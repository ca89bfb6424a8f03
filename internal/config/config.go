// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge game.
package config

// DodgeConfig contains all configuration for the Block Dodge game.
type DodgeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield size in playfield units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player block.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Horizontal distance per move command
}

// ObstacleConfig defines falling obstacles.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per tick
}

// PowerUpConfig defines collectible power-ups.
type PowerUpConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per tick
	Duration    int     `yaml:"duration"`     // Effect length in ticks
}

// DifficultyConfig defines the fall-rate step rule.
// The rate starts at BaseRate and grows by Increment each time the score
// reaches a multiple of Every.
type DifficultyConfig struct {
	BaseRate  float64 `yaml:"base_rate"`
	Increment float64 `yaml:"increment"`
	Every     int     `yaml:"every"`
}
