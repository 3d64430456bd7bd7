// Package config provides the YAML-backed constants for Jumping Chick.
// The values ship embedded in the binary; there is no user-facing override.
package config

import "time"

// ChickConfig contains every tunable of the game.
type ChickConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Ground  GroundConfig  `yaml:"ground"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Eggs    EggConfig     `yaml:"eggs"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Colors  ColorConfig   `yaml:"colors"`
	Fonts   FontConfig    `yaml:"fonts"`
}

// ScreenConfig defines the logical frame and loop rate.
type ScreenConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	TickRate int    `yaml:"tick_rate"` // Loop iterations per second
}

// GroundConfig defines the ground band. Level is the y of its top edge.
type GroundConfig struct {
	Level  int `yaml:"level"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick physics parameters.
// Screen space grows downward, so gravity is positive and jumps negative.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
}

// PlayerConfig defines the chick's hitbox and fixed x.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EggConfig defines the obstacle hitbox and scroll speed (units per tick).
type EggConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// SpawnConfig defines the egg spawn cadence.
type SpawnConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// ColorConfig holds "#rrggbb" strings; see Palette.
type ColorConfig struct {
	Sky        string `yaml:"sky"`
	Grass      string `yaml:"grass"`
	Chick      string `yaml:"chick"`
	Beak       string `yaml:"beak"`
	Eye        string `yaml:"eye"`
	Egg        string `yaml:"egg"`
	EggOutline string `yaml:"egg_outline"`
	Score      string `yaml:"score"`
	GameOver   string `yaml:"game_over"`
}

// FontConfig holds text sizes in logical units.
type FontConfig struct {
	ScoreSize    float64 `yaml:"score_size"`
	GameOverSize float64 `yaml:"game_over_size"`
}

// SpawnPeriod returns the spawn cadence as a duration.
func (c ChickConfig) SpawnPeriod() time.Duration {
	return time.Duration(c.Spawn.PeriodMS) * time.Millisecond
}
