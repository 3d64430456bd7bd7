package config

import (
	_ "embed"
)

//go:embed defaults/chick.yaml
var defaultChickYAML []byte

// DefaultChickConfig returns the built-in constants.
// It mirrors defaults/chick.yaml and is used when the embedded file is unusable.
func DefaultChickConfig() ChickConfig {
	return ChickConfig{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			Title:    "Jumping Chick",
			TickRate: 60,
		},
		Ground: GroundConfig{
			Level:  500, // Screen height - 100
			Height: 100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			JumpStrength: -18,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  50,
			Height: 40,
		},
		Eggs: EggConfig{
			Width:  30,
			Height: 45,
			Speed:  7,
		},
		Spawn: SpawnConfig{
			PeriodMS: 1200,
		},
		Colors: ColorConfig{
			Sky:        "#87ceeb",
			Grass:      "#32cd32",
			Chick:      "#ffdc00",
			Beak:       "#ffa500",
			Eye:        "#000000",
			Egg:        "#ffffff",
			EggOutline: "#000000",
			Score:      "#ffffff",
			GameOver:   "#000000",
		},
		Fonts: FontConfig{
			ScoreSize:    50,
			GameOverSize: 80,
		},
	}
}
