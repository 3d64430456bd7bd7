package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jumping-chick/internal/core"
)

// Palette is the parsed form of ColorConfig.
type Palette struct {
	Sky        core.Color
	Grass      core.Color
	Chick      core.Color
	Beak       core.Color
	Eye        core.Color
	Egg        core.Color
	EggOutline core.Color
	Score      core.Color
	GameOver   core.Color
}

// Load returns the embedded constants, validated.
func Load() (ChickConfig, error) {
	return Parse(defaultChickYAML)
}


// Parse decodes and validates a YAML document. Keys missing from data keep
// their DefaultChickConfig value.
func Parse(data []byte) (ChickConfig, error) {
	cfg := DefaultChickConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the constants describe a playable game.
// All problems are reported together.
func (c ChickConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.TickRate > 0, "tick_rate must be positive, got %d", c.Screen.TickRate)
	check(c.Ground.Level > 0 && c.Ground.Level < c.Screen.Height, "ground level %d must be inside the screen", c.Ground.Level)
	check(c.Ground.Height > 0, "ground height must be positive, got %d", c.Ground.Height)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpStrength < 0, "jump_strength must be negative (upward), got %v", c.Physics.JumpStrength)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Height < c.Ground.Level, "player height %d does not fit above the ground", c.Player.Height)
	check(c.Eggs.Width > 0 && c.Eggs.Height > 0, "egg size must be positive, got %dx%d", c.Eggs.Width, c.Eggs.Height)
	check(c.Eggs.Speed > 0, "egg speed must be positive, got %d", c.Eggs.Speed)
	check(c.Spawn.PeriodMS > 0, "spawn period must be positive, got %dms", c.Spawn.PeriodMS)
	check(c.Fonts.ScoreSize > 0 && c.Fonts.GameOverSize > 0, "font sizes must be positive")

	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid constants: %w", errors.Join(errs...))
	}
	return nil
}

// Palette parses every configured color.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"sky", c.Sky, &p.Sky},
		{"grass", c.Grass, &p.Grass},
		{"chick", c.Chick, &p.Chick},
		{"beak", c.Beak, &p.Beak},
		{"eye", c.Eye, &p.Eye},
		{"egg", c.Egg, &p.Egg},
		{"egg_outline", c.EggOutline, &p.EggOutline},
		{"score", c.Score, &p.Score},
		{"game_over", c.GameOver, &p.GameOver},
	}

	for _, f := range fields {
		col, err := parseHex(f.hex)
		if err != nil {
			return p, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// parseHex converts "#rrggbb" into a core.Color.
func parseHex(s string) (core.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Color{}, fmt.Errorf("cannot parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}
