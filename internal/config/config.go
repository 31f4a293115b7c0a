// Package config provides YAML-based configuration loading and difficulty
// management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	// Symbols maps single-character plan symbols to registered actor kinds.
	Symbols    map[string]string `yaml:"symbols"`
	Player     PlayerConfig      `yaml:"player"`
	Timing     TimingConfig      `yaml:"timing"`
	Gameplay   GameplayConfig    `yaml:"gameplay"`
	Render     RenderConfig      `yaml:"render"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlayerConfig defines how the player is moved by input.
type PlayerConfig struct {
	Speed    float64 `yaml:"speed"`     // Tiles per second while a direction is held
	HoldTime float64 `yaml:"hold_time"` // Seconds a key press keeps the player moving
}

// TimingConfig defines simulation timing.
type TimingConfig struct {
	FinishDelay float64 `yaml:"finish_delay"` // Seconds shown after a level is won or lost
	MaxStep     float64 `yaml:"max_step"`     // Longest single simulation sub-step
}

// GameplayConfig defines campaign rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// RenderConfig defines how tiles map to terminal cells.
type RenderConfig struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per tile
}

// DifficultyConfig defines the difficulty progression system.
// Difficulty scales simulated time: at higher levels hazards move faster.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"`    // 0.0 = easy, 1.0 = hard
	Progression     string  `yaml:"progression"`      // "level" or "none"
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the time scale at max difficulty
}

// Validate checks that the configuration can drive a game.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if len(c.Symbols) == 0 {
		errs = append(errs, errors.New("symbols: at least one symbol is required"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed: must be positive, got %v", c.Player.Speed))
	}
	if c.Player.HoldTime < 0 {
		errs = append(errs, fmt.Errorf("player.hold_time: must not be negative, got %v", c.Player.HoldTime))
	}
	if c.Timing.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("timing.max_step: must be positive, got %v", c.Timing.MaxStep))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives: must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("render.cell_width: must be within 1..4, got %d", c.Render.CellWidth))
	}
	switch c.Difficulty.Progression {
	case "", "level", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression: unknown type %q", c.Difficulty.Progression))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
