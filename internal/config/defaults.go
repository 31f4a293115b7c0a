package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Symbols: map[string]string{
			"@": "player",
			"o": "coin",
			"=": "horizontal_fireball",
			"|": "vertical_fireball",
			"v": "fire_rain",
		},
		Player: PlayerConfig{
			Speed:    7,
			HoldTime: 0.12,
		},
		Timing: TimingConfig{
			FinishDelay: 1,
			MaxStep:     0.05,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Render: RenderConfig{
			CellWidth: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialLevel:    0.0,
			Progression:     "level",
			SpeedMultiplier: 0.5,
		},
	}
}
