package config

import "math"

// DifficultyManager calculates the simulation time scale from campaign progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression != "none"
}

// Level returns the difficulty (0.0 to 1.0) for the level at index out of count.
// The first level plays at the initial difficulty, the last at 1.0.
func (d *DifficultyManager) Level(index, count int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	if count > 1 {
		progress = float64(index) / float64(count-1)
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TimeScale returns the multiplier applied to elapsed time for a level.
// With difficulty disabled the game runs in real time.
func (d *DifficultyManager) TimeScale(index, count int) float64 {
	if !d.cfg.Enabled {
		return 1.0
	}
	return 1.0 + d.Level(index, count)*d.cfg.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
