package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the simulated duration of a single tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the externally visible state of a running game.
type GameState struct {
	LevelIndex int    // Zero-based index of the level being played
	LevelCount int    // Number of levels in the campaign
	LevelName  string // Display name of the current level
	Lives      int    // Remaining attempts
	CoinsLeft  int    // Coins still to collect in the current level
	GameOver   bool   // No lives left, or the level could not be loaded
	Won        bool   // Every level of the campaign was completed
	Paused     bool
	Message    string // Reason for game over, if any
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
