package core

import "time"

// DefaultTickRate is the nominal simulation rate: one tick every 10ms.
const DefaultTickRate = 100

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 100)
	Seed       int64  // RNG seed for deterministic gameplay
	PlayerName string // Name shown in the HUD and sent to the leaderboard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   DefaultTickRate,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Player",
	}
}

// TickInterval returns the wall-clock duration of one simulation tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Ended is true only on the tick where the game transitioned to game over.
	Ended bool
}
