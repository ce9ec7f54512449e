package core

import "time"

// DefaultTickInterval is the simulation period when nothing overrides it.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig contains what a game needs from the platform at start.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score in this process
	Ticks    int  // Ticks simulated in the current session
	GameOver bool // Whether the session has ended
	TooSmall bool // Whether the terminal cannot fit a session
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
