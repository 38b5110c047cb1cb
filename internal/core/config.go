package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(c.rate())
}

// DeltaSeconds returns the tick length in seconds, for velocity integration.
func (c RuntimeConfig) DeltaSeconds() float64 {
	return 1 / float64(c.rate())
}

// TicksFor converts a duration to a whole number of ticks, rounding up so a
// non-zero delay never fires on the tick it was scheduled.
func (c RuntimeConfig) TicksFor(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int64(d) * int64(c.rate())
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}

// DurationOf converts a tick count back to simulated time.
func (c RuntimeConfig) DurationOf(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(c.rate())
}

func (c RuntimeConfig) rate() int {
	if c.TickRate <= 0 {
		return 60
	}
	return c.TickRate
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
}
