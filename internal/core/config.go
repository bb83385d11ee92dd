package core

import "time"

// RuntimeConfig is what the platform tells a game when a run starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // simulation ticks per second
	Seed     int64 // 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24, 60 Hz config with no fixed seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Normalized fills unusable fields from DefaultConfig. The seed is kept as is.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// Delta is the simulated time covered by one tick.
func (c RuntimeConfig) Delta() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// RunSummary describes a finished or abandoned run for persistence.
type RunSummary struct {
	Score         int
	Kills         int
	Targets       int
	FuelCollected int
	Frames        int
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Cues lists the sound cue names emitted during the tick, in order.
	Cues []string
}
