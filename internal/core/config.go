package core

// RuntimeConfig is passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Board seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TicksFor converts a duration in milliseconds to whole simulation ticks,
// rounding up so a non-zero duration always lasts at least one tick.
func (c RuntimeConfig) TicksFor(ms int64) int {
	if ms <= 0 || c.TickRate <= 0 {
		return 0
	}
	return int((ms*int64(c.TickRate) + 999) / 1000)
}

// GameState is the game status reported to the platform.
type GameState struct {
	Score     int   // Sum of cleared block values
	Moves     int   // Accepted moves on the current board
	Remaining int   // Blocks left on the board
	Seed      int64 // Seed of the current board
	Busy      bool  // A move is still playing back; input is ignored
	Cleared   bool  // The board is empty
	Stuck     bool  // No legal move is left
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Err   error // Last rejected action, if any
}
