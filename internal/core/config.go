package core

// RuntimeConfig is what the shell knows when a round starts: the terminal
// size, the loop rate and the seed for the piece sequence.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Steps per second; gravity is counted in steps
	Seed     int64 // 0 lets the shell pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the round summary the shell logs and shows on quit.
// Locked and Cleared only grow until the round restarts.
type GameState struct {
	Locked   int  // Pieces merged into the grid
	Cleared  int  // Full rows removed
	GameOver bool // No room to spawn, or the piece left the grid
	Paused   bool
}

// StepResult is what one Step reports. The shell diffs consecutive states
// to log merges, game over and restarts.
type StepResult struct {
	State GameState
}
