package blockfall

// Phase is the coarse state reported in a Snapshot.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseFaulted  Phase = "faulted"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Mode    string
	Phase   Phase
	Grid    [][]Cell
	Piece   Piece
	Active  bool
	Locked  int
	Cleared int
}

// Snapshot returns the current game snapshot. Before the first Reset only
// Mode is set.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Mode: string(g.mode)}
	}
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.fault:
		phase = PhaseFaulted
	case g.board.IsGameOver():
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	piece, active := g.board.Piece()
	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Phase:   phase,
		Grid:    g.board.Grid().Rows(),
		Piece:   piece,
		Active:  active,
		Locked:  g.board.Locked(),
		Cleared: g.board.Cleared(),
	}
}
