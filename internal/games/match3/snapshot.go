package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Moves    int
	Score    int
	Board    string // Grid rendering, top row first
	Cursor   board.Coord
	Selected *board.Coord
	Busy     bool
	State    board.State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Seed:   g.engine.Seed(),
		Moves:  g.engine.Moves(),
		Score:  g.score,
		Cursor: g.cursor,
		Busy:   g.busyTicks > 0,
		State:  g.engine.State(),
	}
	if grid := g.engine.Grid(); grid != nil {
		s.Board = grid.String()
	}
	if c, ok := g.Selected(); ok {
		s.Selected = &c
	}
	return s
}
