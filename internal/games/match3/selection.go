package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// selection is the pending first pick of a two-pick move.
type selection struct {
	at     board.Coord
	active bool
}

func (s *selection) set(c board.Coord) {
	s.at, s.active = c, true
}

func (s *selection) clear() {
	s.active = false
}

// Selected returns the highlighted cell, if any.
func (g *Game) Selected() (board.Coord, bool) {
	return g.selection.at, g.selection.active
}

// Select picks the cell at c:
//   - with nothing highlighted, an occupied cell becomes highlighted;
//   - picking the highlighted cell again clears it;
//   - an edge-adjacent pick submits the move;
//   - any other occupied pick moves the highlight there.
//
// The returned outcome is only meaningful when a move was submitted.
func (g *Game) Select(c board.Coord) (board.MoveOutcome, error) {
	grid := g.engine.Grid()
	if grid == nil {
		return board.MoveOutcome{}, board.ErrNoBoard
	}
	occupant, err := grid.Occupant(c)
	if err != nil {
		return board.MoveOutcome{}, err
	}

	if !g.selection.active {
		if occupant != nil {
			g.selection.set(c)
		}
		return board.MoveOutcome{}, nil
	}

	first := g.selection.at
	switch {
	case first == c:
		g.selection.clear()
		return board.MoveOutcome{}, nil
	case first.Adjacent(c):
		g.selection.clear()
		g.logger.Debug("move", "from", first, "to", c)
		return g.submit(first, c)
	case occupant != nil:
		g.selection.set(c)
	}
	return board.MoveOutcome{}, nil
}
