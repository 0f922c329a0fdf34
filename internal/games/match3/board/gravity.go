package board

import "time"

// CollapseVertical lets blocks fall into the gaps below them.
// Each column is scanned from row 0 upward while tracking the lowest gap;
// a block found above a gap drops into it and the scan resumes just above
// the filled slot. Afterwards every column is a contiguous stack from row 0.
// Returns the number of blocks moved.
func CollapseVertical(g *Grid, sink Sink, unit time.Duration) int {
	if sink == nil {
		sink = Discard
	}
	moved := 0

	for x := range g.W {
		gapY := 0
		gap := false
		for y := 0; y < g.H; y++ {
			if g.at(x, y) == nil {
				if !gap {
					gapY, gap = y, true
				}
				continue
			}
			if !gap {
				continue
			}

			from, to := C(x, y), C(x, gapY)
			g.shift(from, to)
			sink.Emit(BlockMoved{From: from, To: to, Hint: moveHint(unit, from, to)})
			moved++

			// The cell right above the filled slot is the next gap candidate.
			y = gapY
			gap = false
		}
	}

	return moved
}

// CollapseHorizontal squeezes out fully empty columns by sliding the columns
// to their right one step left. Trailing empty columns on the right are left
// alone: compaction stops at the rightmost occupied column, and the bound
// shrinks by one with every shift. Returns the number of blocks moved.
func CollapseHorizontal(g *Grid, sink Sink, unit time.Duration) int {
	if sink == nil {
		sink = Discard
	}

	bound := 0
	for x := g.W - 1; x >= 0; x-- {
		if !g.ColumnEmpty(x) {
			bound = x + 1
			break
		}
	}

	moved := 0
	for x := 0; x < bound; x++ {
		for x < bound && g.ColumnEmpty(x) {
			for sx := x; sx+1 < bound; sx++ {
				for y := range g.H {
					from, to := C(sx+1, y), C(sx, y)
					if g.at(from.X, from.Y) == nil {
						continue
					}
					g.shift(from, to)
					sink.Emit(BlockMoved{From: from, To: to, Hint: moveHint(unit, from, to)})
					moved++
				}
			}
			bound--
		}
	}

	return moved
}

// shift moves an occupant without bounds checks. Callers guarantee both
// coordinates are in range and distinct.
func (g *Grid) shift(from, to Coord) {
	i, j := g.index(from), g.index(to)
	b := g.cells[i].occupant
	g.cells[i].occupant = nil
	g.cells[j].occupant = b
	if b != nil {
		b.at = to
	}
}
