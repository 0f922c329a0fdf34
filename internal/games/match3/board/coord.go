// Package board is the match-3 simulation core: block catalog, grid,
// seeded generation, match detection, gravity and the cascade move engine.
// It is UI-agnostic and deterministic; presentation and input layers talk to
// it through Sink notifications and Engine.SubmitMove.
package board

import "fmt"

// Coord is a cell position on the grid.
// X increases to the right, Y increases upward (row 0 is the bottom row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Chebyshev returns the king's-move distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	return max(abs(c.X-other.X), abs(c.Y-other.Y))
}

// Adjacent reports whether two coordinates share an edge.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// kingOffsets lists the eight neighbour offsets, bottom row first.
var kingOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors8 returns the in-bounds 8-connected neighbours of c on a w×h grid.
func (c Coord) Neighbors8(w, h int) []Coord {
	out := make([]Coord, 0, len(kingOffsets))
	for _, off := range kingOffsets {
		n := c.Add(off[0], off[1])
		if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h {
			out = append(out, n)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
