package board

import (
	"fmt"
	"strings"
)

// Cell is a fixed grid position with an optional occupant.
type Cell struct {
	at       Coord
	occupant *Block
}

// Coord returns the cell's position. It never changes.
func (c Cell) Coord() Coord {
	return c.at
}

// Occupant returns the block in the cell, or nil.
func (c Cell) Occupant() *Block {
	return c.occupant
}

// Empty reports whether the cell has no occupant.
func (c Cell) Empty() bool {
	return c.occupant == nil
}

// Grid is the board as a rectangular array of cells.
// Cells are stored in row-major order: index = y*W + x, row 0 at the bottom.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{
		W:     w,
		H:     h,
		cells: make([]Cell, w*h),
	}
	for y := range h {
		for x := range w {
			g.cells[y*w+x].at = C(x, y)
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

func (g *Grid) check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.W, g.H)
	}
	return nil
}

// Cell returns the cell at c.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if err := g.check(c); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(c)], nil
}

// Occupant returns the block at c, or nil if the cell is empty.
func (g *Grid) Occupant(c Coord) (*Block, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	return g.cells[g.index(c)].occupant, nil
}

// SetOccupant replaces the occupant reference at c. The block's stored
// coordinate is not touched; use MoveOccupant to relocate a block.
func (g *Grid) SetOccupant(c Coord, b *Block) error {
	if err := g.check(c); err != nil {
		return err
	}
	g.cells[g.index(c)].occupant = b
	return nil
}

// MoveOccupant moves the block at from into to, clearing from and updating
// the block's coordinate. Whatever occupied to is overwritten.
func (g *Grid) MoveOccupant(from, to Coord) error {
	if err := g.check(from); err != nil {
		return err
	}
	if err := g.check(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	b := g.cells[g.index(from)].occupant
	g.cells[g.index(from)].occupant = nil
	g.cells[g.index(to)].occupant = b
	if b != nil {
		b.SetCoord(to)
	}
	return nil
}

// Swap exchanges the occupants of a and b, updating both blocks' coordinates.
func (g *Grid) Swap(a, b Coord) error {
	if err := g.check(a); err != nil {
		return err
	}
	if err := g.check(b); err != nil {
		return err
	}
	g.exchange(a, b)
	return nil
}

// exchange swaps two in-bounds cells' occupants without checks.
func (g *Grid) exchange(a, b Coord) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia].occupant, g.cells[ib].occupant = g.cells[ib].occupant, g.cells[ia].occupant
	if blk := g.cells[ia].occupant; blk != nil {
		blk.at = a
	}
	if blk := g.cells[ib].occupant; blk != nil {
		blk.at = b
	}
}

// Remove clears the cell at c and returns the block that was there.
func (g *Grid) Remove(c Coord) (*Block, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	i := g.index(c)
	b := g.cells[i].occupant
	g.cells[i].occupant = nil
	return b, nil
}

// TypeAt returns the type of the block at c, or nil for empty or
// out-of-bounds cells. Used by scanners that treat the border as empty.
func (g *Grid) TypeAt(c Coord) *BlockType {
	if !g.InBounds(c) {
		return nil
	}
	if b := g.cells[g.index(c)].occupant; b != nil {
		return b.typ
	}
	return nil
}

// at returns the occupant without bounds checking.
func (g *Grid) at(x, y int) *Block {
	return g.cells[y*g.W+x].occupant
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, cell := range g.cells {
		if cell.occupant != nil {
			n++
		}
	}
	return n
}

// ColumnEmpty reports whether column x has no occupants.
func (g *Grid) ColumnEmpty(x int) bool {
	for y := range g.H {
		if g.at(x, y) != nil {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid, including fresh block instances.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	for i, cell := range g.cells {
		cells[i].at = cell.at
		if cell.occupant != nil {
			b := *cell.occupant
			cells[i].occupant = &b
		}
	}
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if two grids have the same dimensions and every cell
// holds the same block type with the same bomb state.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		a, b := cell.occupant, other.cells[i].occupant
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && (a.typ != b.typ || a.IsBomb() != b.IsBomb()) {
			return false
		}
	}
	return true
}

// String renders the grid top row first, one character per cell:
// '.' for empty, the first letter of the type name otherwise (upper case
// for bombs). Intended for tests and the headless CLI.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := g.H - 1; y >= 0; y-- {
		for x := range g.W {
			sb.WriteRune(glyph(g.at(x, y)))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func glyph(b *Block) rune {
	if b == nil {
		return '.'
	}
	r := '?'
	if name := b.typ.String(); name != "" {
		r = rune(strings.ToLower(name)[0])
	}
	if b.IsBomb() && r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return r
}
