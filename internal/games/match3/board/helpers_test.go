package board

import (
	"strings"
	"testing"
	"unicode"
)

// testCatalog has five regular types named by a single letter so grids can
// be written as strings.
var testCatalog = MustCatalog(
	BlockType{ID: 1, Name: "a", Value: 10},
	BlockType{ID: 2, Name: "b", Value: 10},
	BlockType{ID: 3, Name: "c", Value: 10},
	BlockType{ID: 4, Name: "d", Value: 10},
	BlockType{ID: 5, Name: "e", Value: 10},
)

func typeByName(t *testing.T, name string) *BlockType {
	t.Helper()
	for _, bt := range testCatalog.Types() {
		if bt.Name == name {
			return bt
		}
	}
	t.Fatalf("no block type named %q", name)
	return nil
}

// gridFromRows builds a grid from rows written top row first.
// '.' is an empty cell, a lower-case letter is a block of that type, and an
// upper-case letter is a promoted bomb of that type.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	for i, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has width %d, want %d", i, len(row), w)
		}
		y := h - 1 - i
		for x, r := range row {
			if r == '.' {
				continue
			}
			b := NewBlock(typeByName(t, string(unicode.ToLower(r))), C(x, y))
			if unicode.IsUpper(r) {
				b.Promote()
			}
			if err := g.SetOccupant(C(x, y), b); err != nil {
				t.Fatalf("SetOccupant(%v) failed: %v", C(x, y), err)
			}
		}
	}
	return g
}

func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

// assertSettled checks that no block floats above a gap.
func assertSettled(t *testing.T, g *Grid) {
	t.Helper()
	for x := range g.W {
		gap := false
		for y := range g.H {
			b, _ := g.Occupant(C(x, y))
			if b == nil {
				gap = true
				continue
			}
			if gap {
				t.Errorf("block at %v floats above a gap\n%s", C(x, y), g)
			}
		}
	}
}

// assertPacked checks that no empty column sits left of an occupied one.
func assertPacked(t *testing.T, g *Grid) {
	t.Helper()
	last := -1
	for x := range g.W {
		if !g.ColumnEmpty(x) {
			last = x
		}
	}
	for x := 0; x < last; x++ {
		if g.ColumnEmpty(x) {
			t.Errorf("empty column %d left of occupied column %d\n%s", x, last, g)
		}
	}
}

// assertCoordsConsistent checks every block remembers its own cell.
func assertCoordsConsistent(t *testing.T, g *Grid) {
	t.Helper()
	for y := range g.H {
		for x := range g.W {
			b, _ := g.Occupant(C(x, y))
			if b != nil && b.Coord() != C(x, y) {
				t.Errorf("block in cell %v reports coord %v", C(x, y), b.Coord())
			}
		}
	}
}
