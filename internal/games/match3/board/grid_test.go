package board

import (
	"errors"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGridCellsKnowTheirCoordinates(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y := range 3 {
		for x := range 4 {
			cell, err := g.Cell(C(x, y))
			if err != nil {
				t.Fatalf("Cell(%d,%d) failed: %v", x, y, err)
			}
			if cell.Coord() != C(x, y) {
				t.Errorf("cell at (%d,%d) reports %v", x, y, cell.Coord())
			}
			if !cell.Empty() {
				t.Errorf("new cell at (%d,%d) should be empty", x, y)
			}
		}
	}
}

func TestOccupantOutOfBounds(t *testing.T) {
	g := gridFromRows(t, "ab", "cd")

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)} {
		if _, err := g.Occupant(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Occupant(%v) error = %v, want ErrOutOfBounds", c, err)
		}
		if err := g.SetOccupant(c, nil); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetOccupant(%v) error = %v, want ErrOutOfBounds", c, err)
		}
		if err := g.MoveOccupant(C(0, 0), c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MoveOccupant(_, %v) error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestSetOccupantKeepsBlockCoord(t *testing.T) {
	g := gridFromRows(t, "a.")
	b, _ := g.Occupant(C(0, 0))

	if err := g.SetOccupant(C(1, 0), b); err != nil {
		t.Fatalf("SetOccupant failed: %v", err)
	}
	if b.Coord() != C(0, 0) {
		t.Errorf("SetOccupant should not move the block's coord, got %v", b.Coord())
	}
}

func TestMoveOccupant(t *testing.T) {
	g := gridFromRows(t, "a..")
	b, _ := g.Occupant(C(0, 0))

	if err := g.MoveOccupant(C(0, 0), C(2, 0)); err != nil {
		t.Fatalf("MoveOccupant failed: %v", err)
	}
	if got := g.String(); got != "..a" {
		t.Errorf("grid = %q, want %q", got, "..a")
	}
	if b.Coord() != C(2, 0) {
		t.Errorf("block coord = %v, want (2,0)", b.Coord())
	}

	before := g.String()
	if err := g.MoveOccupant(C(2, 0), C(2, 0)); err != nil {
		t.Fatalf("MoveOccupant to self failed: %v", err)
	}
	if g.String() != before || b.Coord() != C(2, 0) {
		t.Error("moving a block onto its own cell should change nothing")
	}
}

func TestSwapExchangesInstances(t *testing.T) {
	g := gridFromRows(t, "ab")
	a, _ := g.Occupant(C(0, 0))
	b, _ := g.Occupant(C(1, 0))

	if err := g.Swap(C(0, 0), C(1, 0)); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}

	gotA, _ := g.Occupant(C(1, 0))
	gotB, _ := g.Occupant(C(0, 0))
	if gotA != a || gotB != b {
		t.Error("Swap should move the same instances, not copies")
	}
	if a.Coord() != C(1, 0) || b.Coord() != C(0, 0) {
		t.Errorf("coords after swap: a=%v b=%v", a.Coord(), b.Coord())
	}
}

func TestGridStringTopRowFirst(t *testing.T) {
	want := rows(
		"ab.",
		"cDe",
	)
	g := gridFromRows(t, "ab.", "cDe")
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if g.Count() != 5 {
		t.Errorf("Count() = %d, want 5", g.Count())
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := gridFromRows(t, "ab", "ca")
	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	if _, err := clone.Remove(C(0, 0)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if g.Equal(clone) {
		t.Error("mutating the clone should not affect the original")
	}
	if b, _ := g.Occupant(C(0, 0)); b == nil {
		t.Error("original lost its block")
	}
}

func TestCatalogValidation(t *testing.T) {
	_, err := NewCatalog(
		BlockType{ID: 1, Name: "a"},
		BlockType{ID: 2, Name: "b"},
		BlockType{ID: 9, Name: "bomb", Special: true},
	)
	if !errors.Is(err, ErrCatalogTooSmall) {
		t.Errorf("two regular types + one special: error = %v, want ErrCatalogTooSmall", err)
	}

	_, err = NewCatalog(
		BlockType{ID: 1, Name: "a"},
		BlockType{ID: 1, Name: "b"},
		BlockType{ID: 3, Name: "c"},
	)
	if err == nil {
		t.Error("duplicate IDs should be rejected")
	}

	cat, err := NewCatalog(
		BlockType{ID: 1, Name: "a"},
		BlockType{ID: 2, Name: "b"},
		BlockType{ID: 3, Name: "c", Value: 7},
	)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	if bt, ok := cat.ByID(3); !ok || bt.Value != 7 {
		t.Errorf("ByID(3) = %v, %v", bt, ok)
	}
	if cat.At(0) != cat.Types()[0] {
		t.Error("catalog should hand out the same type pointers")
	}
}

func TestBlockIsBomb(t *testing.T) {
	plain := NewBlock(&BlockType{ID: 1}, C(0, 0))
	if plain.IsBomb() {
		t.Error("plain block should not be a bomb")
	}
	plain.Promote()
	if !plain.IsBomb() {
		t.Error("promoted block should be a bomb")
	}

	special := NewBlock(&BlockType{ID: 2, Special: true}, C(0, 0))
	if !special.IsBomb() {
		t.Error("special type should act as a bomb")
	}
}
