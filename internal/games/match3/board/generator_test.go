package board

import (
	"errors"
	"testing"
)

var trioCatalog = MustCatalog(
	BlockType{ID: 1, Name: "a", Value: 1},
	BlockType{ID: 2, Name: "b", Value: 1},
	BlockType{ID: 3, Name: "c", Value: 1},
)

func TestGenerateDeterministic(t *testing.T) {
	tests := []struct {
		w, h int
		seed int64
	}{
		{1, 1, 0},
		{8, 8, 42},
		{12, 5, -7},
		{3, 20, 1 << 40},
	}

	for _, tc := range tests {
		a, err := Generate(tc.w, tc.h, tc.seed, testCatalog, GenOptions{})
		if err != nil {
			t.Fatalf("Generate(%d,%d,%d) failed: %v", tc.w, tc.h, tc.seed, err)
		}
		b, err := Generate(tc.w, tc.h, tc.seed, testCatalog, GenOptions{})
		if err != nil {
			t.Fatalf("second Generate failed: %v", err)
		}
		if !a.Equal(b) {
			t.Errorf("seed %d produced different boards:\n%s\n---\n%s", tc.seed, a, b)
		}
		if a.Count() != tc.w*tc.h {
			t.Errorf("board %dx%d has %d blocks, want full", tc.w, tc.h, a.Count())
		}
		assertCoordsConsistent(t, a)
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(8, 8, 1, testCatalog, GenOptions{})
	b, _ := Generate(8, 8, 2, testCatalog, GenOptions{})
	if a.Equal(b) {
		t.Error("different seeds produced identical 8x8 boards")
	}
}

func TestGenerateHasNoMatches(t *testing.T) {
	for _, cat := range []*Catalog{trioCatalog, testCatalog} {
		for seed := int64(0); seed < 50; seed++ {
			g, err := Generate(9, 7, seed, cat, GenOptions{})
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			if m := FindMatches(g, DefaultMinRun, false); !m.Empty() {
				t.Fatalf("seed %d with %d types generated matches %v:\n%s", seed, cat.Len(), m.Coords(), g)
			}
		}
	}
}

func TestGenerateEmitsPlacements(t *testing.T) {
	rec := &Recorder{}
	g, err := Generate(4, 3, 9, testCatalog, GenOptions{Sink: rec})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(rec.Events) != 12 {
		t.Fatalf("got %d events, want 12", len(rec.Events))
	}

	first, ok := rec.Events[0].(BlockPlaced)
	if !ok || first.At != C(0, 0) {
		t.Errorf("first event = %#v, want placement at (0,0)", rec.Events[0])
	}
	last, ok := rec.Events[11].(BlockPlaced)
	if !ok || last.At != C(3, 2) {
		t.Errorf("last event = %#v, want placement at (3,2)", rec.Events[11])
	}

	for _, e := range rec.Events {
		p := e.(BlockPlaced)
		b, _ := g.Occupant(p.At)
		if b == nil || b.Type().ID != p.TypeID {
			t.Errorf("placement %+v does not match grid", p)
		}
	}
}

func TestGenerateBombRate(t *testing.T) {
	all, err := Generate(5, 5, 3, testCatalog, GenOptions{BombRate: 1})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for y := range 5 {
		for x := range 5 {
			if b, _ := all.Occupant(C(x, y)); !b.IsBomb() {
				t.Fatalf("BombRate 1 left a plain block at (%d,%d)", x, y)
			}
		}
	}

	none, _ := Generate(5, 5, 3, testCatalog, GenOptions{})
	for y := range 5 {
		for x := range 5 {
			if b, _ := none.Occupant(C(x, y)); b.IsBomb() {
				t.Fatalf("BombRate 0 promoted a block at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(0, 4, 1, testCatalog, GenOptions{}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := Generate(4, 4, 1, nil, GenOptions{}); !errors.Is(err, ErrCatalogTooSmall) {
		t.Errorf("nil catalog: error = %v, want ErrCatalogTooSmall", err)
	}
}

// newUncheckedCatalog bypasses NewCatalog's size check so the deadlock guard
// can be reached.
func newUncheckedCatalog(names ...string) *Catalog {
	c := &Catalog{byID: make(map[int]*BlockType)}
	for i, name := range names {
		t := &BlockType{ID: i + 1, Name: name}
		c.types = append(c.types, t)
		c.byID[t.ID] = t
	}
	return c
}

func TestGenerateDeadlock(t *testing.T) {
	// With one type the third cell of a row always completes a run.
	single := newUncheckedCatalog("a")
	g, err := Generate(3, 1, 1, single, GenOptions{})
	if !errors.Is(err, ErrGenerationDeadlock) {
		t.Fatalf("single type 3x1: error = %v, want ErrGenerationDeadlock", err)
	}
	if g != nil {
		t.Error("deadlocked generation should not return a grid")
	}

	// Two types cannot always avoid a run on a large board; every failure
	// must be the deadlock error rather than a hang or a partial board.
	pair := newUncheckedCatalog("a", "b")
	deadlocks := 0
	for seed := int64(1); seed <= 200; seed++ {
		g, err := Generate(8, 8, seed, pair, GenOptions{})
		switch {
		case err == nil:
			if m := FindMatches(g, DefaultMinRun, false); !m.Empty() {
				t.Fatalf("seed %d: two-type board has matches\n%s", seed, g)
			}
		case errors.Is(err, ErrGenerationDeadlock):
			deadlocks++
		default:
			t.Fatalf("seed %d: error = %v, want ErrGenerationDeadlock", seed, err)
		}
	}
	if deadlocks == 0 {
		t.Error("two types on 8x8 never deadlocked over 200 seeds")
	}
}
