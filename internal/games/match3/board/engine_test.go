package board

import (
	"errors"
	"testing"
)

// engineWithGrid returns an engine whose board is the given layout.
func engineWithGrid(t *testing.T, opts Options, layout ...string) *Engine {
	t.Helper()
	e := NewEngine(testCatalog, WithOptions(opts))
	e.grid = gridFromRows(t, layout...)
	return e
}

func TestSubmitMoveWithoutBoard(t *testing.T) {
	e := NewEngine(testCatalog)
	if _, err := e.SubmitMove(C(0, 0), C(1, 0)); !errors.Is(err, ErrNoBoard) {
		t.Errorf("error = %v, want ErrNoBoard", err)
	}
	if _, err := e.Restart(); !errors.Is(err, ErrNoBoard) {
		t.Errorf("Restart error = %v, want ErrNoBoard", err)
	}
}

func TestSubmitMoveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		a, b Coord
	}{
		{"same cell", C(0, 0), C(0, 0)},
		{"diagonal", C(0, 0), C(1, 1)},
		{"two apart", C(0, 0), C(2, 0)},
		{"out of bounds", C(2, 1), C(3, 1)},
		{"negative", C(0, 0), C(-1, 0)},
		{"empty cell", C(1, 1), C(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := engineWithGrid(t, DefaultOptions(), "ab.", "cab")
			before := e.Grid().String()

			_, err := e.SubmitMove(tc.a, tc.b)
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("error = %v, want ErrInvalidMove", err)
			}
			if e.Grid().String() != before {
				t.Errorf("board changed on rejected move:\n%s", e.Grid())
			}
			if e.Moves() != 0 {
				t.Errorf("moves = %d after rejected move", e.Moves())
			}
			if e.State() != StateIdle {
				t.Errorf("state = %v, want idle", e.State())
			}
		})
	}
}

var noMatchLayout = []string{
	"abcd",
	"cdab",
	"abcd",
	"cdab",
}

func TestSubmitMoveWithoutMatchKeepsSwap(t *testing.T) {
	e := engineWithGrid(t, DefaultOptions(), noMatchLayout...)

	out, err := e.SubmitMove(C(0, 3), C(1, 3))
	if err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}

	want := MoveOutcome{Accepted: true, MoveCount: 1}
	if out != want {
		t.Errorf("outcome = %+v, want %+v", out, want)
	}
	wantGrid := rows("bacd", "cdab", "abcd", "cdab")
	if got := e.Grid().String(); got != wantGrid {
		t.Errorf("board:\n%s\nwant\n%s", got, wantGrid)
	}
}

func TestSubmitMoveRevertsUnproductiveSwap(t *testing.T) {
	opts := DefaultOptions()
	opts.RevertUnproductiveSwap = true
	e := engineWithGrid(t, opts, noMatchLayout...)
	before := e.Grid().Clone()

	out, err := e.SubmitMove(C(0, 3), C(1, 3))
	if err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}
	if !out.Reverted || out.TotalRemoved != 0 || out.MoveCount != 1 {
		t.Errorf("outcome = %+v, want reverted counted move", out)
	}
	if !e.Grid().Equal(before) {
		t.Errorf("board not restored:\n%s", e.Grid())
	}
	assertCoordsConsistent(t, e.Grid())
}

func TestSubmitMoveCascade(t *testing.T) {
	// Swapping (0,2) with (1,2) makes a vertical a-run in column 0. Once it
	// clears, column 0 drops and completes a c-run along row 0.
	rec := &Recorder{}
	e := engineWithGrid(t, DefaultOptions(),
		"dbe",
		"ceb",
		"bad",
		"ade",
		"acc",
	)
	e.sink = rec

	out, err := e.SubmitMove(C(0, 2), C(1, 2))
	if err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}

	if out.TotalRemoved != 6 || out.CascadeDepth != 2 || out.Score != 60 || out.MoveCount != 1 {
		t.Errorf("outcome = %+v, want 6 removed over 2 waves", out)
	}

	want := rows(
		"...",
		".be",
		".eb",
		".bd",
		"dde",
	)
	if got := e.Grid().String(); got != want {
		t.Errorf("board:\n%s\nwant\n%s", got, want)
	}

	removed := 0
	for _, ev := range rec.Events {
		if _, ok := ev.(BlockRemoved); ok {
			removed++
		}
	}
	if removed != 6 {
		t.Errorf("got %d removal events, want 6", removed)
	}

	g := e.Grid()
	if m := FindMatches(g, DefaultMinRun, false); !m.Empty() {
		t.Errorf("cascade left matches %v", m.Coords())
	}
	assertSettled(t, g)
	assertPacked(t, g)
	assertCoordsConsistent(t, g)

	r := e.Report()
	if r.Moves != 1 || r.BlocksRemaining != 9 || r.BlockTypes != testCatalog.Len() {
		t.Errorf("report = %+v", r)
	}
}

func TestSubmitMoveEmptiedColumnShiftsLeft(t *testing.T) {
	e := engineWithGrid(t, DefaultOptions(),
		"bad",
		"abc",
		"acb",
	)
	moving, _ := e.Grid().Occupant(C(2, 0))

	out, err := e.SubmitMove(C(0, 2), C(1, 2))
	if err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}
	if out.TotalRemoved != 3 || out.CascadeDepth != 1 {
		t.Errorf("outcome = %+v, want one wave of 3", out)
	}

	want := rows(
		"bd.",
		"bc.",
		"cb.",
	)
	if got := e.Grid().String(); got != want {
		t.Errorf("board:\n%s\nwant\n%s", got, want)
	}
	if got, _ := e.Grid().Occupant(C(1, 0)); got != moving || moving.Coord() != C(1, 0) {
		t.Errorf("block from (2,0) should now sit at (1,0), coord %v", moving.Coord())
	}
}

func TestSubmitMoveBombs(t *testing.T) {
	layout := []string{
		"bcdeb",
		"decbd",
		"cEadc",
		"aAbbe",
	}

	t.Run("detonating", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeBombs = true
		e := engineWithGrid(t, opts, layout...)

		out, err := e.SubmitMove(C(2, 0), C(2, 1))
		if err != nil {
			t.Fatalf("SubmitMove failed: %v", err)
		}
		if out.TotalRemoved != 9 || out.CascadeDepth != 1 {
			t.Errorf("outcome = %+v, want 9 removed in one wave", out)
		}
		want := rows(
			"...eb",
			"...bd",
			"...dc",
			"bcdbe",
		)
		if got := e.Grid().String(); got != want {
			t.Errorf("board:\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("inert", func(t *testing.T) {
		e := engineWithGrid(t, DefaultOptions(), layout...)

		out, err := e.SubmitMove(C(2, 0), C(2, 1))
		if err != nil {
			t.Fatalf("SubmitMove failed: %v", err)
		}
		if out.TotalRemoved != 3 {
			t.Errorf("outcome = %+v, want 3 removed", out)
		}
		want := rows(
			"...eb",
			"bcdbd",
			"decdc",
			"cEbbe",
		)
		if got := e.Grid().String(); got != want {
			t.Errorf("board:\n%s\nwant\n%s", got, want)
		}
	})
}

func TestSubmitMoveReentrant(t *testing.T) {
	var e *Engine
	var nested error
	calls := 0
	e = NewEngine(testCatalog, WithSink(SinkFunc(func(Event) {
		calls++
		if calls == 1 {
			_, nested = e.SubmitMove(C(0, 0), C(1, 0))
		}
	})))
	e.grid = gridFromRows(t, noMatchLayout...)

	if _, err := e.SubmitMove(C(0, 3), C(1, 3)); err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}
	if !errors.Is(nested, ErrMoveInProgress) {
		t.Errorf("nested submit error = %v, want ErrMoveInProgress", nested)
	}
	if e.Moves() != 1 {
		t.Errorf("moves = %d, want 1", e.Moves())
	}
}

func TestNewBoardEvents(t *testing.T) {
	rec := &Recorder{}
	e := NewEngine(testCatalog, WithSink(rec))

	if _, err := e.NewBoard(3, 3, 5); err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if len(rec.Events) != 10 {
		t.Fatalf("got %d events, want 9 placements and ready", len(rec.Events))
	}
	if ready, ok := rec.Events[9].(BoardReady); !ok || ready.Seed != 5 || ready.Width != 3 {
		t.Errorf("last event = %#v, want BoardReady", rec.Events[9])
	}

	if _, err := e.SubmitMove(C(0, 0), C(1, 0)); err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}
	remaining := e.Grid().Count()

	rec.Reset()
	if _, err := e.NewBoard(3, 3, 6); err != nil {
		t.Fatalf("second NewBoard failed: %v", err)
	}
	if e.Moves() != 0 || e.Seed() != 6 {
		t.Errorf("moves = %d seed = %d after NewBoard", e.Moves(), e.Seed())
	}

	for i := 0; i < remaining; i++ {
		if _, ok := rec.Events[i].(BlockRemoved); !ok {
			t.Fatalf("event %d = %#v, want removals of the old board first", i, rec.Events[i])
		}
	}
	if _, ok := rec.Events[remaining].(BlockPlaced); !ok {
		t.Errorf("event %d = %#v, want first placement", remaining, rec.Events[remaining])
	}
}

func TestNewBoardKeepsBoardOnError(t *testing.T) {
	e := NewEngine(testCatalog)
	g, err := e.NewBoard(4, 4, 1)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	if _, err := e.NewBoard(0, 4, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
	if e.Grid() != g || e.Seed() != 1 {
		t.Error("failed NewBoard replaced the current board")
	}
}

func TestRestartReproducesBoard(t *testing.T) {
	e := NewEngine(testCatalog)
	original, err := e.NewBoard(6, 6, 77)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	snapshot := original.Clone()

	if _, err := e.SubmitMove(C(0, 0), C(0, 1)); err != nil {
		t.Fatalf("SubmitMove failed: %v", err)
	}

	restarted, err := e.Restart()
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if !restarted.Equal(snapshot) {
		t.Errorf("restart produced a different board:\n%s\nwant\n%s", restarted, snapshot)
	}
	if e.Moves() != 0 {
		t.Errorf("moves = %d after restart", e.Moves())
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		e := NewEngine(trioCatalog)
		if _, err := e.NewBoard(6, 6, seed); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		for step := 0; step < 40; step++ {
			moves := validMoves(e.Grid())
			if len(moves) == 0 {
				break
			}
			mv := moves[(step*7+int(seed))%len(moves)]

			before := e.Grid().Count()
			out, err := e.SubmitMove(mv[0], mv[1])
			if err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}

			g := e.Grid()
			if g.Count() != before-out.TotalRemoved {
				t.Fatalf("seed %d step %d: count %d, want %d", seed, step, g.Count(), before-out.TotalRemoved)
			}
			if m := FindMatches(g, DefaultMinRun, false); !m.Empty() {
				t.Fatalf("seed %d step %d: unresolved matches %v", seed, step, m.Coords())
			}
			if (out.CascadeDepth == 0) != (out.TotalRemoved == 0) {
				t.Fatalf("seed %d step %d: inconsistent outcome %+v", seed, step, out)
			}
			assertSettled(t, g)
			assertPacked(t, g)
			assertCoordsConsistent(t, g)
		}
	}
}

// validMoves lists every right and up swap between two occupied cells.
func validMoves(g *Grid) [][2]Coord {
	var out [][2]Coord
	for y := range g.H {
		for x := range g.W {
			c := C(x, y)
			if g.at(x, y) == nil {
				continue
			}
			for _, n := range []Coord{C(x+1, y), C(x, y+1)} {
				if g.InBounds(n) && g.at(n.X, n.Y) != nil {
					out = append(out, [2]Coord{c, n})
				}
			}
		}
	}
	return out
}
