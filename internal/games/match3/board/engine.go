package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// State is the move engine's position in its cascade state machine.
type State int

const (
	StateIdle State = iota
	StateSwapPending
	StateMatchCheck
	StateResolving
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapPending:
		return "swap_pending"
	case StateMatchCheck:
		return "match_check"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// DefaultMinRun is the run length that counts as a match.
const DefaultMinRun = 3

// Options configures move resolution.
type Options struct {
	MinRun       int  // Run length that counts as a match (default 3)
	IncludeBombs bool // Expand matches through bomb neighbourhoods

	// RevertUnproductiveSwap swaps the blocks back when a move produces no
	// match. Off by default: the swap stays applied.
	RevertUnproductiveSwap bool

	BombRate float64 // Passed to the generator on every new board
	Hints    Hints   // Animation hints attached to events
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{MinRun: DefaultMinRun}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithOptions replaces the engine's resolution options.
func WithOptions(o Options) Option {
	return func(e *Engine) {
		e.opts = o
	}
}

// WithSink sets the receiver of board events.
func WithSink(s Sink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithLogger sets the logger used for board and cascade diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// MoveOutcome summarizes one accepted move.
type MoveOutcome struct {
	Accepted     bool
	TotalRemoved int  // Blocks cleared across all cascade waves
	CascadeDepth int  // Number of remove→collapse waves (0 if no match)
	MoveCount    int  // Engine move count after this move
	Score        int  // Sum of cleared blocks' type values
	Reverted     bool // The swap was undone because nothing matched
}

// Engine owns one board session: it generates boards, applies moves and
// resolves cascades synchronously. An Engine is single-writer; a move fully
// resolves before SubmitMove returns.
type Engine struct {
	catalog *Catalog
	opts    Options
	sink    Sink
	logger  *log.Logger

	grid  *Grid
	seed  int64
	moves int
	state State
}

// NewEngine creates an engine drawing blocks from cat.
func NewEngine(cat *Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		opts:    DefaultOptions(),
		sink:    Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.opts.MinRun <= 0 {
		e.opts.MinRun = DefaultMinRun
	}
	if e.sink == nil {
		e.sink = Discard
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Catalog returns the engine's block catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Options returns the engine's resolution options.
func (e *Engine) Options() Options { return e.opts }

// Grid returns the current board, or nil before the first NewBoard.
func (e *Engine) Grid() *Grid { return e.grid }

// Seed returns the seed of the current board.
func (e *Engine) Seed() int64 { return e.seed }

// Moves returns the number of accepted moves on the current board.
func (e *Engine) Moves() int { return e.moves }

// State returns the current state machine position.
func (e *Engine) State() State { return e.state }

// NewBoard discards the current board and generates a fresh one.
// The move count restarts at zero. On error the previous board is kept.
func (e *Engine) NewBoard(w, h int, seed int64) (*Grid, error) {
	if e.state != StateIdle {
		return nil, ErrMoveInProgress
	}

	// Placements are held back until the outgoing board has been cleared.
	placed := &Recorder{}
	g, err := Generate(w, h, seed, e.catalog, GenOptions{
		BombRate: e.opts.BombRate,
		Sink:     placed,
	})
	if err != nil {
		return nil, fmt.Errorf("generating %dx%d board (seed %d): %w", w, h, seed, err)
	}

	e.clearBoard()
	for _, ev := range placed.Events {
		e.sink.Emit(ev)
	}
	e.grid = g
	e.seed = seed
	e.moves = 0
	e.sink.Emit(BoardReady{Seed: seed, Width: w, Height: h})
	e.logger.Info("board ready", "seed", seed, "width", w, "height", h, "types", e.catalog.Len())
	return g, nil
}

// ResetBoard regenerates the board for the given size and seed.
func (e *Engine) ResetBoard(w, h int, seed int64) (*Grid, error) {
	return e.NewBoard(w, h, seed)
}

// Restart regenerates the current board from its own seed.
func (e *Engine) Restart() (*Grid, error) {
	if e.grid == nil {
		return nil, ErrNoBoard
	}
	return e.NewBoard(e.grid.W, e.grid.H, e.seed)
}

// clearBoard removes every block of the outgoing board.
func (e *Engine) clearBoard() {
	if e.grid == nil {
		return
	}
	for i := range e.grid.cells {
		cell := &e.grid.cells[i]
		if cell.occupant == nil {
			continue
		}
		e.sink.Emit(BlockRemoved{At: cell.at, TypeID: cell.occupant.typ.ID})
		cell.occupant = nil
	}
}

// ValidateMove checks a move request without mutating anything.
func (e *Engine) ValidateMove(a, b Coord) error {
	if e.grid == nil {
		return ErrNoBoard
	}
	if !e.grid.InBounds(a) || !e.grid.InBounds(b) {
		return fmt.Errorf("%w: %v-%v outside %dx%d grid", ErrInvalidMove, a, b, e.grid.W, e.grid.H)
	}
	if !a.Adjacent(b) {
		return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidMove, a, b)
	}
	if e.grid.at(a.X, a.Y) == nil || e.grid.at(b.X, b.Y) == nil {
		return fmt.Errorf("%w: %v-%v involves an empty cell", ErrInvalidMove, a, b)
	}
	return nil
}

// SubmitMove swaps the blocks at a and b and resolves the resulting cascade.
// Invalid requests are rejected before any mutation. An unproductive swap
// stays applied unless Options.RevertUnproductiveSwap is set; either way the
// move is counted.
func (e *Engine) SubmitMove(a, b Coord) (MoveOutcome, error) {
	if e.state != StateIdle {
		return MoveOutcome{}, ErrMoveInProgress
	}
	if err := e.ValidateMove(a, b); err != nil {
		return MoveOutcome{}, err
	}

	out := MoveOutcome{Accepted: true}

	e.state = StateSwapPending
	e.swap(a, b)

	e.state = StateMatchCheck
	matches := FindMatches(e.grid, e.opts.MinRun, e.opts.IncludeBombs)

	if matches.Empty() && e.opts.RevertUnproductiveSwap {
		e.swap(a, b)
		out.Reverted = true
	}

	for !matches.Empty() {
		e.state = StateResolving
		out.CascadeDepth++
		removed, score := e.removeMatches(matches)
		out.TotalRemoved += removed
		out.Score += score

		CollapseVertical(e.grid, e.sink, e.opts.Hints.Fall)
		CollapseHorizontal(e.grid, e.sink, e.opts.Hints.Fall)

		e.logger.Debug("cascade wave",
			"depth", out.CascadeDepth,
			"removed", removed,
			"remaining", e.grid.Count(),
		)

		e.state = StateMatchCheck
		matches = FindMatches(e.grid, e.opts.MinRun, e.opts.IncludeBombs)
	}

	e.moves++
	out.MoveCount = e.moves
	e.state = StateIdle

	e.logger.Debug("move resolved",
		"from", a, "to", b,
		"removed", out.TotalRemoved,
		"depth", out.CascadeDepth,
		"moves", e.moves,
	)
	return out, nil
}

// swap exchanges two occupied cells and notifies the sink.
func (e *Engine) swap(a, b Coord) {
	e.grid.exchange(a, b)
	e.sink.Emit(BlockMoved{From: b, To: a, Hint: moveHint(e.opts.Hints.Swap, a, b)})
	e.sink.Emit(BlockMoved{From: a, To: b, Hint: moveHint(e.opts.Hints.Swap, a, b)})
}

// removeMatches destroys every matched block.
func (e *Engine) removeMatches(matches MatchSet) (removed, score int) {
	for _, c := range matches.Coords() {
		i := e.grid.index(c)
		blk := e.grid.cells[i].occupant
		if blk == nil {
			continue
		}
		e.grid.cells[i].occupant = nil
		removed++
		score += blk.typ.Value
		e.sink.Emit(BlockRemoved{At: c, TypeID: blk.typ.ID, Hint: e.opts.Hints.Remove})
	}
	return removed, score
}

// Report summarizes the current session for external recording.
func (e *Engine) Report() Report {
	r := Report{
		Seed:       e.seed,
		BlockTypes: e.catalog.Len(),
		Moves:      e.moves,
	}
	if e.grid != nil {
		r.BlocksRemaining = e.grid.Count()
	}
	return r
}
