// Package match3 adapts the board engine to the tick-driven platform: it
// owns the cursor and pick state, turns engine events into a playback
// window during which input is ignored, and renders the board to a screen.
package match3

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Settings configures a game session.
type Settings struct {
	Width     int
	Height    int
	CatalogID string // Recorded with saved reports
	Options   board.Options
}

// ReportSaver persists finished sessions.
type ReportSaver interface {
	SaveReport(catalog string, r board.Report, score int) (int64, error)
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger for the game and its engine.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithSaver sets where ActionSave records reports.
func WithSaver(s ReportSaver) Option {
	return func(g *Game) {
		g.saver = s
	}
}

// Game is a match3 session driven by input frames.
type Game struct {
	settings Settings
	catalog  *board.Catalog
	engine   *board.Engine
	events   *board.Recorder
	logger   *log.Logger
	saver    ReportSaver
	palette  map[int]core.Color // Block type ID to display color

	rng      *rand.Rand // Source of fresh board seeds
	tick     uint64
	tickRate int

	cursor    board.Coord
	selection selection
	score     int
	busyTicks int
	flash     []board.Coord // Cells cleared by the last move, shown while busy

	screenW  int
	screenH  int
	tooSmall bool
	message  string
}

// New creates a game drawing blocks from cat.
func New(cat *board.Catalog, s Settings, opts ...Option) *Game {
	g := &Game{
		settings: s,
		catalog:  cat,
		events:   &board.Recorder{},
		palette:  make(map[int]core.Color, cat.Len()),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	for i, t := range cat.Types() {
		g.palette[t.ID] = core.PaletteColor(i)
	}

	g.engine = board.NewEngine(cat,
		board.WithOptions(s.Options),
		board.WithSink(g.events),
		board.WithLogger(g.logger),
	)
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "match3" }

// Title returns the display name.
func (g *Game) Title() string { return "Match 3" }

// Engine exposes the underlying board engine.
func (g *Game) Engine() *board.Engine { return g.engine }

// Reset starts a new session on a board generated from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	if err := g.startBoard(cfg.Seed); err != nil {
		g.message = err.Error()
		g.logger.Error("cannot start board", "seed", cfg.Seed, "err", err)
	}
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

// startBoard generates a board and resets per-board session state.
func (g *Game) startBoard(seed int64) error {
	if _, err := g.engine.NewBoard(g.settings.Width, g.settings.Height, seed); err != nil {
		return err
	}
	g.resetSession()
	return nil
}

// resetSession clears the state tied to the previous board.
func (g *Game) resetSession() {
	g.events.Reset()
	g.score = 0
	g.busyTicks = 0
	g.flash = nil
	g.selection.clear()
	g.cursor = board.C(0, g.settings.Height-1)
}

// nextSeed draws a fresh board seed.
func (g *Game) nextSeed() int64 {
	return g.rng.Int63n(math.MaxInt32)
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	w, h := g.boardFootprint()
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.busyTicks > 0 {
		g.busyTicks--
		if g.busyTicks == 0 {
			g.flash = nil
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	err := g.apply(in)
	if err != nil {
		g.message = err.Error()
	}
	return core.StepResult{State: g.State(), Err: err}
}

// apply handles one frame of input. Session actions take precedence over
// cursor movement.
func (g *Game) apply(in core.InputFrame) error {
	switch {
	case in.Has(core.ActionSave):
		return g.Save()
	case in.Has(core.ActionLoad):
		return g.Load(in.Seed)
	case in.Has(core.ActionNewBoard):
		return g.NewBoard()
	case in.Has(core.ActionRestart):
		return g.Restart()
	}

	if in.Has(core.ActionCancel) {
		g.selection.clear()
	}
	g.moveCursor(in)
	if in.Has(core.ActionSelect) {
		_, err := g.Select(g.cursor)
		return err
	}
	return nil
}

func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	// Row 0 is the bottom row, so up increases y.
	if in.Has(core.ActionUp) {
		dy++
	}
	if in.Has(core.ActionDown) {
		dy--
	}
	g.cursor = board.C(
		core.Clamp(g.cursor.X+dx, 0, g.settings.Width-1),
		core.Clamp(g.cursor.Y+dy, 0, g.settings.Height-1),
	)
}

// Restart regenerates the current board from its seed.
func (g *Game) Restart() error {
	if _, err := g.engine.Restart(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	g.resetSession()
	g.message = fmt.Sprintf("Restarted seed %d", g.engine.Seed())
	return nil
}

// NewBoard starts a board with a fresh seed.
func (g *Game) NewBoard() error {
	seed := g.nextSeed()
	if err := g.startBoard(seed); err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	g.message = fmt.Sprintf("New board, seed %d", seed)
	return nil
}

// Load starts a board generated from the given seed.
func (g *Game) Load(seed int64) error {
	if _, err := g.engine.ResetBoard(g.settings.Width, g.settings.Height, seed); err != nil {
		return fmt.Errorf("load seed %d: %w", seed, err)
	}
	g.resetSession()
	g.logger.Info("loaded board", "seed", seed)
	g.message = fmt.Sprintf("Loaded seed %d", seed)
	return nil
}

// Save records the current session, then starts a board with a fresh seed.
func (g *Game) Save() error {
	report := g.engine.Report()
	if g.saver != nil {
		if _, err := g.saver.SaveReport(g.settings.CatalogID, report, g.score); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}
	g.logger.Info("saved report",
		"seed", report.Seed,
		"moves", report.Moves,
		"tilesLeft", report.BlocksRemaining,
		"score", g.score,
	)

	if err := g.NewBoard(); err != nil {
		return err
	}
	if report.Cleared() {
		g.message = fmt.Sprintf("Saved seed %d, cleared in %d moves", report.Seed, report.Moves)
	} else {
		g.message = fmt.Sprintf("Saved seed %d (%d left)", report.Seed, report.BlocksRemaining)
	}
	return nil
}

// submit hands a move to the engine and opens the playback window.
func (g *Game) submit(a, b board.Coord) (board.MoveOutcome, error) {
	g.events.Reset()
	out, err := g.engine.SubmitMove(a, b)
	if err != nil {
		return out, err
	}
	g.score += out.Score

	g.flash = g.flash[:0]
	for _, e := range g.events.Events {
		if rm, ok := e.(board.BlockRemoved); ok {
			g.flash = append(g.flash, rm.At)
		}
	}
	g.busyTicks = g.playbackTicks()

	switch {
	case out.TotalRemoved > 0:
		g.message = fmt.Sprintf("Cleared %d (x%d)", out.TotalRemoved, out.CascadeDepth)
	case out.Reverted:
		g.message = "No match, swap undone"
	default:
		g.message = "No match"
	}
	return out, nil
}

// playbackTicks converts the recorded event hints to simulation ticks.
func (g *Game) playbackTicks() int {
	rate := core.RuntimeConfig{TickRate: g.tickRate}
	return rate.TicksFor(g.events.Duration().Milliseconds())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score: g.score,
		Moves: g.engine.Moves(),
		Seed:  g.engine.Seed(),
		Busy:  g.busyTicks > 0,
	}
	if grid := g.engine.Grid(); grid != nil {
		st.Remaining = grid.Count()
		st.Cleared = st.Remaining == 0
		st.Stuck = !st.Cleared && !HasMove(grid)
	}
	return st
}

// Report summarizes the current board session.
func (g *Game) Report() board.Report {
	return g.engine.Report()
}

// Move is a swap of two edge-adjacent occupied cells.
type Move struct {
	A, B board.Coord
}

// eachMove calls fn for every legal move, stopping when fn returns false.
// Any adjacent pair of occupied cells is legal, productive or not.
func eachMove(grid *board.Grid, fn func(Move) bool) {
	for y := range grid.H {
		for x := range grid.W {
			if b, _ := grid.Occupant(board.C(x, y)); b == nil {
				continue
			}
			for _, n := range []board.Coord{board.C(x+1, y), board.C(x, y+1)} {
				if b, err := grid.Occupant(n); err == nil && b != nil {
					if !fn(Move{A: board.C(x, y), B: n}) {
						return
					}
				}
			}
		}
	}
}

// LegalMoves lists every legal move, bottom row first.
func LegalMoves(grid *board.Grid) []Move {
	var moves []Move
	eachMove(grid, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasMove reports whether two edge-adjacent occupied cells exist.
func HasMove(grid *board.Grid) bool {
	found := false
	eachMove(grid, func(Move) bool {
		found = true
		return false
	})
	return found
}
