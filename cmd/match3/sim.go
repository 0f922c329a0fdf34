package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagMoves  string
	flagRandom int
	flagSave   bool
	flagJSON   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Resolve moves headlessly",
	Long: `Generate a board and resolve moves without a terminal UI.

Moves are written as "x1,y1:x2,y2" separated by ";". Coordinates start at
the bottom-left cell. With --random the simulator plays that many moves,
picking among all legal swaps with an RNG seeded from the board seed.

Examples:
  match3 sim --seed 7 --moves "0,0:1,0;2,1:2,2"
  match3 sim --seed 7 --random 100 --save
  match3 sim --seed 7 --random 20 --json`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", `Moves to play, e.g. "0,0:1,0;2,1:2,2"`)
	simCmd.Flags().IntVar(&flagRandom, "random", 0, "Play this many random legal moves")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the session report to the database")
	simCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the report as JSON")
}

// parseMoves reads a move list written as "x1,y1:x2,y2;...".
func parseMoves(s string) ([]match3.Move, error) {
	var moves []match3.Move
	for i, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ends := strings.Split(part, ":")
		if len(ends) != 2 {
			return nil, fmt.Errorf("move %d %q: want x1,y1:x2,y2", i+1, part)
		}
		a, err := parseCoord(ends[0])
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		b, err := parseCoord(ends[1])
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, match3.Move{A: a, B: b})
	}
	return moves, nil
}

func parseCoord(s string) (board.Coord, error) {
	xy := strings.Split(strings.TrimSpace(s), ",")
	if len(xy) != 2 {
		return board.Coord{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
	if err != nil {
		return board.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
	if err != nil {
		return board.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return board.C(x, y), nil
}

// randomMoves returns a move source that picks a legal swap each turn.
func randomMoves(seed int64, n int) func(*board.Grid) (match3.Move, bool) {
	rng := rand.New(rand.NewSource(seed))
	played := 0
	return func(g *board.Grid) (match3.Move, bool) {
		if played >= n {
			return match3.Move{}, false
		}
		legal := match3.LegalMoves(g)
		if len(legal) == 0 {
			return match3.Move{}, false
		}
		played++
		return legal[rng.Intn(len(legal))], true
	}
}

// scriptedMoves returns a move source replaying a fixed list.
func scriptedMoves(moves []match3.Move) func(*board.Grid) (match3.Move, bool) {
	i := 0
	return func(*board.Grid) (match3.Move, bool) {
		if i >= len(moves) {
			return match3.Move{}, false
		}
		i++
		return moves[i-1], true
	}
}

// loggedMoves wraps a move source so every picked move is logged.
func loggedMoves(next func(*board.Grid) (match3.Move, bool), logger *log.Logger) func(*board.Grid) (match3.Move, bool) {
	return func(g *board.Grid) (match3.Move, bool) {
		mv, ok := next(g)
		if ok {
			logger.Debug("move", "from", mv.A, "to", mv.B)
		}
		return mv, ok
	}
}

// simResult summarizes a headless run.
type simResult struct {
	Report   board.Report
	Score    int
	Rejected int
	Deepest  int
	Errors   []error
}

// simulate plays moves from next until it runs dry or the board clears.
// Rejected moves are collected and skipped.
func simulate(e *board.Engine, next func(*board.Grid) (match3.Move, bool)) simResult {
	var res simResult
	for e.Grid().Count() > 0 {
		mv, ok := next(e.Grid())
		if !ok {
			break
		}
		out, err := e.SubmitMove(mv.A, mv.B)
		if err != nil {
			res.Rejected++
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Score += out.Score
		res.Deepest = max(res.Deepest, out.CascadeDepth)
	}
	res.Report = e.Report()
	return res
}

func runSim(cmd *cobra.Command, args []string) {
	if err := sim(); err != nil {
		exitErr("%v", err)
	}
}

// sim runs the simulation; deferred cleanup completes before runSim exits.
func sim() error {
	if flagMoves != "" && flagRandom > 0 {
		return errors.New("use either --moves or --random, not both")
	}

	s, err := loadSession()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut)

	var next func(*board.Grid) (match3.Move, bool)
	if flagMoves != "" {
		moves, err := parseMoves(flagMoves)
		if err != nil {
			return err
		}
		next = scriptedMoves(moves)
	} else {
		next = randomMoves(s.seed, flagRandom)
	}

	engine := board.NewEngine(s.catalog,
		board.WithOptions(s.cfg.EngineOptions()),
		board.WithLogger(logger),
	)
	if _, err := engine.NewBoard(s.cfg.Board.Width, s.cfg.Board.Height, s.seed); err != nil {
		return err
	}

	res := simulate(engine, loggedMoves(next, logger))
	for _, err := range res.Errors {
		logger.Warn("move rejected", "err", err)
	}
	logger.Info("simulation done",
		"seed", res.Report.Seed,
		"moves", res.Report.Moves,
		"tilesLeft", res.Report.BlocksRemaining,
		"cleared", res.Report.Cleared(),
		"score", res.Score,
		"rejected", res.Rejected,
		"deepest", res.Deepest,
	)

	if flagSave {
		if err := saveSimReport(s.catalogID, res); err != nil {
			return err
		}
		logger.Info("report saved", "catalog", s.catalogID)
	}

	if flagJSON {
		data, err := board.ExportJSON([]board.Report{res.Report})
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(engine.Grid())
	fmt.Println()
	fmt.Printf("Seed:       %d\n", res.Report.Seed)
	fmt.Printf("Moves:      %d\n", res.Report.Moves)
	fmt.Printf("Tiles left: %d\n", res.Report.BlocksRemaining)
	fmt.Printf("Score:      %d\n", res.Score)
	if res.Rejected > 0 {
		fmt.Printf("Rejected:   %d\n", res.Rejected)
	}
	if res.Report.Cleared() {
		fmt.Println("Board cleared!")
	}
	return nil
}

func saveSimReport(catalog string, res simResult) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening report database: %w", err)
	}
	defer store.Close()

	_, err = store.SaveReport(catalog, res.Report, res.Score)
	return err
}
