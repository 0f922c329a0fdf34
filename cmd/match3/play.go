package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive board.

Controls:
  Arrows/hjkl  - Move the cursor
  Space/Enter  - Pick a block; pick a neighbour to swap
  Esc          - Drop the pick
  S            - Save the session and start a new board
  N            - New board
  R            - Restart this seed
  O            - Open a board by seed
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  match3 play
  match3 play --seed 42
  match3 play --preset chill --log-file match3.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		exitErr("%v", err)
	}
}

// play runs the interactive session; deferred cleanup completes before
// runPlay exits.
func play() error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := []match3.Option{match3.WithLogger(logger)}

	// Play continues without storage; saving then only starts a new board.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open report database: %v\n", err)
		logger.Warn("playing without storage", "err", err)
	} else {
		defer store.Close()
		opts = append(opts, match3.WithSaver(store))
	}

	game := match3.New(s.catalog, match3.Settings{
		Width:     s.cfg.Board.Width,
		Height:    s.cfg.Board.Height,
		CatalogID: s.catalogID,
		Options:   s.cfg.EngineOptions(),
	}, opts...)

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     s.seed,
	}
	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
