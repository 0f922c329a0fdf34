package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board a seed generates",
	Long: `Generate a board and print it, top row first. Each block is shown by
the first letter of its type; bombs are upper case.

Examples:
  match3 board --seed 42
  match3 board --seed 42 --catalog trio`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	s, err := loadSession()
	if err != nil {
		exitErr("%v", err)
	}

	g, err := board.Generate(s.cfg.Board.Width, s.cfg.Board.Height, s.seed, s.catalog, board.GenOptions{
		BombRate: s.cfg.Rules.BombRate,
	})
	if err != nil {
		exitErr("%v", err)
	}

	fmt.Printf("Seed %d, %dx%d, catalog %s\n\n", s.seed, g.W, g.H, s.catalogID)
	fmt.Println(g)
	fmt.Println()
	for _, t := range s.catalog.Types() {
		name := t.String()
		fmt.Printf("  %s  %-10s %3d\n", strings.ToLower(name[:1]), name, t.Value)
	}
}
