// match3 is a terminal match-three puzzle built on a deterministic board
// engine.
//
// Usage:
//
//	match3 play              - Play interactively
//	match3 sim               - Resolve scripted or random moves headlessly
//	match3 board             - Print a generated board
//	match3 reports           - Show, export or clear saved sessions
//	match3 catalogs          - List block catalogs
//
// Global flags:
//
//	--seed <value>    - Board seed (0 = from config, else time based)
//	--config <path>   - Board config YAML
//	--preset <name>   - Rule preset: classic, bombs, chill
//	--catalog <id>    - Block catalog override
//	--db <path>       - Report database (default: ~/.match3/match3.db)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import to register block catalogs
	_ "github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagPreset  string
	flagCatalog string
	flagDBPath  string
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap blocks, clear the board",
	Long: `Match 3 is a terminal puzzle: swap two neighbouring blocks to line up
three or more of a kind. Cleared blocks fall down, empty columns close up
to the left, and cascades resolve on their own. Clear the board in as few
moves as you can.

Available commands:
  play      - Play interactively
  sim       - Resolve moves headlessly and print the outcome
  board     - Print the board a seed generates
  reports   - Show, export or clear saved sessions
  catalogs  - List block catalogs

Examples:
  match3 play --seed 42
  match3 play --preset bombs
  match3 sim --seed 7 --random 50 --save
  match3 board --seed 7
  match3 reports --export`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = config seed, else random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset: classic, bombs, chill")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Block catalog ID (see 'match3 catalogs')")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to report database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play mode discards logs otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(catalogsCmd)
}
