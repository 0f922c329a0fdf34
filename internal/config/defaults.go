package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Board: BoardSize{
			Width:  8,
			Height: 8,
		},
		Rules: RulesConfig{
			MinRun: board.DefaultMinRun,
		},
		Catalog: DefaultCatalog,
		Timing: TimingConfig{
			SwapMS:   120,
			RemoveMS: 150,
			StepMS:   60,
		},
	}
}
