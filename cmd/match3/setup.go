package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// inlineCatalogID is recorded with reports of boards using config blocks.
const inlineCatalogID = "inline"

// session is the resolved configuration shared by every command.
type session struct {
	cfg       config.BoardConfig
	catalog   *board.Catalog
	catalogID string
	seed      int64
}

// loadSession resolves config, preset, catalog and seed from the flags.
func loadSession() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return nil, err
	}
	if flagCatalog != "" {
		cfg.Catalog = flagCatalog
		cfg.Blocks = nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cat, err := cfg.ResolveCatalog()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:       cfg,
		catalog:   cat,
		catalogID: cfg.Catalog,
		seed:      flagSeed,
	}
	switch {
	case len(cfg.Blocks) > 0:
		s.catalogID = inlineCatalogID
	case s.catalogID == "":
		s.catalogID = config.DefaultCatalog
	}
	if s.seed == 0 {
		s.seed = cfg.Board.Seed
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano() % (1 << 31)
	}
	return s, nil
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile returns the --log-file writer, or fallback when unset.
// The returned close function is always safe to call.
func openLogFile(fallback io.Writer) (io.Writer, func(), error) {
	if flagLogFile == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// exitErr prints an error the way every command reports failure.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
