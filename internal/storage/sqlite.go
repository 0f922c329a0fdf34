// Package storage provides SQLite-based persistence for session reports.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.match3/match3.db"

// Store manages the SQLite database connection for report persistence.
type Store struct {
	db *sql.DB
}

// ReportEntry is a saved session report.
type ReportEntry struct {
	ID        int64
	Catalog   string
	Report    board.Report
	Score     int
	CreatedAt time.Time
}

// CatalogStats aggregates the reports of one catalog.
type CatalogStats struct {
	Catalog     string
	Sessions    int
	Cleared     int // Sessions that ended with an empty board
	FewestLeft  int // Lowest tiles-left over all sessions
	FewestMoves int // Fewest moves among cleared sessions, 0 if none
	HighScore   int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			catalog TEXT NOT NULL,
			seed INTEGER NOT NULL,
			types INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			tiles_left INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_reports_catalog ON reports(catalog);
		CREATE INDEX IF NOT EXISTS idx_reports_seed ON reports(seed);
		CREATE INDEX IF NOT EXISTS idx_reports_best ON reports(catalog, tiles_left, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReport records a finished session played with the given catalog.
// Returns the ID of the inserted record.
func (s *Store) SaveReport(catalog string, r board.Report, score int) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO reports (catalog, seed, types, moves, tiles_left, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		catalog, r.Seed, r.BlockTypes, r.Moves, r.BlocksRemaining, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const reportColumns = `id, catalog, seed, types, moves, tiles_left, score, created_at`

// BestReports retrieves the best N sessions of a catalog: fewest tiles left
// first, then fewest moves. An empty catalog matches every catalog.
func (s *Store) BestReports(catalog string, limit int) ([]ReportEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+reportColumns+`
		 FROM reports
		 WHERE ? = '' OR catalog = ?
		 ORDER BY tiles_left ASC, moves ASC, id ASC
		 LIMIT ?`,
		catalog, catalog, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reports: %w", err)
	}
	return scanReports(rows)
}

// AllReports retrieves every saved report ordered by seed, then save order.
func (s *Store) AllReports() ([]ReportEntry, error) {
	rows, err := s.db.Query(
		`SELECT ` + reportColumns + `
		 FROM reports
		 ORDER BY seed ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reports: %w", err)
	}
	return scanReports(rows)
}

// ReportsForSeed retrieves every session played on a seed, best first.
func (s *Store) ReportsForSeed(seed int64) ([]ReportEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+reportColumns+`
		 FROM reports
		 WHERE seed = ?
		 ORDER BY tiles_left ASC, moves ASC, id ASC`,
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query reports: %w", err)
	}
	return scanReports(rows)
}

// ClearReports deletes the reports of a catalog, or all reports when
// catalog is empty. Returns the number of deleted rows.
func (s *Store) ClearReports(catalog string) (int64, error) {
	result, err := s.db.Exec(
		"DELETE FROM reports WHERE ? = '' OR catalog = ?",
		catalog, catalog,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear reports: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}

// ExportJSON encodes every saved report as {"results":[...]} sorted by seed.
func (s *Store) ExportJSON() ([]byte, error) {
	entries, err := s.AllReports()
	if err != nil {
		return nil, err
	}

	reports := make([]board.Report, len(entries))
	for i, e := range entries {
		reports[i] = e.Report
	}

	data, err := board.ExportJSON(reports)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return data, nil
}

// Stats retrieves aggregated statistics per catalog.
func (s *Store) Stats() (map[string]*CatalogStats, error) {
	rows, err := s.db.Query(
		`SELECT catalog,
		        COUNT(*),
		        SUM(CASE WHEN tiles_left = 0 THEN 1 ELSE 0 END),
		        MIN(tiles_left),
		        COALESCE(MIN(CASE WHEN tiles_left = 0 THEN moves END), 0),
		        MAX(score),
		        MAX(created_at)
		 FROM reports
		 GROUP BY catalog`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get catalog stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CatalogStats)
	for rows.Next() {
		var st CatalogStats
		var lastPlayed any
		if err := rows.Scan(&st.Catalog, &st.Sessions, &st.Cleared, &st.FewestLeft,
			&st.FewestMoves, &st.HighScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Catalog] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func scanReports(rows *sql.Rows) ([]ReportEntry, error) {
	defer rows.Close()

	var entries []ReportEntry
	for rows.Next() {
		var e ReportEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Catalog, &e.Report.Seed, &e.Report.BlockTypes,
			&e.Report.Moves, &e.Report.BlocksRemaining, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		if parsed, err := time.Parse(time.DateTime, ts); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ErrNoReports is returned by LatestReport on an empty store.
var ErrNoReports = errors.New("storage: no reports saved")

// LatestReport returns the most recently saved report.
func (s *Store) LatestReport() (ReportEntry, error) {
	rows, err := s.db.Query(
		`SELECT ` + reportColumns + ` FROM reports ORDER BY id DESC LIMIT 1`,
	)
	if err != nil {
		return ReportEntry{}, fmt.Errorf("storage: cannot query reports: %w", err)
	}
	entries, err := scanReports(rows)
	if err != nil {
		return ReportEntry{}, err
	}
	if len(entries) == 0 {
		return ReportEntry{}, ErrNoReports
	}
	return entries[0], nil
}
