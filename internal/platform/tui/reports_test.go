package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func TestReportsModelTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveReport("alpha", board.Report{Seed: 1, BlockTypes: 5, Moves: 4, BlocksRemaining: 2}, 50); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if _, err := store.SaveReport("beta", board.Report{Seed: 2, BlockTypes: 5, Moves: 9}, 90); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	m := NewReportsModel(store, 100, 30)
	if m.Selected().ID != "" {
		t.Fatalf("first tab should list all catalogs, got %q", m.Selected().ID)
	}
	if len(m.reports) != 2 {
		t.Fatalf("all tab has %d reports, want 2", len(m.reports))
	}
	if m.reports[0].Report.Seed != 2 {
		t.Errorf("best report first: got seed %d, want 2", m.reports[0].Report.Seed)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ReportsModel)
	if m.cursor != len(m.tabs)-1 {
		t.Errorf("shift+tab should wrap to the last tab, cursor = %d", m.cursor)
	}

	if !strings.Contains(m.View(), "SAVED BOARDS") {
		t.Error("view should have a title")
	}
}

func TestReportsModelWithoutStore(t *testing.T) {
	m := NewReportsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No boards saved yet") {
		t.Error("empty store should show a hint")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || next.(ReportsModel).View() != "" {
		t.Error("q should quit")
	}
}
