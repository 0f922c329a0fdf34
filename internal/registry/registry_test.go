package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

func testFactory(names ...string) Factory {
	return func() (*board.Catalog, error) {
		types := make([]board.BlockType, len(names))
		for i, n := range names {
			types[i] = board.BlockType{ID: i + 1, Name: n, Value: 1}
		}
		return board.NewCatalog(types...)
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-four", "Test Four", testFactory("w", "x", "y", "z"))

	if !Exists("test-four") {
		t.Fatal("registered catalog should exist")
	}

	cat, err := Create("test-four")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", cat.Len())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "test-four" {
			found = true
			if info.Title != "Test Four" || info.Types != 4 {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered catalog")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-catalog")
	if err == nil || !strings.Contains(err.Error(), "no-such-catalog") {
		t.Errorf("error = %v, want unknown catalog error", err)
	}
	if Exists("no-such-catalog") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{
			name: "duplicate id",
			run: func() {
				Register("test-dup", "Dup", testFactory("a", "b", "c"))
				Register("test-dup", "Dup", testFactory("a", "b", "c"))
			},
		},
		{
			name: "invalid catalog",
			run: func() {
				Register("test-small", "Small", testFactory("a", "b"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run()
		})
	}
}

func TestListSorted(t *testing.T) {
	Register("test-zz", "ZZ", testFactory("a", "b", "c"))
	Register("test-aa", "AA", testFactory("a", "b", "c"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
