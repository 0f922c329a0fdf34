// Package registry provides a global registry of named block catalogs.
// Catalog sets register themselves in init() functions, so configuration
// and the CLI can pick one by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// CatalogInfo describes a registered catalog.
type CatalogInfo struct {
	ID    string
	Title string
	Types int // Number of block types, specials included
}

// Factory builds a fresh catalog.
type Factory func() (*board.Catalog, error)

type entry struct {
	title   string
	factory Factory
	types   int
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a catalog factory to the registry.
// Panics if the ID is taken or the factory cannot build a valid catalog,
// since both are programming errors caught at startup.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: catalog %q already registered", id))
	}

	cat, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: catalog %q: %v", id, err))
	}

	entries[id] = entry{title: title, factory: f, types: cat.Len()}
}

// List returns all registered catalogs, sorted by ID.
func List() []CatalogInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CatalogInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, CatalogInfo{ID: id, Title: e.title, Types: e.types})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds the catalog registered under id.
func Create(id string) (*board.Catalog, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown catalog %q", id)
	}
	return e.factory()
}

// Exists checks if a catalog with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
