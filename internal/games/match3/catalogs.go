package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Registered catalog IDs.
const (
	CatalogClassic = "classic"
	CatalogTetrad  = "tetrad"
	CatalogTrio    = "trio"
	CatalogBombs   = "bombs"
)

var gems = []board.BlockType{
	{ID: 1, Name: "ruby", Value: 10},
	{ID: 2, Name: "emerald", Value: 10},
	{ID: 3, Name: "sapphire", Value: 10},
	{ID: 4, Name: "topaz", Value: 10},
	{ID: 5, Name: "amethyst", Value: 10},
}

func init() {
	registry.Register(CatalogClassic, "Classic (5 gems)", func() (*board.Catalog, error) {
		return board.NewCatalog(gems...)
	})
	registry.Register(CatalogTetrad, "Tetrad (4 gems)", func() (*board.Catalog, error) {
		return board.NewCatalog(gems[:4]...)
	})
	registry.Register(CatalogTrio, "Trio (3 gems)", func() (*board.Catalog, error) {
		return board.NewCatalog(gems[:3]...)
	})
	registry.Register(CatalogBombs, "Bombs (4 gems + bomb)", func() (*board.Catalog, error) {
		types := append([]board.BlockType{}, gems[:4]...)
		types = append(types, board.BlockType{ID: 9, Name: "bomb", Value: 25, Special: true})
		return board.NewCatalog(types...)
	})
}
