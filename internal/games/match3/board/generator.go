package board

import (
	"fmt"
	"math/rand"
)

// maxRedraws bounds rejection sampling per cell. Past it the generator picks
// directly among the eligible types, still from the same RNG stream.
const maxRedraws = 64

// GenOptions tunes board generation.
type GenOptions struct {
	// BombRate is the probability that a placed block is promoted to a bomb.
	// Zero disables promotion and consumes no extra random draws.
	BombRate float64

	// Sink receives a BlockPlaced event per cell. Nil means Discard.
	Sink Sink
}

// Generate fills a new w×h grid from the catalog using a seeded RNG.
// Cells are filled row by row starting at row 0, left to right. A drawn type
// is rejected and redrawn if it would complete a run of three with the two
// cells to its left or the two cells below it, so the finished board holds
// no match. The same arguments always produce the same board.
func Generate(w, h int, seed int64, cat *Catalog, opts GenOptions) (*Grid, error) {
	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.Len() == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrCatalogTooSmall)
	}
	sink := opts.Sink
	if sink == nil {
		sink = Discard
	}

	rng := rand.New(rand.NewSource(seed))
	n := cat.Len()

	for y := range h {
		for x := range w {
			excluded := excludedTypes(g, x, y)
			if len(excluded) >= n {
				return nil, fmt.Errorf("%w at %v", ErrGenerationDeadlock, C(x, y))
			}

			t := cat.At(rng.Intn(n))
			for tries := 1; excluded[t]; tries++ {
				if tries >= maxRedraws {
					t = pickEligible(cat, excluded, rng)
					break
				}
				t = cat.At(rng.Intn(n))
			}

			b := NewBlock(t, C(x, y))
			if opts.BombRate > 0 && rng.Float64() < opts.BombRate {
				b.Promote()
			}
			g.cells[g.index(b.at)].occupant = b
			sink.Emit(BlockPlaced{At: b.at, TypeID: t.ID, Bomb: b.IsBomb()})
		}
	}

	return g, nil
}

// excludedTypes returns the types that would complete a run of three at
// (x, y), looking only at already-filled cells.
func excludedTypes(g *Grid, x, y int) map[*BlockType]bool {
	excluded := make(map[*BlockType]bool, 2)
	if y >= 2 {
		if t := g.TypeAt(C(x, y-1)); t != nil && t == g.TypeAt(C(x, y-2)) {
			excluded[t] = true
		}
	}
	if x >= 2 {
		if t := g.TypeAt(C(x-1, y)); t != nil && t == g.TypeAt(C(x-2, y)) {
			excluded[t] = true
		}
	}
	return excluded
}

// pickEligible draws uniformly among the types not excluded.
func pickEligible(cat *Catalog, excluded map[*BlockType]bool, rng *rand.Rand) *BlockType {
	eligible := make([]*BlockType, 0, cat.Len())
	for _, t := range cat.types {
		if !excluded[t] {
			eligible = append(eligible, t)
		}
	}
	return eligible[rng.Intn(len(eligible))]
}
