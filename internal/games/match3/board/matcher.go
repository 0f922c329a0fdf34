package board

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// MatchSet is a set of unique coordinates found by one detection pass.
type MatchSet struct {
	set mapset.Set[Coord]
}

// NewMatchSet creates an empty match set, optionally seeded with coords.
func NewMatchSet(coords ...Coord) MatchSet {
	m := MatchSet{set: mapset.New[Coord]()}
	for _, c := range coords {
		m.set.Put(c)
	}
	return m
}

// Add inserts c into the set.
func (m MatchSet) Add(c Coord) {
	m.set.Put(c)
}

// Has reports whether c is in the set.
func (m MatchSet) Has(c Coord) bool {
	return m.set.Has(c)
}

// Len returns the number of coordinates.
func (m MatchSet) Len() int {
	return m.set.Size()
}

// Empty reports whether the set holds no coordinates.
func (m MatchSet) Empty() bool {
	return m.set.Size() == 0
}

// Coords returns the coordinates sorted by row, then column.
func (m MatchSet) Coords() []Coord {
	out := make([]Coord, 0, m.set.Size())
	m.set.Each(func(c Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// FindMatches returns every coordinate that belongs to a row or column run
// of at least minRun same-typed blocks. With includeBombs set, any bomb in
// the result detonates: its occupied 8-neighbours join the result, and bombs
// reached that way detonate in turn until no new bomb is added.
func FindMatches(g *Grid, minRun int, includeBombs bool) MatchSet {
	matches := NewMatchSet()

	for y := range g.H {
		scanLine(g.W, minRun,
			func(i int) *BlockType { return g.TypeAt(C(i, y)) },
			func(i int) Coord { return C(i, y) },
			matches.Add)
	}
	for x := range g.W {
		scanLine(g.H, minRun,
			func(i int) *BlockType { return g.TypeAt(C(x, i)) },
			func(i int) Coord { return C(x, i) },
			matches.Add)
	}

	if includeBombs {
		detonate(g, matches)
	}
	return matches
}

// scanLine finds runs along one row or column of length n.
// A run is flushed when the type changes and again at the end of the line,
// so a run touching the far border is never dropped.
func scanLine(n, minRun int, typeAt func(int) *BlockType, coordAt func(int) Coord, add func(Coord)) {
	var runType *BlockType
	runStart := 0

	flush := func(end int) {
		if runType == nil || end-runStart < minRun {
			return
		}
		for i := runStart; i < end; i++ {
			add(coordAt(i))
		}
	}

	for i := 0; i < n; i++ {
		t := typeAt(i)
		if t != nil && t == runType {
			continue
		}
		flush(i)
		runType, runStart = t, i
	}
	flush(n)
}

// detonate expands matches through bomb neighbourhoods, frontier by frontier.
func detonate(g *Grid, matches MatchSet) {
	frontier := mapset.New[Coord]()
	matches.set.Each(func(c Coord) {
		if b := g.at(c.X, c.Y); b != nil && b.IsBomb() {
			frontier.Put(c)
		}
	})

	for frontier.Size() > 0 {
		next := mapset.New[Coord]()
		frontier.Each(func(bomb Coord) {
			for _, n := range bomb.Neighbors8(g.W, g.H) {
				if matches.Has(n) {
					continue
				}
				b := g.at(n.X, n.Y)
				if b == nil {
					continue
				}
				matches.Add(n)
				if b.IsBomb() {
					next.Put(n)
				}
			}
		})
		frontier = next
	}
}
