package board

import "fmt"

// MinCatalogTypes is the smallest supported number of regular block types.
// With fewer, the generator can be forced into a position where every type
// completes a run.
const MinCatalogTypes = 3

// BlockType describes one kind of block. Types are defined once in a Catalog
// and referenced by pointer from every placed Block.
type BlockType struct {
	ID      int    // Stable identity, unique within a catalog
	Name    string // Display name (e.g. "red")
	Value   int    // Points awarded when a block of this type is cleared
	Special bool   // Special types behave as bombs
}

// String returns the type name, falling back to its ID.
func (t *BlockType) String() string {
	if t == nil {
		return "<empty>"
	}
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("type#%d", t.ID)
}

// Catalog is the fixed set of block types a board draws from.
type Catalog struct {
	types []*BlockType
	byID  map[int]*BlockType
}

// NewCatalog builds a catalog from the given type definitions.
// Types are copied once into the catalog; the catalog owns them afterwards.
func NewCatalog(types ...BlockType) (*Catalog, error) {
	c := &Catalog{
		types: make([]*BlockType, 0, len(types)),
		byID:  make(map[int]*BlockType, len(types)),
	}

	regular := 0
	for _, t := range types {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("board: duplicate block type id %d", t.ID)
		}
		bt := t
		c.types = append(c.types, &bt)
		c.byID[bt.ID] = &bt
		if !bt.Special {
			regular++
		}
	}

	if regular < MinCatalogTypes {
		return nil, fmt.Errorf("%w (got %d)", ErrCatalogTooSmall, regular)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
// Intended for package-level catalog definitions.
func MustCatalog(types ...BlockType) *Catalog {
	c, err := NewCatalog(types...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of block types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// At returns the i-th block type in definition order.
func (c *Catalog) At(i int) *BlockType {
	return c.types[i]
}

// Types returns the block types in definition order.
func (c *Catalog) Types() []*BlockType {
	out := make([]*BlockType, len(c.types))
	copy(out, c.types)
	return out
}

// ByID looks up a block type by its identity.
func (c *Catalog) ByID(id int) (*BlockType, bool) {
	t, ok := c.byID[id]
	return t, ok
}
