package board

// Block is a placed block instance. It references its BlockType, carries a
// runtime bomb flag and remembers the coordinate of the cell that owns it.
type Block struct {
	typ  *BlockType
	bomb bool
	at   Coord
}

// NewBlock creates a block of the given type at a coordinate.
func NewBlock(t *BlockType, at Coord) *Block {
	return &Block{typ: t, at: at}
}

// Type returns the block's type.
func (b *Block) Type() *BlockType {
	return b.typ
}

// Coord returns the coordinate the block was last placed at.
func (b *Block) Coord() Coord {
	return b.at
}

// SetCoord updates the stored coordinate. Callers moving a block between
// cells use Grid.MoveOccupant, which does this for them.
func (b *Block) SetCoord(c Coord) {
	b.at = c
}

// Promote turns the block into a bomb regardless of its base type.
func (b *Block) Promote() {
	b.bomb = true
}

// IsBomb reports whether clearing this block detonates its neighbourhood.
func (b *Block) IsBomb() bool {
	return b.bomb || (b.typ != nil && b.typ.Special)
}
