package board

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")

	// ErrInvalidMove is returned for move requests that are not two
	// in-bounds, edge-adjacent, occupied cells. The board is left unchanged.
	ErrInvalidMove = errors.New("board: invalid move")

	// ErrMoveInProgress is returned when a move is submitted while another
	// move is still resolving (e.g. from inside a Sink callback).
	ErrMoveInProgress = errors.New("board: move already in progress")

	// ErrGenerationDeadlock is returned when no catalog type can be placed at
	// a position without completing a run.
	ErrGenerationDeadlock = errors.New("board: no placeable block type")

	// ErrCatalogTooSmall is returned for catalogs with fewer than
	// MinCatalogTypes regular block types.
	ErrCatalogTooSmall = errors.New("board: catalog needs at least 3 block types")

	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("board: invalid grid dimensions")

	// ErrNoBoard is returned by engine operations that need a generated board.
	ErrNoBoard = errors.New("board: no board generated")
)
