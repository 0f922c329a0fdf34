package board

import "time"

// Event is a notification for the presentation layer. The core emits events
// as it mutates the grid but never waits on how they are handled.
type Event interface {
	boardEvent()
}

// BlockPlaced is emitted when a block is created on the board.
type BlockPlaced struct {
	At     Coord
	TypeID int
	Bomb   bool
}

func (BlockPlaced) boardEvent() {}

// BlockRemoved is emitted when a matched block is destroyed.
type BlockRemoved struct {
	At     Coord
	TypeID int
	Hint   time.Duration // Suggested removal animation length
}

func (BlockRemoved) boardEvent() {}

// BlockMoved is emitted when a block changes cells (swap or gravity).
type BlockMoved struct {
	From Coord
	To   Coord
	Hint time.Duration // Suggested travel time, scaled by distance
}

func (BlockMoved) boardEvent() {}

// BoardReady is emitted once a freshly generated board is in place.
type BoardReady struct {
	Seed   int64
	Width  int
	Height int
}

func (BoardReady) boardEvent() {}

// Sink receives board events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// discard drops every event.
type discard struct{}

func (discard) Emit(Event) {}

// Discard is a Sink that ignores all events.
var Discard Sink = discard{}

// Recorder is a Sink that keeps every event in order.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// Duration returns the summed hints of all recorded events.
func (r *Recorder) Duration() time.Duration {
	var total time.Duration
	for _, e := range r.Events {
		switch ev := e.(type) {
		case BlockRemoved:
			total += ev.Hint
		case BlockMoved:
			total += ev.Hint
		}
	}
	return total
}

// Hints holds the animation durations the core attaches to events.
// The core performs no timing itself.
type Hints struct {
	Swap   time.Duration // Per-cell travel time for swapped blocks
	Remove time.Duration // Removal animation length
	Fall   time.Duration // Per-cell travel time for gravity moves
}

// moveHint scales a per-cell duration by king's-move distance.
func moveHint(unit time.Duration, from, to Coord) time.Duration {
	return time.Duration(from.Chebyshev(to)) * unit
}
