package layout

import (
	"math/rand"

	"github.com/wkf/keygen/internal/keyboard/grid"
)

// Layout pairs the unshifted (lower) and shifted (upper) character
// assignments of a keyboard. It is a value type: assignment copies both
// layers, and copies share no storage.
type Layout struct {
	lower Layer
	upper Layer
}

// New creates a layout from full lower and upper character assignments.
func New(lower, upper [grid.Size]rune) Layout {
	return Layout{
		lower: newLayer(lower),
		upper: newLayer(upper),
	}
}

// Lower returns a copy of the unshifted layer.
func (l Layout) Lower() Layer {
	return l.lower
}

// Upper returns a copy of the shifted layer.
func (l Layout) Upper() Layer {
	return l.upper
}

// Clone returns an independent copy of the layout. Shuffling the copy
// never disturbs the original.
func (l Layout) Clone() Layout {
	return l
}

// Swap exchanges positions i and j in both layers, keeping the shift
// states in lockstep. Swapping a position with itself is a harmless
// no-op.
func (l *Layout) Swap(i, j int) {
	l.lower.swap(i, j)
	l.upper.swap(i, j)
}

// Shuffle applies times independent random swaps to the layout, each
// exchanging two distinct swappable positions chosen uniformly. The
// same pair is applied to both layers. Randomness comes from rng so
// callers control seeding.
func (l *Layout) Shuffle(rng *rand.Rand, times int) {
	for n := 0; n < times; n++ {
		i, j := swapPair(rng)
		l.Swap(i, j)
	}
}

// PositionMap builds a fresh reverse index for the layout's current
// state, filling from the lower layer first and the upper layer second.
// When a character appears in both layers the upper layer's position
// wins; within one layer the higher position wins. The index is a
// snapshot and does not track later mutation of the layout.
func (l Layout) PositionMap() PositionMap {
	var m PositionMap
	for i := range m.positions {
		m.positions[i] = noPosition
	}
	l.lower.fillPositions(&m.positions)
	l.upper.fillPositions(&m.positions)
	return m
}

// String renders the layout's canonical diagram: the lower layer only,
// in the board's row shape.
func (l Layout) String() string {
	return l.lower.String()
}
