package grid

// Size is the number of physical key positions on the board:
// three rows of 11, 11, and 10 keys plus a single thumb key.
const Size = 33

// Grid is a fixed-length collection of per-position values.
// The zero value is a grid of zero values, ready to use.
type Grid[T any] struct {
	cells [Size]T
}

// New creates a grid from a full set of position values.
func New[T any](cells [Size]T) Grid[T] {
	return Grid[T]{cells: cells}
}

// At returns the value at the given position.
// Positions at or above Size panic; passing one is a programming error.
func (g *Grid[T]) At(pos int) T {
	return g.cells[pos]
}

// Set replaces the value at the given position.
func (g *Grid[T]) Set(pos int, v T) {
	g.cells[pos] = v
}

// Swap exchanges the values at positions i and j.
// Swapping a position with itself is a harmless no-op.
func (g *Grid[T]) Swap(i, j int) {
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Clone returns an independent copy of the grid.
// The backing array is a value, so the copy shares no storage with g.
func (g *Grid[T]) Clone() Grid[T] {
	return Grid[T]{cells: g.cells}
}

// Cells returns a copy of the underlying position array.
func (g *Grid[T]) Cells() [Size]T {
	return g.cells
}

// Count returns the number of positions whose value satisfies pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for i := range g.cells {
		if pred(g.cells[i]) {
			n++
		}
	}
	return n
}
