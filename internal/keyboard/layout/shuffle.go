package layout

import (
	"math/rand"

	"github.com/wkf/keygen/internal/keyboard/grid"
)

// swapMask marks the positions Shuffle may move. Position 10 (the last
// top-row key) and position 32 (the thumb key) stay fixed across every
// shuffle.
var swapMask = grid.New([grid.Size]bool{
	true, true, true, true, true, true, true, true, true, true, false,
	true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true,
	false,
})

// SwappableKeys is the number of positions swapMask marks eligible.
// It must equal the mask's true count.
const SwappableKeys = 31

// Swappable reports whether the given position may move during Shuffle.
func Swappable(pos int) bool {
	return swapMask.At(pos)
}

// swapPair picks two distinct swappable grid positions uniformly at
// random. It draws two ranks over the swappable set, bumping the
// second past the first so they differ, then converts each rank to a
// grid index by walking the board and stretching the rank past every
// masked-out position at or before the walk point.
func swapPair(rng *rand.Rand) (int, int) {
	i := rng.Intn(SwappableKeys)
	j := rng.Intn(SwappableKeys - 1)
	if j >= i {
		j++
	}

	for k := 0; k <= i; k++ {
		if !swapMask.At(k) {
			i++
		}
	}
	for k := 0; k <= j; k++ {
		if !swapMask.At(k) {
			j++
		}
	}
	return i, j
}
