package layout

import (
	"math/rand"
	"testing"

	"github.com/wkf/keygen/internal/keyboard/grid"
)

// charCounts tallies the multiset of characters on a layer.
func charCounts(l Layer) map[rune]int {
	counts := make(map[rune]int)
	for pos := 0; pos < grid.Size; pos++ {
		counts[l.KeyAt(pos)]++
	}
	return counts
}

func equalCounts(a, b map[rune]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func TestSwapExchangesBothLayers(t *testing.T) {
	lay := Initial()

	lowerI, lowerJ := lay.Lower().KeyAt(0), lay.Lower().KeyAt(14)
	upperI, upperJ := lay.Upper().KeyAt(0), lay.Upper().KeyAt(14)

	lay.Swap(0, 14)

	if got := lay.Lower().KeyAt(0); got != lowerJ {
		t.Errorf("lower KeyAt(0) = %q, want %q", got, lowerJ)
	}
	if got := lay.Lower().KeyAt(14); got != lowerI {
		t.Errorf("lower KeyAt(14) = %q, want %q", got, lowerI)
	}
	if got := lay.Upper().KeyAt(0); got != upperJ {
		t.Errorf("upper KeyAt(0) = %q, want %q", got, upperJ)
	}
	if got := lay.Upper().KeyAt(14); got != upperI {
		t.Errorf("upper KeyAt(14) = %q, want %q", got, upperI)
	}
}

func TestSwapSamePositionIsNoOp(t *testing.T) {
	lay := Initial()
	want := Initial()

	lay.Swap(7, 7)

	if lay.String() != want.String() {
		t.Error("Swap(7, 7) changed the layout")
	}
}

func TestShufflePreservesCharacters(t *testing.T) {
	presets := map[string]Layout{
		"initial": Initial(),
		"qwerty":  QWERTY(),
		"dvorak":  Dvorak(),
		"colemak": Colemak(),
		"qgmlwy":  QGMLWY(),
		"workman": Workman(),
	}

	for name, lay := range presets {
		for _, times := range []int{0, 1, 5, 100} {
			rng := rand.New(rand.NewSource(42))
			shuffled := lay.Clone()
			shuffled.Shuffle(rng, times)

			if !equalCounts(charCounts(lay.Lower()), charCounts(shuffled.Lower())) {
				t.Errorf("%s: lower layer multiset changed after Shuffle(%d)", name, times)
			}
			if !equalCounts(charCounts(lay.Upper()), charCounts(shuffled.Upper())) {
				t.Errorf("%s: upper layer multiset changed after Shuffle(%d)", name, times)
			}
		}
	}
}

func TestShuffleKeepsLayersInLockstep(t *testing.T) {
	// Every physical key pairs one lower character with one upper
	// character. Record the pairing, shuffle hard, and check no pair
	// ever separates.
	lay := Initial()
	pairs := make(map[rune]rune)
	for pos := 0; pos < grid.Size; pos++ {
		pairs[lay.Lower().KeyAt(pos)] = lay.Upper().KeyAt(pos)
	}

	rng := rand.New(rand.NewSource(7))
	lay.Shuffle(rng, 500)

	for pos := 0; pos < grid.Size; pos++ {
		lower := lay.Lower().KeyAt(pos)
		if got := lay.Upper().KeyAt(pos); got != pairs[lower] {
			t.Errorf("position %d: lower %q paired with upper %q, want %q",
				pos, lower, got, pairs[lower])
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	original := Initial()
	want := original.String()

	clone := original.Clone()
	rng := rand.New(rand.NewSource(99))
	clone.Shuffle(rng, 200)

	if got := original.String(); got != want {
		t.Errorf("shuffling a clone mutated the original:\n%s", got)
	}
	if clone.String() == want {
		t.Error("200 swaps left the clone identical to the original")
	}
}

func TestStringCanonicalForm(t *testing.T) {
	want := "q u p g / | z l w y - =\n" +
		"a r n s d | f h t i o '\n" +
		"j k v c ; | x m b , .\n" +
		"        e"

	if got := Initial().String(); got != want {
		t.Errorf("Initial().String() =\n%q\nwant\n%q", got, want)
	}
}

func TestStringShowsLowerLayerOnly(t *testing.T) {
	lay := QWERTY()
	if got, want := lay.String(), lay.Lower().String(); got != want {
		t.Errorf("Layout.String() =\n%q\nwant lower layer\n%q", got, want)
	}
}

func TestPositionMapUpperLayerWinsConflicts(t *testing.T) {
	// Same character on different keys of the two layers: the upper
	// layer is indexed second, so its position wins.
	lower := Initial().Lower()
	upper := Initial().Upper()

	var lowerKeys, upperKeys [grid.Size]rune
	for pos := 0; pos < grid.Size; pos++ {
		lowerKeys[pos] = lower.KeyAt(pos)
		upperKeys[pos] = upper.KeyAt(pos)
	}
	lowerKeys[3] = '#'
	upperKeys[27] = '#'
	lay := New(lowerKeys, upperKeys)

	m := lay.PositionMap()
	pos, ok := m.PositionOf('#')
	if !ok {
		t.Fatal("PositionOf('#') not found")
	}
	if pos != 27 {
		t.Errorf("PositionOf('#') = %d, want upper layer position 27", pos)
	}
}

func TestPositionMapLaterPositionWinsInLayer(t *testing.T) {
	// Colemak's shifted layer carries 'Z' at both 22 and 31; the
	// higher position is the one indexed.
	m := Colemak().PositionMap()
	pos, ok := m.PositionOf('Z')
	if !ok {
		t.Fatal("PositionOf('Z') not found")
	}
	if pos != 31 {
		t.Errorf("PositionOf('Z') = %d, want 31", pos)
	}
}

func TestPositionMapIsSnapshot(t *testing.T) {
	lay := Initial()
	m := lay.PositionMap()

	before, ok := m.PositionOf('q')
	if !ok || before != 0 {
		t.Fatalf("PositionOf('q') = %d, %v, want 0, true", before, ok)
	}

	lay.Swap(0, 14)

	after, ok := m.PositionOf('q')
	if !ok || after != 0 {
		t.Errorf("snapshot changed after mutation: PositionOf('q') = %d, %v", after, ok)
	}

	fresh := lay.PositionMap()
	moved, ok := fresh.PositionOf('q')
	if !ok || moved != 14 {
		t.Errorf("fresh map PositionOf('q') = %d, %v, want 14, true", moved, ok)
	}
}
