package layout

// asciiLimit bounds the characters a PositionMap can index. Characters
// at or above it are never recorded and never found.
const asciiLimit = 128

// noPosition marks an unassigned slot in the index.
const noPosition = -1

// PositionMap is a reverse index from character to grid position, built
// from a Layout snapshot by Layout.PositionMap. The zero value is not
// usable; always obtain one from a layout.
type PositionMap struct {
	positions [asciiLimit]int
}

// PositionOf returns the grid position holding kc. The second result is
// false when kc is outside the indexable range or absent from the
// snapshot.
func (m *PositionMap) PositionOf(kc rune) (int, bool) {
	if kc < 0 || kc >= asciiLimit {
		return 0, false
	}
	pos := m.positions[kc]
	if pos == noPosition {
		return 0, false
	}
	return pos, true
}
