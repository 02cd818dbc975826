package layout

import "github.com/wkf/keygen/internal/keyboard/geometry"

// KeyPress is one character's fully classified occurrence on the board:
// the character, the position striking it, and that position's finger,
// hand, and row. Values are immutable once constructed.
type KeyPress struct {
	Key    rune
	Pos    int
	Finger geometry.Finger
	Hand   geometry.Hand
	Row    geometry.Row
}

// NewKeyPress looks kc up in m and joins the result with the static
// geometry tables. The second result is false when the character has no
// position in the snapshot; callers skip such characters rather than
// treat them as faults.
func NewKeyPress(kc rune, m *PositionMap) (KeyPress, bool) {
	pos, ok := m.PositionOf(kc)
	if !ok {
		return KeyPress{}, false
	}
	return KeyPress{
		Key:    kc,
		Pos:    pos,
		Finger: geometry.FingerAt(pos),
		Hand:   geometry.HandAt(pos),
		Row:    geometry.RowAt(pos),
	}, true
}
