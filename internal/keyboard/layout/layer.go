package layout

import (
	"strings"

	"github.com/wkf/keygen/internal/keyboard/grid"
)

// Layer holds one shift state's character assignment across the board.
// Layers are only mutated through their owning Layout so the two shift
// states can never drift apart.
type Layer struct {
	keys grid.Grid[rune]
}

// newLayer creates a layer from a full set of position characters.
func newLayer(keys [grid.Size]rune) Layer {
	return Layer{keys: grid.New(keys)}
}

// KeyAt returns the character at the given position.
func (l Layer) KeyAt(pos int) rune {
	return l.keys.At(pos)
}

// swap exchanges the characters at positions i and j.
func (l *Layer) swap(i, j int) {
	l.keys.Swap(i, j)
}

// fillPositions records each ASCII character's position into m, walking
// positions in order so a duplicated character keeps its highest position.
func (l Layer) fillPositions(m *[asciiLimit]int) {
	for pos := 0; pos < grid.Size; pos++ {
		c := l.keys.At(pos)
		if c >= 0 && c < asciiLimit {
			m[c] = pos
		}
	}
}

// String renders the layer as the canonical board diagram: three rows
// with the hand halves separated by " | ", then the thumb key on its own
// line indented by eight spaces.
func (l Layer) String() string {
	var sb strings.Builder
	l.writeRow(&sb, 0, 5, 6)
	sb.WriteByte('\n')
	l.writeRow(&sb, 11, 5, 6)
	sb.WriteByte('\n')
	l.writeRow(&sb, 22, 5, 5)
	sb.WriteByte('\n')
	sb.WriteString("        ")
	sb.WriteRune(l.keys.At(32))
	return sb.String()
}

// writeRow writes one row's characters, space-separated, with the hand
// split marked by " | ". start is the row's first position; left and
// right are the half sizes.
func (l Layer) writeRow(sb *strings.Builder, start, left, right int) {
	for i := 0; i < left; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(l.keys.At(start + i))
	}
	sb.WriteString(" | ")
	for i := 0; i < right; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(l.keys.At(start + left + i))
	}
}
