package layout

import (
	"testing"

	"github.com/wkf/keygen/internal/keyboard/geometry"
	"github.com/wkf/keygen/internal/keyboard/grid"
)

func TestNewKeyPress(t *testing.T) {
	m := Initial().PositionMap()

	tests := []struct {
		name   string
		kc     rune
		pos    int
		finger geometry.Finger
		hand   geometry.Hand
		row    geometry.Row
	}{
		{"top left corner", 'q', 0, geometry.FingerPinky, geometry.HandLeft, geometry.RowTop},
		{"shifted corner", 'Q', 0, geometry.FingerPinky, geometry.HandLeft, geometry.RowTop},
		{"home row", 'a', 11, geometry.FingerPinky, geometry.HandLeft, geometry.RowHome},
		{"right half", 'f', 16, geometry.FingerIndex, geometry.HandRight, geometry.RowHome},
		{"bottom row", 'j', 22, geometry.FingerPinky, geometry.HandLeft, geometry.RowBottom},
		{"thumb", 'e', 32, geometry.FingerThumb, geometry.HandLeft, geometry.RowThumb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, ok := NewKeyPress(tt.kc, &m)
			if !ok {
				t.Fatalf("NewKeyPress(%q) not found", tt.kc)
			}
			if kp.Key != tt.kc {
				t.Errorf("Key = %q, want %q", kp.Key, tt.kc)
			}
			if kp.Pos != tt.pos {
				t.Errorf("Pos = %d, want %d", kp.Pos, tt.pos)
			}
			if kp.Finger != tt.finger {
				t.Errorf("Finger = %v, want %v", kp.Finger, tt.finger)
			}
			if kp.Hand != tt.hand {
				t.Errorf("Hand = %v, want %v", kp.Hand, tt.hand)
			}
			if kp.Row != tt.row {
				t.Errorf("Row = %v, want %v", kp.Row, tt.row)
			}
		})
	}
}

func TestNewKeyPressUnknownKey(t *testing.T) {
	m := Initial().PositionMap()

	for _, kc := range []rune{'\t', '9', 'é', 200} {
		if kp, ok := NewKeyPress(kc, &m); ok {
			t.Errorf("NewKeyPress(%q) = %+v, true, want not found", kc, kp)
		}
	}
}

func TestNewKeyPressGeometryMatchesBoard(t *testing.T) {
	presets := map[string]Layout{
		"initial": Initial(),
		"qwerty":  QWERTY(),
		"dvorak":  Dvorak(),
		"colemak": Colemak(),
		"qgmlwy":  QGMLWY(),
		"workman": Workman(),
	}

	for name, lay := range presets {
		t.Run(name, func(t *testing.T) {
			m := lay.PositionMap()
			for pos := 0; pos < grid.Size; pos++ {
				kc := lay.Lower().KeyAt(pos)
				kp, ok := NewKeyPress(kc, &m)
				if !ok {
					t.Errorf("lower key %q at %d not found", kc, pos)
					continue
				}
				if kp.Pos != pos {
					t.Errorf("key %q: Pos = %d, want %d", kc, kp.Pos, pos)
					continue
				}
				if kp.Finger != geometry.FingerAt(pos) {
					t.Errorf("key %q at %d: Finger = %v, want %v", kc, pos, kp.Finger, geometry.FingerAt(pos))
				}
				if kp.Hand != geometry.HandAt(pos) {
					t.Errorf("key %q at %d: Hand = %v, want %v", kc, pos, kp.Hand, geometry.HandAt(pos))
				}
				if kp.Row != geometry.RowAt(pos) {
					t.Errorf("key %q at %d: Row = %v, want %v", kc, pos, kp.Row, geometry.RowAt(pos))
				}
			}
		})
	}
}
