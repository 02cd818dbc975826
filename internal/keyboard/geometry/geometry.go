package geometry

import "github.com/wkf/keygen/internal/keyboard/grid"

// Finger identifies which finger strikes a key position.
type Finger uint8

const (
	FingerThumb Finger = iota
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
)

// String returns a human-readable name for the finger.
func (f Finger) String() string {
	switch f {
	case FingerThumb:
		return "Thumb"
	case FingerIndex:
		return "Index"
	case FingerMiddle:
		return "Middle"
	case FingerRing:
		return "Ring"
	case FingerPinky:
		return "Pinky"
	default:
		return "Unknown"
	}
}

// Hand identifies which hand strikes a key position.
type Hand uint8

const (
	HandLeft Hand = iota
	HandRight
)

// String returns a human-readable name for the hand.
func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "Left"
	case HandRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Row identifies the physical row a key position belongs to.
type Row uint8

const (
	RowTop Row = iota
	RowHome
	RowBottom
	RowThumb
)

// String returns a human-readable name for the row.
func (r Row) String() string {
	switch r {
	case RowTop:
		return "Top"
	case RowHome:
		return "Home"
	case RowBottom:
		return "Bottom"
	case RowThumb:
		return "Thumb"
	default:
		return "Unknown"
	}
}

// The three classification tables are parallel: the same position indexes
// all of them. Literals follow the board shape, one row per line.

var keyFingers = grid.New([grid.Size]Finger{
	FingerPinky, FingerRing, FingerMiddle, FingerIndex, FingerIndex, FingerIndex, FingerIndex, FingerMiddle, FingerRing, FingerPinky, FingerPinky,
	FingerPinky, FingerRing, FingerMiddle, FingerIndex, FingerIndex, FingerIndex, FingerIndex, FingerMiddle, FingerRing, FingerPinky, FingerPinky,
	FingerPinky, FingerRing, FingerMiddle, FingerIndex, FingerIndex, FingerIndex, FingerIndex, FingerMiddle, FingerRing, FingerPinky,
	FingerThumb,
})

var keyHands = grid.New([grid.Size]Hand{
	HandLeft, HandLeft, HandLeft, HandLeft, HandLeft, HandRight, HandRight, HandRight, HandRight, HandRight, HandRight,
	HandLeft, HandLeft, HandLeft, HandLeft, HandLeft, HandRight, HandRight, HandRight, HandRight, HandRight, HandRight,
	HandLeft, HandLeft, HandLeft, HandLeft, HandLeft, HandRight, HandRight, HandRight, HandRight, HandRight,
	HandLeft,
})

var keyRows = grid.New([grid.Size]Row{
	RowTop, RowTop, RowTop, RowTop, RowTop, RowTop, RowTop, RowTop, RowTop, RowTop, RowTop,
	RowHome, RowHome, RowHome, RowHome, RowHome, RowHome, RowHome, RowHome, RowHome, RowHome, RowHome,
	RowBottom, RowBottom, RowBottom, RowBottom, RowBottom, RowBottom, RowBottom, RowBottom, RowBottom, RowBottom,
	RowThumb,
})

// FingerAt returns the finger that strikes the given position.
func FingerAt(pos int) Finger {
	return keyFingers.At(pos)
}

// HandAt returns the hand that strikes the given position.
func HandAt(pos int) Hand {
	return keyHands.At(pos)
}

// RowAt returns the row the given position belongs to.
func RowAt(pos int) Row {
	return keyRows.At(pos)
}
