package layout

import "github.com/wkf/keygen/internal/keyboard/grid"

// Initial returns the reference layout the search starts from. It keeps
// 'e' on the thumb key and anchors '=' on the last top-row key.
func Initial() Layout {
	return New(
		[grid.Size]rune{
			'q', 'u', 'p', 'g', '/', 'z', 'l', 'w', 'y', '-', '=',
			'a', 'r', 'n', 's', 'd', 'f', 'h', 't', 'i', 'o', '\'',
			'j', 'k', 'v', 'c', ';', 'x', 'm', 'b', ',', '.',
			'e',
		},
		[grid.Size]rune{
			'Q', 'U', 'P', 'G', '?', 'Z', 'L', 'W', 'Y', '_', '+',
			'A', 'R', 'N', 'S', 'D', 'F', 'H', 'T', 'I', 'O', '"',
			'J', 'K', 'V', 'C', ':', 'X', 'M', 'B', '<', '>',
			'E',
		},
	)
}

// QWERTY returns the standard QWERTY arrangement mapped onto the board.
// Its thumb key is unassigned.
func QWERTY() Layout {
	return New(
		[grid.Size]rune{
			'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '-',
			'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'',
			'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/',
			'\x00',
		},
		[grid.Size]rune{
			'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '_',
			'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"',
			'Z', 'X', 'C', 'V', 'B', 'N', 'M', '<', '>', '?',
			'\x00',
		},
	)
}

// Dvorak returns the Dvorak simplified arrangement mapped onto the board.
func Dvorak() Layout {
	return New(
		[grid.Size]rune{
			'\'', ',', '.', 'p', 'y', 'f', 'g', 'c', 'r', 'l', '/',
			'a', 'o', 'e', 'u', 'i', 'd', 'h', 't', 'n', 's', '-',
			';', 'q', 'j', 'k', 'x', 'b', 'm', 'w', 'v', 'z',
			'\x00',
		},
		[grid.Size]rune{
			'"', ',', '.', 'P', 'Y', 'F', 'G', 'C', 'R', 'L', '?',
			'A', 'O', 'E', 'U', 'I', 'D', 'H', 'T', 'N', 'S', '_',
			':', 'Q', 'J', 'K', 'X', 'B', 'M', 'W', 'V', 'Z',
			'\x00',
		},
	)
}

// Colemak returns the Colemak arrangement mapped onto the board.
func Colemak() Layout {
	return New(
		[grid.Size]rune{
			'q', 'w', 'f', 'p', 'g', 'j', 'l', 'u', 'y', ';', '-',
			'a', 'r', 's', 't', 'd', 'h', 'n', 'e', 'i', 'o', '\'',
			'z', 'x', 'c', 'v', 'b', 'k', 'm', ',', '.', '/',
			'\x00',
		},
		[grid.Size]rune{
			'Q', 'W', 'F', 'P', 'G', 'J', 'L', 'U', 'Y', ':', '_',
			'A', 'R', 'S', 'T', 'D', 'H', 'N', 'E', 'I', 'O', '"',
			'Z', 'X', 'C', 'V', 'B', 'K', 'M', '<', '>', 'Z',
			'\x00',
		},
	)
}

// QGMLWY returns the QGMLWY arrangement (a fully optimized CarpalX
// layout) mapped onto the board.
func QGMLWY() Layout {
	return New(
		[grid.Size]rune{
			'q', 'g', 'm', 'l', 'w', 'y', 'f', 'u', 'b', ';', '-',
			'd', 's', 't', 'n', 'r', 'i', 'a', 'e', 'o', 'h', '\'',
			'z', 'x', 'c', 'v', 'j', 'k', 'p', ',', '.', '/',
			'\x00',
		},
		[grid.Size]rune{
			'Q', 'G', 'M', 'L', 'W', 'Y', 'F', 'U', 'B', ';', '-',
			'D', 'S', 'T', 'N', 'R', 'I', 'A', 'E', 'O', 'H', '\'',
			'Z', 'X', 'C', 'V', 'J', 'K', 'P', ',', '.', '/',
			'\x00',
		},
	)
}

// Workman returns the Workman arrangement mapped onto the board.
func Workman() Layout {
	return New(
		[grid.Size]rune{
			'q', 'd', 'r', 'w', 'b', 'j', 'f', 'u', 'p', ';', '-',
			'a', 's', 'h', 't', 'g', 'y', 'n', 'e', 'o', 'i', '\'',
			'z', 'x', 'm', 'c', 'v', 'k', 'l', ',', '.', '/',
			'\x00',
		},
		[grid.Size]rune{
			'Q', 'D', 'R', 'W', 'B', 'J', 'F', 'U', 'P', ';', '-',
			'A', 'S', 'H', 'T', 'G', 'Y', 'N', 'E', 'O', 'I', '\'',
			'Z', 'X', 'M', 'C', 'V', 'K', 'L', ',', '.', '/',
			'\x00',
		},
	)
}
