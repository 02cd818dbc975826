// Package geometry classifies physical key positions by the finger, hand,
// and row that strike them.
//
// The classification is fixed by the board's shape, not by any layout:
// position 0 is struck by the left pinky on the top row no matter which
// character a layout assigns there. Three parallel tables, one per
// dimension, cover all 33 positions and never change at runtime; they are
// exposed read-only through FingerAt, HandAt, and RowAt.
//
// The board is split 5/6 between the left and right hands on the two
// 11-key rows and 5/5 on the bottom row. The thumb key is classified as
// the left hand's thumb on its own row.
package geometry
