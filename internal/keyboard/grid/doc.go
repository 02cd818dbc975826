// Package grid provides the fixed-size container underlying every
// per-key table in keygen.
//
// A Grid holds exactly one value per physical key position. Positions are
// integer indices laid out as follows:
//
//	   LEFT HAND    |    RIGHT HAND
//	 0  1  2  3  4  |  5  6  7  8  9 10
//	11 12 13 14 15  | 16 17 18 19 20 21
//	22 23 24 25 26  | 27 28 29 30 31
//
//	             32 (thumb key)
//
// The same position scheme is shared by character layers, the shuffle
// eligibility mask, and the finger/hand/row classification tables, so a
// position read from one grid can index any other.
//
// Grid is a value type backed by a fixed array: assigning or returning a
// Grid copies its storage, so two Grid values never alias. There is no
// insertion or removal, only in-place replacement by position.
package grid
