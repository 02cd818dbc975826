// Package layout models a keyboard layout across its two shift states and
// provides the mutation and lookup primitives the layout search is built
// on.
//
// A Layout pairs two Layers, the unshifted (lower) and shifted (upper)
// character assignments, permuted in lockstep: swapping two positions
// moves both shift states' characters together, so the pair of glyphs on
// a physical key never separates. Only whole-Layout operations are
// exported; a single layer cannot be reordered on its own.
//
// Shuffle randomizes a layout by repeated swaps of two distinct positions
// drawn uniformly from the swappable set. Two positions never move: the
// last top-row key (position 10) and the thumb key (position 32).
// Randomness is supplied by the caller as a seedable *rand.Rand, so
// shuffles are reproducible under test.
//
// A PositionMap is a reverse index from character to position, derived
// from a Layout snapshot via Layout.PositionMap. It goes stale the moment
// the source layout mutates; derive a fresh one after shuffling. KeyPress
// joins a PositionMap lookup with the static geometry tables to give the
// finger, hand, and row behind each character of a text sample.
//
// The package ships the search's reference starting layout plus several
// well-known arrangements (QWERTY, Dvorak, Colemak, QGMLWY, Workman) as
// value-returning constructors.
package layout
