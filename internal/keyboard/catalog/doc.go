// Package catalog maintains the named collection of keyboard layouts:
// the built-in presets plus custom layouts loaded from disk.
//
// Layout files are TOML or JSON documents carrying each layer as four
// row strings (11, 11, 10, and 1 keys, top to bottom then thumb). The
// Loader scans configured search paths and feeds a Registry shared
// across the application.
package catalog
