// Package watcher reports changes to a single file.
//
// The parent directory is watched rather than the file itself, so
// editors that save by writing a temporary file and renaming it over
// the target are still seen. Bursts of events within the debounce
// window collapse into one.
package watcher
