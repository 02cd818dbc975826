package catalog

import (
	"fmt"
	"path/filepath"
)

// Loader loads layout files from configured directories.
type Loader struct {
	// searchPaths are directories to search for layout files.
	searchPaths []string
}

// NewLoader creates a new layout loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for layout files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadAll loads every layout file found on the search paths.
// Files that fail to decode are skipped.
func (l *Loader) LoadAll() ([]*File, error) {
	files := make([]*File, 0)

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.toml", "*.json"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}

			for _, path := range matches {
				f, err := LoadFile(path)
				if err != nil {
					// Skip unparsable files but keep loading
					continue
				}
				files = append(files, f)
			}
		}
	}

	return files, nil
}

// LoadAndRegister loads all layout files and registers them.
func (l *Loader) LoadAndRegister(registry *Registry) error {
	files, err := l.LoadAll()
	if err != nil {
		return err
	}

	for _, f := range files {
		lay, err := f.Layout()
		if err != nil {
			return fmt.Errorf("layout %q: %w", f.Name, err)
		}
		if err := registry.Register(f.Name, lay); err != nil {
			return fmt.Errorf("registering layout %q: %w", f.Name, err)
		}
	}

	return nil
}
