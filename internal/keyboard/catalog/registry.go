package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/wkf/keygen/internal/keyboard/layout"
)

// Registry holds named layouts. Names are case-insensitive and stored
// lowercase. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	layouts map[string]layout.Layout
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		layouts: make(map[string]layout.Layout),
	}
}

// Register adds a layout under the given name.
// If a layout with the same name already exists, it is replaced.
func (r *Registry) Register(name string, lay layout.Layout) error {
	name = normalize(name)
	if name == "" {
		return fmt.Errorf("cannot register layout without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.layouts[name] = lay
	return nil
}

// Unregister removes a layout from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.layouts, normalize(name))
}

// Get returns a layout by name. The returned value is a copy; mutating
// it does not affect the registry.
func (r *Registry) Get(name string) (layout.Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lay, ok := r.layouts[normalize(name)]
	return lay, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layouts)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
