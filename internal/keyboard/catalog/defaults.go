package catalog

import "github.com/wkf/keygen/internal/keyboard/layout"

// LoadDefaults registers the built-in preset layouts.
func LoadDefaults(r *Registry) error {
	presets := []struct {
		name string
		lay  layout.Layout
	}{
		{"initial", layout.Initial()},
		{"qwerty", layout.QWERTY()},
		{"dvorak", layout.Dvorak()},
		{"colemak", layout.Colemak()},
		{"qgmlwy", layout.QGMLWY()},
		{"workman", layout.Workman()},
	}

	for _, p := range presets {
		if err := r.Register(p.name, p.lay); err != nil {
			return err
		}
	}

	return nil
}
