package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/wkf/keygen/internal/keyboard/grid"
	"github.com/wkf/keygen/internal/keyboard/layout"
)

// ErrUnsupportedFormat is returned for layout file extensions other
// than .toml and .json.
var ErrUnsupportedFormat = errors.New("unsupported layout file format")

// rowLens splits a 33-key layer into its display rows.
var rowLens = [...]int{11, 11, 10, 1}

// File is the on-disk form of a layout.
type File struct {
	Name   string `toml:"name" json:"name"`
	Meta   Meta   `toml:"meta,omitempty" json:"meta,omitempty"`
	Layers Layers `toml:"layers" json:"layers"`
}

// Meta records where a saved layout came from.
//
// Created must not carry a toml omitempty tag: go-toml decides struct
// emptiness from exported fields, and time.Time has none, so the tag
// would drop the timestamp even when set.
type Meta struct {
	ID        string    `toml:"id,omitempty" json:"id,omitempty"`
	Created   time.Time `toml:"created" json:"created,omitempty"`
	Generator string    `toml:"generator,omitempty" json:"generator,omitempty"`
}

// Layers holds both shift states as row strings, 11/11/10/1 keys each.
type Layers struct {
	Lower []string `toml:"lower" json:"lower"`
	Upper []string `toml:"upper" json:"upper"`
}

// FromLayout converts a layout to its file form.
func FromLayout(name string, lay layout.Layout) *File {
	return &File{
		Name: name,
		Layers: Layers{
			Lower: layerRows(lay.Lower()),
			Upper: layerRows(lay.Upper()),
		},
	}
}

// NewVariant builds a file for a generated variant of a base layout,
// tagged with a fresh ID. The name is the base name plus a short ID
// prefix so saved variants never collide.
func NewVariant(base string, lay layout.Layout) *File {
	id := uuid.NewString()
	f := FromLayout(fmt.Sprintf("%s-%s", base, id[:8]), lay)
	f.Meta = Meta{
		ID:        id,
		Created:   time.Now().UTC(),
		Generator: "shuffle",
	}
	return f
}

// Layout reconstructs the layout described by the file.
func (f *File) Layout() (layout.Layout, error) {
	lower, err := parseRows(f.Layers.Lower)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("lower layer: %w", err)
	}
	upper, err := parseRows(f.Layers.Upper)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("upper layer: %w", err)
	}
	return layout.New(lower, upper), nil
}

// Save writes the file as TOML or JSON depending on the extension.
func (f *File) Save(path string) error {
	var data []byte
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(f)
	case ".json":
		data, err = json.MarshalIndent(f, "", "  ")
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("encoding layout %q: %w", f.Name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing layout file: %w", err)
	}
	return nil
}

// LoadFile reads a layout file, choosing the codec by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &f, nil
}

// layerRows renders a layer as row strings.
func layerRows(l layout.Layer) []string {
	rows := make([]string, 0, len(rowLens))
	pos := 0
	for _, n := range rowLens {
		runes := make([]rune, 0, n)
		for i := 0; i < n; i++ {
			runes = append(runes, l.KeyAt(pos))
			pos++
		}
		rows = append(rows, string(runes))
	}
	return rows
}

// parseRows rebuilds a layer's key array from row strings.
func parseRows(rows []string) ([grid.Size]rune, error) {
	var keys [grid.Size]rune

	if len(rows) != len(rowLens) {
		return keys, fmt.Errorf("has %d rows, want %d", len(rows), len(rowLens))
	}

	pos := 0
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != rowLens[i] {
			return keys, fmt.Errorf("row %d has %d keys, want %d", i, len(runes), rowLens[i])
		}
		for _, kc := range runes {
			keys[pos] = kc
			pos++
		}
	}

	return keys, nil
}
