package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wkf/keygen/internal/keyboard/layout"
)

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()

	if err := FromLayout("custom-a", layout.Colemak()).Save(filepath.Join(dir, "a.toml")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := FromLayout("custom-b", layout.Workman()).Save(filepath.Join(dir, "b.json")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	l := NewLoader()
	l.AddSearchPath(dir)

	files, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("LoadAll() returned %d files, want 2", len(files))
	}

	names := map[string]bool{}
	for _, f := range files {
		names[f.Name] = true
	}
	for _, want := range []string{"custom-a", "custom-b"} {
		if !names[want] {
			t.Errorf("LoadAll() missing %q", want)
		}
	}
}

func TestLoadAllEmptySearchPaths(t *testing.T) {
	files, err := NewLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("LoadAll() returned %d files, want 0", len(files))
	}
}

func TestLoadAndRegister(t *testing.T) {
	dir := t.TempDir()
	if err := FromLayout("custom", layout.QGMLWY()).Save(filepath.Join(dir, "custom.toml")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	l := NewLoader()
	l.AddSearchPath(dir)

	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}
	if err := l.LoadAndRegister(r); err != nil {
		t.Fatalf("LoadAndRegister() error: %v", err)
	}

	lay, ok := r.Get("custom")
	if !ok {
		t.Fatal("Get(\"custom\") not found after LoadAndRegister")
	}
	if got, want := lay.String(), layout.QGMLWY().String(); got != want {
		t.Errorf("loaded layout =\n%s\nwant\n%s", got, want)
	}
}

func TestLoadAndRegisterBadRows(t *testing.T) {
	dir := t.TempDir()
	bad := `name = "stub"

[layers]
lower = ["abc"]
upper = ["abc"]
`
	if err := os.WriteFile(filepath.Join(dir, "stub.toml"), []byte(bad), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	l := NewLoader()
	l.AddSearchPath(dir)

	if err := l.LoadAndRegister(NewRegistry()); err == nil {
		t.Error("LoadAndRegister() succeeded on a malformed layout, want error")
	}
}
