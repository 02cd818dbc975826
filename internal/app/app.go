package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wkf/keygen/internal/config"
	"github.com/wkf/keygen/internal/keyboard/catalog"
	"github.com/wkf/keygen/internal/keyboard/layout"
	"github.com/wkf/keygen/internal/watcher"
)

// App wires the layout catalog, configuration, and logger behind the
// CLI commands. Command output goes to the configured writer;
// diagnostics go to the logger.
type App struct {
	cfg      *config.Config
	registry *catalog.Registry
	logger   *Logger
	out      io.Writer
	rng      *rand.Rand
}

// Options configures a new App. Zero fields fall back to defaults.
type Options struct {
	// Config is the tool configuration. Nil means config.Default().
	Config *config.Config

	// Logger receives diagnostics. Nil means a stderr logger at the
	// configured level.
	Logger *Logger

	// Out receives command output. Nil means os.Stdout.
	Out io.Writer
}

// New builds an App: registers the preset layouts, loads custom
// layouts from the configured paths, and seeds the shuffle source.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		lcfg := DefaultLoggerConfig()
		lcfg.Level = ParseLogLevel(cfg.Log.Level)
		logger = NewLogger(lcfg)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	registry := catalog.NewRegistry()
	if err := catalog.LoadDefaults(registry); err != nil {
		return nil, fmt.Errorf("loading preset layouts: %w", err)
	}

	if len(cfg.Layout.Paths) > 0 {
		loader := catalog.NewLoader()
		for _, dir := range cfg.Layout.Paths {
			loader.AddSearchPath(dir)
		}
		if err := loader.LoadAndRegister(registry); err != nil {
			return nil, fmt.Errorf("loading layout files: %w", err)
		}
	}

	seed := cfg.Shuffle.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("rng seeded with %d", seed)

	return &App{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		out:      out,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// ListLayouts writes all registered layout names, one per line.
func (a *App) ListLayouts() error {
	for _, name := range a.registry.Names() {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

// ShowLayout writes the canonical diagram of the named layout. An
// empty name selects the configured preset.
func (a *App) ShowLayout(name string) error {
	lay, _, err := a.resolve("show", name)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, lay)
	return nil
}

// ShuffleLayout copies the named layout, applies the configured number
// of random swaps, and writes the result. When saveDir is non-empty
// the variant is also written there as a TOML layout file.
func (a *App) ShuffleLayout(name, saveDir string) error {
	lay, base, err := a.resolve("shuffle", name)
	if err != nil {
		return err
	}

	shuffled := lay.Clone()
	shuffled.Shuffle(a.rng, a.cfg.Shuffle.Swaps)
	a.logger.Debug("shuffled %s with %d swaps", base, a.cfg.Shuffle.Swaps)

	fmt.Fprintln(a.out, shuffled)

	if saveDir == "" {
		return nil
	}

	f := catalog.NewVariant(base, shuffled)
	path := filepath.Join(saveDir, f.Name+".toml")
	if err := f.Save(path); err != nil {
		return NewOperationError("shuffle", path, err)
	}
	a.logger.Info("saved layout %s to %s", f.Name, path)
	fmt.Fprintf(a.out, "saved %s\n", path)
	return nil
}

// Keys writes one classification line per rune of text against the
// named layout.
func (a *App) Keys(name, text string) error {
	lay, _, err := a.resolve("keys", name)
	if err != nil {
		return err
	}
	if text == "" {
		return NewOperationError("keys", name, ErrEmptyText)
	}

	m := lay.PositionMap()
	for _, kc := range text {
		kp, ok := layout.NewKeyPress(kc, &m)
		if !ok {
			fmt.Fprintf(a.out, "%-6q not mapped\n", kc)
			continue
		}
		fmt.Fprintf(a.out, "%-6q pos=%-2d finger=%-6s hand=%-5s row=%s\n",
			kp.Key, kp.Pos, kp.Finger, kp.Hand, kp.Row)
	}
	return nil
}

// Render loads a layout file and writes its name and diagram.
func (a *App) Render(path string) error {
	f, err := catalog.LoadFile(path)
	if err != nil {
		return NewOperationError("render", path, err)
	}
	lay, err := f.Layout()
	if err != nil {
		return NewOperationError("render", path, err)
	}

	if f.Name != "" {
		fmt.Fprintln(a.out, f.Name)
	}
	fmt.Fprintln(a.out, lay)
	return nil
}

// Watch renders a layout file and re-renders whenever it changes,
// until ctx is done.
func (a *App) Watch(ctx context.Context, path string) error {
	if err := a.Render(path); err != nil {
		return err
	}

	// Re-renders read the file fresh, so one queued event is enough.
	w, err := watcher.New(path, watcher.WithBufferSize(1))
	if err != nil {
		return NewOperationError("watch", path, err)
	}
	defer w.Close()

	log := a.logger.WithComponent("watch")
	log.Info("watching %s", w.Path())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			log.Debug("%s changed (%s)", event.Path, event.Op)
			fmt.Fprintln(a.out)
			if err := a.Render(path); err != nil {
				log.Warn("render failed: %v", err)
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// resolve returns the named layout, falling back to the configured
// preset when name is blank.
func (a *App) resolve(op, name string) (layout.Layout, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = a.cfg.Layout.Preset
	}
	name = strings.ToLower(strings.TrimSpace(name))

	lay, ok := a.registry.Get(name)
	if !ok {
		return layout.Layout{}, name, NewOperationError(op, name, ErrUnknownLayout)
	}
	return lay, name, nil
}
