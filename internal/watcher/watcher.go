package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrPathNotExist is returned by New when the watched file is missing.
var ErrPathNotExist = errors.New("path does not exist")

// Op describes what happened to the watched file.
type Op uint8

// Operations, combinable as a bitmask.
const (
	OpWrite Op = 1 << iota
	OpCreate
	OpRemove
	OpRename
)

// Has reports whether op contains o.
func (op Op) Has(o Op) bool {
	return op&o != 0
}

func (op Op) String() string {
	names := []struct {
		op   Op
		name string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
	}

	s := ""
	for _, n := range names {
		if !op.Has(n.op) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "none"
	}
	return s
}

// Event is one observed change to the watched file.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Option configures a FileWatcher.
type Option func(*options)

type options struct {
	debounce   time.Duration
	bufferSize int
}

// WithDebounce sets how long to wait for a burst of events to settle
// before reporting one combined event.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithBufferSize sets the event channel capacity.
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufferSize = n
	}
}

// FileWatcher watches one file via fsnotify.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	path    string

	events chan Event
	errors chan error

	debounce time.Duration

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher for the given file. The file must exist.
func New(path string, opts ...Option) (*FileWatcher, error) {
	o := options{
		debounce:   100 * time.Millisecond,
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(&o)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		watcher:  fsw,
		path:     absPath,
		events:   make(chan Event, o.bufferSize),
		errors:   make(chan error, o.bufferSize),
		debounce: o.debounce,
		closeCh:  make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Events returns the event channel. It is closed by Close.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Safe to call more than once.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	// Wait for processLoop to finish
	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop collapses raw fsnotify events into debounced file events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var (
		pending    Event
		hasPending bool
	)

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			op := convertOp(fsEvent.Op)
			if op == 0 || filepath.Clean(fsEvent.Name) != w.path {
				continue
			}
			if hasPending {
				pending.Op |= op
			} else {
				pending = Event{Path: w.path, Op: op}
				hasPending = true
			}
			pending.Timestamp = time.Now()
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if hasPending {
				w.send(pending)
				hasPending = false
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// convertOp converts fsnotify.Op, dropping chmod noise.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}

func (w *FileWatcher) send(event Event) {
	select {
	case w.events <- event:
	default:
		// Channel full, drop event
	}
}

func (w *FileWatcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		// Channel full, drop error
	}
}
