// Package watcher watches document directories with fsnotify, debounces
// changes, and hands matching files to a Handler. Watched roots can be
// rescanned on a cron schedule.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/pkg/utils"
)

const defaultDebounce = 400 * time.Millisecond

// Handler receives file events after debouncing and extension filtering.
type Handler interface {
	Process(ctx context.Context, path string)
	Remove(ctx context.Context, path string)
}

// HandlerFuncs adapts plain functions to Handler. Nil functions are skipped.
type HandlerFuncs struct {
	OnProcess func(ctx context.Context, path string)
	OnRemove  func(ctx context.Context, path string)
}

// Process implements Handler.
func (h HandlerFuncs) Process(ctx context.Context, path string) {
	if h.OnProcess != nil {
		h.OnProcess(ctx, path)
	}
}

// Remove implements Handler.
func (h HandlerFuncs) Remove(ctx context.Context, path string) {
	if h.OnRemove != nil {
		h.OnRemove(ctx, path)
	}
}

// Watcher watches directories and invokes its Handler on file changes.
type Watcher struct {
	roots      []string
	extensions []string
	recursive  bool
	handler    Handler
	debounce   time.Duration
	schedule   string
	logger     *zap.Logger

	mu        sync.Mutex
	fsw       *fsnotify.Watcher
	cron      *cron.Cron
	ctx       context.Context
	pending   map[string]*time.Timer
	rootPaths map[string][]string // root -> watched directories under it
	done      chan struct{}
	started   bool
	stopOnce  sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = utils.OrNop(l) }
}

// WithDebounce sets how long a file must be quiet before it is processed.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithResync rescans every watched root on the given cron schedule
// (for example "@every 1h" or "0 2 * * *"). Empty disables rescans.
func WithResync(schedule string) Option {
	return func(w *Watcher) { w.schedule = strings.TrimSpace(schedule) }
}

// New creates a watcher over roots. extensions filter which files are
// handled (empty = all).
func New(roots, extensions []string, recursive bool, h Handler, opts ...Option) *Watcher {
	w := &Watcher{
		roots:      append([]string(nil), roots...),
		extensions: extensions,
		recursive:  recursive,
		handler:    h,
		debounce:   defaultDebounce,
		logger:     zap.NewNop(),
		ctx:        context.Background(),
		pending:    make(map[string]*time.Timer),
		rootPaths:  make(map[string][]string),
		done:       make(chan struct{}),
	}
	if w.handler == nil {
		w.handler = HandlerFuncs{}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. Missing roots are created. It returns once the
// watches are in place; events are handled until ctx is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw
	for _, root := range w.roots {
		if err := w.addRootLocked(root); err != nil {
			_ = fsw.Close()
			w.fsw = nil
			return err
		}
	}
	if w.schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(w.schedule, w.SyncExistingFiles); err != nil {
			_ = fsw.Close()
			w.fsw = nil
			return fmt.Errorf("invalid resync schedule %q: %w", w.schedule, err)
		}
		c.Start()
		w.cron = c
	}
	w.ctx = ctx
	w.started = true
	w.logger.Debug("watcher started",
		zap.Strings("roots", w.roots),
		zap.Strings("extensions", w.extensions),
		zap.Bool("recursive", w.recursive),
		zap.String("resync", w.schedule))
	go w.run(ctx, fsw.Events, fsw.Errors)
	return nil
}

func (w *Watcher) run(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.logger.Debug("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	path := ev.Name
	if !w.underRoot(path) {
		return
	}
	w.logger.Debug("watcher event", zap.String("op", ev.Op.String()), zap.String("path", path))
	switch {
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			w.handleNewDirectory(path)
			return
		}
		if matchExtension(path, w.extensions) {
			w.debounceProcess(path)
		}
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		w.cancel(path)
		if matchExtension(path, w.extensions) {
			w.handler.Remove(w.context(), path)
		}
	}
}

// handleNewDirectory watches a directory that appeared under a root and
// processes the files already inside it.
func (w *Watcher) handleNewDirectory(dir string) {
	w.mu.Lock()
	fsw := w.fsw
	w.mu.Unlock()
	if fsw == nil {
		return
	}
	if w.recursive {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if err := fsw.Add(path); err != nil {
				w.logger.Debug("watcher failed to add directory", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	} else if err := fsw.Add(dir); err != nil {
		w.logger.Debug("watcher failed to add directory", zap.String("path", dir), zap.Error(err))
	}
	w.syncDirectory(dir)
}

func (w *Watcher) underRoot(path string) bool {
	clean := filepath.Clean(path)
	for _, root := range w.Directories() {
		if inDir(filepath.Clean(root), clean) {
			return true
		}
	}
	return false
}

func inDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func matchExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range extensions {
		if strings.TrimPrefix(strings.ToLower(e), ".") == ext {
			return true
		}
	}
	return false
}

// debounceProcess (re)arms the debounce timer for path.
func (w *Watcher) debounceProcess(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		ctx := w.ctx
		w.mu.Unlock()
		w.handler.Process(ctx, path)
	})
}

func (w *Watcher) cancel(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[path]; ok {
		t.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) context() context.Context {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ctx
}

// AddDirectory adds a root directory to watch and optionally processes the
// files already in it. It is a no-op before Start.
func (w *Watcher) AddDirectory(root string, syncExisting bool) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	for _, r := range w.roots {
		if filepath.Clean(r) == filepath.Clean(abs) {
			return nil
		}
	}
	if err := w.addRootLocked(abs); err != nil {
		return err
	}
	w.roots = append(w.roots, abs)
	w.logger.Debug("watcher directory added", zap.String("path", abs), zap.Bool("sync_existing", syncExisting))
	if syncExisting {
		go w.syncDirectory(abs)
	}
	return nil
}

func (w *Watcher) addRootLocked(root string) error {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	var paths []string
	if w.recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if err := w.fsw.Add(path); err != nil {
				return err
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		if err := w.fsw.Add(root); err != nil {
			return err
		}
		paths = append(paths, root)
	}
	w.rootPaths[root] = paths
	return nil
}

func (w *Watcher) syncDirectory(root string) {
	ctx := w.context()
	w.logger.Debug("watcher syncing directory", zap.String("root", root))
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return filepath.SkipAll
		}
		if d.IsDir() {
			if path != root && !w.recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if matchExtension(path, w.extensions) {
			w.handler.Process(ctx, path)
		}
		return nil
	})
}

// RemoveDirectory stops watching the given root. Existing reports are kept.
func (w *Watcher) RemoveDirectory(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	abs = filepath.Clean(abs)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	for i, r := range w.roots {
		if filepath.Clean(r) != abs {
			continue
		}
		for _, p := range w.rootPaths[abs] {
			_ = w.fsw.Remove(p)
		}
		delete(w.rootPaths, abs)
		w.roots = append(w.roots[:i], w.roots[i+1:]...)
		w.logger.Debug("watcher directory removed", zap.String("path", abs))
		return nil
	}
	return nil
}

// Directories returns a copy of the current watched root directories.
func (w *Watcher) Directories() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.roots...)
}

// SyncExistingFiles processes every matching file under each watched root.
// It runs after Start for files that were already present and on each
// scheduled resync.
func (w *Watcher) SyncExistingFiles() {
	roots := w.Directories()
	w.logger.Debug("watcher syncing existing files", zap.Strings("roots", roots))
	for _, root := range roots {
		w.syncDirectory(root)
	}
}

// Stop stops the watcher and releases resources. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	if w.cron != nil {
		w.cron.Stop()
		w.cron = nil
	}
	_ = w.fsw.Close()
	w.fsw = nil
	w.started = false
	w.mu.Unlock()
	w.stopOnce.Do(func() { close(w.done) })
}
