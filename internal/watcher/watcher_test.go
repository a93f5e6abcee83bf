package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu        sync.Mutex
	processed []string
	removed   []string
}

func (r *recorder) handler() HandlerFuncs {
	return HandlerFuncs{
		OnProcess: func(_ context.Context, path string) {
			r.mu.Lock()
			r.processed = append(r.processed, path)
			r.mu.Unlock()
		},
		OnRemove: func(_ context.Context, path string) {
			r.mu.Lock()
			r.removed = append(r.removed, path)
			r.mu.Unlock()
		},
	}
}

func (r *recorder) snapshot() (processed, removed []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.processed...), append([]string(nil), r.removed...)
}

func hasSuffix(paths []string, suffix string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

func TestWatcher_AddRemoveDirectories(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	w := New(nil, []string{".txt"}, true, rec.handler())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.AddDirectory(dir, false); err != nil {
		t.Fatal(err)
	}
	if err := w.AddDirectory(dir, false); err != nil {
		t.Fatal(err)
	}
	dirs := w.Directories()
	if len(dirs) != 1 || filepath.Clean(dirs[0]) != filepath.Clean(dir) {
		t.Errorf("Directories() = %v", dirs)
	}

	if err := w.RemoveDirectory(dir); err != nil {
		t.Fatal(err)
	}
	if len(w.Directories()) != 0 {
		t.Errorf("after remove: %v", w.Directories())
	}
}

func TestWatcher_DebounceAndExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w := New([]string{dir}, []string{".txt"}, true, rec.handler(), WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	f := filepath.Join(sub, "contract.txt")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(f, []byte(strings.Repeat("x", i+1)), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "ignore.xyz"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)

	processed, _ := rec.snapshot()
	if len(processed) != 1 || !strings.HasSuffix(processed[0], "contract.txt") {
		t.Errorf("expected one debounced callback for contract.txt, got %v", processed)
	}
}

func TestWatcher_RemoveEvent(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "old.txt")
	if err := os.WriteFile(f, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w := New([]string{dir}, []string{".txt"}, true, rec.handler(), WithDebounce(50*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.Remove(f); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	_, removed := rec.snapshot()
	if !hasSuffix(removed, "old.txt") {
		t.Errorf("expected remove callback for old.txt, got %v", removed)
	}
}

func TestMatchExtension(t *testing.T) {
	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"/a/b.txt", []string{".txt"}, true},
		{"/a/b.TXT", []string{".txt"}, true},
		{"/a/b.pdf", []string{"pdf"}, true},
		{"/a/b.md", []string{".txt"}, false},
		{"/a/b", nil, true},
		{"/a/b", []string{}, true},
	}
	for _, tt := range tests {
		if got := matchExtension(tt.path, tt.extensions); got != tt.want {
			t.Errorf("matchExtension(%q, %v) = %v, want %v", tt.path, tt.extensions, got, tt.want)
		}
	}
}

func TestInDir(t *testing.T) {
	tests := []struct {
		dir  string
		path string
		want bool
	}{
		{"/tmp/a", "/tmp/a", true},
		{"/tmp/a", "/tmp/a/b.txt", true},
		{"/tmp/a", "/tmp/b", false},
		{"/tmp/a", "/tmp/a/../b", false},
	}
	for _, tt := range tests {
		if got := inDir(tt.dir, tt.path); got != tt.want {
			t.Errorf("inDir(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
		}
	}
}

func TestWatcher_SyncExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"a.txt": "hello", "ignore.xyz": "x", "nested/b.txt": "deep"} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("recursive", func(t *testing.T) {
		rec := &recorder{}
		w := New([]string{dir}, []string{".txt"}, true, rec.handler())
		if err := w.Start(context.Background()); err != nil {
			t.Fatal(err)
		}
		defer w.Stop()
		w.SyncExistingFiles()
		processed, _ := rec.snapshot()
		if len(processed) != 2 || !hasSuffix(processed, "a.txt") || !hasSuffix(processed, "b.txt") {
			t.Errorf("processed = %v", processed)
		}
	})
	t.Run("flat", func(t *testing.T) {
		rec := &recorder{}
		w := New([]string{dir}, []string{".txt"}, false, rec.handler())
		if err := w.Start(context.Background()); err != nil {
			t.Fatal(err)
		}
		defer w.Stop()
		w.SyncExistingFiles()
		processed, _ := rec.snapshot()
		if len(processed) != 1 || !strings.HasSuffix(processed[0], "a.txt") {
			t.Errorf("processed = %v", processed)
		}
	})
}

func TestWatcher_Start_createsMissingRootDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "watch", "me")
	w := New([]string{root}, []string{".txt"}, true, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root directory should exist after Start: %v", err)
	}
}

func TestWatcher_NewDirectoryIsProcessed(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}
	w := New([]string{dir}, []string{".txt", ".md"}, true, rec.handler(), WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	nested := filepath.Join(dir, "level1", "level2")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "deep.txt"), []byte("deep"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "notes.md"), []byte("notes"), 0600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(800 * time.Millisecond)

	processed, _ := rec.snapshot()
	if !hasSuffix(processed, "deep.txt") || !hasSuffix(processed, "notes.md") {
		t.Errorf("expected deep.txt and notes.md to be processed, got %v", processed)
	}
}

func TestWatcher_Resync(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	w := New([]string{dir}, []string{".txt"}, true, rec.handler(), WithResync("@every 1s"))
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(1500 * time.Millisecond)
	processed, _ := rec.snapshot()
	if !hasSuffix(processed, "a.txt") {
		t.Errorf("expected resync to process a.txt, got %v", processed)
	}
}

func TestWatcher_InvalidResyncSchedule(t *testing.T) {
	w := New([]string{t.TempDir()}, nil, true, nil, WithResync("every so often"))
	if err := w.Start(context.Background()); err == nil {
		w.Stop()
		t.Fatal("expected invalid schedule error")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New([]string{t.TempDir()}, nil, true, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
