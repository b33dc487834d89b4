// Package watch rebuilds the bundler configuration when project sources or the
// project configuration change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of editor writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// skipDirs are never descended into.
var skipDirs = []string{"node_modules", ".git"}

// RebuildFunc is invoked once per debounced batch of changes.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors a project tree and triggers rebuilds.
type Watcher struct {
	root     string
	trees    []string
	files    []string
	ignore   []string
	debounce time.Duration
	rebuild  RebuildFunc
	fsw      *fsnotify.Watcher
}

// Options configures a Watcher. Trees are watched recursively; Files are watched
// through their parent directory. Ignore lists directory prefixes (build output,
// config output) whose events never trigger a rebuild.
type Options struct {
	Root     string
	Trees    []string
	Files    []string
	Ignore   []string
	Debounce time.Duration
}

// New creates a watcher. Call Run to start it.
func New(opts Options, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	w := &Watcher{root: root, debounce: opts.Debounce, rebuild: rebuild, fsw: fsw}
	for _, t := range opts.Trees {
		w.trees = append(w.trees, w.abs(t))
	}
	for _, f := range opts.Files {
		w.files = append(w.files, w.abs(f))
	}
	for _, i := range opts.Ignore {
		w.ignore = append(w.ignore, w.abs(i))
	}
	return w, nil
}

func (w *Watcher) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(w.root, p)
}

// Run watches until ctx is canceled. Rebuilds run on the calling goroutine, so
// they never overlap; rebuild errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	for _, t := range w.trees {
		if err := w.addTree(t); err != nil {
			return err
		}
	}
	for _, dir := range w.fileDirs() {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	slog.Info("Watching for changes", logfields.Path(w.root), slog.Int("trees", len(w.trees)), slog.Int("files", len(w.files)))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("Change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		case <-fire:
			fire = nil
			if err := w.rebuild(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) fileDirs() []string {
	var dirs []string
	for _, f := range w.files {
		d := filepath.Dir(f)
		if !slices.Contains(dirs, d) && !w.inTree(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (w *Watcher) addTree(root string) error {
	if _, err := os.Stat(root); err != nil {
		slog.Debug("Watch tree missing; skipping", logfields.Path(root))
		return nil
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && (slices.Contains(skipDirs, d.Name()) || w.ignored(p)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(ev.Name)
	if w.ignored(name) {
		return false
	}
	if slices.Contains(w.files, name) {
		return true
	}
	if !w.inTree(name) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(name); err == nil && fi.IsDir() {
			if err := w.addTree(name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(name), logfields.Error(err))
			}
		}
	}
	return true
}

func (w *Watcher) inTree(p string) bool {
	for _, t := range w.trees {
		if within(t, p) {
			return true
		}
	}
	return false
}

func (w *Watcher) ignored(p string) bool {
	for _, i := range w.ignore {
		if within(i, p) {
			return true
		}
	}
	return false
}

func within(dir, p string) bool {
	return p == dir || strings.HasPrefix(p, dir+string(filepath.Separator))
}
