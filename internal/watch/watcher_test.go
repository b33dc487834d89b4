package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRebuildsOnSourceChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "pages"), 0o750))

	rebuilt := make(chan struct{}, 4)
	w, err := New(Options{
		Root:     root,
		Trees:    []string{"src"},
		Files:    []string{"mpbuild.yaml"},
		Debounce: 20 * time.Millisecond,
	}, func(context.Context) error {
		rebuilt <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	// give Run time to register the watches
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "pages", "index.js"), []byte("x"), 0o600))
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a rebuild after a source change")
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "mpbuild.yaml"), []byte("parser: regex\n"), 0o600))
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a rebuild after a config change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))

	var count atomic.Int32
	w, err := New(Options{Root: root, Trees: []string{"src"}, Debounce: 200 * time.Millisecond}, func(context.Context) error {
		count.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.js"), []byte{byte('a' + i)}, 0o600))
	}
	time.Sleep(time.Second)
	assert.Equal(t, int32(1), count.Load())
}

func TestRelevantFiltersIgnoredAndForeignPaths(t *testing.T) {
	root := t.TempDir()
	w, err := New(Options{
		Root:   root,
		Trees:  []string{"src"},
		Files:  []string{"mpbuild.yaml"},
		Ignore: []string{"src/native/dist"},
	}, func(context.Context) error { return nil })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.fsw.Close() })

	ev := func(rel string, op fsnotify.Op) fsnotify.Event {
		return fsnotify.Event{Name: filepath.Join(root, rel), Op: op}
	}
	assert.True(t, w.relevant(ev("src/main.js", fsnotify.Write)))
	assert.True(t, w.relevant(ev("mpbuild.yaml", fsnotify.Write)))
	assert.False(t, w.relevant(ev("src/main.js", fsnotify.Chmod)))
	assert.False(t, w.relevant(ev("src/native/dist/a.js", fsnotify.Write)))
	assert.False(t, w.relevant(ev("README.md", fsnotify.Write)))
	assert.False(t, w.relevant(ev("srcfoo/a.js", fsnotify.Write)))
}
