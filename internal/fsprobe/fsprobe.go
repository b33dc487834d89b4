// Package fsprobe performs the one-shot existence checks the build pipeline uses
// to decide which optional capabilities and directories are present.
package fsprobe

import (
	"os"
	"path/filepath"
)

// Prober answers existence questions relative to a project root.
type Prober interface {
	// Exists reports whether rel (joined onto the root unless absolute) exists.
	Exists(rel string) bool
	// Resolve returns the absolute path for rel.
	Resolve(rel string) string
}

// OS probes the real filesystem beneath Root.
type OS struct {
	Root string
}

// New returns an OS prober rooted at root (made absolute when possible).
func New(root string) OS {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return OS{Root: root}
}

func (p OS) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.Root, rel)
}

func (p OS) Exists(rel string) bool {
	_, err := os.Stat(p.Resolve(rel))
	return err == nil
}

// CheckExists returns the resolved path when rel exists, or "" otherwise.
func CheckExists(p Prober, rel string) string {
	if p.Exists(rel) {
		return p.Resolve(rel)
	}
	return ""
}

// FindExisting returns the first name in candidates that exists inside dir.
// Order matters: callers encode priority in the candidate slice.
func FindExisting(p Prober, dir string, candidates []string) string {
	for _, name := range candidates {
		if p.Exists(filepath.Join(dir, name)) {
			return name
		}
	}
	return ""
}
