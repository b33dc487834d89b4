// Package testutil holds fixtures shared by package tests: throwaway project trees
// and assertions over what a build left on disk.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteProject materializes files (slash-separated paths relative to the project
// root) in a fresh temporary directory and returns its path.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

// ProjectAssertions checks file system state below a project root.
type ProjectAssertions struct {
	t    *testing.T
	root string
}

// NewProjectAssertions creates an assertions helper for root.
func NewProjectAssertions(t *testing.T, root string) *ProjectAssertions {
	return &ProjectAssertions{t: t, root: root}
}

// AssertFileExists validates that a file exists.
func (pa *ProjectAssertions) AssertFileExists(rel string) *ProjectAssertions {
	pa.t.Helper()
	full := filepath.Join(pa.root, filepath.FromSlash(rel))
	if fi, err := os.Stat(full); err != nil {
		pa.t.Errorf("Expected file to exist: %s", full)
	} else if fi.IsDir() {
		pa.t.Errorf("Expected %s to be a file, but it's a directory", full)
	}
	return pa
}

// AssertNotExists validates that nothing exists at rel.
func (pa *ProjectAssertions) AssertNotExists(rel string) *ProjectAssertions {
	pa.t.Helper()
	full := filepath.Join(pa.root, filepath.FromSlash(rel))
	if _, err := os.Stat(full); err == nil {
		pa.t.Errorf("Expected %s to not exist", full)
	}
	return pa
}

// AssertFileContains validates that a file contains expected content.
func (pa *ProjectAssertions) AssertFileContains(rel, expected string) *ProjectAssertions {
	pa.t.Helper()
	full := filepath.Join(pa.root, filepath.FromSlash(rel))
	// #nosec G304 - test helper
	data, err := os.ReadFile(full)
	if err != nil {
		pa.t.Errorf("Failed to read %s: %v", full, err)
		return pa
	}
	if !strings.Contains(string(data), expected) {
		pa.t.Errorf("Expected %s to contain %q", full, expected)
	}
	return pa
}
