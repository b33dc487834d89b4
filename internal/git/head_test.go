package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.js"), []byte("export default {}\n"), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("src/main.js")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	rev, err := HeadRevision(filepath.Join(dir, "src"))
	require.NoError(t, err)
	assert.Equal(t, hash.String(), rev.Commit)
	assert.Equal(t, "master", rev.Branch)
}

func TestHeadRevisionNotRepository(t *testing.T) {
	_, err := HeadRevision(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}
