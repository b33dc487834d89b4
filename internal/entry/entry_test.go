package entry

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/mpbuild/internal/appconfig"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestFindRootPriority(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string
	}{
		{"main wins over everything", []string{"app.vue", "App.vue", "index.js", "main.js"}, "main.js"},
		{"index before vue", []string{"App.vue", "index.js"}, "index.js"},
		{"App.vue before app.vue", []string{"app.vue", "App.vue"}, "App.vue"},
		{"only app.vue", []string{"app.vue"}, "app.vue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.present {
				writeFile(t, root, filepath.Join("src", f), "")
			}
			got, err := FindRoot(fsprobe.New(root), "src")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, "src", tt.want), got)
		})
	}
}

func TestFindRootMissing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))

	_, err := FindRoot(fsprobe.New(root), "src")
	require.Error(t, err)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.True(t, classified.IsFatal())
	assert.Equal(t, ferrors.CategoryEntry, classified.Category())
	assert.Equal(t, 1, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	hint, _ := classified.Context().GetString("hint")
	for _, name := range []string{"main.js", "index.js", "App.vue", "app.vue"} {
		assert.Contains(t, hint, name)
	}
	dir, _ := classified.Context().GetString("dir")
	assert.Equal(t, filepath.Join(root, "src"), dir)
}

// vanishingProber reports a candidate during discovery but not at verification.
type vanishingProber struct {
	fsprobe.OS
	calls int
}

func (v *vanishingProber) Exists(rel string) bool {
	v.calls++
	return v.calls == 1
}

func TestFindRootVanishedEntry(t *testing.T) {
	p := &vanishingProber{OS: fsprobe.New(t.TempDir())}
	_, err := FindRoot(p, "src")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryEntry))
	assert.Contains(t, err.Error(), "main.js does not exist")
}

func TestPagesExample(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(fsprobe.New(root), "src")
	cfg := appconfig.AppConfig{
		Pages:       []string{"pages/index/index"},
		Subpackages: []appconfig.Subpackage{{Root: "packageA", Pages: []string{"pages/test/index"}}},
	}

	rootEntry := filepath.Join(root, "src", "index.js")
	entries, warnings := r.Pages(rootEntry, cfg)
	require.Empty(t, warnings)
	assert.Equal(t, Map{
		"app":                       rootEntry,
		"pages/index/index":         filepath.Join(root, "src", "pages", "index", "index.js"),
		"packageA/pages/test/index": filepath.Join(root, "src", "packageA", "pages", "test", "index.js"),
	}, entries)
}

func TestPagesMissingRootSubpackage(t *testing.T) {
	r := NewResolver(fsprobe.New(t.TempDir()), "src")
	cfg := appconfig.AppConfig{
		Pages: []string{"pages/index/index"},
		Subpackages: []appconfig.Subpackage{
			{Pages: []string{"pages/test/index", "pages/test/other", "pages/test/third"}},
			{Root: "packageB", Pages: []string{"pages/x"}},
		},
	}

	entries, warnings := r.Pages("/root.js", cfg)
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeMissingSubpackageRoot, warnings[0].Code())
	idx, _ := warnings[0].Context().GetInt("index")
	assert.Equal(t, 0, idx)
	assert.Len(t, entries, 3)
	assert.Contains(t, entries, "packageB/pages/x")
}

func TestPagesEntryCount(t *testing.T) {
	for n := 0; n < 4; n++ {
		for m := 0; m < 3; m++ {
			t.Run(fmt.Sprintf("N=%d,M=%d", n, m), func(t *testing.T) {
				cfg := appconfig.AppConfig{}
				for i := 0; i < n; i++ {
					cfg.Pages = append(cfg.Pages, fmt.Sprintf("pages/p%d/index", i))
				}
				valid := appconfig.Subpackage{Root: "pkg"}
				for i := 0; i < m; i++ {
					valid.Pages = append(valid.Pages, fmt.Sprintf("pages/s%d", i))
				}
				cfg.Subpackages = []appconfig.Subpackage{valid, {Pages: []string{"ignored"}}}

				entries, warnings := NewResolver(fsprobe.New(t.TempDir()), "").Pages("/root.js", cfg)
				assert.Len(t, entries, 1+n+m)
				assert.Len(t, warnings, 1)
				assert.Equal(t, "/root.js", entries[AppEntry])
			})
		}
	}
}

func TestPagesCollisionLastWins(t *testing.T) {
	root := t.TempDir()
	cfg := appconfig.AppConfig{
		Pages:       []string{"pkg/pages/a"},
		Subpackages: []appconfig.Subpackage{{Root: "pkg", Pages: []string{"pages/a"}}},
	}
	entries, warnings := NewResolver(fsprobe.New(root), "src").Pages("/root.js", cfg)
	assert.Empty(t, warnings)
	assert.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(root, "src", "pkg", "pages", "a.js"), entries["pkg/pages/a"])
}

func TestPagesReservedName(t *testing.T) {
	entries, warnings := NewResolver(fsprobe.New(t.TempDir()), "src").Pages("/root.js", appconfig.AppConfig{Pages: []string{"app"}})
	require.Len(t, warnings, 1)
	assert.Equal(t, CodeReservedEntryName, warnings[0].Code())
	assert.Equal(t, Map{"app": "/root.js"}, entries)
}

func TestPagesKeepDeclaredSubpackageNames(t *testing.T) {
	root := t.TempDir()
	entries, warnings := NewResolver(fsprobe.New(root), "src").Pages("/root.js", appconfig.AppConfig{
		Subpackages: []appconfig.Subpackage{{Root: "packageA/", Pages: []string{"pages/a"}}},
	})
	require.Empty(t, warnings)
	assert.Equal(t, filepath.Join(root, "src", "packageA", "pages", "a.js"), entries["packageA//pages/a"])
	assert.Len(t, entries, 2)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/index.js", `export default { config: { pages: ['pages/index/index'], subpackages: [{ pages: ['pages/test/index'] }] } }`)

	res, err := NewResolver(fsprobe.New(root), "src").Resolve(appconfig.NewParser(nil), os.ReadFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "index.js"), res.RootEntry)
	assert.Equal(t, []string{"app", "pages/index/index"}, res.Entries.Names())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, CodeMissingSubpackageRoot, res.Warnings[0].Code())
}

func TestResolveSingleQuotedDeclaration(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.js", `import Vue from 'vue'
import App from './App'

export default {
  config: {
    pages: ['pages/index/index'],
    subpackages: [{ root: 'packageA', pages: ['pages/test/index'] }]
  }
}
`)

	res, err := NewResolver(fsprobe.New(root), "src").Resolve(appconfig.NewParser(nil), os.ReadFile)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, Map{
		AppEntry:                    filepath.Join(root, "src", "main.js"),
		"pages/index/index":         filepath.Join(root, "src", "pages", "index", "index.js"),
		"packageA/pages/test/index": filepath.Join(root, "src", "packageA", "pages", "test", "index.js"),
	}, res.Entries)
}

func TestResolveMissingRootHasNoResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/pages/index/index.js", "")

	res, err := NewResolver(fsprobe.New(root), "src").Resolve(appconfig.NewParser(nil), os.ReadFile)
	require.Error(t, err)
	assert.Nil(t, res)
}
