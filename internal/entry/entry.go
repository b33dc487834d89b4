// Package entry resolves the bundler entry graph: the application root entry plus
// one entry per declared page and subpackage page.
package entry

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/mpbuild/internal/appconfig"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
)

// AppEntry is the reserved entry name of the application root.
const AppEntry = "app"

// CodeMissingSubpackageRoot is the warning code for a subpackage without root.
const CodeMissingSubpackageRoot = "missing_subpackage_root"

// CodeReservedEntryName is the warning code for a page that shadows AppEntry.
const CodeReservedEntryName = "reserved_entry_name"

// RootCandidates lists root entry filenames in priority order.
var RootCandidates = []string{"main.js", "index.js", "App.vue", "app.vue"}

// Map is entry name -> absolute source path.
type Map map[string]string

// Names returns the entry names sorted.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FindRoot locates the root entry inside srcDir. A missing entry is fatal.
func FindRoot(p fsprobe.Prober, srcDir string) (string, error) {
	name := fsprobe.FindExisting(p, srcDir, RootCandidates)
	if name == "" {
		return "", ferrors.EntryError("Failed to locate entry file").
			WithContext("dir", p.Resolve(srcDir)).
			WithContext("candidates", append([]string(nil), RootCandidates...)).
			WithContext("hint", "Valid entry file should be one of: "+candidateList()+".").
			Build()
	}
	rel := filepath.Join(srcDir, name)
	if !p.Exists(rel) {
		return "", ferrors.EntryError(fmt.Sprintf("Entry file %s does not exist", name)).
			WithContext("dir", p.Resolve(srcDir)).
			WithContext("file", name).
			Build()
	}
	return p.Resolve(rel), nil
}

func candidateList() string {
	head := RootCandidates[:len(RootCandidates)-1]
	return strings.Join(head, ", ") + " or " + RootCandidates[len(RootCandidates)-1]
}

// Resolver builds entry maps for one project.
type Resolver struct {
	prober fsprobe.Prober
	srcDir string
}

// NewResolver returns a Resolver for sources under srcDir (relative to the prober root).
func NewResolver(p fsprobe.Prober, srcDir string) *Resolver {
	if srcDir == "" {
		srcDir = "src"
	}
	return &Resolver{prober: p, srcDir: srcDir}
}

// SourceDir returns the configured source directory.
func (r *Resolver) SourceDir() string { return r.srcDir }

// Root locates the root entry file.
func (r *Resolver) Root() (string, error) { return FindRoot(r.prober, r.srcDir) }

// Pages registers one entry per page and per valid subpackage page, then assigns
// the reserved root entry. Later registrations override earlier ones.
func (r *Resolver) Pages(rootEntry string, cfg appconfig.AppConfig) (Map, []*ferrors.ClassifiedError) {
	entries := make(Map, 1+len(cfg.Pages))
	var warnings []*ferrors.ClassifiedError

	for _, page := range cfg.Pages {
		r.register(entries, page)
	}
	for i, sp := range cfg.Subpackages {
		if sp.Root == "" {
			warnings = append(warnings, ferrors.AppConfigWarning(CodeMissingSubpackageRoot,
				fmt.Sprintf("'subpackages[%d]' must configure 'root' path", i)).
				WithContext("index", i).
				WithContext("pages", len(sp.Pages)).
				Build())
			continue
		}
		// names keep the declared spelling; only the file path is cleaned
		for _, page := range sp.Pages {
			r.register(entries, sp.Root+"/"+page)
		}
	}

	if _, clash := entries[AppEntry]; clash {
		warnings = append(warnings, ferrors.AppConfigWarning(CodeReservedEntryName,
			fmt.Sprintf("page %q collides with the reserved root entry and is ignored", AppEntry)).
			WithContext("entry", AppEntry).
			Build())
	}
	entries[AppEntry] = rootEntry
	return entries, warnings
}

func (r *Resolver) register(entries Map, name string) {
	file := r.prober.Resolve(filepath.Join(r.srcDir, filepath.FromSlash(name)+".js"))
	if prev, ok := entries[name]; ok {
		slog.Debug("Entry redefined; last registration wins", logfields.Entry(name), slog.String("previous", prev))
	}
	entries[name] = file
}

// Result is the outcome of a full resolution.
type Result struct {
	RootEntry string
	App       appconfig.AppConfig
	Entries   Map
	Warnings  []*ferrors.ClassifiedError
}

// Resolve finds the root entry, parses its embedded declaration with parser and
// maps every page. A fatal root entry error leaves no partial result.
func (r *Resolver) Resolve(parser appconfig.EmbeddedConfigParser, read func(string) ([]byte, error)) (*Result, error) {
	rootEntry, err := r.Root()
	if err != nil {
		return nil, err
	}
	text, err := read(rootEntry)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryEntry, "Failed to read entry file").
			Fatal().
			WithContext("file", rootEntry).
			Build()
	}

	app, warnings := parser.ParseEmbeddedConfig(appconfig.Source{Filename: rootEntry, Text: string(text)})
	entries, more := r.Pages(rootEntry, app)
	return &Result{
		RootEntry: rootEntry,
		App:       app,
		Entries:   entries,
		Warnings:  append(warnings, more...),
	}, nil
}
