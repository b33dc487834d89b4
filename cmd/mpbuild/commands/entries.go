package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/internal/bundler"
	"git.home.luguber.info/inful/mpbuild/internal/config"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
)

// EntriesCmd implements the 'entries' command.
type EntriesCmd struct {
	JSON bool `help:"Print the entry map as JSON"`
}

func (e *EntriesCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	pctx := config.LoadEnvironment(root.ProjectDir(), g.getenv).PlatformContext("", "")
	res, err := bundler.NewGenerator(cfg, pctx, root.ProjectDir()).ResolveEntries()
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		slog.Warn(w.Message(), w.LogAttrs()...)
	}

	out := g.stdout()
	if e.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Entries); err != nil {
			return ferrors.RuntimeError("failed to encode entries").WithCause(err).Build()
		}
		return nil
	}
	for _, name := range res.Entries.Names() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", name, res.Entries[name]); err != nil {
			return ferrors.RuntimeError("failed to print entries").WithCause(err).Build()
		}
	}
	return nil
}
