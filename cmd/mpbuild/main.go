package main

import (
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/cmd/mpbuild/commands"
	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("mpbuild"),
		kong.Description("Generate bundler configurations for multi-platform mini-program projects."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
