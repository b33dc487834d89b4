package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"git.home.luguber.info/inful/mpbuild/internal/target"

	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/all"
)

// PlatformsCmd implements the 'platforms' command.
type PlatformsCmd struct{}

func (p *PlatformsCmd) Run(g *Global, _ *CLI) error {
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PLATFORM\tSTYLE\tKIND\tTARGET")
	for _, id := range platform.Known() {
		kind, provider := "native", "-"
		if platform.IsWebLike(id) {
			kind = "web"
		} else if _, ok := target.Get(id); ok {
			provider = target.Factory
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, platform.StyleExtension(id), kind, provider)
	}
	return tw.Flush()
}
