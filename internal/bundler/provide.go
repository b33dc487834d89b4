package bundler

import (
	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

// APIGlobal is the identifier bound to the platform API module.
const APIGlobal = "Megalo"

// ProvideAPI returns the provide-plugin registration binding APIGlobal to the
// provider's API module. ok is false when the module is not installed.
func ProvideAPI(p fsprobe.Prober, provider target.Provider) (Plugin, bool) {
	src := fsprobe.CheckExists(p, provider.APIModule())
	if src == "" {
		return Plugin{}, false
	}
	return Plugin{
		Name: "provide-plugin",
		Use:  "webpack.ProvidePlugin",
		Args: []any{map[string]any{APIGlobal: []any{src, "default"}}},
	}, true
}
