package bundler

import (
	"path/filepath"

	"git.home.luguber.info/inful/mpbuild/internal/platform"
)

// CorePlugins are registered for every native build, in this order.
func CorePlugins(ctx platform.Context) []Plugin {
	return []Plugin{
		{Name: "progress-plugin", Use: "webpack.ProgressPlugin"},
		{Name: "vue-loader-plugin", Use: "vue-loader/lib/plugin"},
		{
			Name: "mini-css-extract-plugin",
			Use:  "mini-css-extract-plugin",
			Args: []any{map[string]any{"filename": "static/css/[name]." + ctx.StyleExt}},
		},
	}
}

// Aliases redirects framework imports to the mini-program runtime.
func Aliases() map[string]string {
	return map[string]string{"vue": "megalo"}
}

// BuildOutput returns the output section for ctx rooted at root. Web-like
// platforms only get the path.
func BuildOutput(root string, ctx platform.Context) Output {
	out := Output{Path: filepath.Join(root, ctx.OutputDir()) + string(filepath.Separator)}
	if ctx.WebLike() {
		return out
	}
	pathinfo := false
	out.Filename = "static/js/[name].js"
	out.ChunkFilename = "static/js/[name].js"
	out.Pathinfo = &pathinfo
	return out
}
