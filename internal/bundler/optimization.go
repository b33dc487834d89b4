package bundler

import "git.home.luguber.info/inful/mpbuild/internal/platform"

// Devtool values.
const (
	DevtoolNone      = "none"
	DevtoolSourceMap = "source-map"
)

// vendorPattern routes third-party and framework modules into the vendor chunk.
const vendorPattern = `[\\/]node_modules[\\/]|megalo[\\/]`

// Devtool picks the source map mode.
func Devtool(ctx platform.Context, productionSourceMap bool) string {
	if ctx.Production && !productionSourceMap {
		return DevtoolNone
	}
	return DevtoolSourceMap
}

// BuildOptimization returns the chunk-splitting policy; production builds add the
// script and style minimizers.
func BuildOptimization(ctx platform.Context, productionSourceMap bool) *Optimization {
	opt := &Optimization{
		NoEmitOnErrors: true,
		RuntimeChunk:   RuntimeChunk{Name: "runtime"},
		SplitChunks: SplitChunks{CacheGroups: map[string]CacheGroup{
			"vendor": {Name: "vendor", Test: &Pattern{Source: vendorPattern}, Chunks: "initial"},
			"common": {Name: "common", MinChunks: 2},
		}},
	}
	if !ctx.Production {
		return opt
	}
	opt.Minimizer = []Plugin{
		{
			Name: "optimize-js",
			Use:  "terser-webpack-plugin",
			Args: []any{map[string]any{
				"cache":     true,
				"parallel":  true,
				"sourceMap": productionSourceMap,
			}},
		},
		{
			Name: "optimize-css",
			Use:  "optimize-css-assets-webpack-plugin",
			Args: []any{map[string]any{
				"assetNameRegExp": Pattern{Source: `\.` + ctx.StyleExt + `$`, Flags: "g"},
				"cssProcessorPluginOptions": map[string]any{
					"preset": []any{"default", map[string]any{
						"discardComments": map[string]any{"removeAll": true},
						"calc":            false,
					}},
				},
			}},
		},
	}
	return opt
}
