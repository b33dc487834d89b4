package bundler

// Loader modules referenced by the asset pipeline.
const (
	extractLoader = "mini-css-extract-plugin/dist/loader"
	px2rpxFamily  = "px2rpx"
)

// styleFamily pairs a style language with the file pattern it owns. Order is
// the emitted rule order.
type styleFamily struct {
	name string
	test string
}

var styleFamilies = []styleFamily{
	{name: "css", test: `\.css$`},
	{name: "less", test: `\.less$`},
	{name: "sass", test: `\.scss$`},
	{name: "stylus", test: `\.styl(us)?$`},
}

// AssembleRules builds the loader rules in their stable order: vue, js, picture,
// then one rule per style family. overrides is keyed by loader family (css, less,
// sass, stylus, px2rpx) and is never modified.
func AssembleRules(overrides map[string]map[string]any) []LoaderRule {
	rules := []LoaderRule{
		{
			Name: "vue",
			Test: Pattern{Source: `\.vue$`},
			Use: []LoaderUse{{
				Name:    "vue",
				Loader:  "vue-loader",
				Options: map[string]any{"compilerOptions": map[string]any{"preserveWhitespace": false}},
			}},
		},
		{
			Name:    "js",
			Test:    Pattern{Source: `\.(ts|js)x?$`},
			Exclude: []Pattern{{Source: `node_modules`}},
			Use:     []LoaderUse{{Name: "babel", Loader: "babel-loader"}},
		},
		{
			Name: "picture",
			Test: Pattern{Source: `\.(png|jpe?g|gif)$`, Flags: "i"},
			Use: []LoaderUse{{
				Name:    "url",
				Loader:  "url-loader",
				Options: map[string]any{"limit": 8192, "name": "[path][name].[ext]"},
			}},
		},
	}
	for _, fam := range styleFamilies {
		rules = append(rules, styleRule(fam, overrides))
	}
	return rules
}

func styleRule(fam styleFamily, overrides map[string]map[string]any) LoaderRule {
	use := []LoaderUse{
		{Name: "MiniCssExtractPlugin", Loader: extractLoader},
		withOverride(LoaderUse{Name: "css", Loader: "css-loader"}, overrides, "css"),
	}
	if o, ok := overrides[px2rpxFamily]; ok && o != nil {
		use = append(use, withOverride(LoaderUse{Name: px2rpxFamily, Loader: "px2rpx-loader"}, overrides, px2rpxFamily))
	}
	if fam.name != "css" {
		use = append(use, withOverride(LoaderUse{Name: fam.name, Loader: fam.name + "-loader"}, overrides, fam.name))
	}
	return LoaderRule{Name: fam.name, Test: Pattern{Source: fam.test}, Use: use}
}

func withOverride(u LoaderUse, overrides map[string]map[string]any, family string) LoaderUse {
	if o, ok := overrides[family]; ok && len(o) > 0 {
		u.Options = MergeOptions(u.Options, o)
	}
	return u
}

// RuleNames returns the rule names in order.
func RuleNames(rules []LoaderRule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}
