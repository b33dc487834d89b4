package bundler

import (
	"testing"

	"git.home.luguber.info/inful/mpbuild/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaders(r LoaderRule) []string {
	out := make([]string, len(r.Use))
	for i, u := range r.Use {
		out[i] = u.Loader
	}
	return out
}

func TestAssembleRulesOrderIsStable(t *testing.T) {
	want := []string{"vue", "js", "picture", "css", "less", "sass", "stylus"}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, RuleNames(AssembleRules(nil)))
	}
}

func TestAssembleRulesWithoutOverrides(t *testing.T) {
	rules := AssembleRules(nil)
	require.Len(t, rules, 7)

	assert.Equal(t, []string{extractLoader, "css-loader"}, loaders(rules[3]))
	assert.Equal(t, []string{extractLoader, "css-loader", "less-loader"}, loaders(rules[4]))
	assert.Equal(t, []string{extractLoader, "css-loader", "sass-loader"}, loaders(rules[5]))
	assert.Equal(t, []string{extractLoader, "css-loader", "stylus-loader"}, loaders(rules[6]))
	for _, r := range rules[3:] {
		for _, u := range r.Use {
			assert.Nil(t, u.Options, "rule %s loader %s", r.Name, u.Loader)
		}
	}

	assert.Equal(t, []Pattern{{Source: "node_modules"}}, rules[1].Exclude)
	assert.Equal(t, Pattern{Source: `\.(png|jpe?g|gif)$`, Flags: "i"}, rules[2].Test)
	assert.Equal(t, 8192, rules[2].Use[0].Options["limit"])
	assert.Equal(t, Pattern{Source: `\.styl(us)?$`}, rules[6].Test)
}

func TestAssembleRulesPx2rpxOnlyWhenConfigured(t *testing.T) {
	overrides := map[string]map[string]any{
		"px2rpx": {"rpxUnit": 0.5},
		"css":    {"modules": true},
		"less":   {"javascriptEnabled": true},
	}
	rules := AssembleRules(overrides)

	assert.Equal(t, []string{extractLoader, "css-loader", "px2rpx-loader"}, loaders(rules[3]))
	assert.Equal(t, []string{extractLoader, "css-loader", "px2rpx-loader", "less-loader"}, loaders(rules[4]))
	assert.Equal(t, map[string]any{"modules": true}, rules[4].Use[1].Options)
	assert.Equal(t, map[string]any{"rpxUnit": 0.5}, rules[4].Use[2].Options)
	assert.Equal(t, map[string]any{"javascriptEnabled": true}, rules[4].Use[3].Options)
	assert.Nil(t, rules[5].Use[3].Options)

	// overrides must be left untouched
	rules[4].Use[1].Options["modules"] = false
	assert.Equal(t, true, overrides["css"]["modules"])
}

func TestAssembleRulesNullPx2rpxIsIgnored(t *testing.T) {
	cfg, err := config.Parse([]byte("css:\n  loader_options:\n    px2rpx:\n"), "inline")
	require.NoError(t, err)
	_, present := cfg.CSS.LoaderOptions["px2rpx"]
	require.True(t, present)

	rules := AssembleRules(cfg.CSS.LoaderOptions)
	assert.Equal(t, []string{extractLoader, "css-loader"}, loaders(rules[3]))

	// an empty options object still enables the loader
	rules = AssembleRules(map[string]map[string]any{"px2rpx": {}})
	assert.Equal(t, []string{extractLoader, "css-loader", "px2rpx-loader"}, loaders(rules[3]))
}
