package bundler

import (
	"git.home.luguber.info/inful/mpbuild/internal/entry"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

// BuildConfig is the serialized bundler configuration.
type BuildConfig struct {
	Mode         string             `json:"mode" yaml:"mode"`
	Devtool      string             `json:"devtool" yaml:"devtool"`
	Entry        entry.Map          `json:"entry,omitempty" yaml:"entry,omitempty"`
	Target       *target.Descriptor `json:"target,omitempty" yaml:"target,omitempty"`
	Output       Output             `json:"output" yaml:"output"`
	Resolve      *Resolve           `json:"resolve,omitempty" yaml:"resolve,omitempty"`
	Module       *Module            `json:"module,omitempty" yaml:"module,omitempty"`
	Optimization *Optimization      `json:"optimization,omitempty" yaml:"optimization,omitempty"`
	Plugins      []Plugin           `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Output describes where emitted assets go.
type Output struct {
	Path          string `json:"path" yaml:"path"`
	Filename      string `json:"filename,omitempty" yaml:"filename,omitempty"`
	ChunkFilename string `json:"chunkFilename,omitempty" yaml:"chunkFilename,omitempty"`
	Pathinfo      *bool  `json:"pathinfo,omitempty" yaml:"pathinfo,omitempty"`
}

type Resolve struct {
	Alias map[string]string `json:"alias" yaml:"alias"`
}

type Module struct {
	Rules []LoaderRule `json:"rules" yaml:"rules"`
}

// Pattern is a regular expression in the bundler's dialect. Source is kept
// verbatim; it is never compiled here.
type Pattern struct {
	Source string `json:"source" yaml:"source"`
	Flags  string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// LoaderRule maps files matching Test onto a loader chain. Use is applied in order.
type LoaderRule struct {
	Name    string      `json:"name" yaml:"name"`
	Test    Pattern     `json:"test" yaml:"test"`
	Exclude []Pattern   `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Use     []LoaderUse `json:"use" yaml:"use"`
}

// LoaderUse is one loader in a rule's chain.
type LoaderUse struct {
	Name    string         `json:"name" yaml:"name"`
	Loader  string         `json:"loader" yaml:"loader"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Plugin is a named plugin instance: Use is the module, Args its constructor arguments.
type Plugin struct {
	Name string `json:"name" yaml:"name"`
	Use  string `json:"use" yaml:"use"`
	Args []any  `json:"args,omitempty" yaml:"args,omitempty"`
}

// Optimization holds chunk-splitting and minification policy.
type Optimization struct {
	NoEmitOnErrors bool         `json:"noEmitOnErrors" yaml:"noEmitOnErrors"`
	RuntimeChunk   RuntimeChunk `json:"runtimeChunk" yaml:"runtimeChunk"`
	SplitChunks    SplitChunks  `json:"splitChunks" yaml:"splitChunks"`
	Minimizer      []Plugin     `json:"minimizer,omitempty" yaml:"minimizer,omitempty"`
}

type RuntimeChunk struct {
	Name string `json:"name" yaml:"name"`
}

type SplitChunks struct {
	CacheGroups map[string]CacheGroup `json:"cacheGroups" yaml:"cacheGroups"`
}

type CacheGroup struct {
	Name      string   `json:"name" yaml:"name"`
	Test      *Pattern `json:"test,omitempty" yaml:"test,omitempty"`
	Chunks    string   `json:"chunks,omitempty" yaml:"chunks,omitempty"`
	MinChunks int      `json:"minChunks,omitempty" yaml:"minChunks,omitempty"`
}

// PluginNames returns the plugin names in registration order.
func (c *BuildConfig) PluginNames() []string {
	names := make([]string, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		names = append(names, p.Name)
	}
	return names
}

// Plugin returns the named plugin, if registered.
func (c *BuildConfig) Plugin(name string) (Plugin, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}

func (c *BuildConfig) addPlugin(p Plugin) {
	c.Plugins = append(c.Plugins, p)
}
