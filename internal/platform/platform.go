// Package platform derives the immutable per-build platform context.
//
// A Context is built exactly once at CLI entry (from PLATFORM / NODE_ENV or the
// equivalent flags) and then passed by value into every pipeline component.
// Nothing below the CLI layer reads the process environment.
package platform

import (
	"slices"
	"strings"
)

// Known platform identifiers.
const (
	WeChat  = "wechat"
	Alipay  = "alipay"
	Swan    = "swan"
	Toutiao = "toutiao"
	Web     = "web"
	H5      = "h5"
)

// Default is used when no platform is configured.
const Default = WeChat

// ProductionEnv is the NODE_ENV value that enables production mode.
const ProductionEnv = "production"

// DefaultStyleExt is the style extension for platforms missing from the table.
const DefaultStyleExt = "css"

var styleExtensions = map[string]string{
	WeChat:  "wxss",
	Alipay:  "acss",
	Swan:    "css",
	Toutiao: "ttss",
	Web:     "css",
	H5:      "css",
}

var webLike = []string{Web, H5}

// Context is the per-build platform profile.
type Context struct {
	ID         string `json:"id" yaml:"id"`
	Production bool   `json:"production" yaml:"production"`
	StyleExt   string `json:"styleExt" yaml:"styleExt"`
}

// New builds a Context from a raw platform id and NODE_ENV-style mode string.
func New(id, mode string) Context {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		id = Default
	}
	return Context{
		ID:         id,
		Production: strings.TrimSpace(mode) == ProductionEnv,
		StyleExt:   StyleExtension(id),
	}
}

// StyleExtension maps a platform id onto the style file extension it compiles to.
// It depends on nothing but its argument.
func StyleExtension(id string) string {
	if ext, ok := styleExtensions[id]; ok {
		return ext
	}
	return DefaultStyleExt
}

// IsWebLike reports whether id targets a browser runtime; those builds skip every
// native-specific stage.
func IsWebLike(id string) bool {
	return slices.Contains(webLike, id)
}

// WebLike reports whether this context targets a browser runtime.
func (c Context) WebLike() bool { return IsWebLike(c.ID) }

// Mode returns the bundler mode string.
func (c Context) Mode() string {
	if c.Production {
		return "production"
	}
	return "development"
}

// OutputDir returns the conventional output directory name, e.g. "dist-wechat".
func (c Context) OutputDir() string { return "dist-" + c.ID }

// Known returns the platform ids that have a style extension mapping, sorted.
func Known() []string {
	ids := make([]string, 0, len(styleExtensions))
	for id := range styleExtensions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
