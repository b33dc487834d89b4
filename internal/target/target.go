// Package target selects the compiler/target profile for the active platform.
//
// Platforms self-register a Provider from their own package (see
// internal/target/platforms/*); the bundler imports those packages for their side
// effects and resolves the provider once per build through Get.
package target

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/platform"
)

// Warning codes reported by Select.
const (
	CodeHTMLParseUnavailable = "html_parse_unavailable"
	CodeUnknownPlatform      = "unknown_platform"
)

// Factory is the module that turns a Descriptor into a bundler target.
const Factory = "@megalo/target"

// DefaultCompiler is the template compiler shared by all native platforms.
const DefaultCompiler = "@megalo/template-compiler"

// HTMLParseTemplate is the template name used for the optional v-html support.
const HTMLParseTemplate = "octoParse"

// Compiler references the template compiler module the bundler loads.
type Compiler struct {
	Module string `json:"module" yaml:"module"`
}

// HTMLParse describes the optional rich-text parsing capability.
type HTMLParse struct {
	TemplateName string `json:"templateName" yaml:"templateName"`
	Src          string `json:"src" yaml:"src"`
}

// Descriptor is forwarded unchanged into the bundler configuration.
type Descriptor struct {
	Factory   string     `json:"factory" yaml:"factory"`
	Compiler  Compiler   `json:"compiler" yaml:"compiler"`
	Platform  string     `json:"platform" yaml:"platform"`
	HTMLParse *HTMLParse `json:"htmlParse,omitempty" yaml:"htmlParse,omitempty"`
}

// Provider is the per-platform target implementation.
type Provider interface {
	ID() string
	Compiler() Compiler
	// HTMLParseModule is the project-relative path of the optional HTML parsing module.
	HTMLParseModule() string
	// APIModule is the project-relative path of the optional platform API module.
	APIModule() string
}

var (
	regMu sync.RWMutex
	reg   = map[string]Provider{}
)

// Register registers a Provider (first registration for an id wins).
func Register(p Provider) {
	if p == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[p.ID()]; !ok {
		reg[p.ID()] = p
	}
}

// Get retrieves a provider by platform id.
func Get(id string) (Provider, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	p, ok := reg[id]
	return p, ok
}

// Registered returns the registered platform ids, sorted.
func Registered() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	ids := make([]string, 0, len(reg))
	for id := range reg {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Base implements Provider for platforms that follow the shared module layout.
// Platform packages embed it and only override what differs.
type Base struct {
	Platform string
}

func (b Base) ID() string         { return b.Platform }
func (b Base) Compiler() Compiler { return Compiler{Module: DefaultCompiler} }
func (b Base) HTMLParseModule() string {
	return "node_modules/octoparse/lib/platform/" + b.Platform
}
func (b Base) APIModule() string { return "node_modules/@megalo/api/platforms/" + b.Platform }

// Lookup returns the provider for ctx, falling back to a generic provider (plus a
// warning) for unregistered platforms.
func Lookup(ctx platform.Context) (Provider, *ferrors.ClassifiedError) {
	if p, ok := Get(ctx.ID); ok {
		return p, nil
	}
	w := ferrors.TargetWarning(CodeUnknownPlatform,
		fmt.Sprintf("No target provider registered for platform '%s'; using generic target", ctx.ID)).
		WithContext("platform", ctx.ID).
		WithContext("registered", Registered()).
		Build()
	return Base{Platform: ctx.ID}, w
}

// Select resolves the Descriptor for provider, probing the optional HTML parsing
// module. A missing module is reported as a warning and htmlParse is omitted.
func Select(p Provider, probe fsprobe.Prober) (Descriptor, []*ferrors.ClassifiedError) {
	d := Descriptor{Factory: Factory, Compiler: p.Compiler(), Platform: p.ID()}
	if src := fsprobe.CheckExists(probe, p.HTMLParseModule()); src != "" {
		d.HTMLParse = &HTMLParse{TemplateName: HTMLParseTemplate, Src: src}
		slog.Debug("HTML parse capability enabled", logfields.Platform(p.ID()), logfields.Path(src))
		return d, nil
	}
	w := ferrors.TargetWarning(CodeHTMLParseUnavailable,
		fmt.Sprintf("Current version of package 'octoparse' does not support 'v-html' directive in platform '%s'", p.ID())).
		WithContext("platform", p.ID()).
		WithContext("module", p.HTMLParseModule()).
		WithContext("hint", "Please upgrade to the latest version: https://github.com/kaola-fed/octoparse").
		Build()
	return d, []*ferrors.ClassifiedError{w}
}
