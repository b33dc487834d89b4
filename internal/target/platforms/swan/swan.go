// Package swan registers the target provider for Baidu smart programs (swan).
package swan

import (
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

type Provider struct{ target.Base }

func New() Provider { return Provider{target.Base{Platform: platform.Swan}} }

func init() { target.Register(New()) }
