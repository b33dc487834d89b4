// Package toutiao registers the target provider for Toutiao / ByteDance mini programs.
package toutiao

import (
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

type Provider struct{ target.Base }

func New() Provider { return Provider{target.Base{Platform: platform.Toutiao}} }

func init() { target.Register(New()) }
