// Package alipay registers the target provider for Alipay mini programs.
package alipay

import (
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

type Provider struct{ target.Base }

func New() Provider { return Provider{target.Base{Platform: platform.Alipay}} }

func init() { target.Register(New()) }
