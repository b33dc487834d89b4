// Package wechat registers the target provider for WeChat mini programs.
package wechat

import (
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"git.home.luguber.info/inful/mpbuild/internal/target"
)

type Provider struct{ target.Base }

func New() Provider { return Provider{target.Base{Platform: platform.WeChat}} }

func init() { target.Register(New()) }
