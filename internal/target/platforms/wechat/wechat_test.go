package wechat

import (
	"testing"

	"git.home.luguber.info/inful/mpbuild/internal/target"
)

func TestWeChatRegistration(t *testing.T) {
	p, ok := target.Get("wechat")
	if !ok {
		t.Fatal("WeChat provider not registered")
	}
	if p.ID() != "wechat" {
		t.Errorf("ID() = %v, want wechat", p.ID())
	}
	if p.Compiler().Module != target.DefaultCompiler {
		t.Errorf("Compiler().Module = %v, want %v", p.Compiler().Module, target.DefaultCompiler)
	}
	if got := p.APIModule(); got != "node_modules/@megalo/api/platforms/wechat" {
		t.Errorf("APIModule() = %v", got)
	}
	if got := p.HTMLParseModule(); got != "node_modules/octoparse/lib/platform/wechat" {
		t.Errorf("HTMLParseModule() = %v", got)
	}
}
