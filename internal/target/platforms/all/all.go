// Package all links every built-in platform provider into the registry.
package all

import (
	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/alipay"
	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/swan"
	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/toutiao"
	_ "git.home.luguber.info/inful/mpbuild/internal/target/platforms/wechat"
)
