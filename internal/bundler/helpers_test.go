package bundler

import (
	"testing"

	"git.home.luguber.info/inful/mpbuild/internal/testutil"
)

const mainJS = `import App from './App'
import Vue from 'vue'

const app = new Vue(App)
app.$mount()

export default {
  config: {
    pages: ['pages/index/index', 'pages/todo/todo'],
    subpackages: [
      { root: 'packageA', pages: ['pages/detail'] }
    ],
    window: { navigationBarTitleText: 'demo' }
  }
}
`

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	return testutil.WriteProject(t, files)
}

// fullProject has every optional capability installed.
func fullProject(t *testing.T) string {
	t.Helper()
	return writeProject(t, map[string]string{
		"src/main.js":                                mainJS,
		"src/native/wechat/comp/comp.js":             "Component({})\n",
		"src/native/wechat/comp/comp.wxml":           "<view/>\n",
		"node_modules/@megalo/api/platforms/wechat":  "",
		"node_modules/octoparse/lib/platform/wechat": "",
		"node_modules/@megalo/api/platforms/alipay":  "",
		"node_modules/octoparse/lib/platform/alipay": "",
	})
}
