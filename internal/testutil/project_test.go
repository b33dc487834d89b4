package testutil

import "testing"

func TestWriteProjectAndAssertions(t *testing.T) {
	root := WriteProject(t, map[string]string{
		"src/main.js":        "export default {}",
		"src/pages/index.js": "Page({})",
	})

	NewProjectAssertions(t, root).
		AssertFileExists("src/main.js").
		AssertFileExists("src/pages/index.js").
		AssertFileContains("src/pages/index.js", "Page(").
		AssertNotExists("dist-wechat")
}
