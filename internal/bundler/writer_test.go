package bundler

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/mpbuild/internal/config"
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigFileName(t *testing.T) {
	assert.Equal(t, "bundler.wechat.json", ConfigFileName("wechat", config.FormatJSON))
	assert.Equal(t, "bundler.alipay.yaml", ConfigFileName("alipay", config.FormatYAML))
}

func TestEncodeJSONKeepsRegexReadable(t *testing.T) {
	bc := &BuildConfig{Mode: "development", Module: &Module{Rules: AssembleRules(nil)}}
	data, err := Encode(bc, config.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source": "\\.vue$"`)
	assert.NotContains(t, string(data), `<`)
}

func TestWriteConfigYAML(t *testing.T) {
	bc, _, err := NewGenerator(nil, platform.New("wechat", ""), fullProject(t)).Generate(context.Background())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), ".mpbuild")
	path, err := WriteConfig(dir, "wechat", config.FormatYAML, bc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bundler.wechat.yaml"), path)

	// #nosec G304 - test file
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "development", decoded["mode"])
	assert.Equal(t, "source-map", decoded["devtool"])
	assert.Len(t, decoded["entry"], 4)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestReportPersist(t *testing.T) {
	_, report, err := NewGenerator(nil, platform.New("wechat", "production"), fullProject(t)).Generate(context.Background())
	require.NoError(t, err)
	report.ConfigPath = "/tmp/bundler.wechat.json"

	dir := t.TempDir()
	path, err := report.Persist(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "build-report.wechat.json"), path)

	// #nosec G304 - test file
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "wechat", decoded["platform"])
	assert.Equal(t, "production", decoded["mode"])
	assert.Equal(t, "success", decoded["outcome"])
	assert.Equal(t, float64(4), decoded["entries"])
	assert.NotEmpty(t, decoded["build_id"])
	assert.Equal(t, []any{}, decoded["issues"])
	assert.Contains(t, decoded["stage_results"], string(StageNativeAssets))
	assert.Contains(t, report.Summary(), "outcome=success")
}
