package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "mpbuild.yaml"), dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, "src/native", cfg.NativeDir)
	assert.Equal(t, ParserRegex, cfg.Parser)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, ".mpbuild", cfg.Output.ConfigDir)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
}

func TestParse(t *testing.T) {
	t.Setenv("MPBUILD_TEST_NATIVE", "native-components")
	data := []byte(`
source_dir: app
native_dir: ${MPBUILD_TEST_NATIVE}
production_source_map: true
parser: ESBuild
output:
  format: yml
css:
  loader_options:
    px2rpx:
      rpxUnit: 0.5
    less:
      javascriptEnabled: true
logging:
  level: Warning
  format: json
`)
	cfg, err := Parse(data, "inline")
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.SourceDir)
	assert.Equal(t, "native-components", cfg.NativeDir)
	assert.True(t, cfg.ProductionSourceMap)
	assert.Equal(t, ParserEsbuild, cfg.Parser)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, 0.5, cfg.CSS.LoaderOptions["px2rpx"]["rpxUnit"])
	assert.Equal(t, true, cfg.CSS.LoaderOptions["less"]["javascriptEnabled"])
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "source_dir: [unterminated"},
		{"absolute source dir", "source_dir: /abs/src"},
		{"escaping source dir", "source_dir: ../outside"},
		{"unknown loader family", "css:\n  loader_options:\n    postcss: {}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "inline")
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mpbuild.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path, filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.CSS.LoaderOptions["px2rpx"]["rpxUnit"])

	err = Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Init(path, true))
}

func TestEnvironmentPlatformContext(t *testing.T) {
	env := EnvironmentFrom(func(k string) string {
		return map[string]string{"PLATFORM": "alipay", "NODE_ENV": "production"}[k]
	})
	ctx := env.PlatformContext("", "")
	assert.Equal(t, "alipay", ctx.ID)
	assert.True(t, ctx.Production)
	assert.Equal(t, "acss", ctx.StyleExt)

	ctx = env.PlatformContext("toutiao", "development")
	assert.Equal(t, "toutiao", ctx.ID)
	assert.False(t, ctx.Production)
}

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadEnvironmentReadsProjectDir(t *testing.T) {
	project := t.TempDir()
	writeEnvFile(t, project, ".env", "PLATFORM=toutiao\nNODE_ENV=production\n")

	// the working directory is unrelated to the project
	env := LoadEnvironment(project, func(string) string { return "" })
	assert.Equal(t, "toutiao", env.Platform)
	assert.Equal(t, "production", env.NodeEnv)
}

func TestLoadEnvironmentProcessEnvWins(t *testing.T) {
	project := t.TempDir()
	writeEnvFile(t, project, ".env", "PLATFORM=swan\nNODE_ENV=production\n")

	env := LoadEnvironment(project, func(k string) string {
		return map[string]string{"PLATFORM": "wechat"}[k]
	})
	assert.Equal(t, "wechat", env.Platform)
	assert.Equal(t, "production", env.NodeEnv)
}

func TestLoadEnvironmentLocalOverridesDotEnv(t *testing.T) {
	project := t.TempDir()
	writeEnvFile(t, project, ".env", "PLATFORM=swan\nNODE_ENV=production\n")
	writeEnvFile(t, project, ".env.local", "PLATFORM=alipay\n")

	env := LoadEnvironment(project, func(string) string { return "" })
	assert.Equal(t, "alipay", env.Platform)
	assert.Equal(t, "production", env.NodeEnv)
}

func TestLoadEnvironmentSeesEdits(t *testing.T) {
	project := t.TempDir()
	noEnv := func(string) string { return "" }
	writeEnvFile(t, project, ".env", "PLATFORM=alipay\n")
	assert.Equal(t, "alipay", LoadEnvironment(project, noEnv).Platform)

	writeEnvFile(t, project, ".env", "PLATFORM=swan\n")
	assert.Equal(t, "swan", LoadEnvironment(project, noEnv).Platform)
}

func TestLoadEnvironmentLeavesProcessEnvAlone(t *testing.T) {
	project := t.TempDir()
	writeEnvFile(t, project, ".env", "MPBUILD_FROM_DOTENV=yes\n")

	files, err := ReadEnvFiles(project)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"MPBUILD_FROM_DOTENV": "yes"}, files)
	_, set := os.LookupEnv("MPBUILD_FROM_DOTENV")
	assert.False(t, set)
}

func TestLoadExpandsProjectEnv(t *testing.T) {
	project := t.TempDir()
	writeEnvFile(t, project, ".env", "MPBUILD_TEST_OUT=generated\n")
	path := filepath.Join(project, "mpbuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  config_dir: ${MPBUILD_TEST_OUT}\n"), 0o600))

	cfg, err := Load(path, project)
	require.NoError(t, err)
	assert.Equal(t, "generated", cfg.Output.ConfigDir)
}

func TestLogLevelSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, NormalizeLogLevel("DEBUG").SlogLevel())
	assert.Equal(t, slog.LevelWarn, NormalizeLogLevel("warning").SlogLevel())
	assert.Equal(t, slog.LevelError, NormalizeLogLevel("error").SlogLevel())
	assert.Equal(t, slog.LevelInfo, NormalizeLogLevel("bogus").SlogLevel())
}
