package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the project configuration file looked up when -c is not given.
const DefaultPath = "mpbuild.yaml"

// Config is the project-level mpbuild configuration.
type Config struct {
	SourceDir           string        `yaml:"source_dir"`
	NativeDir           string        `yaml:"native_dir"`
	ProductionSourceMap bool          `yaml:"production_source_map"`
	Parser              ParserKind    `yaml:"parser"`
	Output              OutputConfig  `yaml:"output"`
	CSS                 CSSConfig     `yaml:"css"`
	Logging             LoggingConfig `yaml:"logging"`
	Metrics             MetricsConfig `yaml:"metrics"`
}

// OutputConfig controls where and how the bundler configuration is written.
type OutputConfig struct {
	ConfigDir string       `yaml:"config_dir"`
	Format    OutputFormat `yaml:"format"`
}

// CSSConfig carries user overrides for style loaders, keyed by loader family
// (css, less, sass, stylus, px2rpx).
type CSSConfig struct {
	LoaderOptions map[string]map[string]any `yaml:"loader_options,omitempty"`
}

// LoggingConfig controls the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from configPath. A missing file is not an error: projects
// without an mpbuild.yaml build with defaults. ${VAR} references expand from the
// process environment, then from the .env files in projectDir.
func Load(configPath, projectDir string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Configuration file not found; using defaults", "path", configPath)
		return Default(), nil
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}
	return parse(data, configPath, projectLookup(projectDir, os.Getenv))
}

// Parse decodes YAML configuration after expanding process environment variables.
func Parse(data []byte, source string) (*Config, error) {
	return parse(data, source, os.Getenv)
}

func parse(data []byte, source string, lookup func(string) string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.Expand(string(data), lookup)), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", source).
			Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid configuration").
			Fatal().
			WithContext("path", source).
			Build()
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	example := Default()
	example.CSS.LoaderOptions = map[string]map[string]any{
		"px2rpx": {"rpxUnit": 0.5},
		"less":   {"javascriptEnabled": true},
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
