package config

// Default values.
const (
	DefaultSourceDir = "src"
	DefaultNativeDir = "src/native"
	DefaultConfigDir = ".mpbuild"
)

func applyDefaults(cfg *Config) {
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.NativeDir == "" {
		cfg.NativeDir = DefaultNativeDir
	}
	cfg.Parser = NormalizeParserKind(string(cfg.Parser))
	if cfg.Output.ConfigDir == "" {
		cfg.Output.ConfigDir = DefaultConfigDir
	}
	cfg.Output.Format = NormalizeOutputFormat(string(cfg.Output.Format))
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}
