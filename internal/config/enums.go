package config

import (
	"log/slog"

	"git.home.luguber.info/inful/mpbuild/internal/appconfig"
	"git.home.luguber.info/inful/mpbuild/internal/foundation/normalization"
)

// ParserKind selects the scanner used to locate the embedded app config.
type ParserKind string

const (
	ParserRegex   ParserKind = appconfig.ScannerRegex
	ParserEsbuild ParserKind = appconfig.ScannerEsbuild
)

var parserNormalizer = normalization.NewNormalizer(map[string]ParserKind{
	"regex":   ParserRegex,
	"esbuild": ParserEsbuild,
}, ParserRegex)

func NormalizeParserKind(raw string) ParserKind { return parserNormalizer.Normalize(raw) }

// OutputFormat selects the serialization of the emitted bundler configuration.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

var formatNormalizer = normalization.NewNormalizer(map[string]OutputFormat{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

func NormalizeOutputFormat(raw string) OutputFormat { return formatNormalizer.Normalize(raw) }

// ParseOutputFormat is the strict variant used for CLI flags.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return formatNormalizer.NormalizeWithError(raw)
}

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

func NormalizeLogLevel(raw string) LogLevel { return logLevelNormalizer.Normalize(raw) }

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat { return logFormatNormalizer.Normalize(raw) }
