package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPlatform   = "platform"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyEntry      = "entry"
	KeyPage       = "page"
	KeyRule       = "rule"
	KeyPlugin     = "plugin"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Platform(p string) slog.Attr      { return slog.String(KeyPlatform, p) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Entry(name string) slog.Attr      { return slog.String(KeyEntry, name) }
func Page(p string) slog.Attr          { return slog.String(KeyPage, p) }
func Rule(name string) slog.Attr       { return slog.String(KeyRule, name) }
func Plugin(name string) slog.Attr     { return slog.String(KeyPlugin, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
