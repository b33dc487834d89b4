package config

import (
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"git.home.luguber.info/inful/mpbuild/internal/logfields"
	"git.home.luguber.info/inful/mpbuild/internal/platform"
	"github.com/joho/godotenv"
)

// Environment variable names read at CLI entry.
const (
	EnvPlatform = "PLATFORM"
	EnvNodeEnv  = "NODE_ENV"
)

// envFiles are read in order; a key keeps the first value seen, so .env.local
// wins over .env.
var envFiles = []string{".env.local", ".env"}

// ReadEnvFiles reads the .env files of the project in dir without touching the
// process environment. Missing files are skipped.
func ReadEnvFiles(dir string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		values, err := godotenv.Read(path)
		if err != nil {
			return merged, ferrors.ConfigError("failed to read env file").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		for k, v := range values {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}
	return merged, nil
}

// EnvLookup layers getenv over values read from env files. Variables set in the
// process environment always win.
func EnvLookup(getenv func(string) string, files map[string]string) func(string) string {
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return files[key]
	}
}

// projectLookup reads the env files of dir and layers getenv over them. An
// unreadable file is logged and ignored.
func projectLookup(dir string, getenv func(string) string) func(string) string {
	files, err := ReadEnvFiles(dir)
	if err != nil {
		slog.Warn("Ignoring unreadable env file", logfields.Error(err))
	}
	return EnvLookup(getenv, files)
}

// Environment is the snapshot of build-relevant variables.
type Environment struct {
	Platform string
	NodeEnv  string
}

// EnvironmentFrom reads the build variables through getenv (os.Getenv in main).
func EnvironmentFrom(getenv func(string) string) Environment {
	return Environment{Platform: getenv(EnvPlatform), NodeEnv: getenv(EnvNodeEnv)}
}

// LoadEnvironment snapshots the build variables for the project in dir. The env
// files are re-read on every call, so long-running commands see edits.
func LoadEnvironment(dir string, getenv func(string) string) Environment {
	return EnvironmentFrom(projectLookup(dir, getenv))
}

// PlatformContext builds the per-build platform context. Non-empty overrides
// (from CLI flags) take precedence over the environment.
func (e Environment) PlatformContext(platformOverride, modeOverride string) platform.Context {
	id, mode := e.Platform, e.NodeEnv
	if platformOverride != "" {
		id = platformOverride
	}
	if modeOverride != "" {
		mode = modeOverride
	}
	return platform.New(id, mode)
}
