package bundler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mpbuild/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigFileName returns the configuration document name for a platform and format.
func ConfigFileName(platformID string, format config.OutputFormat) string {
	return "bundler." + platformID + "." + string(format)
}

// Encode serializes bc in format. JSON output keeps regex sources unescaped.
func Encode(bc *BuildConfig, format config.OutputFormat) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(bc); err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(bc); err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// WriteConfig encodes bc and writes it atomically into dir.
func WriteConfig(dir, platformID string, format config.OutputFormat, bc *BuildConfig) (string, error) {
	data, err := Encode(bc, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName(platformID, format))
	if err := writeAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename %s: %w", filepath.Base(path), err)
	}
	return nil
}
