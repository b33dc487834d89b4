package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// LoaderFamilies are the keys accepted under css.loader_options.
var LoaderFamilies = []string{"css", "less", "sass", "stylus", "px2rpx"}

// Validate checks the normalized configuration.
func Validate(cfg *Config) error {
	if filepath.IsAbs(cfg.SourceDir) {
		return fmt.Errorf("source_dir must be relative to the project root: %s", cfg.SourceDir)
	}
	if strings.HasPrefix(filepath.Clean(cfg.SourceDir), "..") {
		return fmt.Errorf("source_dir must stay inside the project root: %s", cfg.SourceDir)
	}
	for name := range cfg.CSS.LoaderOptions {
		if !slices.Contains(LoaderFamilies, name) {
			return fmt.Errorf("unknown css.loader_options key %q (valid: %s)", name, strings.Join(LoaderFamilies, ", "))
		}
	}
	return nil
}
