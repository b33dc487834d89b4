// Package git reads source-control metadata for the build report.
package git
