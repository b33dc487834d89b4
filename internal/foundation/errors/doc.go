// Package errors provides the classified error primitives used across mpbuild.
//
// A ClassifiedError carries a category (config, entry, target, filesystem, ...),
// a severity (fatal, error, warning, info) and a free-form context map. Warnings
// produced while assembling a bundler configuration are ClassifiedErrors with
// SeverityWarning; they are logged and recorded in the build report while the
// pipeline keeps going. Fatal errors bubble up to the CLI where CLIErrorAdapter
// maps the category onto a process exit code.
//
// Example usage:
//
//	err := errors.EntryError("failed to locate entry file").
//		WithContext("dir", srcDir).
//		WithContext("candidates", candidates).
//		Build()
package errors
