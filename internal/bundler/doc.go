// Package bundler assembles the platform-specific configuration document handed to
// the external bundling engine.
//
// A Generator owns one BuildConfig per invocation and fills it through a fixed
// sequence of named stages (see stage_names.go). Every native-only stage is skipped
// for web-like platforms. Stages never read the process environment: the platform
// context and project configuration are captured when the Generator is built.
package bundler
