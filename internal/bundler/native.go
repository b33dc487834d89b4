package bundler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/mpbuild/internal/fsprobe"
	"git.home.luguber.info/inful/mpbuild/internal/platform"
)

// NativeCopyTarget is the directory, relative to the platform output, that receives
// native components.
const NativeCopyTarget = "native"

// NativeCopy is one scheduled copy of hand-written native components.
type NativeCopy struct {
	Context string `json:"context" yaml:"context"`
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
}

// NativeSource finds the native component directory for ctx: a platform-specific
// <nativeDir>/<id> wins over the shared <nativeDir>. Empty when neither exists.
func NativeSource(p fsprobe.Prober, nativeDir string, ctx platform.Context) string {
	if nativeDir == "" {
		return ""
	}
	if dir := fsprobe.CheckExists(p, filepath.Join(nativeDir, ctx.ID)); dir != "" {
		return dir
	}
	return fsprobe.CheckExists(p, nativeDir)
}

// PlanNativeCopy returns the copy scheduled for ctx, or nil when no native
// directory exists.
func PlanNativeCopy(p fsprobe.Prober, nativeDir string, ctx platform.Context) *NativeCopy {
	src := NativeSource(p, nativeDir, ctx)
	if src == "" {
		return nil
	}
	return &NativeCopy{
		Context: src,
		From:    "**/*",
		To:      p.Resolve(filepath.Join(ctx.OutputDir(), NativeCopyTarget)),
	}
}

// Plugin renders the copy as a copy-webpack-plugin registration.
func (c NativeCopy) Plugin() Plugin {
	return Plugin{
		Name: "copy-webpack-plugin",
		Use:  "copy-webpack-plugin",
		Args: []any{[]any{c}},
	}
}

// Execute copies the native tree immediately and returns the number of files copied.
func (c NativeCopy) Execute() (int, error) {
	return copyDir(c.Context, c.To)
}

// copyDir recursively copies a directory tree.
func copyDir(src, dst string) (int, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, e := range entries {
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())
		if e.IsDir() {
			n, err := copyDir(srcPath, dstPath)
			copied += n
			if err != nil {
				return copied, err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// copyFile copies a single file from src to dst
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
