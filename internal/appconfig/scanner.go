package appconfig

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Scanner kinds accepted by ScannerFor.
const (
	ScannerRegex   = "regex"
	ScannerEsbuild = "esbuild"
)

// Scanner compacts source text so the embedded declaration can be located.
type Scanner interface {
	Name() string
	Scan(filename, text string) (string, error)
}

// ScannerFor returns the scanner registered under kind, defaulting to RegexScanner.
func ScannerFor(kind string) Scanner {
	if kind == ScannerEsbuild {
		return EsbuildScanner{}
	}
	return RegexScanner{}
}

// stripPattern matches block comments, line comments and single whitespace characters.
var stripPattern = regexp.MustCompile(`/\*[^*]*\*+(?:[^/*][^*]*\*+)*/|//[^\r\n]*|\s`)

// RegexScanner removes comments and whitespace lexically. See the package doc for
// the inputs it mangles.
type RegexScanner struct{}

func (RegexScanner) Name() string { return ScannerRegex }

func (RegexScanner) Scan(_ string, text string) (string, error) {
	return stripPattern.ReplaceAllString(text, ""), nil
}

// EsbuildScanner re-prints the source with esbuild's whitespace minifier, which
// drops comments and layout without touching string contents.
type EsbuildScanner struct{}

func (EsbuildScanner) Name() string { return ScannerEsbuild }

func (EsbuildScanner) Scan(filename, text string) (string, error) {
	loader := api.LoaderJS
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".vue":
		text = scriptBlock(text)
	case ".ts":
		loader = api.LoaderTS
	}

	result := api.Transform(text, api.TransformOptions{
		Loader:           loader,
		Sourcefile:       filename,
		MinifyWhitespace: true,
		LegalComments:    api.LegalCommentsNone,
	})
	if len(result.Errors) > 0 {
		return "", esbuildError(filename, result.Errors[0])
	}
	return string(result.Code), nil
}

var scriptTag = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)

// scriptBlock returns the first <script> block of a single-file component, or the
// text unchanged when there is none.
func scriptBlock(text string) string {
	if m := scriptTag.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
