package appconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var errUnterminated = errors.New("unterminated config declaration")

// literalEnd returns the length of the bracket-balanced literal s starts with, or
// -1 when it never closes. Brackets inside string literals do not count.
func literalEnd(s string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// normalizeLiteral re-prints a JS object literal with esbuild so every string is
// double-quoted, which the JSON5 decoder requires. The result starts at the
// literal's opening brace and may carry trailing statement punctuation.
func normalizeLiteral(filename, literal string) (string, error) {
	result := api.Transform("("+literal+")", api.TransformOptions{
		Loader:     api.LoaderJS,
		Sourcefile: filename,
		// Template literals become plain strings.
		Supported: map[string]bool{"template-literal": false},
	})
	if len(result.Errors) > 0 {
		return "", esbuildError(filename, result.Errors[0])
	}
	code := string(result.Code)
	start := strings.IndexByte(code, '{')
	if start < 0 {
		return "", fmt.Errorf("%s: config declaration is not an object literal", filename)
	}
	return code[start:], nil
}

func esbuildError(filename string, msg api.Message) error {
	if msg.Location != nil {
		return fmt.Errorf("%s:%d:%d: %s", filename, msg.Location.Line, msg.Location.Column, msg.Text)
	}
	return fmt.Errorf("%s: %s", filename, msg.Text)
}
