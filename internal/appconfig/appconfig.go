package appconfig

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Warning codes reported by ParseEmbeddedConfig.
const (
	CodeMissingConfig        = "missing_config"
	CodeMissingPages         = "missing_pages"
	CodeMalformedSubpackages = "malformed_subpackages"
	CodeParseError           = "parse_error"
)

// configMarker is the text the embedded declaration starts with after scanning.
const configMarker = "{config"

// AppConfig is the page/subpackage declaration of one application.
type AppConfig struct {
	Pages       []string       `json:"pages" yaml:"pages"`
	Subpackages []Subpackage   `json:"subpackages,omitempty" yaml:"subpackages,omitempty"`
	Window      map[string]any `json:"window,omitempty" yaml:"window,omitempty"`
}

// Subpackage groups pages under a root path. Root may be empty when the
// declaration omitted it; the entry resolver reports and skips those.
type Subpackage struct {
	Root  string   `json:"root" yaml:"root"`
	Pages []string `json:"pages" yaml:"pages"`
}

// Source is the raw text of the application's root entry file.
type Source struct {
	Filename string
	Text     string
}

// EmbeddedConfigParser turns root source text into an AppConfig plus warnings.
type EmbeddedConfigParser interface {
	ParseEmbeddedConfig(src Source) (AppConfig, []*ferrors.ClassifiedError)
}

// Parser locates and decodes the embedded declaration using a Scanner.
type Parser struct {
	scanner Scanner
}

// NewParser returns a Parser backed by scanner (RegexScanner when nil).
func NewParser(scanner Scanner) *Parser {
	if scanner == nil {
		scanner = RegexScanner{}
	}
	return &Parser{scanner: scanner}
}

// ParseEmbeddedConfig implements EmbeddedConfigParser.
func (p *Parser) ParseEmbeddedConfig(src Source) (AppConfig, []*ferrors.ClassifiedError) {
	compact, err := p.scanner.Scan(src.Filename, src.Text)
	if err != nil {
		return AppConfig{}, []*ferrors.ClassifiedError{
			ferrors.AppConfigWarning(CodeParseError, err.Error()).
				WithContext("file", src.Filename).
				WithContext("scanner", p.scanner.Name()).
				Build(),
		}
	}

	offset := strings.Index(compact, configMarker)
	if offset < 0 {
		return AppConfig{}, []*ferrors.ClassifiedError{missingConfig(src.Filename)}
	}

	root, err := decodeLiteral(src.Filename, compact[offset:])
	if err != nil {
		return AppConfig{}, []*ferrors.ClassifiedError{
			ferrors.AppConfigWarning(CodeParseError, fmt.Sprintf("%v\n\tat: %s", err, src.Filename)).
				WithCause(err).
				WithContext("file", src.Filename).
				WithContext("offset", offset).
				Build(),
		}
	}

	raw, ok := root["config"].(map[string]any)
	if !ok {
		return AppConfig{}, []*ferrors.ClassifiedError{missingConfig(src.Filename)}
	}
	return decode(raw, src.Filename)
}

// decodeLiteral cuts the declaration out of the scanned text, normalizes its
// quoting and decodes it as JSON5.
func decodeLiteral(filename, text string) (map[string]any, error) {
	end := literalEnd(text)
	if end < 0 {
		return nil, errUnterminated
	}
	normalized, err := normalizeLiteral(filename, text[:end])
	if err != nil {
		return nil, err
	}
	var root map[string]any
	if err := json5.NewDecoder(strings.NewReader(normalized)).Decode(&root); err != nil {
		return nil, err
	}
	return root, nil
}

func missingConfig(file string) *ferrors.ClassifiedError {
	return ferrors.AppConfigWarning(CodeMissingConfig, fmt.Sprintf("missing \"config\" declaration in %s", file)).
		WithContext("file", file).
		Build()
}
