package appconfig

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/mpbuild/internal/foundation/errors"
)

// decode interprets the generic JSON5 value, recovering as much as possible.
func decode(raw map[string]any, file string) (AppConfig, []*ferrors.ClassifiedError) {
	var (
		cfg      AppConfig
		warnings []*ferrors.ClassifiedError
	)

	pages, ok := raw["pages"].([]any)
	if ok {
		var bad []int
		cfg.Pages, bad = stringList(pages)
		for _, i := range bad {
			warnings = append(warnings, ferrors.AppConfigWarning(CodeParseError,
				fmt.Sprintf("'pages[%d]' must be a string path", i)).
				WithContext("file", file).
				WithContext("index", i).
				Build())
		}
	}
	if !ok || len(cfg.Pages) == 0 {
		warnings = append(warnings, ferrors.AppConfigWarning(CodeMissingPages,
			"'pages' entry paths must be configured").
			WithContext("file", file).
			Build())
	}

	if v, present := raw["subpackages"]; present && v != nil {
		subs, ok := v.([]any)
		if !ok {
			warnings = append(warnings, ferrors.AppConfigWarning(CodeMalformedSubpackages,
				"'subpackages' must be a list").
				WithContext("file", file).
				Build())
		}
		for i, item := range subs {
			sp, w := decodeSubpackage(item, i, file)
			if w != nil {
				warnings = append(warnings, w)
				continue
			}
			cfg.Subpackages = append(cfg.Subpackages, sp)
		}
	}

	if w, ok := raw["window"].(map[string]any); ok {
		cfg.Window = w
	}
	return cfg, warnings
}

// decodeSubpackage keeps root-less subpackages (the resolver reports those) but
// rejects elements that are not objects or whose pages are not a list.
func decodeSubpackage(item any, index int, file string) (Subpackage, *ferrors.ClassifiedError) {
	m, ok := item.(map[string]any)
	if !ok {
		return Subpackage{}, ferrors.AppConfigWarning(CodeMalformedSubpackages,
			fmt.Sprintf("'subpackages[%d]' must be an object", index)).
			WithContext("file", file).
			WithContext("index", index).
			Build()
	}
	root, _ := m["root"].(string)
	if root == "" {
		pages, _ := m["pages"].([]any)
		list, _ := stringList(pages)
		return Subpackage{Pages: list}, nil
	}
	pages, ok := m["pages"].([]any)
	if !ok {
		return Subpackage{}, ferrors.AppConfigWarning(CodeMalformedSubpackages,
			"'subpackages' must configure the subpackage 'pages' paths").
			WithContext("file", file).
			WithContext("index", index).
			WithContext("root", root).
			Build()
	}
	list, _ := stringList(pages)
	return Subpackage{Root: root, Pages: list}, nil
}

// stringList keeps string elements and returns the indexes of everything else.
func stringList(in []any) ([]string, []int) {
	out := make([]string, 0, len(in))
	var bad []int
	for i, v := range in {
		s, ok := v.(string)
		if !ok {
			bad = append(bad, i)
			continue
		}
		out = append(out, s)
	}
	return out, bad
}
