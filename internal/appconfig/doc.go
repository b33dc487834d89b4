// Package appconfig extracts the page/subpackage declaration embedded in an
// application's root source file.
//
// The declaration is an object literal exported under a `config` key:
//
//	export default {
//	  config: {
//	    pages: ['pages/index/index'],
//	    subpackages: [{ root: 'packageA', pages: ['pages/test/index'] }],
//	    window: { navigationBarTitleText: 'demo' },
//	  }
//	}
//
// Parsing never fails hard. Every problem is reported as a warning-severity
// ClassifiedError and the caller receives whatever could be recovered, down to
// an empty AppConfig.
//
// The default RegexScanner compacts the source with a single regular expression
// that removes comments and all whitespace. It is not token-aware: string
// literals containing whitespace, "//" or "/*" are altered by the scan, which can
// change page names or truncate the declaration. EsbuildScanner is the
// token-aware alternative selected with `parser: esbuild`.
//
// Whichever scanner ran, the bracket-balanced declaration is re-printed by
// esbuild before decoding, so single-quoted and template strings reach the JSON5
// decoder double-quoted. A string holding more double quotes than single quotes
// keeps its single quotes and is reported as a parse error.
package appconfig
