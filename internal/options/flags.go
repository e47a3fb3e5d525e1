// Package options implements the ParsedOptions collaborator: response
// file expansion plus a concrete, pflag-backed flag table for the
// subset of swiftc-like flags this driver's core resolves. Option
// table *design* is explicitly out of scope for the core; this
// package is the thin, swappable edge that produces a ParsedOptions
// value for it.
package options

import (
	"strings"

	"github.com/spf13/pflag"
)

// Mode-group flags: exactly one governs CompilerMode/primary-output
// selection, last occurrence on the command line wins.
var modeGroupFlags = []string{
	"emit-executable", "emit-library", "emit-object", "c",
	"emit-assembly", "emit-sil", "emit-silgen", "emit-sib", "emit-sibgen",
	"emit-ir", "emit-bc", "dump-ast", "emit-pch", "emit-imported-modules",
	"index-file", "update-code",
	"parse", "typecheck", "resolve-imports", "dump-parse", "emit-syntax", "print-ast",
	"i", "repl", "lldb-repl", "deprecated-integrated-repl",
}

// Debug-info-level group: last one wins.
var debugLevelGroupFlags = []string{"gnone", "g", "gline-tables-only", "gdwarf-types"}

// normalizeSingleDashLongFlags rewrites single-dash flags (the swiftc
// convention: -emit-library, -module-name, -g, ...) to the
// double-dash spelling pflag requires for long flags. Unlike the
// stdlib flag package, pflag treats a lone "-" as a shorthand-cluster
// marker, so "-emit-library" would otherwise be parsed as the
// shorthand letters e, m, i, t, ... and silently dropped as unknown
// under ParseErrorsWhitelist.UnknownFlags. fs must already have every
// flag registered (but not yet parsed): only tokens naming one of its
// actual shorthands (-o, -c, -i), a bare "-" (stdin), and anything
// after a literal "--" terminator are left untouched. A negative
// numeric value passed as its own token (e.g. a -driver-batch-seed
// argument of "-1") is misread as a flag name here the same way it
// would be misread as a shorthand cluster without this rewrite; none
// of this driver's integer flags have a legitimate negative value, and
// the rewritten token then fails to parse as the flag's integer value,
// so Parse returns an error for it.
func normalizeSingleDashLongFlags(args []string, fs *pflag.FlagSet) []string {
	out := make([]string, len(args))
	terminated := false
	for i, a := range args {
		if terminated {
			out[i] = a
			continue
		}
		if a == "--" {
			terminated = true
			out[i] = a
			continue
		}
		if a == "-" || !strings.HasPrefix(a, "-") || strings.HasPrefix(a, "--") {
			out[i] = a
			continue
		}
		name := a[1:]
		if idx := strings.IndexByte(name, '='); idx >= 0 {
			name = name[:idx]
		}
		if len(name) == 1 && fs.ShorthandLookup(name) != nil {
			out[i] = a
			continue
		}
		out[i] = "-" + a
	}
	return out
}

// newFlagSet builds the full scalar flag table. Boolean mode/debug
// flags are ALSO defined here (so pflag can validate/consume them);
// their *last-wins-across-the-group* semantics is resolved separately
// in groups.go since pflag does not track ordering across distinct
// flag names.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("swiftdriver", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	for _, name := range modeGroupFlags {
		if name == "c" || name == "i" {
			continue // short flags, registered below
		}
		fs.Bool(name, false, "")
	}
	fs.BoolP("c", "c", false, "")
	fs.BoolP("i", "i", false, "")
	for _, name := range debugLevelGroupFlags {
		fs.Bool(name, false, "")
	}

	fs.Bool("static", false, "")
	fs.Bool("whole-module-optimization", false, "")
	fs.Bool("wmo", false, "")
	fs.Int("num-threads", -1, "")
	fs.String("debug-info-format", "", "")
	fs.Bool("incremental", false, "")
	fs.Bool("driver-show-incremental-build-decisions", false, "")
	fs.Bool("embed-bitcode", false, "")
	fs.Bool("emit-module", false, "")
	fs.String("emit-module-path", "", "")
	fs.Bool("emit-objc-header", false, "")
	fs.String("emit-objc-header-path", "", "")
	fs.Bool("emit-module-interface", false, "")
	fs.String("emit-module-interface-path", "", "")
	fs.String("module-name", "", "")
	fs.StringP("o", "o", "", "")
	fs.Bool("parse-as-library", false, "")
	fs.Bool("parse-stdlib", false, "")
	fs.String("sdk", "", "")
	fs.String("target", "", "")
	fs.String("working-directory", "", "")
	fs.Bool("enable-batch-mode", false, "")
	fs.Bool("disable-batch-mode", false, "")
	fs.Int("driver-batch-count", -1, "")
	fs.Int("driver-batch-size-limit", -1, "")
	fs.Int("driver-batch-seed", -1, "")
	fs.String("driver-mode", "", "")

	fs.Bool("emit-dependencies", false, "")
	fs.String("emit-dependencies-path", "", "")
	fs.Bool("emit-swift-deps", false, "")
	fs.String("emit-swift-deps-path", "", "")
	fs.Bool("serialize-diagnostics", false, "")
	fs.String("serialize-diagnostics-path", "", "")
	fs.String("emit-module-doc-path", "", "")
	fs.Bool("emit-loaded-module-trace", false, "")
	fs.String("emit-loaded-module-trace-path", "", "")
	fs.Bool("emit-tbd", false, "")
	fs.String("emit-tbd-path", "", "")
	fs.Bool("save-optimization-record", false, "")
	fs.String("save-optimization-record-path", "", "")

	return fs
}
