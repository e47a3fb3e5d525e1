package config

import (
	"path/filepath"
	"strings"

	"swiftdriver/internal/options"
	"swiftdriver/internal/vpath"
)

// SupplementaryKind names one auxiliary artifact the Supplementary
// Output Resolver knows how to place: its FileType, the boolean flag
// that requests it (empty if there is none), and the flag that gives
// it an explicit path.
type SupplementaryKind struct {
	Type           vpath.FileType
	IsOutputFlag   string
	OutputPathFlag string
}

// SupplementaryKinds enumerates the nine auxiliary artifact kinds a
// compilation can be asked to emit alongside its primary output. See
// the Supplementary Output Resolver.
var SupplementaryKinds = []SupplementaryKind{
	{Type: vpath.Dependencies, IsOutputFlag: "emit-dependencies", OutputPathFlag: "emit-dependencies-path"},
	{Type: vpath.SwiftDeps, IsOutputFlag: "emit-swift-deps", OutputPathFlag: "emit-swift-deps-path"},
	{Type: vpath.Diagnostics, IsOutputFlag: "serialize-diagnostics", OutputPathFlag: "serialize-diagnostics-path"},
	{Type: vpath.ObjCHeader, IsOutputFlag: "emit-objc-header", OutputPathFlag: "emit-objc-header-path"},
	{Type: vpath.ModuleTrace, IsOutputFlag: "emit-loaded-module-trace", OutputPathFlag: "emit-loaded-module-trace-path"},
	{Type: vpath.TBD, IsOutputFlag: "emit-tbd", OutputPathFlag: "emit-tbd-path"},
	{Type: vpath.SwiftDocumentation, IsOutputFlag: "", OutputPathFlag: "emit-module-doc-path"},
	{Type: vpath.SwiftInterface, IsOutputFlag: "emit-module-interface", OutputPathFlag: "emit-module-interface-path"},
	{Type: vpath.OptimizationRecord, IsOutputFlag: "save-optimization-record", OutputPathFlag: "save-optimization-record-path"},
}

// ResolveSupplementaryOutput implements the four-rule precedence:
// explicit path wins, then an unset request flag yields nothing, then
// -o-derived, then module-name-derived.
func ResolveSupplementaryOutput(kind SupplementaryKind, opts options.ParsedOptions, compilerOutputType *vpath.FileType, moduleName string) *vpath.TypedVirtualPath {
	if kind.OutputPathFlag != "" {
		if explicit, ok := opts.String(kind.OutputPathFlag); ok {
			return &vpath.TypedVirtualPath{File: vpath.Relative(explicit), Type: kind.Type}
		}
	}
	if kind.IsOutputFlag == "" || !opts.Bool(kind.IsOutputFlag) {
		return nil
	}
	if o, ok := opts.String("o"); ok && o != "" {
		if compilerOutputType != nil && kind.Type == *compilerOutputType {
			return &vpath.TypedVirtualPath{File: vpath.Relative(o), Type: kind.Type}
		}
		stem := strings.TrimSuffix(o, filepath.Ext(o))
		return &vpath.TypedVirtualPath{File: vpath.Relative(stem + "." + kind.Type.Extension()), Type: kind.Type}
	}
	return &vpath.TypedVirtualPath{
		File: vpath.Relative(moduleName + "." + kind.Type.Extension()),
		Type: kind.Type,
	}
}

// ResolveAllSupplementaryOutputs resolves every kind against opts.
func ResolveAllSupplementaryOutputs(opts options.ParsedOptions, compilerOutputType *vpath.FileType, moduleName string) map[vpath.FileType]vpath.TypedVirtualPath {
	out := make(map[vpath.FileType]vpath.TypedVirtualPath)
	for _, k := range SupplementaryKinds {
		if p := ResolveSupplementaryOutput(k, opts, compilerOutputType, moduleName); p != nil {
			out[k.Type] = *p
		}
	}
	return out
}
