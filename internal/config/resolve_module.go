package config

import (
	"path/filepath"
	"strings"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/tempalloc"
	"swiftdriver/internal/vpath"
)

// swiftReservedWords rejects a module name that collides with a
// source-language keyword, per the "valid identifier in the
// source-language sense" rule.
var swiftReservedWords = map[string]bool{
	"class": true, "struct": true, "enum": true, "protocol": true,
	"func": true, "var": true, "let": true, "if": true, "else": true,
	"for": true, "while": true, "return": true, "import": true,
	"extension": true, "in": true, "switch": true, "case": true,
	"default": true, "break": true, "continue": true, "do": true,
	"try": true, "catch": true, "throw": true, "throws": true,
	"public": true, "private": true, "internal": true, "static": true,
}

func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return !swiftReservedWords[name]
}

// resolveModuleKind implements the module-output-kind decision table.
func resolveModuleKind(opts options.ParsedOptions, mode ModeKind, debugLevel *DebugInfoLevel, linkerOut *LinkOutputType, reporter diag.Reporter) ModuleOutputKind {
	emitModule := opts.Bool("emit-module")
	_, emitModulePath := opts.String("emit-module-path")

	var kind ModuleOutputKind
	switch {
	case emitModule || emitModulePath:
		kind = ModuleOutputTopLevel
	case debugLevel != nil && debugLevel.RequiresModule() && linkerOut != nil:
		kind = ModuleOutputAuxiliary
	case mode != ModeSingleCompile && wantsAuxiliaryModuleArtifacts(opts):
		kind = ModuleOutputAuxiliary
	default:
		kind = ModuleOutputNone
	}

	if (mode == ModeREPL || mode == ModeImmediate) && kind != ModuleOutputNone {
		diag.ReportError(reporter, diag.CfgModuleOutputForced, diag.Location{},
			"module emission is not available in repl/immediate mode").Emit()
		kind = ModuleOutputNone
	}
	return kind
}

func wantsAuxiliaryModuleArtifacts(opts options.ParsedOptions) bool {
	if opts.Bool("emit-objc-header") {
		return true
	}
	if _, ok := opts.String("emit-objc-header-path"); ok {
		return true
	}
	if opts.Bool("emit-module-interface") {
		return true
	}
	if _, ok := opts.String("emit-module-interface-path"); ok {
		return true
	}
	return false
}

// buildingExecutable implements the "maybeBuildingExecutable"
// heuristic: intentionally approximate when linkerOut is unset,
// preserving the ambiguity rather than "fixing" it.
func buildingExecutable(linkerOut *LinkOutputType, opts options.ParsedOptions, inputCount int) bool {
	if linkerOut != nil {
		if *linkerOut == LinkExecutable {
			return true
		}
		if *linkerOut == LinkDynamicLibrary || *linkerOut == LinkStaticLibrary {
			return false
		}
	}
	if opts.Bool("parse-as-library") || opts.Bool("parse-stdlib") {
		return false
	}
	return inputCount == 1
}

// resolveModuleName implements the first-matching-rule name selection.
func resolveModuleName(opts options.ParsedOptions, mode ModeKind, linkerOut *LinkOutputType, compilerOut *vpath.FileType, inputs []vpath.TypedVirtualPath, reporter diag.Reporter) string {
	name := deriveModuleNameCandidate(opts, mode, linkerOut, compilerOut, inputs)
	return validateModuleName(name, opts, reporter)
}

func deriveModuleNameCandidate(opts options.ParsedOptions, mode ModeKind, linkerOut *LinkOutputType, compilerOut *vpath.FileType, inputs []vpath.TypedVirtualPath) string {
	if explicit, ok := opts.String("module-name"); ok && explicit != "" {
		return explicit
	}
	if mode == ModeREPL {
		return "REPL"
	}
	if o, ok := opts.String("o"); ok && o != "" {
		base := filepath.Base(o)
		hadExt := filepath.Ext(base) != ""
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if linkerOut != nil && (*linkerOut == LinkDynamicLibrary || *linkerOut == LinkStaticLibrary) {
			if hadExt && strings.HasPrefix(stem, "lib") {
				if stripped := strings.TrimPrefix(stem, "lib"); stripped != "" {
					stem = stripped
				}
			}
		}
		return stem
	}
	if len(inputs) == 1 {
		base := filepath.Base(inputs[0].File.Name())
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if compilerOut == nil || buildingExecutable(linkerOut, opts, len(inputs)) {
		return "main"
	}
	return ""
}

// validateModuleName enforces the identifier rule, replacing an
// invalid name (or the bare stdlib name "Swift" without -parse-stdlib)
// with the "__bad__" sentinel and emitting a diagnostic, so downstream
// planning stays well-defined.
func validateModuleName(name string, opts options.ParsedOptions, reporter diag.Reporter) string {
	if name == "" {
		return name
	}
	if name == "Swift" && !opts.Bool("parse-stdlib") {
		diag.ReportError(reporter, diag.CfgInvalidModuleName, diag.Location{Option: "module-name"},
			`module name "Swift" is reserved without -parse-stdlib`).Emit()
		return "__bad__"
	}
	if !isValidIdentifier(name) {
		diag.ReportError(reporter, diag.CfgInvalidModuleName, diag.Location{Option: "module-name"},
			"invalid module name: "+name).Emit()
		return "__bad__"
	}
	return name
}

// resolveModuleOutputPath implements the module output path rule.
func resolveModuleOutputPath(opts options.ParsedOptions, kind ModuleOutputKind, moduleName string, workingDirectory string, tmp *tempalloc.Allocator) ModuleOutput {
	if kind == ModuleOutputNone {
		return ModuleOutput{}
	}
	if explicit, ok := opts.String("emit-module-path"); ok && explicit != "" {
		return ModuleOutput{Kind: kind, Path: vpath.Relative(explicit)}
	}
	filename := moduleName + ".swiftmodule"
	if kind == ModuleOutputTopLevel {
		return ModuleOutput{Kind: kind, Path: vpath.Relative(filepath.Join(workingDirectory, filename))}
	}
	return ModuleOutput{Kind: kind, Path: tmp.Named(filename)}
}
