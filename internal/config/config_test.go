package config

import (
	"testing"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/tempalloc"
	"swiftdriver/internal/vpath"
)

func parseOpts(t *testing.T, args ...string) options.ParsedOptions {
	t.Helper()
	opts, err := options.Parse(args)
	if err != nil {
		t.Fatalf("options.Parse() error = %v", err)
	}
	return opts
}

func resolve(t *testing.T, personality options.Personality, bag *diag.Bag, args ...string) Configuration {
	t.Helper()
	opts := parseOpts(t, args...)
	inputs, err := vpath.ClassifyInputs(opts.Inputs())
	if err != nil {
		t.Fatalf("ClassifyInputs() error = %v", err)
	}
	var tmp tempalloc.Allocator
	return Resolve(opts, personality, inputs, &tmp, "", diag.BagReporter{Bag: bag})
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestResolve_DefaultsToCompileAndLinkExecutable(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-o", "a.out")
	if cfg.LinkerOutputType == nil || *cfg.LinkerOutputType != LinkExecutable {
		t.Fatalf("LinkerOutputType = %v, want executable", cfg.LinkerOutputType)
	}
	if cfg.CompilerOutputType == nil || *cfg.CompilerOutputType != vpath.Object {
		t.Fatalf("CompilerOutputType = %v, want object", cfg.CompilerOutputType)
	}
}

func TestResolve_EmitIRHasNoLinkStep(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-emit-ir")
	if cfg.LinkerOutputType != nil {
		t.Fatalf("LinkerOutputType = %v, want nil", cfg.LinkerOutputType)
	}
	if cfg.CompilerOutputType == nil || *cfg.CompilerOutputType != vpath.LLVMIR {
		t.Fatalf("CompilerOutputType = %v, want llvmIR", cfg.CompilerOutputType)
	}
}

func TestResolve_EmitLibraryDynamicByDefault(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-emit-library", "-o", "libWidgets.dylib")
	if cfg.LinkerOutputType == nil || *cfg.LinkerOutputType != LinkDynamicLibrary {
		t.Fatalf("LinkerOutputType = %v, want dynamicLibrary", cfg.LinkerOutputType)
	}
	if cfg.ModuleName != "Widgets" {
		t.Fatalf("ModuleName = %q, want Widgets (lib prefix stripped)", cfg.ModuleName)
	}
}

func TestResolve_EmitLibraryStaticWithStaticFlag(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-emit-library", "-static", "-o", "libWidgets.a")
	if cfg.LinkerOutputType == nil || *cfg.LinkerOutputType != LinkStaticLibrary {
		t.Fatalf("LinkerOutputType = %v, want staticLibrary", cfg.LinkerOutputType)
	}
}

func TestResolve_BatchModeSelected(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "b.swift", "-enable-batch-mode")
	if cfg.Mode.Kind != ModeBatchCompile {
		t.Fatalf("Mode.Kind = %v, want batchCompile", cfg.Mode.Kind)
	}
}

func TestResolve_DisableBatchModeWinsOverEnable(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-enable-batch-mode", "-disable-batch-mode")
	if cfg.Mode.Kind != ModeStandardCompile {
		t.Fatalf("Mode.Kind = %v, want standardCompile", cfg.Mode.Kind)
	}
}

func TestResolve_NumThreadsClampedInBatchMode(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-enable-batch-mode", "-num-threads", "4")
	if cfg.NumThreads != 0 {
		t.Fatalf("NumThreads = %d, want 0", cfg.NumThreads)
	}
	if !hasCode(bag, diag.EnvMultithreadBatchSkew) {
		t.Error("expected an EnvMultithreadBatchSkew warning")
	}
}

func TestResolve_InvalidModuleNameIsReplacedWithSentinel(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-module-name", "1bad")
	if cfg.ModuleName != "__bad__" {
		t.Fatalf("ModuleName = %q, want __bad__", cfg.ModuleName)
	}
	if !hasCode(bag, diag.CfgInvalidModuleName) {
		t.Error("expected a CfgInvalidModuleName error")
	}
}

func TestResolve_ReservedSwiftNameRejectedWithoutParseStdlib(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-module-name", "Swift")
	if cfg.ModuleName != "__bad__" {
		t.Fatalf("ModuleName = %q, want __bad__", cfg.ModuleName)
	}
}

func TestResolve_SwiftNameAllowedWithParseStdlib(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-module-name", "Swift", "-parse-stdlib")
	if cfg.ModuleName != "Swift" {
		t.Fatalf("ModuleName = %q, want Swift", cfg.ModuleName)
	}
}

func TestResolve_ConflictingDebugInfoFormatIsAnError(t *testing.T) {
	bag := diag.NewBag(10)
	resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-g", "-debug-info-format=codeview", "-gline-tables-only")
	if !bag.HasErrors() {
		t.Fatal("expected an error for codeview with -gline-tables-only")
	}
	if !hasCode(bag, diag.CfgConflictingFlags) {
		t.Error("expected a CfgConflictingFlags error")
	}
}

func TestResolve_DebugFormatWithoutLevelIsAnError(t *testing.T) {
	bag := diag.NewBag(10)
	resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-debug-info-format=codeview")
	if !hasCode(bag, diag.CfgDebugFormatNeedsLevel) {
		t.Error("expected a CfgDebugFormatNeedsLevel error")
	}
}

func TestResolve_ImmediateModeNilsModuleAndLinkerOutput(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwift, bag, "a.swift")
	if cfg.Mode.Kind != ModeImmediate {
		t.Fatalf("Mode.Kind = %v, want immediate", cfg.Mode.Kind)
	}
	if cfg.LinkerOutputType != nil {
		t.Fatalf("LinkerOutputType = %v, want nil in immediate mode", cfg.LinkerOutputType)
	}
	if cfg.ModuleOutput.IsSet() {
		t.Fatal("ModuleOutput should be unset in immediate mode")
	}
}

func TestResolve_REPLWithNoInputs(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwift, bag)
	if cfg.Mode.Kind != ModeREPL {
		t.Fatalf("Mode.Kind = %v, want repl", cfg.Mode.Kind)
	}
}

func TestResolve_TopLevelModuleOnlyWhenExplicitlyRequested(t *testing.T) {
	// -g alone drives an auxiliary, not a top-level, module output: the
	// topLevel kind is only ever assigned alongside an explicit
	// -emit-module/-emit-module-path, so it can never appear next to a
	// link step without explicit emission already having been requested.
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-g", "-o", "a.out")
	if cfg.ModuleOutput.Kind == ModuleOutputTopLevel {
		t.Fatal("ModuleOutput.Kind = topLevel without explicit -emit-module/-emit-module-path")
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

func TestResolve_ExplicitEmitModuleWithLinkIsNotConflicting(t *testing.T) {
	bag := diag.NewBag(10)
	cfg := resolve(t, options.PersonalitySwiftc, bag, "a.swift", "-emit-module", "-o", "a.out")
	if cfg.ModuleOutput.Kind != ModuleOutputTopLevel {
		t.Fatalf("ModuleOutput.Kind = %v, want topLevel", cfg.ModuleOutput.Kind)
	}
	if cfg.LinkerOutputType == nil {
		t.Fatal("LinkerOutputType should still be set")
	}
	if hasCode(bag, diag.CfgConflictingFlags) {
		t.Error("explicit -emit-module should not be flagged as conflicting with the link step")
	}
}

func TestResolveSupplementaryOutput_ExplicitPathWins(t *testing.T) {
	opts := parseOpts(t, "a.swift", "-emit-dependencies", "-emit-dependencies-path", "custom.d")
	kind := SupplementaryKind{Type: vpath.Dependencies, IsOutputFlag: "emit-dependencies", OutputPathFlag: "emit-dependencies-path"}
	got := ResolveSupplementaryOutput(kind, opts, nil, "Main")
	if got == nil || got.File.Name() != "custom.d" {
		t.Fatalf("ResolveSupplementaryOutput() = %v, want custom.d", got)
	}
}

func TestResolveSupplementaryOutput_UnsetRequestFlagYieldsNothing(t *testing.T) {
	opts := parseOpts(t, "a.swift")
	kind := SupplementaryKind{Type: vpath.Dependencies, IsOutputFlag: "emit-dependencies", OutputPathFlag: "emit-dependencies-path"}
	if got := ResolveSupplementaryOutput(kind, opts, nil, "Main"); got != nil {
		t.Fatalf("ResolveSupplementaryOutput() = %v, want nil", got)
	}
}

func TestResolveSupplementaryOutput_ModuleNameDerived(t *testing.T) {
	opts := parseOpts(t, "a.swift", "-emit-dependencies")
	kind := SupplementaryKind{Type: vpath.Dependencies, IsOutputFlag: "emit-dependencies", OutputPathFlag: "emit-dependencies-path"}
	got := ResolveSupplementaryOutput(kind, opts, nil, "Main")
	if got == nil || got.File.Name() != "Main.d" {
		t.Fatalf("ResolveSupplementaryOutput() = %v, want Main.d", got)
	}
}

func TestResolveSupplementaryOutput_ODerivedWhenDistinctFromPrimary(t *testing.T) {
	objectType := vpath.Object
	opts := parseOpts(t, "a.swift", "-emit-dependencies", "-o", "out.o")
	kind := SupplementaryKind{Type: vpath.Dependencies, IsOutputFlag: "emit-dependencies", OutputPathFlag: "emit-dependencies-path"}
	got := ResolveSupplementaryOutput(kind, opts, &objectType, "Main")
	if got == nil || got.File.Name() != "out.d" {
		t.Fatalf("ResolveSupplementaryOutput() = %v, want out.d", got)
	}
}
