package config

import (
	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/tempalloc"
	"swiftdriver/internal/vpath"
)

// Configuration is the "Driver configuration" aggregate: the output
// of running mode, module, and toolchain resolution once. It is
// constructed exactly once per invocation and never mutated afterward.
type Configuration struct {
	Mode CompilerMode

	CompilerOutputType *vpath.FileType
	LinkerOutputType   *LinkOutputType
	UpdateCode         bool

	NumThreads      uint
	DebugInfoLevel  *DebugInfoLevel
	DebugInfoFormat DebugInfoFormat
	Incremental     IncrementalSettings

	ModuleOutput ModuleOutput
	ModuleName   string

	Supplementary map[vpath.FileType]vpath.TypedVirtualPath
}

// Resolve runs the Mode Resolver, Module Resolver and Supplementary
// Output Resolver in that order, enforcing the Driver-configuration
// invariants on the result.
func Resolve(opts options.ParsedOptions, personality options.Personality, inputs []vpath.TypedVirtualPath, tmp *tempalloc.Allocator, workingDirectory string, reporter diag.Reporter) Configuration {
	mo := resolveMode(opts, personality, reporter)

	cfg := Configuration{
		Mode:               mo.Mode,
		CompilerOutputType: mo.CompilerOutputType,
		LinkerOutputType:   mo.LinkerOutputType,
		UpdateCode:         mo.UpdateCode,
	}

	cfg.NumThreads = resolveThreadCount(opts, mo.Mode.Kind, reporter)
	cfg.DebugInfoLevel = resolveDebugLevel(opts)
	cfg.DebugInfoFormat = resolveDebugFormat(opts, cfg.DebugInfoLevel, reporter)
	cfg.Incremental = resolveIncremental(opts)

	moduleKind := resolveModuleKind(opts, mo.Mode.Kind, cfg.DebugInfoLevel, cfg.LinkerOutputType, reporter)
	cfg.ModuleName = resolveModuleName(opts, mo.Mode.Kind, cfg.LinkerOutputType, cfg.CompilerOutputType, inputs, reporter)
	cfg.ModuleOutput = resolveModuleOutputPath(opts, moduleKind, cfg.ModuleName, workingDirectory, tmp)

	cfg.Supplementary = ResolveAllSupplementaryOutputs(opts, cfg.CompilerOutputType, cfg.ModuleName)

	enforceInvariants(&cfg, opts, reporter)
	return cfg
}

// enforceInvariants applies the Driver-configuration invariants
// that aren't already guaranteed by construction.
func enforceInvariants(cfg *Configuration, opts options.ParsedOptions, reporter diag.Reporter) {
	if cfg.Mode.Kind == ModeREPL || cfg.Mode.Kind == ModeImmediate {
		cfg.ModuleOutput = ModuleOutput{}
		cfg.LinkerOutputType = nil
	}
	if cfg.ModuleOutput.Kind == ModuleOutputTopLevel && cfg.LinkerOutputType != nil {
		requested := opts.Bool("emit-module")
		if _, ok := opts.String("emit-module-path"); ok {
			requested = true
		}
		if !requested {
			diag.ReportError(reporter, diag.CfgConflictingFlags, diag.Location{Option: "emit-module"},
				"top-level module output alongside a link step requires explicit module emission").Emit()
		}
	}
	if cfg.NumThreads > 0 && cfg.Mode.Kind == ModeBatchCompile {
		diag.ReportWarning(reporter, diag.EnvMultithreadBatchSkew, diag.Location{Option: "num-threads"},
			"-num-threads is not compatible with batch mode; clamping to 0").Emit()
		cfg.NumThreads = 0
	}
}
