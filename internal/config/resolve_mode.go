package config

import (
	"strings"

	"fortio.org/safecast"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/vpath"
)

// modeOutput describes what resolveMode derived before module/link
// considerations are layered on: the mode itself, the primary
// compiler output type (nil means "no compiler output"), and whether
// a link step was requested at all.
type modeOutput struct {
	Mode               CompilerMode
	CompilerOutputType *vpath.FileType
	LinkerOutputType   *LinkOutputType
	UpdateCode         bool
}

// singleCompileFlags force CompilerMode.singleCompile.
var singleCompileFlags = map[string]bool{
	"emit-pch": true, "emit-imported-modules": true, "index-file": true,
}

// replFlags force CompilerMode.repl.
var replFlags = map[string]bool{
	"repl": true, "lldb-repl": true, "deprecated-integrated-repl": true,
}

// noOutputFlags produce no compiler output; dump_* is handled separately via a prefix match.
var noOutputFlags = map[string]bool{
	"parse": true, "typecheck": true, "resolve-imports": true,
	"dump-parse": true, "emit-syntax": true, "print-ast": true,
}

func fileType(t vpath.FileType) *vpath.FileType { return &t }
func linkType(t LinkOutputType) *LinkOutputType { return &t }

// resolveMode implements the Mode Resolver.
func resolveMode(opts options.ParsedOptions, personality options.Personality, reporter diag.Reporter) modeOutput {
	winner, hasModeFlag := opts.LastOfGroup(modeGroupNames()...)
	if !hasModeFlag {
		if w, ok := opts.LastOfPrefix("dump-"); ok {
			winner, hasModeFlag = w, true
		}
	}

	out := modeOutput{}

	switch {
	case hasModeFlag && singleCompileFlags[winner]:
		out.Mode = CompilerMode{Kind: ModeSingleCompile}
	case hasModeFlag && replFlags[winner]:
		out.Mode = CompilerMode{Kind: ModeREPL}
	case personality.IsInteractive():
		if len(opts.Inputs()) > 0 {
			out.Mode = CompilerMode{Kind: ModeImmediate}
		} else {
			out.Mode = CompilerMode{Kind: ModeREPL}
		}
	case opts.Bool("whole-module-optimization") || opts.Bool("wmo"):
		out.Mode = CompilerMode{Kind: ModeSingleCompile}
	default:
		out.Mode = resolveBatchOrStandard(opts)
	}

	out.CompilerOutputType, out.LinkerOutputType, out.UpdateCode = resolvePrimaryOutputs(opts, winner, hasModeFlag, out.Mode.Kind, reporter)

	if out.Mode.Kind == ModeREPL || out.Mode.Kind == ModeImmediate {
		out.CompilerOutputType = nil
		out.LinkerOutputType = nil
	}

	return out
}

func modeGroupNames() []string {
	names := make([]string, 0, len(singleCompileFlags)+len(replFlags)+len(noOutputFlags)+8)
	for n := range singleCompileFlags {
		names = append(names, n)
	}
	for n := range replFlags {
		names = append(names, n)
	}
	for n := range noOutputFlags {
		names = append(names, n)
	}
	names = append(names, "emit-executable", "emit-library", "emit-object", "c",
		"emit-assembly", "emit-sil", "emit-silgen", "emit-sib", "emit-sibgen",
		"emit-ir", "emit-bc", "dump-ast", "update-code", "i")
	return names
}

// resolveBatchOrStandard implements Open Question (a): -enable-batch-mode
// yields batchCompile(BatchModeInfo{}), -disable-batch-mode forces
// standardCompile, and neither present defaults to standardCompile
// (batch-flag handling is otherwise an open extension point).
func resolveBatchOrStandard(opts options.ParsedOptions) CompilerMode {
	if opts.Bool("disable-batch-mode") {
		return CompilerMode{Kind: ModeStandardCompile}
	}
	if opts.Bool("enable-batch-mode") {
		return CompilerMode{Kind: ModeBatchCompile, Batch: resolveBatchModeInfo(opts)}
	}
	return CompilerMode{Kind: ModeStandardCompile}
}

// resolveBatchModeInfo reads the user overrides to BatchModeInfo: a
// negative or absent driver-batch-* value leaves the corresponding
// field nil so the planner falls back to its default.
func resolveBatchModeInfo(opts options.ParsedOptions) BatchModeInfo {
	var info BatchModeInfo
	if n, ok := opts.Int("driver-batch-count"); ok {
		if u, err := safecast.Conv[uint](n); err == nil {
			info.Count = &u
		}
	}
	if n, ok := opts.Int("driver-batch-size-limit"); ok {
		if u, err := safecast.Conv[uint](n); err == nil {
			info.SizeLimit = &u
		}
	}
	if n, ok := opts.Int("driver-batch-seed"); ok {
		if u, err := safecast.Conv[uint](n); err == nil {
			info.Seed = &u
		}
	}
	return info
}

// resolvePrimaryOutputs maps the winning mode-group flag (if any) to a
// primary compiler/linker output type per the explicit mode-option
// table, diagnosing the documented conflicts. It switches on winner,
// the same LastOfGroup result resolveMode used to pick CompilerMode,
// rather than re-querying opts.Bool for each candidate flag: only the
// group winner governs the primary output, and opts.Bool alone cannot
// tell which of several mutually exclusive flags was given last.
func resolvePrimaryOutputs(opts options.ParsedOptions, winner string, hasModeFlag bool, mode ModeKind, reporter diag.Reporter) (*vpath.FileType, *LinkOutputType, bool) {
	compilerOut := fileType(vpath.Object)
	var linkerOut *LinkOutputType
	updateCode := false
	static := opts.Bool("static")

	if hasModeFlag && winner == "emit-executable" && static {
		diag.ReportError(reporter, diag.CfgConflictingFlags, diag.Location{Option: "emit-executable"},
			"-emit-executable cannot be combined with -static").Emit()
	}

	// handled reports whether winner's case already settled the primary
	// output; the default case covers mode-only flags (repl variants,
	// "i") which carry no primary-output rule of their own and fall
	// through to the no-mode-option default below, same as !hasModeFlag.
	handled := hasModeFlag
	switch {
	case !hasModeFlag:
		handled = false
	case winner == "emit-executable":
		linkerOut = linkType(LinkExecutable)
	case winner == "emit-library":
		if static {
			linkerOut = linkType(LinkStaticLibrary)
		} else {
			linkerOut = linkType(LinkDynamicLibrary)
		}
	case winner == "emit-object", winner == "c":
		compilerOut = fileType(vpath.Object)
	case winner == "emit-assembly":
		compilerOut = fileType(vpath.Assembly)
	case winner == "emit-sil":
		compilerOut = fileType(vpath.SIL)
	case winner == "emit-silgen":
		compilerOut = fileType(vpath.RawSIL)
	case winner == "emit-sib":
		compilerOut = fileType(vpath.SIB)
	case winner == "emit-sibgen":
		compilerOut = fileType(vpath.RawSIB)
	case winner == "emit-ir":
		compilerOut = fileType(vpath.LLVMIR)
	case winner == "emit-bc":
		compilerOut = fileType(vpath.LLVMBitcode)
	case winner == "dump-ast":
		compilerOut = fileType(vpath.AST)
	case winner == "emit-pch":
		compilerOut = fileType(vpath.PCH)
	case winner == "emit-imported-modules":
		compilerOut = fileType(vpath.ImportedModules)
	case winner == "index-file":
		compilerOut = fileType(vpath.IndexData)
	case winner == "update-code":
		compilerOut = fileType(vpath.Remap)
		updateCode = true
		linkerOut = nil
	case isNoOutputWinner(winner):
		compilerOut = nil
	default:
		handled = false
	}

	if !handled && mode != ModeREPL && mode != ModeImmediate {
		// No mode option determines a primary output: the conventional
		// default is to compile and link an executable.
		linkerOut = linkType(LinkExecutable)
	}

	if updateCode {
		linkerOut = nil
	}

	return compilerOut, linkerOut, updateCode
}

func isNoOutputWinner(winner string) bool {
	if noOutputFlags[winner] {
		return true
	}
	return strings.HasPrefix(winner, "dump-")
}
