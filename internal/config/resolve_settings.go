package config

import (
	"fortio.org/safecast"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
)

// debugLevelFlagOrder must match options.debugLevelGroupFlags for the
// last-wins resolution to line up with the flags actually defined.
var debugLevelFlagOrder = []string{"gnone", "g", "gline-tables-only", "gdwarf-types"}

// resolveThreadCount implements the thread-count rule: last
// num-threads argument parsed as non-negative; invalid is diagnosed
// and clamped to 0; batch mode clamps to 0 with a warning.
func resolveThreadCount(opts options.ParsedOptions, mode ModeKind, reporter diag.Reporter) uint {
	raw, ok := opts.Int("num-threads")
	if !ok {
		return 0
	}
	if raw < 0 {
		diag.ReportError(reporter, diag.CfgInvalidThreadCount, diag.Location{Option: "num-threads"},
			"-num-threads requires a non-negative integer").Emit()
		return 0
	}
	n, convErr := safecast.Conv[uint](raw)
	if convErr != nil {
		diag.ReportError(reporter, diag.CfgInvalidThreadCount, diag.Location{Option: "num-threads"},
			"-num-threads requires a non-negative integer").Emit()
		return 0
	}
	if n > 0 && mode == ModeBatchCompile {
		diag.ReportWarning(reporter, diag.EnvMultithreadBatchSkew, diag.Location{Option: "num-threads"},
			"-num-threads is not compatible with batch mode; clamping to 0").Emit()
		return 0
	}
	return n
}

// resolveDebugLevel implements the debug-info-level rule: last option
// in the -g group wins; gnone clears the level.
func resolveDebugLevel(opts options.ParsedOptions) *DebugInfoLevel {
	winner, ok := opts.LastOfGroup(debugLevelFlagOrder...)
	if !ok || winner == "gnone" {
		return nil
	}
	var lvl DebugInfoLevel
	switch winner {
	case "g":
		lvl = DebugASTTypes
	case "gline-tables-only":
		lvl = DebugLineTables
	case "gdwarf-types":
		lvl = DebugDwarfTypes
	default:
		return nil
	}
	return &lvl
}

// resolveDebugFormat implements the debug-info-format rule: default
// dwarf; codeView with lineTables/dwarfTypes is an error;
// specifying a format without any -g is an error.
func resolveDebugFormat(opts options.ParsedOptions, level *DebugInfoLevel, reporter diag.Reporter) DebugInfoFormat {
	raw, explicit := opts.String("debug-info-format")
	if !explicit {
		return DebugFormatDWARF
	}
	if level == nil {
		diag.ReportError(reporter, diag.CfgDebugFormatNeedsLevel, diag.Location{Option: "debug-info-format"},
			"-debug-info-format requires a -g flag").Emit()
		return DebugFormatDWARF
	}
	var format DebugInfoFormat
	switch raw {
	case "codeview":
		format = DebugFormatCodeView
	case "dwarf", "":
		format = DebugFormatDWARF
	default:
		diag.ReportError(reporter, diag.CfgInvalidArgumentValue, diag.Location{Option: "debug-info-format"},
			"unknown -debug-info-format value: "+raw).Emit()
		return DebugFormatDWARF
	}
	if format == DebugFormatCodeView && (*level == DebugLineTables || *level == DebugDwarfTypes) {
		diag.ReportError(reporter, diag.CfgConflictingFlags, diag.Location{Option: "debug-info-format"},
			"-debug-info-format=codeview is incompatible with this -g level").Emit()
		return DebugFormatDWARF
	}
	return format
}

// IncrementalSettings captures the incremental-build derivation.
type IncrementalSettings struct {
	ShowDecisions bool
	Enabled       bool
	DisabledNote  string
}

func resolveIncremental(opts options.ParsedOptions) IncrementalSettings {
	s := IncrementalSettings{ShowDecisions: opts.Bool("driver-show-incremental-build-decisions")}
	requested := opts.Bool("incremental")
	wmo := opts.Bool("whole-module-optimization") || opts.Bool("wmo")
	embedBitcode := opts.Bool("embed-bitcode")
	s.Enabled = requested && !wmo && !embedBitcode
	if requested && !s.Enabled {
		switch {
		case wmo:
			s.DisabledNote = "not compatible with whole module optimization"
		case embedBitcode:
			s.DisabledNote = "not currently compatible with embedding LLVM IR bitcode"
		}
	}
	return s
}
