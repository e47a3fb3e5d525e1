// Package config implements the Mode Resolver, Module Resolver, and
// Supplementary Output Resolver: the heart of mapping a loosely
// constrained option surface to a coherent, validated
// configuration.
package config

import "swiftdriver/internal/vpath"

// ModeKind is the closed variant of compilation modes.
type ModeKind uint8

const (
	ModeStandardCompile ModeKind = iota
	ModeBatchCompile
	ModeSingleCompile
	ModeImmediate
	ModeREPL
)

func (k ModeKind) String() string {
	switch k {
	case ModeStandardCompile:
		return "standardCompile"
	case ModeBatchCompile:
		return "batchCompile"
	case ModeSingleCompile:
		return "singleCompile"
	case ModeImmediate:
		return "immediate"
	case ModeREPL:
		return "repl"
	default:
		return "unknown"
	}
}

// BatchModeInfo carries the batch-compile knobs a user may override;
// each field is optional (nil means "use the derived default").
type BatchModeInfo struct {
	Count     *uint
	SizeLimit *uint
	// Seed is reserved for future shuffling;
	// it is recorded but has no effect on assignment today.
	Seed *uint
}

// CompilerMode is the resolved compilation mode plus its batch payload
// when Kind == ModeBatchCompile.
type CompilerMode struct {
	Kind  ModeKind
	Batch BatchModeInfo
}

// LinkOutputType is the closed variant of link-step output kinds.
type LinkOutputType uint8

const (
	LinkExecutable LinkOutputType = iota
	LinkDynamicLibrary
	LinkStaticLibrary
)

func (t LinkOutputType) String() string {
	switch t {
	case LinkExecutable:
		return "executable"
	case LinkDynamicLibrary:
		return "dynamicLibrary"
	case LinkStaticLibrary:
		return "staticLibrary"
	default:
		return "unknown"
	}
}

// DebugInfoLevel is the closed variant of debug info levels.
type DebugInfoLevel uint8

const (
	DebugASTTypes DebugInfoLevel = iota
	DebugLineTables
	DebugDwarfTypes
)

// RequiresModule reports whether this debug level needs the
// swiftmodule to resolve type information.
func (d DebugInfoLevel) RequiresModule() bool {
	return d == DebugASTTypes || d == DebugDwarfTypes
}

func (d DebugInfoLevel) String() string {
	switch d {
	case DebugASTTypes:
		return "astTypes"
	case DebugLineTables:
		return "lineTables"
	case DebugDwarfTypes:
		return "dwarfTypes"
	default:
		return "unknown"
	}
}

// DebugInfoFormat is the closed variant of debug info container
// formats.
type DebugInfoFormat uint8

const (
	DebugFormatDWARF DebugInfoFormat = iota
	DebugFormatCodeView
)

func (f DebugInfoFormat) String() string {
	if f == DebugFormatCodeView {
		return "codeView"
	}
	return "dwarf"
}

// ModuleOutputKind distinguishes a terminal module artifact from an
// intermediate one.
type ModuleOutputKind uint8

const (
	ModuleOutputNone ModuleOutputKind = iota
	ModuleOutputTopLevel
	ModuleOutputAuxiliary
)

// ModuleOutput is the resolved module-emission decision.
type ModuleOutput struct {
	Kind ModuleOutputKind
	Path vpath.VirtualPath
}

func (m ModuleOutput) IsSet() bool { return m.Kind != ModuleOutputNone }
