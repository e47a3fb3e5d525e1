// Package vpath models the file-type and virtual-path currency the
// driver reasons about: where an input or output lives, and what kind
// of artifact it is.
package vpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind tags the variant of a VirtualPath.
type Kind uint8

const (
	KindAbsolute Kind = iota
	KindRelative
	KindStandardInput
	KindTemporary
	KindFileList
)

// VirtualPath is a tagged union over the places a job's input or
// output can live: a path on disk (absolute or relative), the
// process's stdin, a scratch file allocated for one driver
// invocation, or a spilled file-list whose contents are held in
// memory until a job materializes them.
type VirtualPath struct {
	kind     Kind
	path     string // absolute/relative/temporary name
	contents []string
}

// Absolute returns a VirtualPath rooted at an absolute filesystem path.
func Absolute(p string) VirtualPath { return VirtualPath{kind: KindAbsolute, path: p} }

// Relative returns a VirtualPath rooted at a path relative to the
// driver's working directory.
func Relative(p string) VirtualPath { return VirtualPath{kind: KindRelative, path: p} }

// StandardInput returns the VirtualPath denoting the process's stdin.
func StandardInput() VirtualPath { return VirtualPath{kind: KindStandardInput, path: "-"} }

// Temporary returns a VirtualPath naming a scratch file that a job
// will create or consume; name must already be unique within the
// invocation (see tempalloc.Allocator).
func Temporary(name string) VirtualPath { return VirtualPath{kind: KindTemporary, path: name} }

// FileList returns a VirtualPath that spills contents to a temporary
// file named name the first time a job resolves it.
func FileList(name string, contents []string) VirtualPath {
	cp := make([]string, len(contents))
	copy(cp, contents)
	return VirtualPath{kind: KindFileList, path: name, contents: cp}
}

// Kind reports which variant this VirtualPath holds.
func (v VirtualPath) Kind() Kind { return v.kind }

// Name returns the path or temporary name backing this VirtualPath.
func (v VirtualPath) Name() string { return v.path }

// Contents returns the backing lines of a file-list VirtualPath.
func (v VirtualPath) Contents() []string { return v.contents }

// Canonical returns a normalized string form used for equality and
// hashing: standard input is its own canonical form, absolute and
// relative paths are cleaned, temporaries and file-lists are keyed by
// name.
func (v VirtualPath) Canonical() string {
	switch v.kind {
	case KindStandardInput:
		return "-"
	case KindAbsolute, KindRelative:
		return filepath.Clean(v.path)
	case KindTemporary, KindFileList:
		return "tmp:" + v.path
	default:
		return v.path
	}
}

func (v VirtualPath) String() string { return v.Canonical() }

// FileType is a closed enumeration of the artifact kinds the driver
// reasons about.
type FileType uint8

const (
	Swift FileType = iota
	SIL
	SIB
	Object
	Autolink
	SwiftModule
	SwiftDocumentation
	SwiftInterface
	SwiftDeps
	Assembly
	LLVMIR
	LLVMBitcode
	AST
	PCH
	ImportedModules
	IndexData
	Remap
	Diagnostics
	Dependencies
	ObjCHeader
	ModuleTrace
	TBD
	OptimizationRecord
	RawSIL
	RawSIB
)

// Extension returns the canonical file extension (without the dot)
// used when the driver names an output of this type.
func (t FileType) Extension() string {
	switch t {
	case Swift:
		return "swift"
	case SIL, RawSIL:
		return "sil"
	case SIB, RawSIB:
		return "sib"
	case Object:
		return "o"
	case Autolink:
		return "autolink"
	case SwiftModule:
		return "swiftmodule"
	case SwiftDocumentation:
		return "swiftdoc"
	case SwiftInterface:
		return "swiftinterface"
	case SwiftDeps:
		return "swiftdeps"
	case Assembly:
		return "s"
	case LLVMIR:
		return "ll"
	case LLVMBitcode:
		return "bc"
	case AST:
		return "ast"
	case PCH:
		return "pch"
	case ImportedModules:
		return "importedmodules"
	case IndexData:
		return "indexdata"
	case Remap:
		return "remap"
	case Diagnostics:
		return "dia"
	case Dependencies:
		return "d"
	case ObjCHeader:
		return "h"
	case ModuleTrace:
		return "trace.json"
	case TBD:
		return "tbd"
	case OptimizationRecord:
		return "opt.yaml"
	default:
		return "o"
	}
}

func (t FileType) String() string {
	switch t {
	case Swift:
		return "swift"
	case SIL:
		return "sil"
	case SIB:
		return "sib"
	case Object:
		return "object"
	case Autolink:
		return "autolink"
	case SwiftModule:
		return "swiftModule"
	case SwiftDocumentation:
		return "swiftDocumentation"
	case SwiftInterface:
		return "swiftInterface"
	case SwiftDeps:
		return "swiftDeps"
	case Assembly:
		return "assembly"
	case LLVMIR:
		return "llvmIR"
	case LLVMBitcode:
		return "llvmBitcode"
	case AST:
		return "ast"
	case PCH:
		return "pch"
	case ImportedModules:
		return "importedModules"
	case IndexData:
		return "indexData"
	case Remap:
		return "remap"
	case Diagnostics:
		return "diagnostics"
	case Dependencies:
		return "dependencies"
	case ObjCHeader:
		return "objcHeader"
	case ModuleTrace:
		return "moduleTrace"
	case TBD:
		return "tbd"
	case OptimizationRecord:
		return "optimizationRecord"
	case RawSIL:
		return "rawSil"
	case RawSIB:
		return "rawSib"
	default:
		return fmt.Sprintf("FileType(%d)", uint8(t))
	}
}

// IsPartOfSwiftCompilation reports whether the type is a primary
// input to the Swift front-end proper, i.e. a batch-partitionable
// input.
func (t FileType) IsPartOfSwiftCompilation() bool {
	switch t {
	case Swift, SIL, SIB:
		return true
	default:
		return false
	}
}

// extensionTable maps a raw input extension to the FileType it
// denotes. Only types that are plausible *inputs* participate: the
// raw SIL/SIB variants and Autolink are internal job-output kinds
// only and are deliberately absent so FromExtension round-trips
// against Extension() for everything it does recognize.
//
// ModuleTrace and OptimizationRecord are deliberately absent too:
// their Extension() values ("trace.json", "opt.yaml") are
// multi-component and would collide with plain "json"/"yaml" inputs
// if registered here, so FromExtension(t.Extension()) does not
// round-trip for those two types. Matches the upstream driver, which
// also never treats .trace.json/.opt.yaml as a recognized input
// extension.
var extensionTable = map[string]FileType{
	"swift":           Swift,
	"sil":             SIL,
	"sib":             SIB,
	"o":               Object,
	"swiftmodule":     SwiftModule,
	"swiftdoc":        SwiftDocumentation,
	"swiftinterface":  SwiftInterface,
	"swiftdeps":       SwiftDeps,
	"s":               Assembly,
	"ll":              LLVMIR,
	"bc":              LLVMBitcode,
	"ast":             AST,
	"pch":             PCH,
	"importedmodules": ImportedModules,
	"indexdata":       IndexData,
	"remap":           Remap,
	"dia":             Diagnostics,
	"d":               Dependencies,
	"h":               ObjCHeader,
	"tbd":             TBD,
}

// FromExtension maps a file extension (without the leading dot) to a
// FileType. Unknown extensions fall back to Object: the fallback is
// preserved deliberately so unrecognized inputs are not rejected at
// classification time.
func FromExtension(ext string) FileType {
	ext = strings.TrimPrefix(ext, ".")
	if t, ok := extensionTable[strings.ToLower(ext)]; ok {
		return t
	}
	return Object
}

// TypedVirtualPath pairs a VirtualPath with the FileType the driver
// believes it holds. It is the primary currency of job inputs and
// outputs and is hashable by both fields via Key.
type TypedVirtualPath struct {
	File VirtualPath
	Type FileType
}

// Key returns a value suitable for use as a map key, combining the
// canonical path form and the file type.
func (p TypedVirtualPath) Key() string {
	return fmt.Sprintf("%s\x00%d", p.File.Canonical(), uint8(p.Type))
}

func (p TypedVirtualPath) String() string {
	return fmt.Sprintf("%s:%s", p.Type, p.File)
}
