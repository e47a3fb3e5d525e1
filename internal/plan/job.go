// Package plan implements the Build Planner and Job Model: turning a
// resolved configuration into an ordered, immutable job list a
// JobExecutor can run.
package plan

import "swiftdriver/internal/vpath"

// JobKind names the build step a Job was emitted for.
type JobKind uint8

const (
	JobEmitModule JobKind = iota
	JobCompile
	JobMergeModule
	JobAutolinkExtract
	JobLink
	JobGenerateDSYM
)

func (k JobKind) String() string {
	switch k {
	case JobEmitModule:
		return "emitModule"
	case JobCompile:
		return "compile"
	case JobMergeModule:
		return "mergeModule"
	case JobAutolinkExtract:
		return "autolinkExtract"
	case JobLink:
		return "link"
	case JobGenerateDSYM:
		return "generateDSYM"
	default:
		return "unknown"
	}
}

// ToolRef names the executable a Job invokes, left unresolved to a
// bare name or toolchain-provided path: the JobExecutor resolves it.
type ToolRef struct {
	Name string
}

// ArgKind is the closed variant of argument template shapes.
type ArgKind uint8

const (
	// ArgFlag is a verbatim token.
	ArgFlag ArgKind = iota
	// ArgPath resolves to a path at execution time.
	ArgPath
	// ArgFileList spills Paths to a temporary file and substitutes an
	// "@path" token for it.
	ArgFileList
)

// ArgTemplate decouples argument construction from resolution so the
// JobExecutor, not the planner, touches the filesystem.
type ArgTemplate struct {
	Kind  ArgKind
	Flag  string
	Path  vpath.TypedVirtualPath
	Paths []vpath.TypedVirtualPath
	// ListName is used to derive the spilled file's name when Kind ==
	// ArgFileList.
	ListName string
}

// Flag builds a verbatim-token argument.
func Flag(s string) ArgTemplate { return ArgTemplate{Kind: ArgFlag, Flag: s} }

// PathArg builds an argument resolved to p's path at execution time.
func PathArg(p vpath.TypedVirtualPath) ArgTemplate { return ArgTemplate{Kind: ArgPath, Path: p} }

// FileListArg builds an "@path" argument whose contents are ps.
func FileListArg(name string, ps []vpath.TypedVirtualPath) ArgTemplate {
	return ArgTemplate{Kind: ArgFileList, ListName: name, Paths: ps}
}

// Job is an immutable description of one sub-process invocation.
// The planner never mutates a Job after appending it to the
// returned list.
type Job struct {
	Kind    JobKind
	Tool    ToolRef
	Inputs  []vpath.TypedVirtualPath
	Outputs []vpath.TypedVirtualPath
	Args    []ArgTemplate
}
