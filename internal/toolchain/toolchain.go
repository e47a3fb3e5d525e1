// Package toolchain implements the SDK/Toolchain Resolver and the
// small Toolchain surface the Build Planner delegates link-step
// argument assembly to.
package toolchain

import "swiftdriver/internal/vpath"

// LinkRequest carries what the planner knows when it needs the
// toolchain to assemble a link job's arguments.
type LinkRequest struct {
	Inputs     []vpath.TypedVirtualPath
	Output     vpath.TypedVirtualPath
	OutputKind string // "executable" | "dynamicLibrary" | "staticLibrary"
	SDKPath    string
}

// Toolchain is the small, pluggable surface that keeps
// platform-specific argument assembly out of the Build Planner.
type Toolchain interface {
	// Name identifies the toolchain for diagnostics and tests.
	Name() string
	// RequiresAutolinkExtract reports whether this platform needs a
	// separate autolink-extract job before linking.
	RequiresAutolinkExtract() bool
	// IsDarwin reports whether this is the Darwin toolchain (gates the
	// dSYM job).
	IsDarwin() bool
	// ToolPath resolves the on-disk path (or bare name, left to PATH
	// lookup by the JobExecutor) for a named tool ("swift-frontend",
	// "ld", "swift-autolink-extract", ...).
	ToolPath(tool string) string
	// DefaultSDKPath returns this toolchain's default SDK when none was
	// requested explicitly (only meaningful for immediate/repl on
	// Darwin).
	DefaultSDKPath() (string, bool)
	// LinkArgs builds the linker command-line arguments for req.
	LinkArgs(req LinkRequest) []string
}
