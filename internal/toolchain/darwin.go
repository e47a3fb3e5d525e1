package toolchain

import "swiftdriver/internal/vpath"

// Darwin targets macOS/iOS/tvOS/watchOS: static archiving via the
// system linker, no separate autolink-extract step (autolink
// directives are embedded and read natively), and the planner's
// Generate-dSYM job applies.
type Darwin struct{}

func (Darwin) Name() string { return "darwin" }
func (Darwin) RequiresAutolinkExtract() bool { return false }
func (Darwin) IsDarwin() bool { return true }
func (Darwin) ToolPath(tool string) string { return tool }
func (Darwin) DefaultSDKPath() (string, bool) {
	return "/Library/Developer/CommandLineTools/SDKs/MacOSX.sdk", true
}

func (Darwin) LinkArgs(req LinkRequest) []string {
	args := []string{"-o", req.Output.File.Name()}
	for _, in := range req.Inputs {
		if in.Type == vpath.SwiftModule || in.Type == vpath.SwiftDocumentation {
			args = append(args, "-add_ast_path", in.File.Name())
			continue
		}
		args = append(args, in.File.Name())
	}
	switch req.OutputKind {
	case "dynamicLibrary":
		args = append(args, "-dylib")
	case "staticLibrary":
		args = append([]string{"-static"}, args...)
	}
	if req.SDKPath != "" {
		args = append(args, "-syslibroot", req.SDKPath)
	}
	return args
}
