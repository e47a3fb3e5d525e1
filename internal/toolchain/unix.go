package toolchain

import "swiftdriver/internal/vpath"

// GenericUnix targets Linux/FreeBSD/Haiku: objects embed autolink
// directives that must be extracted into a response file by a
// dedicated job before linking.
type GenericUnix struct{}

func (GenericUnix) Name() string { return "generic-unix" }
func (GenericUnix) RequiresAutolinkExtract() bool { return true }
func (GenericUnix) IsDarwin() bool { return false }
func (GenericUnix) ToolPath(tool string) string { return tool }
func (GenericUnix) DefaultSDKPath() (string, bool) { return "", false }

func (GenericUnix) LinkArgs(req LinkRequest) []string {
	args := []string{"-o", req.Output.File.Name()}
	for _, in := range req.Inputs {
		if in.Type == vpath.SwiftModule || in.Type == vpath.SwiftDocumentation {
			continue // carried for debug info only on Darwin; ignored here
		}
		args = append(args, in.File.Name())
	}
	switch req.OutputKind {
	case "dynamicLibrary":
		args = append(args, "-shared")
	case "staticLibrary":
		args = append([]string{"-static"}, args...)
	}
	return args
}
