package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

// Version information for the driver CLI.
// The plain string variables can be overridden at build time via
// -ldflags -X; Version is assembled from colored segments at package
// init, so -X does not replace it.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the driver binary itself,
	// distinct from LanguageVersion below.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// LanguageVersion is the Swift language version reported in the
	// -version banner.
	LanguageVersion = "5.9"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// String renders the banner printed for -version/--version, in the
// two-line "language version / target" shape swiftc itself uses.
func String() string {
	s := fmt.Sprintf("swift-driver version: %s (swiftlang-%s)", Version, LanguageVersion)
	if GitCommit != "" {
		s += fmt.Sprintf(" %s", GitCommit)
	}
	s += fmt.Sprintf("\nTarget: %s-unknown-%s", runtime.GOARCH, runtime.GOOS)
	return s
}
