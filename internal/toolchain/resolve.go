package toolchain

import (
	"fmt"
	"os"
	"strings"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
)

// ErrUnsupportedTarget is returned when the target triple's OS
// component names no toolchain this driver knows.
type ErrUnsupportedTarget struct{ Target string }

func (e *ErrUnsupportedTarget) Error() string {
	return fmt.Sprintf("unsupported target: %q", e.Target)
}

var darwinOSNames = map[string]bool{"darwin": true, "macosx": true, "ios": true, "tvos": true, "watchos": true}
var unixOSNames = map[string]bool{"linux": true, "freebsd": true, "haiku": true}

// Resolve picks a Toolchain by the OS component of a target triple. An
// empty target defaults to the host triple's OS resolution rule below
// via hostOS. A target that parses into a recognizable arch-vendor-os
// shape but names an OS this driver has no toolchain for (e.g.
// windows) is a fatal, toolchain-unavailable error. A target that
// does not even parse into that shape is reported as a configuration
// error and degrades to the host toolchain rather than aborting.
func Resolve(target string, reporter diag.Reporter) (Toolchain, error) {
	osName, malformed := osComponent(target)
	switch {
	case darwinOSNames[osName]:
		return Darwin{}, nil
	case unixOSNames[osName]:
		return GenericUnix{}, nil
	case malformed:
		diag.ReportError(reporter, diag.CfgUnknownTarget, diag.Location{Option: "target"},
			fmt.Sprintf("unrecognized target %q; defaulting to host toolchain", target)).Emit()
		if darwinOSNames[hostOS()] {
			return Darwin{}, nil
		}
		return GenericUnix{}, nil
	default:
		return nil, &ErrUnsupportedTarget{Target: target}
	}
}

// osComponent extracts the OS component out of a target triple of the
// form arch-vendor-os(-environment), reporting whether target was too
// short to plausibly be a triple at all (as opposed to a well-formed
// triple naming an OS this driver simply doesn't implement). An empty
// target is the explicit "use the host" case, never malformed.
func osComponent(target string) (string, bool) {
	if target == "" {
		return hostOS(), false
	}
	parts := strings.Split(target, "-")
	for _, p := range parts {
		lower := strings.ToLower(p)
		if darwinOSNames[lower] || unixOSNames[lower] {
			return lower, false
		}
	}
	if len(parts) >= 3 {
		return strings.ToLower(parts[2]), false
	}
	return strings.ToLower(target), true
}

// ResolveSDKPath implements the SDK path rule: explicit -sdk wins;
// else $SDKROOT; else, for immediate/repl on a Darwin toolchain,
// the toolchain's default SDK. A trailing slash is trimmed. A
// non-existent path is a warning, not an error.
func ResolveSDKPath(opts options.ParsedOptions, tc Toolchain, needsDefaultSDK bool, reporter diag.Reporter) string {
	var path string
	if explicit, ok := opts.String("sdk"); ok && explicit != "" {
		path = explicit
	} else if env := os.Getenv("SDKROOT"); env != "" {
		path = env
	} else if needsDefaultSDK && tc.IsDarwin() {
		if def, ok := tc.DefaultSDKPath(); ok {
			path = def
		}
	}
	if path == "" {
		diag.ReportWarning(reporter, diag.EnvMissingSDK, diag.Location{Option: "sdk"}, "no SDK path configured").Emit()
		return ""
	}
	path = strings.TrimRight(path, "/")
	if _, err := os.Stat(path); err != nil {
		diag.ReportWarning(reporter, diag.EnvSDKPathNotFound, diag.Location{Option: "sdk", Path: path},
			"SDK path does not exist: "+path).Emit()
	}
	return path
}
