package options

import (
	"path/filepath"
	"strings"
)

// Personality identifies which of the driver's CLI personalities was
// selected.
type Personality string

const (
	PersonalitySwift               Personality = "swift"
	PersonalitySwiftc              Personality = "swiftc"
	PersonalityFrontend            Personality = "frontend"
	PersonalityModuleWrap          Personality = "modulewrap"
	PersonalityAutolinkExtract     Personality = "swift-autolink-extract"
	PersonalityIndent              Personality = "swift-indent"
)

// IsInteractive reports whether this personality drives the
// immediate/repl branch of the Mode Resolver.
func (p Personality) IsInteractive() bool { return p == PersonalitySwift }

// IsPassThrough reports whether the personality redirects straight to
// a pass-through subcommand instead of running the core driver.
func (p Personality) IsPassThrough() bool {
	switch p {
	case PersonalityFrontend, PersonalityModuleWrap, PersonalityAutolinkExtract, PersonalityIndent:
		return true
	default:
		return false
	}
}

// IsKnown reports whether p is one of the driver's recognized
// personalities. An explicit --driver-mode=<name> override passes its
// value through unvalidated; IsKnown is how the caller catches a
// typo'd or made-up name rather than silently treating it as swiftc.
func (p Personality) IsKnown() bool {
	switch p {
	case PersonalitySwift, PersonalitySwiftc, PersonalityFrontend, PersonalityModuleWrap,
		PersonalityAutolinkExtract, PersonalityIndent:
		return true
	default:
		return false
	}
}

// ResolvePersonality implements the CLI-personality dispatch: an
// explicit --driver-mode override wins; else argv[1] of "-frontend" or
// "-modulewrap" redirects to a pass-through subcommand; else argv[0]'s
// basename selects swift (interactive) or swiftc (batch), defaulting
// to swiftc for any other name.
func ResolvePersonality(argv0 string, rest []string) Personality {
	for _, a := range rest {
		if strings.HasPrefix(a, "--driver-mode=") {
			return Personality(strings.TrimPrefix(a, "--driver-mode="))
		}
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "-frontend":
			return PersonalityFrontend
		case "-modulewrap":
			return PersonalityModuleWrap
		}
	}
	base := filepath.Base(argv0)
	switch base {
	case "swift":
		return PersonalitySwift
	case "swiftc":
		return PersonalitySwiftc
	case "swift-autolink-extract":
		return PersonalityAutolinkExtract
	case "swift-indent":
		return PersonalityIndent
	default:
		return PersonalitySwiftc
	}
}
