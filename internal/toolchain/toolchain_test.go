package toolchain

import (
	"testing"

	"swiftdriver/internal/diag"
	"swiftdriver/internal/vpath"
)

func TestResolve_TargetTripleSelectsToolchain(t *testing.T) {
	cases := map[string]string{
		"x86_64-apple-macosx10.15": "darwin",
		"arm64-apple-ios":          "darwin",
		"x86_64-unknown-linux-gnu": "generic-unix",
		"x86_64-unknown-freebsd":   "generic-unix",
	}
	for target, want := range cases {
		tc, err := Resolve(target, diag.NopReporter{})
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", target, err)
		}
		if tc.Name() != want {
			t.Errorf("Resolve(%q).Name() = %q, want %q", target, tc.Name(), want)
		}
	}
}

func TestResolve_UnsupportedTargetIsAnError(t *testing.T) {
	_, err := Resolve("x86_64-unknown-windows-msvc", diag.NopReporter{})
	if err == nil {
		t.Fatal("expected an error for an unsupported target")
	}
}

func TestResolve_EmptyTargetFallsBackToHost(t *testing.T) {
	if _, err := Resolve("", diag.NopReporter{}); err != nil {
		t.Fatalf("Resolve(\"\") error = %v, want nil (falls back to host OS)", err)
	}
}

func TestResolve_MalformedTargetIsAConfigurationErrorNotFatal(t *testing.T) {
	bag := diag.NewBag(10)
	tc, err := Resolve("bogus", diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("Resolve(%q) error = %v, want nil (degrades to host toolchain)", "bogus", err)
	}
	if tc == nil {
		t.Fatal("Resolve() toolchain = nil, want the host toolchain")
	}
	if !hasCode(bag, diag.CfgUnknownTarget) {
		t.Error("expected a CfgUnknownTarget diagnostic")
	}
}

func TestDarwin_RequiresNoAutolinkExtract(t *testing.T) {
	if (Darwin{}).RequiresAutolinkExtract() {
		t.Error("Darwin.RequiresAutolinkExtract() = true, want false")
	}
	if !(Darwin{}).IsDarwin() {
		t.Error("Darwin.IsDarwin() = false, want true")
	}
}

func TestGenericUnix_RequiresAutolinkExtract(t *testing.T) {
	if !(GenericUnix{}).RequiresAutolinkExtract() {
		t.Error("GenericUnix.RequiresAutolinkExtract() = false, want true")
	}
	if (GenericUnix{}).IsDarwin() {
		t.Error("GenericUnix.IsDarwin() = true, want false")
	}
}

func linkInputs() []vpath.TypedVirtualPath {
	return []vpath.TypedVirtualPath{
		{File: vpath.Relative("a.o"), Type: vpath.Object},
		{File: vpath.Relative("b.swiftmodule"), Type: vpath.SwiftModule},
	}
}

func TestDarwin_LinkArgsAddsASTPathForModules(t *testing.T) {
	args := (Darwin{}).LinkArgs(LinkRequest{
		Inputs:     linkInputs(),
		Output:     vpath.TypedVirtualPath{File: vpath.Relative("out"), Type: vpath.Object},
		OutputKind: "executable",
	})
	if !containsSeq(args, "-add_ast_path", "b.swiftmodule") {
		t.Errorf("LinkArgs() = %v, want -add_ast_path b.swiftmodule", args)
	}
}

func TestGenericUnix_LinkArgsOmitsModulesFromArgv(t *testing.T) {
	args := (GenericUnix{}).LinkArgs(LinkRequest{
		Inputs:     linkInputs(),
		Output:     vpath.TypedVirtualPath{File: vpath.Relative("out"), Type: vpath.Object},
		OutputKind: "dynamicLibrary",
	})
	for _, a := range args {
		if a == "b.swiftmodule" {
			t.Fatalf("LinkArgs() = %v, should not pass the swiftmodule on argv", args)
		}
	}
	if !contains(args, "-shared") {
		t.Errorf("LinkArgs() = %v, want -shared for a dynamic library", args)
	}
}

func TestLinkArgs_StaticLibraryIsPrependedOnBothToolchains(t *testing.T) {
	req := LinkRequest{
		Inputs:     linkInputs(),
		Output:     vpath.TypedVirtualPath{File: vpath.Relative("out.a"), Type: vpath.Object},
		OutputKind: "staticLibrary",
	}
	for _, tc := range []Toolchain{Darwin{}, GenericUnix{}} {
		args := tc.LinkArgs(req)
		if len(args) == 0 || args[0] != "-static" {
			t.Errorf("%s.LinkArgs() = %v, want -static prepended first", tc.Name(), args)
		}
	}
}

func TestDarwin_LinkArgsAddsSyslibrootWhenSDKPathSet(t *testing.T) {
	args := (Darwin{}).LinkArgs(LinkRequest{
		Inputs:     linkInputs(),
		Output:     vpath.TypedVirtualPath{File: vpath.Relative("out"), Type: vpath.Object},
		OutputKind: "executable",
		SDKPath:    "/sdk",
	})
	if !containsSeq(args, "-syslibroot", "/sdk") {
		t.Errorf("LinkArgs() = %v, want -syslibroot /sdk", args)
	}
}

func containsSeq(args []string, a, b string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == a && args[i+1] == b {
			return true
		}
	}
	return false
}

func contains(args []string, a string) bool {
	for _, s := range args {
		if s == a {
			return true
		}
	}
	return false
}
