package vpath

import "testing"

func TestFromExtension_RoundTripsThroughExtension(t *testing.T) {
	types := []FileType{
		Swift, SIL, SIB, Object, SwiftModule, SwiftDocumentation,
		SwiftInterface, SwiftDeps, Assembly, LLVMIR, LLVMBitcode, AST,
		PCH, ImportedModules, IndexData, Remap, Diagnostics, Dependencies,
		ObjCHeader, TBD,
	}
	for _, ft := range types {
		ext := ft.Extension()
		got := FromExtension(ext)
		if got != ft {
			t.Errorf("FromExtension(%q) = %v, want %v", ext, got, ft)
		}
	}
}

func TestFromExtension_UnknownFallsBackToObject(t *testing.T) {
	for _, ext := range []string{"xyz", "", "txt", "SWIFT"} {
		got := FromExtension(ext)
		if ext == "SWIFT" {
			if got != Swift {
				t.Errorf("FromExtension(%q) = %v, want Swift (case-insensitive)", ext, got)
			}
			continue
		}
		if got != Object {
			t.Errorf("FromExtension(%q) = %v, want Object", ext, got)
		}
	}
}

func TestIsPartOfSwiftCompilation(t *testing.T) {
	cases := map[FileType]bool{
		Swift: true, SIL: true, SIB: true,
		Object: false, SwiftModule: false, Assembly: false,
	}
	for ft, want := range cases {
		if got := ft.IsPartOfSwiftCompilation(); got != want {
			t.Errorf("%v.IsPartOfSwiftCompilation() = %v, want %v", ft, got, want)
		}
	}
}

func TestVirtualPath_CanonicalNormalizesPaths(t *testing.T) {
	if got := Relative("./a/../b.swift").Canonical(); got != "b.swift" {
		t.Errorf("Canonical() = %q, want %q", got, "b.swift")
	}
	if got := StandardInput().Canonical(); got != "-" {
		t.Errorf("Canonical() = %q, want %q", got, "-")
	}
	if got := Temporary("x.o").Canonical(); got != "tmp:x.o" {
		t.Errorf("Canonical() = %q, want %q", got, "tmp:x.o")
	}
}

func TestTypedVirtualPath_KeyDistinguishesTypeAndPath(t *testing.T) {
	a := TypedVirtualPath{File: Relative("a.swift"), Type: Swift}
	b := TypedVirtualPath{File: Relative("a.swift"), Type: Object}
	c := TypedVirtualPath{File: Relative("b.swift"), Type: Swift}
	if a.Key() == b.Key() {
		t.Errorf("Key() collided across differing types: %q", a.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("Key() collided across differing paths: %q", a.Key())
	}
	if a.Key() != (TypedVirtualPath{File: Relative("a.swift"), Type: Swift}).Key() {
		t.Errorf("Key() not stable for identical values")
	}
}
