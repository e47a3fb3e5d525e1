package options

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_ScalarFlagsAndInputs(t *testing.T) {
	opts, err := Parse([]string{"a.swift", "-o", "a.out", "-module-name", "Widgets"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, ok := opts.String("o"); !ok || v != "a.out" {
		t.Errorf("String(o) = %q, %v", v, ok)
	}
	if v, ok := opts.String("module-name"); !ok || v != "Widgets" {
		t.Errorf("String(module-name) = %q, %v", v, ok)
	}
	if got := opts.Inputs(); len(got) != 1 || got[0] != "a.swift" {
		t.Errorf("Inputs() = %v", got)
	}
}

func TestParse_BoolFlagUnsetIsFalse(t *testing.T) {
	opts, err := Parse([]string{"a.swift"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if opts.Bool("emit-library") {
		t.Error("Bool(emit-library) = true, want false when unset")
	}
}

func TestParse_UnknownFlagsAreTolerated(t *testing.T) {
	_, err := Parse([]string{"a.swift", "--some-future-flag"})
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil (unknown flags tolerated)", err)
	}
}

func TestLastOfGroup_LastOccurrenceWins(t *testing.T) {
	opts, err := Parse([]string{"a.swift", "-emit-library", "-emit-object", "-emit-library"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	winner, ok := opts.LastOfGroup("emit-library", "emit-object")
	if !ok || winner != "emit-library" {
		t.Errorf("LastOfGroup() = %q, %v, want emit-library, true", winner, ok)
	}
}

func TestLastOfPrefix_MatchesDumpFamily(t *testing.T) {
	opts, err := Parse([]string{"a.swift", "-dump-parse"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	winner, ok := opts.LastOfPrefix("dump-")
	if !ok || winner != "dump-parse" {
		t.Errorf("LastOfPrefix() = %q, %v, want dump-parse, true", winner, ok)
	}
}

func TestExpandResponseFiles_ReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "files.txt")
	if err := os.WriteFile(path, []byte("a.swift\nb.swift\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := ExpandResponseFiles([]string{"@" + path, "-o", "out"})
	want := []string{"a.swift", "b.swift", "-o", "out"}
	if len(got) != len(want) {
		t.Fatalf("ExpandResponseFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ExpandResponseFiles() = %v, want %v", got, want)
		}
	}
}

func TestExpandResponseFiles_MissingFilePassesThrough(t *testing.T) {
	got := ExpandResponseFiles([]string{"@/no/such/file"})
	if len(got) != 1 || got[0] != "@/no/such/file" {
		t.Errorf("ExpandResponseFiles() = %v, want unchanged token", got)
	}
}

func TestResolvePersonality_DriverModeOverrideWins(t *testing.T) {
	p := ResolvePersonality("swiftc", []string{"--driver-mode=swift"})
	if p != PersonalitySwift {
		t.Errorf("ResolvePersonality() = %v, want swift", p)
	}
}

func TestResolvePersonality_Argv0Basename(t *testing.T) {
	cases := map[string]Personality{
		"swift":  PersonalitySwift,
		"swiftc": PersonalitySwiftc,
		"cc":     PersonalitySwiftc,
	}
	for argv0, want := range cases {
		if got := ResolvePersonality(argv0, nil); got != want {
			t.Errorf("ResolvePersonality(%q) = %v, want %v", argv0, got, want)
		}
	}
}

func TestResolvePersonality_FrontendPassThrough(t *testing.T) {
	p := ResolvePersonality("swiftc", []string{"-frontend", "-c"})
	if !p.IsPassThrough() || p != PersonalityFrontend {
		t.Errorf("ResolvePersonality() = %v, want frontend pass-through", p)
	}
}

func TestPersonality_IsKnown(t *testing.T) {
	known := []Personality{
		PersonalitySwift, PersonalitySwiftc, PersonalityFrontend,
		PersonalityModuleWrap, PersonalityAutolinkExtract, PersonalityIndent,
	}
	for _, p := range known {
		if !p.IsKnown() {
			t.Errorf("%v.IsKnown() = false, want true", p)
		}
	}
	if Personality("bogus").IsKnown() {
		t.Error("Personality(\"bogus\").IsKnown() = true, want false")
	}
}
