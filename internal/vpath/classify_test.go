package vpath

import "testing"

func TestClassifyInputs_TypesByExtension(t *testing.T) {
	got, err := ClassifyInputs([]string{"a.swift", "b.o", "c.swiftmodule", "-"})
	if err != nil {
		t.Fatalf("ClassifyInputs() error = %v", err)
	}
	want := []FileType{Swift, Object, SwiftModule, Swift}
	if len(got) != len(want) {
		t.Fatalf("ClassifyInputs() = %v, want %d entries", got, len(want))
	}
	for i, ft := range want {
		if got[i].Type != ft {
			t.Errorf("got[%d].Type = %v, want %v", i, got[i].Type, ft)
		}
	}
	if got[3].File.Kind() != KindStandardInput {
		t.Errorf("got[3].File.Kind() = %v, want KindStandardInput", got[3].File.Kind())
	}
}

func TestClassifyInputs_UnknownExtensionFallsBackToObject(t *testing.T) {
	got, err := ClassifyInputs([]string{"weird.xyz"})
	if err != nil {
		t.Fatalf("ClassifyInputs() error = %v", err)
	}
	if got[0].Type != Object {
		t.Errorf("Type = %v, want Object", got[0].Type)
	}
}

func TestClassifyInputs_EmptyArgIsAnError(t *testing.T) {
	_, err := ClassifyInputs([]string{""})
	if err == nil {
		t.Fatal("expected an error for an empty input")
	}
}

func TestClassifyInputs_AbsoluteVsRelative(t *testing.T) {
	got, err := ClassifyInputs([]string{"/tmp/a.swift", "rel/b.swift"})
	if err != nil {
		t.Fatalf("ClassifyInputs() error = %v", err)
	}
	if got[0].File.Kind() != KindAbsolute {
		t.Errorf("got[0].File.Kind() = %v, want KindAbsolute", got[0].File.Kind())
	}
	if got[1].File.Kind() != KindRelative {
		t.Errorf("got[1].File.Kind() = %v, want KindRelative", got[1].File.Kind())
	}
}
