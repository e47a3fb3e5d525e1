package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "swiftdriver.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestLoad_MissingManifestIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := Load(dir)
	if err != nil || ok || m != nil {
		t.Fatalf("Load() = %v, %v, %v; want nil, false, nil", m, ok, err)
	}
}

func TestLoad_ParsesPackageAndBuild(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "Widgets"

[build]
target = "x86_64-unknown-linux-gnu"
sdk = "/opt/sdk"
default-flags = ["-enable-batch-mode"]
`)
	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load() error = %v, ok = %v", err, ok)
	}
	if m.Config.Package.Name != "Widgets" {
		t.Fatalf("Package.Name = %q", m.Config.Package.Name)
	}
	if m.Config.Build.Target != "x86_64-unknown-linux-gnu" {
		t.Fatalf("Build.Target = %q", m.Config.Build.Target)
	}
	if len(m.Config.Build.DefaultFlags) != 1 || m.Config.Build.DefaultFlags[0] != "-enable-batch-mode" {
		t.Fatalf("Build.DefaultFlags = %v", m.Config.Build.DefaultFlags)
	}
}

func TestFind_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"Root\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() error = %v, ok = %v", err, ok)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("Find() = %q, want under %q", path, root)
	}
}

func TestArgsWithDefaults_ExplicitArgsComeAfterDefaults(t *testing.T) {
	m := &Manifest{Config: Config{Build: BuildConfig{
		Target:       "x86_64-unknown-linux-gnu",
		DefaultFlags: []string{"-enable-batch-mode"},
	}}}
	got := m.ArgsWithDefaults([]string{"a.swift", "-disable-batch-mode"})
	want := []string{"-enable-batch-mode", "-target", "x86_64-unknown-linux-gnu", "a.swift", "-disable-batch-mode"}
	if len(got) != len(want) {
		t.Fatalf("ArgsWithDefaults() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ArgsWithDefaults() = %v, want %v", got, want)
		}
	}
}

func TestArgsWithDefaults_NilManifestIsIdentity(t *testing.T) {
	var m *Manifest
	args := []string{"a.swift"}
	got := m.ArgsWithDefaults(args)
	if len(got) != 1 || got[0] != "a.swift" {
		t.Fatalf("ArgsWithDefaults() = %v", got)
	}
}
