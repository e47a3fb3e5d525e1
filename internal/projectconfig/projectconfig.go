// Package projectconfig loads an optional swiftdriver.toml that supplies
// default driver flags for a directory tree, the way a package manifest
// supplies defaults for a project's build commands.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed swiftdriver.toml plus the directory it was found in.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the decoded shape of swiftdriver.toml. Every section is
// optional; an empty Config behaves as if no manifest existed.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// PackageConfig names the module a manifest's defaults apply to.
type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig supplies default arguments layered in ahead of the
// user's actual argv, so an explicit flag on the command line always
// wins (first-occurrence-loses / last-occurrence-wins, per the
// option table's own "last wins" rule).
type BuildConfig struct {
	Target       string   `toml:"target"`
	SDK          string   `toml:"sdk"`
	DefaultFlags []string `toml:"default-flags"`
}

// Find walks upward from startDir looking for swiftdriver.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "swiftdriver.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest swiftdriver.toml above startDir.
// ok is false (with a nil error) when no manifest exists; that is not
// a failure, since a manifest is always optional.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// ArgsWithDefaults prepends the manifest's default-flags (and, when
// set in the manifest, -target/-sdk) ahead of args, so that the
// option table's own last-occurrence-wins scan lets an explicit flag
// on argv override a manifest default.
func (m *Manifest) ArgsWithDefaults(args []string) []string {
	if m == nil {
		return args
	}
	defaults := make([]string, 0, len(m.Config.Build.DefaultFlags)+4)
	defaults = append(defaults, m.Config.Build.DefaultFlags...)
	if m.Config.Build.Target != "" {
		defaults = append(defaults, "-target", m.Config.Build.Target)
	}
	if m.Config.Build.SDK != "" {
		defaults = append(defaults, "-sdk", m.Config.Build.SDK)
	}
	return append(defaults, args...)
}
