package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ParsedOptions is the collaborator the core consumes in place of
// option-table definition and raw parsing. It exposes already
// parsed flags without prescribing how they were defined.
type ParsedOptions interface {
	// Bool reports whether a boolean flag was set at all, irrespective
	// of how many times or what else governs its group membership.
	Bool(name string) bool
	// String returns a flag's final string value and whether it was
	// ever set.
	String(name string) (string, bool)
	// Int returns a flag's final integer value and whether it was
	// ever set and parsed successfully.
	Int(name string) (int, bool)
	// Inputs returns the positional (non-flag) arguments, in order.
	Inputs() []string
	// LastOfGroup returns whichever of names occurred last on the
	// command line, for flag groups where only relative order (not
	// value) decides a winner.
	LastOfGroup(names ...string) (string, bool)
	// LastOfPrefix is LastOfGroup for an open-ended "any flag starting
	// with prefix" family.
	LastOfPrefix(prefix string) (string, bool)
}

// Options is the concrete, pflag-backed ParsedOptions implementation.
type Options struct {
	fs      *pflag.FlagSet
	rawArgs []string
	intErrs map[string]error
}

// Parse expands response files in rawArgs and parses the resulting
// tokens into an Options value. Unknown flags are tolerated; any other
// parse failure, such as a non-integer value for -num-threads, stops
// parsing and is returned as an error. Such values are not reported
// through the diagnostic sink and do not fall back to a default.
func Parse(rawArgs []string) (*Options, error) {
	expanded := ExpandResponseFiles(rawArgs)
	fs := newFlagSet()
	if err := fs.Parse(normalizeSingleDashLongFlags(expanded, fs)); err != nil {
		return nil, fmt.Errorf("option parsing failed: %w", err)
	}
	return &Options{fs: fs, rawArgs: expanded}, nil
}

func (o *Options) Bool(name string) bool {
	v, err := o.fs.GetBool(name)
	if err != nil {
		return false
	}
	return v
}

func (o *Options) String(name string) (string, bool) {
	f := o.fs.Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}
	v, err := o.fs.GetString(name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (o *Options) Int(name string) (int, bool) {
	f := o.fs.Lookup(name)
	if f == nil || !f.Changed {
		return 0, false
	}
	v, err := o.fs.GetInt(name)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (o *Options) Inputs() []string { return o.fs.Args() }

func (o *Options) LastOfGroup(names ...string) (string, bool) {
	return lastOfGroup(o.rawArgs, names)
}

func (o *Options) LastOfPrefix(prefix string) (string, bool) {
	return lastOfPrefixGroup(o.rawArgs, prefix)
}
