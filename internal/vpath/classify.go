package vpath

import (
	"fmt"
	"path/filepath"
)

// ErrInvalidInput is returned by ClassifyInputs when a raw argument
// cannot be interpreted as a path at all.
type ErrInvalidInput struct{ Raw string }

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %q", e.Raw)
}

// ClassifyInputs assigns each raw input argument a TypedVirtualPath.
// "-" denotes standard input and is always typed swift. Every
// other argument is classified by its extension, falling back to
// Object for anything FromExtension does not recognize; the
// fallback is not an error.
func ClassifyInputs(rawArgs []string) ([]TypedVirtualPath, error) {
	out := make([]TypedVirtualPath, 0, len(rawArgs))
	for _, raw := range rawArgs {
		if raw == "-" {
			out = append(out, TypedVirtualPath{File: StandardInput(), Type: Swift})
			continue
		}
		if raw == "" {
			return nil, &ErrInvalidInput{Raw: raw}
		}
		var vp VirtualPath
		if filepath.IsAbs(raw) {
			vp = Absolute(raw)
		} else {
			vp = Relative(raw)
		}
		ft := FromExtension(filepath.Ext(raw))
		out = append(out, TypedVirtualPath{File: vp, Type: ft})
	}
	return out, nil
}
