// Package tempalloc allocates scratch-file names that are unique
// within one driver invocation: a plain counter suffix, no
// cross-invocation coordination.
package tempalloc

import (
	"fmt"
	"sync/atomic"

	"swiftdriver/internal/vpath"
)

// Allocator hands out unique temporary VirtualPaths for one driver
// invocation. The zero value is ready to use.
type Allocator struct {
	counter atomic.Uint64
}

// Named returns a Temporary VirtualPath whose name embeds filename and
// a monotonically increasing, invocation-unique counter.
func (a *Allocator) Named(filename string) vpath.VirtualPath {
	n := a.counter.Add(1)
	return vpath.Temporary(fmt.Sprintf("%d-%s", n, filename))
}

// FileList returns a unique file-list VirtualPath spilling contents.
func (a *Allocator) FileList(prefix string, contents []string) vpath.VirtualPath {
	n := a.counter.Add(1)
	return vpath.FileList(fmt.Sprintf("%d-%s.txt", n, prefix), contents)
}
