package diag

import (
	"sort"

	"fortio.org/safecast"
)

// Bag accumulates diagnostics up to a cap, matching the
// "max-diagnostics" CLI flag.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag returns a Bag that holds at most max diagnostics. A negative
// or overflowing max is clamped rather than wrapping.
func NewBag(max int) *Bag {
	n, err := safecast.Conv[uint16](max)
	if err != nil {
		if max < 0 {
			n = 0
		} else {
			n = 65535
		}
	}
	return &Bag{items: make([]Diagnostic, 0, n), max: n}
}

// Add appends d, respecting the cap. It reports false if d was
// dropped because the cap was already reached.
func (b *Bag) Add(d Diagnostic) bool {
	if b == nil || len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the configured maximum.
func (b *Bag) Cap() uint16 { return b.max }

// HasErrors reports whether any diagnostic is SevError or worse.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic is SevWarning or worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns a read-only view of the accumulated diagnostics. Do
// not mutate the returned slice; it aliases the Bag's storage.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's diagnostics, growing the cap if needed to fit
// them all.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	if n, err := safecast.Conv[uint16](total); err == nil && n > b.max {
		b.max = n
	} else if err != nil {
		b.max = 65535
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics deterministically: by option name, then
// path, then severity (descending), then code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.At.Option != dj.At.Option {
			return di.At.Option < dj.At.Option
		}
		if di.At.Path != dj.At.Path {
			return di.At.Path < dj.At.Path
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
