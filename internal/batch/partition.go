// Package batch implements the Batch Partitioner: deciding how
// many partitions of primary inputs to compile per sub-process.
package batch

import (
	"fmt"

	"fortio.org/safecast"

	"swiftdriver/internal/config"
	"swiftdriver/internal/vpath"
)

// DefaultSizeLimit is the per-process memory cap, expressed as
// primary files per partition.
const DefaultSizeLimit = 25

// Partitions is the result of partitioning: a disjoint cover of the
// Swift inputs plus a reverse index from input to partition.
type Partitions struct {
	Groups     [][]vpath.TypedVirtualPath
	assignment map[string]int
}

// Of returns the partition index containing f, and whether f was
// assigned at all.
func (p *Partitions) Of(f vpath.TypedVirtualPath) (int, bool) {
	if p == nil {
		return 0, false
	}
	idx, ok := p.assignment[f.Key()]
	return idx, ok
}

// Count returns the number of partitions.
func (p *Partitions) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Groups)
}

// NumPartitions implements the partition-count formula:
// K = P if the user requested a count, else max(T, floor(N/S)).
func NumPartitions(n uint, threads uint, info config.BatchModeInfo) uint {
	if info.Count != nil {
		return *info.Count
	}
	t := threads
	if t == 0 {
		t = 1
	}
	s := uint(DefaultSizeLimit)
	if info.SizeLimit != nil && *info.SizeLimit > 0 {
		s = *info.SizeLimit
	}
	floorNOverS := n / s
	if t > floorNOverS {
		return t
	}
	return floorNOverS
}

// Partition assigns swiftInputs (the inputs for which
// FileType.IsPartOfSwiftCompilation holds) across K partitions in
// input order. It returns nil when K <= 1: the planner then
// makes one compile job per input rather than a batch job.
func Partition(swiftInputs []vpath.TypedVirtualPath, threads uint, info config.BatchModeInfo) *Partitions {
	n, err := safecast.Conv[uint](len(swiftInputs))
	if err != nil {
		panic(fmt.Errorf("input count overflow: %w", err))
	}
	k := NumPartitions(n, threads, info)
	if k <= 1 {
		return nil
	}
	if n == 0 {
		return &Partitions{Groups: [][]vpath.TypedVirtualPath{}, assignment: map[string]int{}}
	}
	if k > n {
		// Every partition must be non-empty: a user-requested count
		// above the input count is clamped down to one input each.
		k = n
	}

	targetSize := n / k
	remainder := n % k

	groups := make([][]vpath.TypedVirtualPath, 0, k)
	assignment := make(map[string]int, n)

	pos := uint(0)
	for i := uint(0); i < k; i++ {
		size := targetSize
		if i < remainder {
			size++
		}
		group := make([]vpath.TypedVirtualPath, 0, size)
		idx, err := safecast.Conv[int](i)
		if err != nil {
			panic(fmt.Errorf("partition index overflow: %w", err))
		}
		for j := uint(0); j < size; j++ {
			f := swiftInputs[pos]
			group = append(group, f)
			assignment[f.Key()] = idx
			pos++
		}
		groups = append(groups, group)
	}

	return &Partitions{Groups: groups, assignment: assignment}
}
