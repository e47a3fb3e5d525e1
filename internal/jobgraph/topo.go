package jobgraph

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Topo is a Kahn's-algorithm topological sort of a Graph, grouped
// into waves: Batches[0] has no dependencies at all, Batches[1] only
// depends on jobs in Batches[0], and so on. Every job in a wave can
// run concurrently.
type Topo struct {
	Order   []JobID
	Batches [][]JobID
	Cyclic  bool
	Stuck   []JobID // jobs left with an unmet dependency, when Cyclic
}

// Sort computes Topo over g. A cycle (or a dangling dependency that
// never resolves) leaves Cyclic true and Stuck populated instead of
// panicking; the caller reports it as a planning error.
func Sort(g Graph) Topo {
	n := len(g.Edges)
	indeg := make([]int, len(g.Indeg))
	copy(indeg, g.Indeg)

	topo := Topo{
		Order:   make([]JobID, 0, n),
		Batches: make([][]JobID, 0),
	}

	current := make([]JobID, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			id, err := safecast.Conv[JobID](i)
			if err != nil {
				panic(fmt.Errorf("job id overflow: %w", err))
			}
			current = append(current, id)
		}
	}
	slices.Sort(current)

	visited := 0
	for len(current) > 0 {
		wave := make([]JobID, len(current))
		copy(wave, current)
		topo.Batches = append(topo.Batches, wave)

		next := make([]JobID, 0)
		for _, id := range wave {
			topo.Order = append(topo.Order, id)
			visited++
			for _, to := range g.Edges[id] {
				indeg[to]--
				if indeg[to] == 0 {
					next = append(next, to)
				}
			}
		}
		slices.Sort(next)
		current = next
	}

	if visited != n {
		topo.Cyclic = true
		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				id, err := safecast.Conv[JobID](i)
				if err != nil {
					panic(fmt.Errorf("job id overflow: %w", err))
				}
				topo.Stuck = append(topo.Stuck, id)
			}
		}
		slices.Sort(topo.Stuck)
	}

	return topo
}
