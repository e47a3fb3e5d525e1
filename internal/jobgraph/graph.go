// Package jobgraph builds the dependency graph between planned jobs
// and computes a wave-by-wave execution order from it, so the
// executor can run every independent job in a wave concurrently while
// still respecting the planner's DAG-ordering invariant (every job's
// inputs are either external or outputs of strictly earlier jobs).
package jobgraph

import (
	"slices"

	"swiftdriver/internal/plan"
)

// JobID indexes a job within the slice passed to Build.
type JobID uint32

// Graph is an adjacency-list dependency graph over a job slice:
// Edges[from] lists jobs that depend on from's output, and Indeg
// counts how many not-yet-seen producers a job is still waiting on.
type Graph struct {
	Edges [][]JobID
	Indeg []int
}

// Build derives a Graph from jobs by matching each job's declared
// Inputs against the Outputs of every other job in jobs, whether it
// appears earlier or later in the slice; when several jobs declare the
// same output, the last of them is taken as its producer.
func Build(jobs []plan.Job) Graph {
	owner := make(map[string]JobID, len(jobs)*2)
	for i, j := range jobs {
		for _, out := range j.Outputs {
			owner[out.Key()] = JobID(i)
		}
	}

	g := Graph{
		Edges: make([][]JobID, len(jobs)),
		Indeg: make([]int, len(jobs)),
	}
	for i, j := range jobs {
		seen := make(map[JobID]bool)
		for _, in := range j.Inputs {
			from, ok := owner[in.Key()]
			if !ok || int(from) == i || seen[from] {
				continue
			}
			seen[from] = true
			g.Edges[from] = append(g.Edges[from], JobID(i))
			g.Indeg[i]++
		}
	}
	for i := range g.Edges {
		slices.Sort(g.Edges[i])
	}
	return g
}
