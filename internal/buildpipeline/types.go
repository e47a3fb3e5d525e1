// Package buildpipeline wires the resolved configuration (C1-C5) into
// a planned job graph (C6/C7) and drives its execution, emitting
// progress events a UI can subscribe to.
package buildpipeline

import (
	"time"

	"swiftdriver/internal/plan"
)

// Status captures progress state within a job's execution.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one job.
type Event struct {
	JobIndex int
	Kind     plan.JobKind
	Tool     string
	Status   Status
	Err      error
	Elapsed  time.Duration
}

// ProgressSink consumes progress events; a nil sink is a valid no-op.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds per-job-kind durations, summed across every job of
// that kind that ran.
type Timings struct {
	byKind map[plan.JobKind]time.Duration
}

func (t *Timings) ensure() {
	if t.byKind == nil {
		t.byKind = make(map[plan.JobKind]time.Duration)
	}
}

// Add accumulates dur onto kind's running total.
func (t *Timings) Add(kind plan.JobKind, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.byKind[kind] += dur
}

// Duration returns the accumulated duration for kind.
func (t Timings) Duration(kind plan.JobKind) time.Duration {
	if t.byKind == nil {
		return 0
	}
	return t.byKind[kind]
}

func emitEvent(sink ProgressSink, idx int, j plan.Job, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{JobIndex: idx, Kind: j.Kind, Tool: j.Tool.Name, Status: status, Err: err, Elapsed: elapsed})
}
