package buildpipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"swiftdriver/internal/jobgraph"
	"swiftdriver/internal/plan"
	"swiftdriver/internal/toolchain"
)

// JobExecutor is the external collaborator the core planner hands
// off to: it only produces jobs in dependency order, while running
// them, respecting that order while maximizing independent
// concurrency, is this package's concern.
type JobExecutor struct {
	Toolchain toolchain.Toolchain
	Progress  ProgressSink
	Limit     int
	DryRun    bool
}

// Run executes jobs wave by wave: within a wave every job's
// dependencies are already done, and the wave itself runs under a
// bounded errgroup.
func (e *JobExecutor) Run(ctx context.Context, jobs []plan.Job) (Timings, error) {
	var timings Timings
	if ctx == nil {
		ctx = context.Background()
	}

	topo := jobgraph.Sort(jobgraph.Build(jobs))
	if topo.Cyclic {
		return timings, fmt.Errorf("job graph stalled: unmet dependency or cycle (jobs %v)", topo.Stuck)
	}

	for _, wave := range topo.Batches {
		g, gctx := errgroup.WithContext(ctx)
		limit := e.Limit
		if limit <= 0 {
			limit = runtime.GOMAXPROCS(0)
		}
		g.SetLimit(min(limit, len(wave)))

		for _, id := range wave {
			idx := int(id)
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				start := time.Now()
				emitEvent(e.Progress, idx, jobs[idx], StatusWorking, nil, 0)
				err := e.runOne(gctx, jobs[idx])
				elapsed := time.Since(start)
				timings.Add(jobs[idx].Kind, elapsed)
				if err != nil {
					emitEvent(e.Progress, idx, jobs[idx], StatusError, err, elapsed)
					return fmt.Errorf("job %d (%s): %w", idx, jobs[idx].Kind, err)
				}
				emitEvent(e.Progress, idx, jobs[idx], StatusDone, nil, elapsed)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return timings, err
		}
	}
	return timings, nil
}

func (e *JobExecutor) runOne(ctx context.Context, j plan.Job) error {
	name := j.Tool.Name
	if e.Toolchain != nil {
		name = e.Toolchain.ToolPath(name)
	}
	args, cleanup, err := resolveArgs(j.Args)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return err
	}
	if e.DryRun {
		return nil
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func resolveArgs(templates []plan.ArgTemplate) ([]string, func(), error) {
	args := make([]string, 0, len(templates))
	var cleanups []func()
	for _, a := range templates {
		switch a.Kind {
		case plan.ArgFlag:
			args = append(args, a.Flag)
		case plan.ArgPath:
			args = append(args, a.Path.File.Name())
		case plan.ArgFileList:
			f, err := os.CreateTemp("", "filelist-*.txt")
			if err != nil {
				return args, combineCleanups(cleanups), err
			}
			for _, p := range a.Paths {
				fmt.Fprintln(f, p.File.Name())
			}
			if err := f.Close(); err != nil {
				return args, combineCleanups(cleanups), err
			}
			name := f.Name()
			cleanups = append(cleanups, func() { os.Remove(name) })
			args = append(args, "@"+name)
		}
	}
	return args, combineCleanups(cleanups), nil
}

func combineCleanups(fns []func()) func() {
	if len(fns) == 0 {
		return nil
	}
	return func() {
		for _, f := range fns {
			f()
		}
	}
}
