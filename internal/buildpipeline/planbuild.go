package buildpipeline

import (
	"runtime"

	"swiftdriver/internal/batch"
	"swiftdriver/internal/config"
	"swiftdriver/internal/plan"
	"swiftdriver/internal/vpath"
)

// threads is the configured parallelism feeding the partition-count
// formula: an explicit -num-threads wins (mutually exclusive with
// batch mode by construction, so this only ever applies outside
// batchCompile); otherwise the host's CPU count stands in.
func (d *Driver) threads() uint {
	if d.Config.NumThreads > 0 {
		return d.Config.NumThreads
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return uint(n)
}

func (d *Driver) linkOutputPath() vpath.TypedVirtualPath {
	name := "a.out"
	if o, ok := d.Opts.String("o"); ok && o != "" {
		name = o
	}
	return vpath.TypedVirtualPath{File: vpath.Relative(name), Type: vpath.Object}
}

func filterSwift(inputs []vpath.TypedVirtualPath) []vpath.TypedVirtualPath {
	out := make([]vpath.TypedVirtualPath, 0, len(inputs))
	for _, in := range inputs {
		if in.Type.IsPartOfSwiftCompilation() {
			out = append(out, in)
		}
	}
	return out
}

// PlanBuild runs the Batch Partitioner (when in batch mode) and the
// Build Planner against the Driver's already-resolved configuration.
func (d *Driver) PlanBuild() []plan.Job {
	threads := d.threads()

	var parts *batch.Partitions
	if d.Config.Mode.Kind == config.ModeBatchCompile {
		parts = batch.Partition(filterSwift(d.Inputs), threads, d.Config.Mode.Batch)
	}

	outputType := vpath.Object
	if d.Config.CompilerOutputType != nil {
		outputType = *d.Config.CompilerOutputType
	}

	req := plan.Request{
		Inputs:            d.Inputs,
		Mode:              d.Config.Mode,
		ModuleOutput:      d.Config.ModuleOutput,
		PrimaryOutputType: outputType,
		LinkOutputType:    d.Config.LinkerOutputType,
		LinkOutputPath:    d.linkOutputPath(),
		Supplementary:     d.Config.Supplementary,
		DebugInfoLevel:    d.Config.DebugInfoLevel,
		Partitions:        parts,
		Toolchain:         d.Toolchain,
		SDKPath:           d.SDKPath,
		Temp:              d.Temp,
		Reporter:          d.Reporter,
	}
	return plan.Plan(req)
}
