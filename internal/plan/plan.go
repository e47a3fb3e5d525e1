package plan

import (
	"swiftdriver/internal/batch"
	"swiftdriver/internal/config"
	"swiftdriver/internal/diag"
	"swiftdriver/internal/tempalloc"
	"swiftdriver/internal/toolchain"
	"swiftdriver/internal/vpath"
)

// Request carries everything the Build Planner needs, already resolved
// by C1-C6: the driver configuration plus the batch partitioning of
// the Swift inputs.
type Request struct {
	Inputs            []vpath.TypedVirtualPath
	Mode              config.CompilerMode
	ModuleOutput      config.ModuleOutput
	PrimaryOutputType vpath.FileType
	LinkOutputType    *config.LinkOutputType
	LinkOutputPath    vpath.TypedVirtualPath
	Supplementary     map[vpath.FileType]vpath.TypedVirtualPath
	DebugInfoLevel    *config.DebugInfoLevel
	Partitions        *batch.Partitions
	Toolchain         toolchain.Toolchain
	SDKPath           string
	Temp              *tempalloc.Allocator
	Reporter          diag.Reporter
}

// Plan implements the Build Planner: emit-module, compile, merge,
// autolink-extract, link and dSYM steps in order, honoring the DAG
// ordering invariant by construction: every step only ever references
// outputs of jobs already appended.
func Plan(req Request) []Job {
	var jobs []Job

	swiftInputs := make([]vpath.TypedVirtualPath, 0, len(req.Inputs))
	otherInputs := make([]vpath.TypedVirtualPath, 0, len(req.Inputs))
	for _, in := range req.Inputs {
		if in.Type.IsPartOfSwiftCompilation() {
			swiftInputs = append(swiftInputs, in)
		} else {
			otherInputs = append(otherInputs, in)
		}
	}

	needsSeparateEmitModule := req.ModuleOutput.IsSet() &&
		req.Mode.Kind != config.ModeSingleCompile &&
		(req.Mode.Kind == config.ModeBatchCompile || req.Mode.Kind == config.ModeStandardCompile)

	var moduleInputs []vpath.TypedVirtualPath

	// Step 1: emit-module job.
	if needsSeparateEmitModule {
		outputs := []vpath.TypedVirtualPath{{File: req.ModuleOutput.Path, Type: vpath.SwiftModule}}
		if doc, ok := req.Supplementary[vpath.SwiftDocumentation]; ok {
			outputs = append(outputs, doc)
		}
		if iface, ok := req.Supplementary[vpath.SwiftInterface]; ok {
			outputs = append(outputs, iface)
		}
		jobs = append(jobs, Job{
			Kind:    JobEmitModule,
			Tool:    ToolRef{Name: "swift-frontend"},
			Inputs:  swiftInputs,
			Outputs: outputs,
			Args:    emitModuleArgs(swiftInputs, outputs),
		})
	}

	// Step 2: per-partition / per-file compile jobs.
	linkerInputs := make([]vpath.TypedVirtualPath, 0, len(swiftInputs))
	if req.Partitions != nil && req.Partitions.Count() > 1 {
		for _, group := range req.Partitions.Groups {
			if len(group) == 0 {
				continue
			}
			job, objs := compileJob(group, swiftInputs, req.PrimaryOutputType)
			jobs = append(jobs, job)
			linkerInputs = append(linkerInputs, objs...)
		}
	} else {
		for _, primary := range swiftInputs {
			job, objs := compileJob([]vpath.TypedVirtualPath{primary}, swiftInputs, req.PrimaryOutputType)
			jobs = append(jobs, job)
			linkerInputs = append(linkerInputs, objs...)
		}
	}

	// Step 3: classify non-Swift inputs.
	for _, in := range otherInputs {
		switch in.Type {
		case vpath.Object, vpath.Autolink:
			if req.LinkOutputType == nil {
				diag.ReportError(req.Reporter, diag.InputUnexpectedKind, diag.Location{Path: in.File.Name()},
					"object/autolink input given without a link step requested").Emit()
				continue
			}
			linkerInputs = append(linkerInputs, in)
		case vpath.SwiftModule, vpath.SwiftDocumentation:
			switch {
			case req.ModuleOutput.IsSet() && req.LinkOutputType == nil:
				moduleInputs = append(moduleInputs, in)
			case req.LinkOutputType != nil:
				linkerInputs = append(linkerInputs, in)
			default:
				diag.ReportError(req.Reporter, diag.InputOrphanModule, diag.Location{Path: in.File.Name()},
					"swiftmodule/swiftdoc input has no module output or link step to feed").Emit()
			}
		default:
			diag.ReportError(req.Reporter, diag.InputUnexpectedKind, diag.Location{Path: in.File.Name()},
				"unexpected input kind for this compilation: "+in.Type.String()).Emit()
		}
	}

	// Step 4: merge-module job.
	if req.ModuleOutput.IsSet() && len(moduleInputs) > 0 {
		mergeOutputs := []vpath.TypedVirtualPath{{File: req.ModuleOutput.Path, Type: vpath.SwiftModule}}
		jobs = append(jobs, Job{
			Kind:    JobMergeModule,
			Tool:    ToolRef{Name: "swift-frontend"},
			Inputs:  moduleInputs,
			Outputs: mergeOutputs,
			Args:    mergeModuleArgs(moduleInputs, mergeOutputs[0]),
		})
	}

	// Step 5: autolink-extract job.
	if req.Toolchain != nil && req.Toolchain.RequiresAutolinkExtract() {
		objs := filterByType(linkerInputs, vpath.Object)
		if len(objs) > 0 {
			out := vpath.TypedVirtualPath{File: req.Temp.Named("autolink.autolink"), Type: vpath.Autolink}
			jobs = append(jobs, Job{
				Kind:    JobAutolinkExtract,
				Tool:    ToolRef{Name: "swift-autolink-extract"},
				Inputs:  objs,
				Outputs: []vpath.TypedVirtualPath{out},
				Args:    autolinkArgs(objs, out),
			})
			linkerInputs = append(linkerInputs, out)
		}
	}

	// Step 6: link job.
	var linkJobOutput *vpath.TypedVirtualPath
	if req.LinkOutputType != nil && len(linkerInputs) > 0 {
		var args []ArgTemplate
		if req.Toolchain != nil {
			args = toolchainLinkArgs(req.Toolchain, linkerInputs, req.LinkOutputPath, *req.LinkOutputType, req.SDKPath)
		}
		jobs = append(jobs, Job{
			Kind:    JobLink,
			Tool:    ToolRef{Name: "ld"},
			Inputs:  linkerInputs,
			Outputs: []vpath.TypedVirtualPath{req.LinkOutputPath},
			Args:    args,
		})
		linkJobOutput = &req.LinkOutputPath
	}

	// Step 7: generate-dSYM job.
	if linkJobOutput != nil && req.Toolchain != nil && req.Toolchain.IsDarwin() && req.DebugInfoLevel != nil {
		dsym := vpath.TypedVirtualPath{File: vpath.Relative(linkJobOutput.File.Name() + ".dSYM"), Type: vpath.Object}
		jobs = append(jobs, Job{
			Kind:    JobGenerateDSYM,
			Tool:    ToolRef{Name: "dsymutil"},
			Inputs:  []vpath.TypedVirtualPath{*linkJobOutput},
			Outputs: []vpath.TypedVirtualPath{dsym},
			Args:    []ArgTemplate{PathArg(*linkJobOutput)},
		})
	}

	return jobs
}

func filterByType(in []vpath.TypedVirtualPath, t vpath.FileType) []vpath.TypedVirtualPath {
	out := make([]vpath.TypedVirtualPath, 0, len(in))
	for _, p := range in {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

func compileJob(primaries, allSwiftInputs []vpath.TypedVirtualPath, outType vpath.FileType) (Job, []vpath.TypedVirtualPath) {
	outputs := make([]vpath.TypedVirtualPath, 0, len(primaries))
	for _, p := range primaries {
		outputs = append(outputs, vpath.TypedVirtualPath{
			File: vpath.Relative(stem(p.File.Name()) + "." + outType.Extension()),
			Type: outType,
		})
	}
	secondary := make([]vpath.TypedVirtualPath, 0, len(allSwiftInputs))
	primarySet := make(map[string]bool, len(primaries))
	for _, p := range primaries {
		primarySet[p.Key()] = true
	}
	for _, in := range allSwiftInputs {
		if !primarySet[in.Key()] {
			secondary = append(secondary, in)
		}
	}
	inputs := append(append([]vpath.TypedVirtualPath{}, primaries...), secondary...)

	args := make([]ArgTemplate, 0, 2*len(primaries)+2)
	for i, p := range primaries {
		args = append(args, Flag("-primary-file"), PathArg(p))
		args = append(args, Flag("-o"), PathArg(outputs[i]))
	}
	// Secondary inputs (the rest of the module, needed for type-checking
	// context but not compiled as a primary) go through a spilled file
	// list rather than one argv token each: a whole-module batch can
	// have thousands of them, well past a shell's ARG_MAX.
	if len(secondary) > 0 {
		args = append(args, Flag("-filelist"), FileListArg("secondary", secondary))
	}

	return Job{
		Kind:    JobCompile,
		Tool:    ToolRef{Name: "swift-frontend"},
		Inputs:  inputs,
		Outputs: outputs,
		Args:    args,
	}, outputs
}

func emitModuleArgs(inputs, outputs []vpath.TypedVirtualPath) []ArgTemplate {
	args := []ArgTemplate{Flag("-emit-module")}
	for _, in := range inputs {
		args = append(args, PathArg(in))
	}
	for _, out := range outputs {
		args = append(args, Flag("-o"), PathArg(out))
	}
	return args
}

func mergeModuleArgs(inputs []vpath.TypedVirtualPath, output vpath.TypedVirtualPath) []ArgTemplate {
	args := []ArgTemplate{Flag("-merge-modules")}
	for _, in := range inputs {
		args = append(args, PathArg(in))
	}
	return append(args, Flag("-o"), PathArg(output))
}

func autolinkArgs(objs []vpath.TypedVirtualPath, out vpath.TypedVirtualPath) []ArgTemplate {
	args := make([]ArgTemplate, 0, len(objs)+2)
	for _, o := range objs {
		args = append(args, PathArg(o))
	}
	return append(args, Flag("-o"), PathArg(out))
}

func toolchainLinkArgs(tc toolchain.Toolchain, inputs []vpath.TypedVirtualPath, output vpath.TypedVirtualPath, kind config.LinkOutputType, sdkPath string) []ArgTemplate {
	raw := tc.LinkArgs(toolchain.LinkRequest{
		Inputs:     inputs,
		Output:     output,
		OutputKind: kind.String(),
		SDKPath:    sdkPath,
	})
	args := make([]ArgTemplate, 0, len(raw))
	for _, a := range raw {
		args = append(args, Flag(a))
	}
	return args
}

func stem(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
		if name[i] == '/' {
			break
		}
	}
	return name
}
