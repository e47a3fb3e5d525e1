package plan

import (
	"github.com/vmihailenco/msgpack/v5"

	"swiftdriver/internal/vpath"
)

// dumpPath is the msgpack wire shape for a TypedVirtualPath: paths are
// serialized by their resolved name, not by the tagged VirtualPath
// union, since a dump is read by external tooling, never by this
// driver (there is no build cache to warm — see SPEC_FULL.md).
type dumpPath struct {
	Path string `msgpack:"path"`
	Type string `msgpack:"type"`
}

type dumpArg struct {
	Kind  string     `msgpack:"kind"`
	Flag  string     `msgpack:"flag,omitempty"`
	Path  *dumpPath  `msgpack:"path,omitempty"`
	Paths []dumpPath `msgpack:"paths,omitempty"`
}

type dumpJob struct {
	Kind    string     `msgpack:"kind"`
	Tool    string     `msgpack:"tool"`
	Inputs  []dumpPath `msgpack:"inputs"`
	Outputs []dumpPath `msgpack:"outputs"`
	Args    []dumpArg  `msgpack:"args"`
}

func toDumpPath(p vpath.TypedVirtualPath) dumpPath {
	return dumpPath{Path: p.File.Canonical(), Type: p.Type.String()}
}

func toDumpPaths(ps []vpath.TypedVirtualPath) []dumpPath {
	out := make([]dumpPath, len(ps))
	for i, p := range ps {
		out[i] = toDumpPath(p)
	}
	return out
}

func toDumpArg(a ArgTemplate) dumpArg {
	switch a.Kind {
	case ArgFlag:
		return dumpArg{Kind: "flag", Flag: a.Flag}
	case ArgPath:
		p := toDumpPath(a.Path)
		return dumpArg{Kind: "path", Path: &p}
	case ArgFileList:
		return dumpArg{Kind: "fileList", Flag: a.ListName, Paths: toDumpPaths(a.Paths)}
	default:
		return dumpArg{Kind: "unknown"}
	}
}

// DumpJobs serializes jobs to msgpack for external inspection tooling
// (e.g. `--dump-jobs`). This is a one-way export: nothing in this
// driver ever reads a dump back in, so it is not a build cache.
func DumpJobs(jobs []Job) ([]byte, error) {
	out := make([]dumpJob, len(jobs))
	for i, j := range jobs {
		args := make([]dumpArg, len(j.Args))
		for k, a := range j.Args {
			args[k] = toDumpArg(a)
		}
		out[i] = dumpJob{
			Kind:    j.Kind.String(),
			Tool:    j.Tool.Name,
			Inputs:  toDumpPaths(j.Inputs),
			Outputs: toDumpPaths(j.Outputs),
			Args:    args,
		}
	}
	return msgpack.Marshal(out)
}
