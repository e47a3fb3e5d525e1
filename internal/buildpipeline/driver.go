package buildpipeline

import (
	"errors"
	"os"

	"swiftdriver/internal/config"
	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/tempalloc"
	"swiftdriver/internal/toolchain"
	"swiftdriver/internal/vpath"
)

// Driver is the top-level aggregate of a driver invocation: a single
// construction resolves inputs, configuration and toolchain once;
// PlanBuild (planbuild.go) runs partitioning then planning against it.
type Driver struct {
	Personality options.Personality
	Opts        options.ParsedOptions
	Inputs      []vpath.TypedVirtualPath
	Config      config.Configuration
	Toolchain   toolchain.Toolchain
	SDKPath     string
	Temp        *tempalloc.Allocator
	Reporter    diag.Reporter
}

// New constructs a Driver from a raw argv (excluding argv[0]) plus the
// program name used to resolve the CLI personality. Response
// files are expanded, the option table is parsed, and C1-C5 run
// exactly once here; the result is treated as immutable afterward.
func New(argv0 string, args []string, reporter diag.Reporter) (*Driver, error) {
	personality := options.ResolvePersonality(argv0, args)
	if !personality.IsKnown() {
		diag.ReportError(reporter, diag.CfgInvalidDriverName, diag.Location{Option: "driver-mode"},
			"invalid driver name: "+string(personality)).Emit()
		personality = options.PersonalitySwiftc
	}

	opts, err := options.Parse(args)
	if err != nil {
		return nil, err
	}

	inputs, err := vpath.ClassifyInputs(opts.Inputs())
	if err != nil {
		diag.ReportError(reporter, diag.InputInvalid, diag.Location{}, err.Error()).Emit()
		inputs = nil
	}

	temp := &tempalloc.Allocator{}
	workingDirectory, _ := opts.String("working-directory")
	if workingDirectory == "" {
		workingDirectory = "."
	}

	cfg := config.Resolve(opts, personality, inputs, temp, workingDirectory, reporter)

	if cfg.Mode.Kind == config.ModeREPL || cfg.Mode.Kind == config.ModeImmediate {
		msg := cfg.Mode.Kind.String() + " not yet implemented; planning aborts"
		diag.ReportFatal(reporter, diag.FatalModeNotImplemented, diag.Location{}, msg).Emit()
		return nil, errors.New(msg)
	}

	target, _ := opts.String("target")
	tc, err := toolchain.Resolve(target, reporter)
	if err != nil {
		diag.ReportFatal(reporter, diag.FatalUnsupportedTarget, diag.Location{Option: "target"}, err.Error()).Emit()
		return nil, err
	}

	// immediate/repl would want the toolchain's default SDK when neither
	// -sdk nor $SDKROOT is set, but both modes abort above before this
	// point runs, so the driver never needs that fallback itself.
	sdkPath := toolchain.ResolveSDKPath(opts, tc, false, reporter)

	return &Driver{
		Personality: personality,
		Opts:        opts,
		Inputs:      inputs,
		Config:      cfg,
		Toolchain:   tc,
		SDKPath:     sdkPath,
		Temp:        temp,
		Reporter:    reporter,
	}, nil
}

// NewFromEnv is a thin convenience wrapper that reads os.Args.
func NewFromEnv(reporter diag.Reporter) (*Driver, error) {
	if len(os.Args) == 0 {
		return New("swiftc", nil, reporter)
	}
	return New(os.Args[0], os.Args[1:], reporter)
}
