// Command swiftdriver is a Swift-compiler-driver-shaped front end: it
// resolves mode/output/module configuration from argv, partitions
// swift inputs for batch compilation, plans a job graph, and executes
// it, mirroring swiftc/swift-frontend/swift-modulewrap/swift-indent
// depending on how it was invoked.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"swiftdriver/internal/buildpipeline"
	"swiftdriver/internal/diag"
	"swiftdriver/internal/options"
	"swiftdriver/internal/plan"
	"swiftdriver/internal/projectconfig"
	"swiftdriver/internal/ui"
	"swiftdriver/internal/version"
)

// driverFlags are consumed by this command before the core ever sees
// argv; they govern how results are reported, not what is built, so
// they live outside the option table the core resolves against.
type driverFlags struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	dumpJobs       bool
	dryRun         bool
	printVersion   bool
	rest           []string
}

func parseDriverFlags(args []string) driverFlags {
	f := driverFlags{color: "auto", maxDiagnostics: 100}
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--color" && i+1 < len(args):
			i++
			f.color = args[i]
		case hasPrefixValue(a, "--color="):
			f.color = valueAfter(a, "--color=")
		case a == "--quiet":
			f.quiet = true
		case a == "--timings":
			f.timings = true
		case a == "--dump-jobs":
			f.dumpJobs = true
		case a == "--dry-run":
			f.dryRun = true
		case a == "-version" || a == "--version":
			f.printVersion = true
		case a == "--max-diagnostics" && i+1 < len(args):
			i++
			fmt.Sscanf(args[i], "%d", &f.maxDiagnostics)
		case hasPrefixValue(a, "--max-diagnostics="):
			fmt.Sscanf(valueAfter(a, "--max-diagnostics="), "%d", &f.maxDiagnostics)
		default:
			rest = append(rest, a)
		}
	}
	f.rest = rest
	return f
}

func hasPrefixValue(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func valueAfter(s, prefix string) string { return s[len(prefix):] }

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "swiftdriver: missing argv[0]")
		return 1
	}
	argv0, args := argv[0], argv[1:]

	personality := options.ResolvePersonality(argv0, args)
	if personality.IsPassThrough() {
		return runPassThrough(personality, args)
	}

	flags := parseDriverFlags(args)

	if flags.printVersion {
		fmt.Println(version.String())
		return 0
	}

	manifest, _, err := projectconfig.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "swiftdriver: %v\n", err)
	}
	driverArgs := manifest.ArgsWithDefaults(flags.rest)

	bag := diag.NewBag(flags.maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	d, err := buildpipeline.New(argv0, driverArgs, reporter)
	if err != nil {
		renderDiagnostics(bag, flags)
		fmt.Fprintf(os.Stderr, "swiftdriver: %v\n", err)
		return 1
	}

	if bag.HasErrors() {
		renderDiagnostics(bag, flags)
		return 1
	}

	jobs := d.PlanBuild()

	if flags.dumpJobs {
		out, err := plan.DumpJobs(jobs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swiftdriver: failed to dump jobs: %v\n", err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	executor := &buildpipeline.JobExecutor{Toolchain: d.Toolchain, DryRun: flags.dryRun}

	var timings buildpipeline.Timings
	if !flags.quiet && isTerminal(os.Stdout) && len(jobs) > 0 {
		timings, err = runWithUI(ctx, jobs, executor)
	} else {
		executor.Progress = nil
		timings, err = executor.Run(ctx, jobs)
	}

	renderDiagnostics(bag, flags)

	if flags.timings {
		printTimings(timings)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "swiftdriver: %v\n", err)
		return 1
	}
	if bag.HasErrors() {
		return 1
	}
	return 0
}

func runWithUI(ctx context.Context, jobs []plan.Job, executor *buildpipeline.JobExecutor) (buildpipeline.Timings, error) {
	events := make(chan buildpipeline.Event, 256)
	executor.Progress = buildpipeline.ChannelSink{Ch: events}

	type outcome struct {
		timings buildpipeline.Timings
		err     error
	}
	outcomeCh := make(chan outcome, 1)
	go func() {
		t, err := executor.Run(ctx, jobs)
		outcomeCh <- outcome{timings: t, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(string(version.Version), jobs, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil && out.err == nil {
		return out.timings, uiErr
	}
	return out.timings, out.err
}

func renderDiagnostics(bag *diag.Bag, flags driverFlags) {
	bag.Sort()
	useColor := flags.color == "on" || (flags.color == "auto" && isTerminal(os.Stderr))
	diag.Render(os.Stderr, bag.Items(), useColor)
}

func printTimings(t buildpipeline.Timings) {
	kinds := []plan.JobKind{
		plan.JobEmitModule, plan.JobCompile, plan.JobMergeModule,
		plan.JobAutolinkExtract, plan.JobLink, plan.JobGenerateDSYM,
	}
	sort.Slice(kinds, func(i, j int) bool {
		return t.Duration(kinds[i]) > t.Duration(kinds[j])
	})
	for _, k := range kinds {
		if d := t.Duration(k); d > 0 {
			fmt.Fprintf(os.Stderr, "  %-18s %s\n", k.String(), d)
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runPassThrough execs the real swift-frontend/swift-modulewrap/
// swift-autolink-extract/swift-indent tool for personalities this
// driver deliberately does not reimplement; it only owns dispatch.
func runPassThrough(p options.Personality, args []string) int {
	name := string(p)
	if p == "frontend" {
		name = "swift-frontend"
	}
	if p == "modulewrap" {
		name = "swift-modulewrap"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swiftdriver: %s not found in PATH\n", name)
		return 1
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "swiftdriver: %v\n", err)
		return 1
	}
	return 0
}
