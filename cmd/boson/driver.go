// Package main is boson's command-line entry point: argument parsing,
// project-config loading, and sequencing the pipeline's phases (load
// config, build the fixture bundle, run the pass pipeline, emit ninja).
package main

import (
	"fmt"
	"os"

	"boson/config"
	"boson/mir"
	"boson/ninja"
	"boson/passes"
	"boson/report"
	"boson/version"
)

// Driver holds one invocation's parsed command-line configuration.
type Driver struct {
	projectDir string
	fixture    string
	compareA   string
	compareOp  string
	compareB   string
	debug      bool
	logLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	d := driverFromArgs(os.Args[1:])

	if d.compareOp != "" {
		return runCompare(d)
	}

	return d.runPipeline()
}

func runCompare(d *Driver) int {
	op, ok := version.ParseOp(d.compareOp)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown comparison operator %q\n", d.compareOp)
		return 1
	}

	result := version.Satisfies(d.compareA, op, d.compareB)
	fmt.Println(result)
	if !result {
		return 1
	}
	return 0
}

// runPipeline loads boson.toml, builds the fixture bundle requested on the
// command line (standing in for the AST-lowering front end, which is out
// of core scope), and runs it through the full pass pipeline.
func (d *Driver) runPipeline() (exitCode int) {
	report.InitReporter(report.LogLevelVerbose)

	cfg := config.Load(d.projectDir)

	if d.logLevel != "" {
		if lvl, ok := config.ParseLogLevel(d.logLevel); ok {
			cfg.LogLevel = lvl
		} else {
			report.ReportFatal("unknown --loglevel value %q", d.logLevel)
		}
	}
	if d.debug {
		cfg.PrintPasses = true
	}
	report.SetLogLevel(cfg.LogLevel)

	// Defers run LIFO: CatchErrors must be registered last so it recovers a
	// panicking pass (and counts its error) before the exit-code closure
	// below reads AnyErrors, or a fatal MalformedIR/InconsistentMachineInfo
	// panic would unwind past an exit code that was already decided as 0.
	defer func() {
		if report.AnyErrors() {
			exitCode = 1
		}
	}()
	defer report.CatchErrors("pipeline")

	if report.AnyErrors() {
		return 1
	}

	root, ok := fixtures[d.fixture]
	if !ok {
		report.ReportFatal("unknown fixture %q (want one of S1..S6)", d.fixture)
		return 1
	}

	bundle := mir.NewBundle(d.fixture, root())

	result := passes.RunPipeline(bundle.Root, cfg.Machines)
	report.DisplaySummary(result.Sweeps)

	if cfg.PrintPasses {
		fmt.Println(bundle.Repr())
	}

	if err := ninja.Generate(bundle, os.Stdout); err != nil {
		report.ReportFatal("emitting ninja file: %s", err)
	}

	return 0
}
