package main

import (
	"fmt"
	"os"
	"strings"

	"boson/common"
)

const usage = `Usage: boson [flags|options] <project directory>
       boson compare <version> <op> <version>

Flags:
------
-h, --help       Displays usage information (ie. this text).
-v, --version    Displays the current compiler version.
-d, --debug      Whether the compiler should output debug information.

Options:
--------
-ll, --loglevel  Overrides the log level from boson.toml. Valid values are
                 "silent", "error", "warn", "verbose".
-f,  --fixture   Selects the built-in MIR fixture to run through the
                 pipeline (S1..S6), since front-end parsing of build-
                 definition scripts is out of this compiler's scope.
`

var options = map[string]struct{}{
	"ll":        {},
	"f":         {},
	"-loglevel": {},
	"-fixture":  {},
}

func printUsage(code int) {
	fmt.Print(usage)
	os.Exit(code)
}

func argumentError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "argument error: %s\n\n", fmt.Sprintf(format, args...))
	printUsage(1)
}

type argParser struct {
	args []string
	ndx  int
}

func (ap *argParser) nextArg() (name, value string, ok bool) {
	if ap.ndx >= len(ap.args) {
		return "", "", false
	}

	arg := ap.args[ap.ndx]
	ap.ndx++

	if !strings.HasPrefix(arg, "-") {
		return "", arg, true
	}

	name = arg[1:]
	if _, isOption := options[name]; isOption {
		if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
			value = ap.args[ap.ndx]
			ap.ndx++
			return name, value, true
		}
		argumentError("option %s requires an argument", name)
	}

	return name, "", true
}

// driverFromArgs parses os.Args[1:] into a Driver. "compare a op b" is
// handled as a special first-class subcommand, mirroring the version
// comparator's role as a standalone service to the AST-lowering layer
// (spec §6); everything else configures a pipeline run.
func driverFromArgs(args []string) *Driver {
	if len(args) == 4 && args[0] == "compare" {
		return &Driver{compareA: args[1], compareOp: args[2], compareB: args[3]}
	}

	d := &Driver{fixture: "S1"}

	ap := &argParser{args: args}
	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}
		useArg(d, name, value)
	}

	if d.projectDir == "" {
		argumentError("a project directory must be specified")
	}

	return d
}

func useArg(d *Driver, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "v", "-version":
		fmt.Println(common.BosonVersion)
		os.Exit(0)
	case "d", "-debug":
		d.debug = true
	case "f", "-fixture":
		d.fixture = value
	case "ll", "-loglevel":
		if value == "" {
			argumentError("--loglevel requires a value")
		}
		d.logLevel = value
	case "":
		if d.projectDir == "" {
			d.projectDir = value
		} else {
			argumentError("project directory specified multiple times")
		}
	default:
		argumentError("unknown flag: %s", name)
	}
}
