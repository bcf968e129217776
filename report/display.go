package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	infoColorFG    = successColorFG
)

// displayFatal prints a fatal configuration/driver error as a red banner.
func displayFatal(msg string) {
	fmt.Print("\n")
	errorStyleBG.Print(" Fatal Error ")
	errorColorFG.Println(" " + msg)
}

// displayPipelineError prints an error caught at a report.CatchErrors
// boundary, tagged with the pipeline phase it occurred in.
func displayPipelineError(phase, msg string) {
	fmt.Print("\n")
	errorStyleBG.Print(" " + phase + " ")
	errorColorFG.Println(" " + msg)
}

// phaseSpinner tracks the pipeline phase currently being displayed.
var (
	phaseSpinner   *pterm.SpinnerPrinter
	currentPhase   string
	phaseStartTime time.Time
)

const maxPhaseLength = len("Machine lowering")

// BeginPhase starts the spinner for one pipeline phase (e.g. "Value
// numbering", "Branch pruning"). Silent below LogLevelVerbose.
func BeginPhase(phase string) {
	if rep == nil || rep.logLevel < LogLevelVerbose {
		return
	}

	currentPhase = phase
	pad := maxPhaseLength - len(phase)
	if pad < 0 {
		pad = 0
	}
	phaseText := phase + "..." + strings.Repeat(" ", pad+2)

	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: successStyleBG, Text: "Done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorStyleBG, Text: "Fail"},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// EndPhase closes out the current phase's spinner.
func EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	if success {
		phaseSpinner.Success(currentPhase, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(currentPhase)
	}

	phaseSpinner = nil
}

// DisplaySummary prints the closing message for a whole pipeline run.
func DisplaySummary(sweeps int) {
	if rep == nil || rep.logLevel < LogLevelVerbose {
		return
	}

	fmt.Print("\n")
	if AnyErrors() {
		errorColorFG.Print("Failed ")
	} else {
		successColorFG.Print("Done ")
	}

	fmt.Printf("(%d sweep", sweeps)
	if sweeps != 1 {
		fmt.Print("s")
	}
	fmt.Print(", ")

	switch ErrorCount() {
	case 0:
		successColorFG.Print(0)
		fmt.Println(" errors)")
	default:
		errorColorFG.Print(ErrorCount())
		fmt.Println(" errors)")
	}
}

// displayWarning prints a non-fatal warning, tagged with its source (e.g.
// "boson.toml").
func displayWarning(source, msg string) {
	warnColorFG.Print(" warning ")
	fmt.Printf("(%s): %s\n", source, msg)
}
