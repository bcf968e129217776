package report

import "fmt"

// MalformedIRError is raised when passes.ValidateIR finds IR that violates
// one of the core's structural invariants: an identifier naming a variable never
// defined on any reaching path, a phi at a block with fewer than two
// parents, or a conditional whose condition instruction is missing.
type MalformedIRError struct {
	Reason  string
	Culprit string // Repr() of the offending block or instruction
}

func (e *MalformedIRError) Error() string {
	return fmt.Sprintf("malformed IR: %s (%s)", e.Reason, e.Culprit)
}

// InconsistentMachineInfoError is raised when a host_machine/build_machine/
// target_machine query names a field absent from the Info the driver
// supplied for that machine.
type InconsistentMachineInfoError struct {
	Machine string
	Field   string
}

func (e *InconsistentMachineInfoError) Error() string {
	return fmt.Sprintf("%s has no field %q", e.Machine, e.Field)
}

// ReportMalformedIR raises a MalformedIRError. Per spec §7 this is always
// fatal: it panics so the nearest report.CatchErrors boundary can turn it
// into a displayed error and stop the current compilation, without a pass
// itself deciding to exit the process.
func ReportMalformedIR(reason, culprit string) {
	panic(&MalformedIRError{Reason: reason, Culprit: culprit})
}

// ReportInconsistentMachineInfo raises an InconsistentMachineInfoError, the
// same way ReportMalformedIR does.
func ReportInconsistentMachineInfo(machine, field string) {
	panic(&InconsistentMachineInfoError{Machine: machine, Field: field})
}

// ReportWarning reports a non-fatal warning from source (a file or
// pipeline phase name); silent below LogLevelWarn.
func ReportWarning(source, format string, args ...interface{}) {
	if rep == nil || rep.logLevel < LogLevelWarn {
		return
	}

	rep.m.Lock()
	rep.warnings = append(rep.warnings, fmt.Sprintf("%s: %s", source, fmt.Sprintf(format, args...)))
	rep.m.Unlock()

	displayWarning(source, fmt.Sprintf(format, args...))
}

// ReportFatal reports a fatal configuration or driver error, used outside
// the pass pipeline (config decoding, CLI argument validation).
func ReportFatal(format string, args ...interface{}) {
	rep.m.Lock()
	rep.errCount++
	rep.m.Unlock()

	displayFatal(fmt.Sprintf(format, args...))
}

// CatchErrors recovers a panic raised by ReportMalformedIR,
// ReportInconsistentMachineInfo, or any other error value, and turns it
// into a displayed, counted error instead of letting it crash the process.
// Must always be deferred.
func CatchErrors(phase string) {
	if x := recover(); x != nil {
		rep.m.Lock()
		rep.errCount++
		rep.m.Unlock()

		switch e := x.(type) {
		case *MalformedIRError:
			displayPipelineError(phase, e.Error())
		case *InconsistentMachineInfoError:
			displayPipelineError(phase, e.Error())
		case error:
			displayPipelineError(phase, e.Error())
		default:
			displayPipelineError(phase, fmt.Sprintf("%v", x))
		}
	}
}
