package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatchErrorsRecoversMalformedIR(t *testing.T) {
	InitReporter(LogLevelSilent)
	before := ErrorCount()

	func() {
		defer CatchErrors("value numbering")
		ReportMalformedIR("phi at unreachable block", "block#3")
	}()

	assert.Equal(t, before+1, ErrorCount())
	assert.True(t, AnyErrors())
}

func TestCatchErrorsRecoversInconsistentMachineInfo(t *testing.T) {
	InitReporter(LogLevelSilent)
	before := ErrorCount()

	func() {
		defer CatchErrors("machine lowering")
		ReportInconsistentMachineInfo("host_machine", "subsystem")
	}()

	assert.Equal(t, before+1, ErrorCount())
}

func TestCatchErrorsIsNoOpWithoutPanic(t *testing.T) {
	InitReporter(LogLevelSilent)
	before := ErrorCount()

	func() {
		defer CatchErrors("value numbering")
	}()

	assert.Equal(t, before, ErrorCount())
}

func TestReportFatalIncrementsErrorCountWithoutExiting(t *testing.T) {
	InitReporter(LogLevelSilent)
	before := ErrorCount()

	ReportFatal("missing project.name")

	assert.Equal(t, before+1, ErrorCount())
}

func TestSetLogLevelInitializesIfUnset(t *testing.T) {
	// InitReporter is init-once for the process; SetLogLevel must still
	// succeed whether or not a prior test already initialized rep.
	SetLogLevel(LogLevelWarn)
	assert.NotNil(t, rep)
}

func TestMalformedIRErrorMessage(t *testing.T) {
	err := &MalformedIRError{Reason: "dangling read", Culprit: "x.4"}
	assert.Contains(t, err.Error(), "dangling read")
	assert.Contains(t, err.Error(), "x.4")
}

func TestInconsistentMachineInfoErrorMessage(t *testing.T) {
	err := &InconsistentMachineInfoError{Machine: "host_machine", Field: "subsystem"}
	assert.Contains(t, err.Error(), "host_machine")
	assert.Contains(t, err.Error(), "subsystem")
}
