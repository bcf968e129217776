// Package report is the compiler's diagnostic boundary: a process-wide
// Reporter that owns log-level gating and error counting, plus the two
// MIR-native error kinds the core can raise (MalformedIR,
// InconsistentMachineInfo).
package report

import "sync"

// Enumeration of the reporter's log levels.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// Reporter accumulates error/warning counts and gates output by log level.
// Its methods are safe to call from multiple goroutines even though the
// pass pipeline itself is single-threaded (spec §5). The CLI's phase
// spinner and the pipeline can run on different goroutines.
type Reporter struct {
	m *sync.Mutex

	logLevel int
	errCount int
	warnings []string
}

var rep *Reporter

// InitReporter initializes the global reporter at the given log level. A
// second call is a no-op: the reporter is created once, at startup, before
// boson.toml is decoded; SetLogLevel then applies the project's level.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{m: &sync.Mutex{}, logLevel: logLevel}
	}
}

// SetLogLevel adjusts the level of an already-initialized reporter. Used
// once boson.toml has been decoded and the project's configured level is
// known, since config.Load itself needs a reporter to exist first.
func SetLogLevel(logLevel int) {
	if rep == nil {
		InitReporter(logLevel)
		return
	}
	rep.m.Lock()
	rep.logLevel = logLevel
	rep.m.Unlock()
}

// AnyErrors reports whether any error has been recorded so far.
func AnyErrors() bool {
	return ErrorCount() > 0
}

// ErrorCount returns the number of errors recorded so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()
	return rep.errCount
}
