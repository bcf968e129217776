package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boson/common"
	"boson/machines"
	"boson/report"
)

func validConfig() tomlConfig {
	var tc tomlConfig
	tc.Project.Name = "demo"
	tc.Project.LogLevel = "warn"
	tc.Machines.Host.CPUFamily = "x86_64"
	tc.Machines.Host.Endian = "little"
	return tc
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	report.InitReporter(report.LogLevelVerbose)
	before := report.ErrorCount()

	cfg := validate("boson.toml", validConfig())

	assert.Equal(t, before, report.ErrorCount())
	assert.Equal(t, "demo", cfg.ProjectName)
	assert.Equal(t, report.LogLevelWarn, cfg.LogLevel)

	host, ok := cfg.Machines.Get(machines.Host)
	require.True(t, ok)
	assert.Equal(t, "x86_64", host.CPUFamily)
	assert.Equal(t, machines.Little, host.Endianness)
}

func TestValidateDefaultsLogLevelToVerbose(t *testing.T) {
	report.InitReporter(report.LogLevelVerbose)
	tc := validConfig()
	tc.Project.LogLevel = ""

	cfg := validate("boson.toml", tc)
	assert.Equal(t, report.LogLevelVerbose, cfg.LogLevel)
}

func TestValidateRejectsMissingName(t *testing.T) {
	report.InitReporter(report.LogLevelVerbose)
	before := report.ErrorCount()

	tc := validConfig()
	tc.Project.Name = ""
	validate("boson.toml", tc)

	assert.Greater(t, report.ErrorCount(), before)
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	report.InitReporter(report.LogLevelVerbose)
	before := report.ErrorCount()

	tc := validConfig()
	tc.Project.LogLevel = "deafening"
	validate("boson.toml", tc)

	assert.Greater(t, report.ErrorCount(), before)
}

func TestValidateAcceptsMatchingBosonVersion(t *testing.T) {
	report.InitReporter(report.LogLevelVerbose)
	before := report.ErrorCount()

	tc := validConfig()
	tc.Project.BosonVer = common.BosonVersion
	validate("boson.toml", tc)

	assert.Equal(t, before, report.ErrorCount())
}

func TestConfigString(t *testing.T) {
	cfg := Config{ProjectName: "demo", LogLevel: report.LogLevelWarn, PrintPasses: true}
	assert.Contains(t, cfg.String(), "demo")
}
