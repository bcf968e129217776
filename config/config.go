// Package config decodes a project's boson.toml: a private TOML-shaped
// struct is decoded with go-toml, then validated and copied into the
// public Config type.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"boson/common"
	"boson/machines"
	"boson/report"
	"boson/util"
)

// tomlMachine mirrors one [machines.*] table in boson.toml.
type tomlMachine struct {
	System    string `toml:"system"`
	CPUFamily string `toml:"cpu_family"`
	CPU       string `toml:"cpu"`
	Endian    string `toml:"endian"`
	Subsystem string `toml:"subsystem"`
}

func (m tomlMachine) toInfo() machines.Info {
	return machines.Info{
		System:     machines.Kernel(m.System),
		CPUFamily:  m.CPUFamily,
		CPU:        m.CPU,
		Endianness: machines.Endian(m.Endian),
		Subsystem:  m.Subsystem,
	}
}

// tomlConfig is boson.toml as go-toml decodes it.
type tomlConfig struct {
	Project struct {
		Name        string `toml:"name"`
		BosonVer    string `toml:"boson-version"`
		LogLevel    string `toml:"log-level"`
		PrintPasses bool   `toml:"print-passes"`
	} `toml:"project"`

	Machines struct {
		Build  tomlMachine `toml:"build"`
		Host   tomlMachine `toml:"host"`
		Target tomlMachine `toml:"target"`
	} `toml:"machines"`
}

// Config is the validated, in-memory form of boson.toml.
type Config struct {
	ProjectName string
	LogLevel    int
	PrintPasses bool
	Machines    machines.PerMachine[machines.Info]
}

var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Load reads and validates boson.toml from projectDir, fatally reporting
// via report.ReportFatal on any decode or validation failure.
func Load(projectDir string) Config {
	path := filepath.Join(projectDir, common.ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		report.ReportFatal("unable to open project file at %q: %s", path, err)
		return Config{}
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		report.ReportFatal("error parsing project file at %q: %s", path, err)
		return Config{}
	}

	return validate(path, tc)
}

var validLogLevels = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts one of the four boson.toml log-level spellings,
// the same ones the CLI's --loglevel flag accepts, into the report
// package's numeric level.
func ParseLogLevel(name string) (int, bool) {
	lvl, ok := logLevelNames[name]
	return lvl, ok
}

func validate(path string, tc tomlConfig) Config {
	if tc.Project.Name == "" {
		report.ReportFatal("%s: missing project.name", path)
		return Config{}
	}

	levelName := tc.Project.LogLevel
	if levelName == "" {
		levelName = "verbose"
	}
	if !util.Contains(validLogLevels, levelName) {
		report.ReportFatal("%s: invalid project.log-level %q (want one of %v)", path, levelName, validLogLevels)
		return Config{}
	}

	if tc.Project.BosonVer != "" && tc.Project.BosonVer != common.BosonVersion {
		report.ReportWarning(path, "project boson-version (%s) does not match this compiler (%s)",
			tc.Project.BosonVer, common.BosonVersion)
	}

	return Config{
		ProjectName: tc.Project.Name,
		LogLevel:    logLevelNames[levelName],
		PrintPasses: tc.Project.PrintPasses,
		Machines: machines.NewPerMachine(
			tc.Machines.Build.toInfo(),
			tc.Machines.Host.toInfo(),
			tc.Machines.Target.toInfo(),
		),
	}
}

// String renders a human-readable summary of the project name, log level
// and print-passes setting.
func (c Config) String() string {
	return fmt.Sprintf("project %q (log-level=%d, print-passes=%t)", c.ProjectName, c.LogLevel, c.PrintPasses)
}
