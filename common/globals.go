// Package common holds project-wide constants shared by the config loader
// and the CLI driver.
package common

// BosonVersion is the current compiler version string.
const BosonVersion string = "0.1.0"

// ConfigFileName is the name of the project file the config package decodes.
const ConfigFileName string = "boson.toml"

// SourceFileExt is the file extension the front end (out of core scope)
// recognizes for build-definition scripts.
const SourceFileExt string = ".build"
