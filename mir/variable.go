// Package mir implements boson's Mid-level Intermediate Representation: the
// typed, control-flow-graph-shaped IR that the pass pipeline in package
// passes operates over. See bundle.go for the entry point into a compiled
// unit and block.go for the control-flow shape.
package mir

import "fmt"

// Variable is the (name, version) pair every instruction that can name a
// result carries. Version 0 denotes an undefined placeholder slot; the first
// real definition assigns version 1. Variables order lexicographically on
// Name, then ascending on Version.
type Variable struct {
	Name    string
	Version uint32
}

// Defined reports whether this variable has been assigned a real version.
func (v Variable) Defined() bool {
	return v.Version > 0
}

// Less orders variables by name then by version, matching the comparator the
// original C++ implementation uses for its Phi and Variable ordering.
func (v Variable) Less(o Variable) bool {
	if v.Name != o.Name {
		return v.Name < o.Name
	}
	return v.Version < o.Version
}

func (v Variable) String() string {
	if v.Name == "" {
		return "<unnamed>"
	}
	return fmt.Sprintf("%s.%d", v.Name, v.Version)
}
