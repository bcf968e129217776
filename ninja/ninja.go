// Package ninja is a placeholder for the real ninja backend named in
// spec.md §6 as a one-way boundary consuming the optimized MIR. It is out
// of this compiler's core scope. Generate exists only so cmd/boson has an
// end-to-end path demonstrating the core handing its output off.
package ninja

import (
	"fmt"
	"io"

	"boson/mir"
)

// Generate writes a minimal ninja file standing in for the real emitter:
// a header comment and one phony build statement per bundle.
func Generate(b *mir.Bundle, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "# generated by boson, do not edit"); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "build %s: phony\n", b.Path)
	return err
}
