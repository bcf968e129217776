package mir

import "strings"

// Bundle is a single compiled unit: the lowered contents of one build
// definition file, handed to the pass pipeline as a whole and, once
// optimized, handed off to the ninja emitter. The surface language has no
// user-defined functions in its own core semantics, only builtin calls such
// as `message()` or `host_machine.cpu_family()`, so a bundle holds a single
// root basic block rather than a list of function implementations.
type Bundle struct {
	// Root is the entry basic block of the build definition's control-flow
	// graph, as produced by the (out-of-scope) AST-lowering front end.
	Root *BasicBlock

	// Path is the source path this bundle was lowered from. The ninja
	// emitter writes it as the target of the bundle's build statement.
	Path string
}

// NewBundle wraps root as a bundle sourced from path.
func NewBundle(path string, root *BasicBlock) *Bundle {
	return &Bundle{Root: root, Path: path}
}

// Repr returns a depth-first textual dump of the bundle's control-flow
// graph.
func (bd *Bundle) Repr() string {
	sb := &strings.Builder{}
	seen := make(map[*BasicBlock]bool)
	writeBlock(sb, bd.Root, seen)
	return sb.String()
}

func writeBlock(sb *strings.Builder, b *BasicBlock, seen map[*BasicBlock]bool) {
	if b == nil || seen[b] {
		return
	}
	seen[b] = true

	sb.WriteString("block:\n")
	for _, instr := range b.Instrs {
		sb.WriteString("  ")
		sb.WriteString(instr.Repr())
		sb.WriteRune('\n')
	}

	switch b.Succ.Kind {
	case SuccessorNext:
		sb.WriteString("  -> next\n")
		writeBlock(sb, b.Succ.Next, seen)
	case SuccessorCondition:
		sb.WriteString("  -> if ")
		if b.Succ.Condition != nil {
			sb.WriteString(b.Succ.Condition.Var().String())
		}
		sb.WriteRune('\n')
		writeBlock(sb, b.Succ.True, seen)
		writeBlock(sb, b.Succ.False, seen)
		writeBlock(sb, b.Succ.Join, seen)
	}
}
