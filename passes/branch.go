package passes

import "boson/mir"

// BranchPruning folds a two-way conditional whose condition instruction has
// already been reduced to a literal down to an unconditional edge to
// whichever branch survives, per spec §4.8. It only rewrites the
// connector; BlockJoining is what actually inlines the surviving branch's
// instructions once it is down to a single parent.
//
// A Boolean literal folds directly. A String literal folds by Meson's own
// truthiness rule (a non-empty string is truthy), since machine-lowered
// queries such as host_machine.cpu_family() produce a String, not a
// Boolean, and still need to drive branch pruning (spec §8, scenario S6).
//
// The discarded branch is fully detached: b stops being its parent, and it
// stops being a parent of the join block.
func BranchPruning(b *mir.BasicBlock) bool {
	if b.Succ.Kind != mir.SuccessorCondition {
		return false
	}

	truthy, ok := conditionTruth(b.Succ.Condition)
	if !ok {
		return false
	}

	kept, dead := b.Succ.True, b.Succ.False
	if !truthy {
		kept, dead = b.Succ.False, b.Succ.True
	}

	if join := b.Succ.Join; dead != nil && join != nil {
		join.RemoveParent(dead)
	}

	if dead != nil {
		dead.RemoveParent(b)
	}

	if kept == nil {
		b.Succ = mir.Successor{Kind: mir.SuccessorTerminal}
		return true
	}

	b.Succ = mir.Successor{Kind: mir.SuccessorNext, Next: kept}
	kept.AddParent(b)

	return true
}

// conditionTruth reports whether cond is a literal whose truth value is
// already known, and what that value is.
func conditionTruth(cond mir.Instruction) (truthy, ok bool) {
	switch c := cond.(type) {
	case *mir.Boolean:
		return c.Value, true
	case *mir.String:
		return c.Value != "", true
	default:
		return false, false
	}
}
