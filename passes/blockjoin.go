package passes

import "boson/mir"

// BlockJoining collapses an unconditional edge to a single-parent successor
// by moving that successor's instructions onto the end of b and adopting
// its connector, per spec §4.9. The successor block itself is simply
// dropped. Nothing else can still reference it once it has exactly one
// parent and that parent is b.
func BlockJoining(b *mir.BasicBlock) bool {
	if b.Succ.Kind != mir.SuccessorNext || b.Succ.Next == nil {
		return false
	}

	next := b.Succ.Next
	if len(next.Parents) != 1 || next.Parents[0] != b {
		return false
	}

	b.Instrs = append(b.Instrs, next.Instrs...)

	switch next.Succ.Kind {
	case mir.SuccessorNext:
		target := next.Succ.Next
		b.Succ = mir.Successor{Kind: mir.SuccessorNext, Next: target}
		if target != nil {
			target.RemoveParent(next)
			target.AddParent(b)
		}
	case mir.SuccessorCondition:
		b.Succ = next.Succ
		for _, t := range []*mir.BasicBlock{next.Succ.True, next.Succ.False, next.Succ.Join} {
			if t != nil {
				t.RemoveParent(next)
				t.AddParent(b)
			}
		}
	default:
		b.Succ = mir.Successor{Kind: mir.SuccessorTerminal}
	}

	return true
}
