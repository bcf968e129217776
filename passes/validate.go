package passes

import (
	"boson/mir"
	"boson/report"
)

// ValidateIR walks every block reachable from root once, after the pipeline
// has reached its final fixed point, and checks the structural invariants
// spec §7 names for MalformedIR: every identifier's target must be defined
// somewhere in the graph, every phi must sit at a block with at least two
// parents, and every conditional successor must carry a condition
// instruction. Unlike the passes in the fixed-point sweep, this never
// reports progress and never mutates the graph. It only raises.
func ValidateIR(root *mir.BasicBlock) {
	defined := map[string]bool{}
	visit(root, func(b *mir.BasicBlock) {
		for _, instr := range b.Instrs {
			if v := instr.Var(); v.Name != "" {
				defined[v.Name] = true
			}
		}
	})

	visit(root, func(b *mir.BasicBlock) {
		if b.Succ.Kind == mir.SuccessorCondition && b.Succ.Condition == nil {
			report.ReportMalformedIR("conditional missing its condition instruction", "block")
		}

		for _, instr := range b.Instrs {
			if p, ok := instr.(*mir.Phi); ok && len(b.Parents) < 2 {
				report.ReportMalformedIR("phi at a block with fewer than two parents", p.Repr())
			}

			mir.ForEachIdentifier(instr, func(id *mir.Identifier) {
				if id.TargetName != "" && !defined[id.TargetName] {
					report.ReportMalformedIR("identifier names a variable never defined on any reaching path", id.Repr())
				}
			})
		}
	})
}

func visit(root *mir.BasicBlock, fn func(*mir.BasicBlock)) {
	seen := map[*mir.BasicBlock]bool{}

	var walk func(b *mir.BasicBlock)
	walk = func(b *mir.BasicBlock) {
		if b == nil || seen[b] {
			return
		}
		seen[b] = true
		fn(b)
		for _, next := range b.Succ.Targets() {
			walk(next)
		}
	}
	walk(root)
}
