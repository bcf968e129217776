package passes

import "boson/mir"

// ConstantFolding is constant folding and copy propagation combined, per
// spec: literals register themselves as their own canonical source,
// identifiers that copy a literal or another already-canonicalized
// identifier collapse to that canonical (name, version), and any embedded
// identifier inside an Array/Dict/FunctionCall argument gets one level of
// replacement-table lookup (chains were already collapsed when the copy
// they point at was itself defined, so one lookup suffices). The pass is
// monotonic (rt entries are only ever added, never changed), so it reaches
// a fixed point in at most one sweep per newly foldable identifier.
func ConstantFolding(rt ReplacementTable) Pass {
	return func(b *mir.BasicBlock) bool {
		progress := false

		for _, instr := range b.Instrs {
			switch v := instr.(type) {
			case *mir.Number, *mir.String, *mir.Boolean:
				rvar := *instr.Var()
				if rvar.Name == "" {
					continue
				}
				slot := ReplacementSlot{Name: rvar.Name, Version: rvar.Version}
				if _, ok := rt[slot]; !ok {
					rt[slot] = slot
				}

			case *mir.Identifier:
				targetSlot := ReplacementSlot{Name: v.TargetName, Version: v.TargetVersion}
				canon, ok := rt[targetSlot]
				if !ok {
					continue
				}
				if canon != targetSlot {
					v.SetTarget(mir.Variable{Name: canon.Name, Version: canon.Version})
					progress = true
				}
				if rvar := *instr.Var(); rvar.Name != "" {
					slot := ReplacementSlot{Name: rvar.Name, Version: rvar.Version}
					if existing, ok := rt[slot]; !ok || existing != canon {
						rt[slot] = canon
					}
				}

			default:
				mir.ForEachIdentifier(instr, func(id *mir.Identifier) {
					slot := ReplacementSlot{Name: id.TargetName, Version: id.TargetVersion}
					if canon, ok := rt[slot]; ok && canon != slot {
						id.SetTarget(mir.Variable{Name: canon.Name, Version: canon.Version})
						progress = true
					}
				})
			}
		}

		return progress
	}
}
