package passes

import "boson/mir"

// UsageNumbering resolves every dangling read (an Identifier whose
// TargetVersion is still 0) to the version of that name most recently
// defined along the traversal path, then records this block's own
// definitions for blocks visited afterward. lst is shared across the whole
// walk (not reset per block or per sweep), which is what lets a join
// block's spliced-in phi, itself just another instruction with a name and a
// version, resolve reads that follow it in the same block.
func UsageNumbering(lst LastSeenTable) Pass {
	return func(b *mir.BasicBlock) bool {
		progress := false

		for _, instr := range b.Instrs {
			mir.ForEachIdentifier(instr, func(id *mir.Identifier) {
				if id.TargetVersion == 0 {
					if seen, ok := lst[id.TargetName]; ok && seen != 0 {
						id.SetTarget(mir.Variable{Name: id.TargetName, Version: seen})
						progress = true
					}
				}
			})

			if v := instr.Var(); v.Name != "" {
				lst[v.Name] = v.Version
			}
		}

		return progress
	}
}
