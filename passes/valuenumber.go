package passes

import "boson/mir"

// ValueNumbering assigns SSA versions to every instruction result that has a
// name but hasn't been numbered yet. It shares vt with InsertPhis, since
// phis draw fresh versions from the same per-name counter as ordinary
// definitions. The returned pass is idempotent once every named result has a
// non-zero version: only version-0 (undefined placeholder) results are
// touched, which is also what makes repeated sweeps converge instead of
// re-incrementing forever.
func ValueNumbering(vt ValueTable) Pass {
	return func(b *mir.BasicBlock) bool {
		progress := false

		for _, instr := range b.Instrs {
			v := instr.Var()
			if v.Name != "" && v.Version == 0 {
				v.Version = vt.Next(v.Name)
				progress = true
			}
		}

		return progress
	}
}
