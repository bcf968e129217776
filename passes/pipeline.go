package passes

import (
	"boson/machines"
	"boson/mir"
	"boson/report"
)

// Result carries the shared tables a pipeline run built up, so a caller
// (tests, the CLI) can inspect them without re-running the passes.
type Result struct {
	Values       ValueTable
	Sweeps       int
	Replacements ReplacementTable
}

// RunPipeline drives the full two-batch fixed-point schedule described in
// spec.md §2's data flow: (value-numbering → phi-insertion) to fixed
// point, then (branch-pruning → block-joining → phi-fixup →
// usage-numbering → constant-folding → machine-lowering) to fixed point.
// The split is a correctness constraint, not a style choice: phi insertion
// must observe every branch's definitions before branch pruning can delete
// one of them, and phi fixup must run only after pruning has settled.
//
// Within the first batch, value-numbering and phi-insertion each run to
// their own fixed point in alternation rather than interleaved block-by-
// block in a single walk. Interleaving them lets phi-insertion visit a join
// block before the block walker has reached one of its parents in the same
// sweep (a join is often reachable through more than one path), so it would
// compute a phi against that parent's still-unnumbered, all-zero versions;
// once that parent is numbered on a later sweep the candidate phi no longer
// matches the stale one already inserted, and a second phi for the same
// name accumulates instead of replacing the first. Letting value-numbering
// settle completely first removes the staleness phi-insertion would
// otherwise observe.
//
// Panics raised during the run (report.ReportInconsistentMachineInfo from
// MachineLower, report.ReportMalformedIR from the final ValidateIR call)
// propagate to the caller; wrap a
// call to RunPipeline in a deferred report.CatchErrors if you want them
// turned into reported errors instead of a crash.
func RunPipeline(root *mir.BasicBlock, pm machines.PerMachine[machines.Info]) Result {
	vt := ValueTable{}
	lst := LastSeenTable{}
	rt := ReplacementTable{}

	sweeps := 0

	report.BeginPhase("Value numbering")
	for {
		numbered := Walk(root, ValueNumbering(vt))
		phied := Walk(root, InsertPhis(vt))
		if numbered {
			sweeps++
		}
		if phied {
			sweeps++
		}
		if !numbered && !phied {
			break
		}
	}
	report.EndPhase(true)

	report.BeginPhase("Branch pruning")
	for Walk(root,
		BranchPruning,
		BlockJoining,
		FixupPhis,
		UsageNumbering(lst),
		ConstantFolding(rt),
		MachineLower(pm),
	) {
		sweeps++
	}
	report.EndPhase(true)

	ValidateIR(root)

	return Result{Values: vt, Sweeps: sweeps, Replacements: rt}
}
