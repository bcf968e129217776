package passes

import (
	"strings"

	"boson/machines"
	"boson/mir"
	"boson/report"
)

// MachineLower walks every instruction in a block, including nested ones
// inside Array/Dict/FunctionCall arguments and condition expressions,
// looking for a FunctionCall whose callee names a method on one of the
// three machine objects (e.g. "host_machine.cpu_family"). It replaces the
// call with the literal String carved from the corresponding machines.Info,
// preserving the call's own result Variable, per spec §4.10.
//
// A call naming a recognized machine but a field absent from that
// machine's Info is an InconsistentMachineInfo error: report.
// ReportInconsistentMachineInfo panics, so the pass never returns for that
// instruction and the enclosing pipeline run is aborted (see
// report.CatchErrors, which recovers and counts it).
func MachineLower(pm machines.PerMachine[machines.Info]) Pass {
	replace := func(instr mir.Instruction) (mir.Instruction, bool) {
		fc, ok := instr.(*mir.FunctionCall)
		if !ok {
			return instr, false
		}

		obj, method, ok := splitMachineCall(fc.Name)
		if !ok {
			return instr, false
		}

		info, ok := pm.Get(obj)
		if !ok {
			return instr, false
		}

		value, ok := info.Field(method)
		if !ok {
			report.ReportInconsistentMachineInfo(obj.String(), method)
			return instr, false
		}

		lit := &mir.String{Value: value}
		*lit.Var() = *fc.Var()
		return lit, true
	}

	return func(b *mir.BasicBlock) bool {
		progress := false

		for i, instr := range b.Instrs {
			if newInstr, changed := mir.RewriteInstruction(instr, replace); changed {
				b.Instrs[i] = newInstr
				progress = true
			}
		}

		if b.Succ.Kind == mir.SuccessorCondition && b.Succ.Condition != nil {
			if newCond, changed := mir.RewriteInstruction(b.Succ.Condition, replace); changed {
				b.Succ.Condition = newCond
				progress = true
			}
		}

		return progress
	}
}

// splitMachineCall recognizes a "<machine>.<method>" callee name and
// returns which machine object it names.
func splitMachineCall(name string) (obj machines.Machine, method string, ok bool) {
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		return 0, "", false
	}

	switch name[:dot] {
	case "build_machine":
		return machines.Build, name[dot+1:], true
	case "host_machine":
		return machines.Host, name[dot+1:], true
	case "target_machine":
		return machines.Target, name[dot+1:], true
	default:
		return 0, "", false
	}
}
