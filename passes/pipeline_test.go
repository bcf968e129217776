package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boson/machines"
	"boson/mir"
)

func number(name string, value int64) *mir.Number {
	n := &mir.Number{Value: value}
	n.Var().Name = name
	return n
}

func copyOf(dst, src string) *mir.Identifier {
	id := &mir.Identifier{TargetName: src}
	id.Var().Name = dst
	return id
}

func readOf(name string) *mir.Identifier {
	return &mir.Identifier{TargetName: name}
}

func call(name string, args ...mir.Instruction) *mir.FunctionCall {
	return &mir.FunctionCall{Name: name, Positional: args}
}

func noMachines() machines.PerMachine[machines.Info] {
	return machines.NewPerMachine(machines.Info{}, machines.Info{}, machines.Info{})
}

// TestS1CopyPropagation covers spec.md's S1 scenario.
func TestS1CopyPropagation(t *testing.T) {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		copyOf("y", "x"),
		call("message", readOf("y")),
	}

	RunPipeline(b, noMachines())

	require.Len(t, b.Instrs, 3)
	fc, ok := b.Instrs[2].(*mir.FunctionCall)
	require.True(t, ok)
	require.Len(t, fc.Positional, 1)
	arg, ok := fc.Positional[0].(*mir.Identifier)
	require.True(t, ok)
	assert.Equal(t, mir.Variable{Name: "x", Version: 1}, arg.Target())
}

// TestS2BranchPruningWithPhi covers spec.md's S2 scenario.
func TestS2BranchPruningWithPhi(t *testing.T) {
	entry := mir.NewBlock()
	trueBlk := mir.NewBlock()
	falseBlk := mir.NewBlock()
	join := mir.NewBlock()

	trueBlk.Instrs = []mir.Instruction{number("x", 9)}
	falseBlk.Instrs = []mir.Instruction{number("x", 10)}
	join.Instrs = []mir.Instruction{copyOf("y", "x"), call("message", readOf("y"))}

	entry.SetCondition(&mir.Boolean{Value: true}, trueBlk, falseBlk, join)
	trueBlk.SetNext(join)
	falseBlk.SetNext(join)

	RunPipeline(entry, noMachines())

	// branch pruning + block joining folds trueBlk into entry, so entry's
	// own instruction stream now carries the surviving Number(9).
	var numberInstr *mir.Number
	for _, instr := range entry.Instrs {
		if n, ok := instr.(*mir.Number); ok {
			numberInstr = n
		}
	}
	require.NotNil(t, numberInstr)
	assert.Equal(t, "x", numberInstr.Var().Name)
	assert.EqualValues(t, 2, numberInstr.Var().Version)

	require.Equal(t, entry, join.Parents[0])
	require.Len(t, join.Parents, 1)

	require.Len(t, join.Instrs, 3)
	fixedUp, ok := join.Instrs[0].(*mir.Identifier)
	require.True(t, ok)
	assert.Equal(t, "x", fixedUp.Var().Name)
	assert.EqualValues(t, 3, fixedUp.Var().Version)
	assert.Equal(t, mir.Variable{Name: "x", Version: 2}, fixedUp.Target())

	yDef, ok := join.Instrs[1].(*mir.Identifier)
	require.True(t, ok)
	assert.Equal(t, "y", yDef.Var().Name)
	assert.EqualValues(t, 1, yDef.Var().Version)
	assert.Equal(t, mir.Variable{Name: "x", Version: 2}, yDef.Target())

	fc, ok := join.Instrs[2].(*mir.FunctionCall)
	require.True(t, ok)
	arg, ok := fc.Positional[0].(*mir.Identifier)
	require.True(t, ok)
	assert.Equal(t, mir.Variable{Name: "x", Version: 2}, arg.Target())
}

// TestS3ThreeStepCopyChain covers spec.md's S3 scenario.
func TestS3ThreeStepCopyChain(t *testing.T) {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		copyOf("y", "x"),
		copyOf("z", "y"),
		call("message", readOf("z")),
	}

	RunPipeline(b, noMachines())

	fc := b.Instrs[3].(*mir.FunctionCall)
	arg := fc.Positional[0].(*mir.Identifier)
	assert.Equal(t, mir.Variable{Name: "x", Version: 1}, arg.Target())
}

// TestS4Redefinition covers spec.md's S4 scenario.
func TestS4Redefinition(t *testing.T) {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		number("x", 10),
		copyOf("y", "x"),
		call("message", readOf("y")),
	}

	RunPipeline(b, noMachines())

	fc := b.Instrs[3].(*mir.FunctionCall)
	arg := fc.Positional[0].(*mir.Identifier)
	assert.Equal(t, mir.Variable{Name: "x", Version: 2}, arg.Target())
}

// TestS5MachineLoweringInCall covers spec.md's S5 scenario.
func TestS5MachineLoweringInCall(t *testing.T) {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		call("foo", &mir.FunctionCall{Name: "host_machine.endian"}),
	}

	pm := machines.NewPerMachine(machines.Info{}, machines.Info{Endianness: machines.Little}, machines.Info{})
	RunPipeline(b, pm)

	require.Len(t, b.Instrs, 1)
	fc := b.Instrs[0].(*mir.FunctionCall)
	require.Len(t, fc.Positional, 1)
	lit, ok := fc.Positional[0].(*mir.String)
	require.True(t, ok)
	assert.Equal(t, "little", lit.Value)
}

// TestS6MachineLoweringInCondition covers spec.md's S6 scenario.
func TestS6MachineLoweringInCondition(t *testing.T) {
	entry := mir.NewBlock()
	body := mir.NewBlock()
	join := mir.NewBlock()

	body.Instrs = []mir.Instruction{number("x", 2)}
	entry.SetCondition(&mir.FunctionCall{Name: "host_machine.cpu_family"}, body, join, join)
	body.SetNext(join)

	pm := machines.NewPerMachine(machines.Info{}, machines.Info{CPUFamily: "x86_64"}, machines.Info{})
	RunPipeline(entry, pm)

	var found *mir.Number
	for _, instr := range entry.Instrs {
		if n, ok := instr.(*mir.Number); ok {
			found = n
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "x", found.Var().Name)
	assert.Equal(t, int64(2), found.Value)
}

// TestInconsistentMachineInfoPanics covers spec §7's InconsistentMachineInfo
// error kind: querying a field the supplied Info doesn't carry is fatal.
func TestInconsistentMachineInfoPanics(t *testing.T) {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		call("foo", &mir.FunctionCall{Name: "host_machine.subsystem"}),
	}

	assert.Panics(t, func() {
		RunPipeline(b, noMachines())
	})
}
