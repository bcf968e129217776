package main

import "boson/mir"

// fixtures builds the initial (unnumbered) MIR for each of spec.md §8's
// end-to-end scenarios, standing in for the AST-lowering front end that
// would otherwise produce this graph from a parsed build-definition script.
// That front end is explicitly out of this compiler's scope.
var fixtures = map[string]func() *mir.BasicBlock{
	"S1": fixtureS1,
	"S2": fixtureS2,
	"S3": fixtureS3,
	"S4": fixtureS4,
	"S5": fixtureS5,
	"S6": fixtureS6,
}

// number returns an unnumbered Number literal assigned to name.
func number(name string, value int64) *mir.Number {
	n := &mir.Number{Value: value}
	n.Var().Name = name
	return n
}

// copyOf returns an unnumbered Identifier that assigns dst := src.
func copyOf(dst, src string) *mir.Identifier {
	id := &mir.Identifier{TargetName: src}
	id.Var().Name = dst
	return id
}

// readOf returns an unresolved, unnamed Identifier reading name, the shape
// a use (e.g. a call argument) takes before usage-numbering.
func readOf(name string) *mir.Identifier {
	return &mir.Identifier{TargetName: name}
}

// call returns an unnamed FunctionCall to name with the given positional
// arguments.
func call(name string, args ...mir.Instruction) *mir.FunctionCall {
	return &mir.FunctionCall{Name: name, Positional: args}
}

// fixtureS1 builds `x = 9; y = x; message(y)`.
func fixtureS1() *mir.BasicBlock {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		copyOf("y", "x"),
		call("message", readOf("y")),
	}
	return b
}

// fixtureS2 builds `if true: x = 9 else: x = 10 end; y = x; message(y)`.
func fixtureS2() *mir.BasicBlock {
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

	return entry
}

// fixtureS3 builds `x=9; y=x; z=y; message(z)`.
func fixtureS3() *mir.BasicBlock {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		copyOf("y", "x"),
		copyOf("z", "y"),
		call("message", readOf("z")),
	}
	return b
}

// fixtureS4 builds `x=9; x=10; y=x; message(y)`.
func fixtureS4() *mir.BasicBlock {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		number("x", 9),
		number("x", 10),
		copyOf("y", "x"),
		call("message", readOf("y")),
	}
	return b
}

// fixtureS5 builds `foo(host_machine.endian())`.
func fixtureS5() *mir.BasicBlock {
	b := mir.NewBlock()
	b.Instrs = []mir.Instruction{
		call("foo", &mir.FunctionCall{Name: "host_machine.endian"}),
	}
	return b
}

// fixtureS6 builds `if host_machine.cpu_family(): x = 2 endif`, a
// single-armed conditional whose false edge goes straight to the join.
func fixtureS6() *mir.BasicBlock {
	entry := mir.NewBlock()
	body := mir.NewBlock()
	join := mir.NewBlock()

	body.Instrs = []mir.Instruction{number("x", 2)}

	entry.SetCondition(&mir.FunctionCall{Name: "host_machine.cpu_family"}, body, join, join)
	body.SetNext(join)

	return entry
}
