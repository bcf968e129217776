package mir

// ForEachIdentifier walks instr and every instruction nested inside its
// Array/Dict/FunctionCall arguments, invoking fn on each Identifier found
// (including instr itself, if it is one). It never replaces a slot's
// concrete type; callers that need that use RewriteInstruction instead.
// This is what usage-numbering and constant folding use to rewrite an
// identifier's target in place.
func ForEachIdentifier(instr Instruction, fn func(*Identifier)) {
	switch v := instr.(type) {
	case *Identifier:
		fn(v)
	case *Array:
		for _, e := range v.Elems {
			ForEachIdentifier(e, fn)
		}
	case *Dict:
		for _, e := range v.Entries {
			ForEachIdentifier(e.Value, fn)
		}
	case *FunctionCall:
		for _, p := range v.Positional {
			ForEachIdentifier(p, fn)
		}
		for _, kw := range v.Keyword {
			ForEachIdentifier(kw.Value, fn)
		}
	}
}

// RewriteInstruction walks instr top-down, replacing every matching
// slot (instr itself, or any instruction nested inside Array/Dict/
// FunctionCall arguments) that replace reports a replacement for. replace
// is tried on instr before its children; if it matches, RewriteInstruction
// does not recurse into the replacement. It returns the (possibly new)
// instruction and whether anything changed anywhere in the tree. Used by
// machine lowering, which replaces whole FunctionCall nodes with literals.
func RewriteInstruction(instr Instruction, replace func(Instruction) (Instruction, bool)) (Instruction, bool) {
	if instr == nil {
		return instr, false
	}

	if repl, ok := replace(instr); ok {
		return repl, true
	}

	changed := false

	switch v := instr.(type) {
	case *Array:
		for i, e := range v.Elems {
			if newE, ch := RewriteInstruction(e, replace); ch {
				v.Elems[i] = newE
				changed = true
			}
		}
	case *Dict:
		for i, e := range v.Entries {
			if newV, ch := RewriteInstruction(e.Value, replace); ch {
				v.Entries[i].Value = newV
				changed = true
			}
		}
	case *FunctionCall:
		for i, p := range v.Positional {
			if newP, ch := RewriteInstruction(p, replace); ch {
				v.Positional[i] = newP
				changed = true
			}
		}
		for i, kw := range v.Keyword {
			if newV, ch := RewriteInstruction(kw.Value, replace); ch {
				v.Keyword[i].Value = newV
				changed = true
			}
		}
	}

	return instr, changed
}
