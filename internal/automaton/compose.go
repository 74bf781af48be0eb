package automaton

import "github.com/dekarrin/gorex/internal/util"

// importResult records where an imported operand's start state and accept
// states ended up after being copied into a composition result under fresh
// names.
type importResult struct {
	start  string
	accept util.Set[string]
}

// importProgram deep-copies every state and transition of src into dest,
// drawing fresh names from gen for each one. This is the alias-renaming
// machinery of §4.1: rather than renaming only on collision, every
// composition renames both operands unconditionally, which trivially
// satisfies the "every state name in the result is unique" invariant and
// keeps the rename bookkeeping in one place. See DESIGN.md for the
// rationale.
func importProgram(dest *Program, src *Program, gen *nameGenerator) importResult {
	remap := make(map[string]string, len(src.states))
	for _, oldName := range src.StateNames() {
		newName := gen.next()
		remap[oldName] = newName
		dest.addState(newName)
	}

	for _, oldName := range src.StateNames() {
		st := src.states[oldName]
		for symbol, dests := range st.transitions {
			for oldDest := range dests {
				dest.addTransition(remap[oldName], symbol, remap[oldDest])
			}
		}
	}

	accept := util.Set[string]{}
	for name := range src.accept {
		accept.Add(remap[name])
	}

	return importResult{start: remap[src.start], accept: accept}
}

// Symbol builds the primitive single-symbol automaton of §4.2: start s0,
// accept s1, one transition on the given symbol.
func Symbol(symbol rune) *Program {
	p := newProgram()
	p.addState("s0")
	p.addState("s1")
	p.addTransition("s0", symbol, "s1")
	p.start = "s0"
	p.accept = util.NewSet("s1")
	return p
}

// Collation builds the collation automaton of §4.2 for the inclusive
// character range [lo, hi]: start c0, accept c1, one transition for every
// character in the range. A range where lo > hi adds no transitions, so the
// resulting automaton accepts nothing.
func Collation(lo, hi rune) *Program {
	p := newProgram()
	p.addState("c0")
	p.addState("c1")
	for r := lo; r <= hi; r++ {
		p.addTransition("c0", r, "c1")
	}
	p.start = "c0"
	p.accept = util.NewSet("c1")
	return p
}

// Union builds the Thompson alternation fragment of §4.2: a fresh start
// state ε-transitions to each operand's (renamed) start; a fresh accept
// state receives ε-transitions from each operand's (renamed) accept states.
func Union(a, b *Program) *Program {
	gen := newNameGenerator("s")
	dest := newProgram()

	ra := importProgram(dest, a, gen)
	rb := importProgram(dest, b, gen)

	start := gen.next()
	dest.addState(start)
	accept := gen.next()
	dest.addState(accept)

	dest.addTransition(start, Epsilon, ra.start)
	dest.addTransition(start, Epsilon, rb.start)
	for name := range ra.accept {
		dest.addTransition(name, Epsilon, accept)
	}
	for name := range rb.accept {
		dest.addTransition(name, Epsilon, accept)
	}

	dest.start = start
	dest.accept = util.NewSet(accept)
	return dest
}

// Concatenation builds the Thompson concatenation fragment of §4.2: every
// renamed accept of a gets an ε-transition to the renamed start of b. The
// result's start is a's start and its accept set is b's accept set.
func Concatenation(a, b *Program) *Program {
	gen := newNameGenerator("s")
	dest := newProgram()

	ra := importProgram(dest, a, gen)
	rb := importProgram(dest, b, gen)

	for name := range ra.accept {
		dest.addTransition(name, Epsilon, rb.start)
	}

	dest.start = ra.start
	dest.accept = rb.accept
	return dest
}

// Kleene builds the Kleene closure fragment of §4.2: a fresh start and
// accept, with ε-transitions for zero matches (start->accept), entry
// (start->a's start), and repetition (a's accepts -> a's start and ->
// accept).
func Kleene(a *Program) *Program {
	gen := newNameGenerator("s")
	dest := newProgram()

	ra := importProgram(dest, a, gen)

	start := gen.next()
	dest.addState(start)
	accept := gen.next()
	dest.addState(accept)

	dest.addTransition(start, Epsilon, ra.start)
	dest.addTransition(start, Epsilon, accept)
	for name := range ra.accept {
		dest.addTransition(name, Epsilon, ra.start)
		dest.addTransition(name, Epsilon, accept)
	}

	dest.start = start
	dest.accept = util.NewSet(accept)
	return dest
}

// Optional builds the `?` fragment: a fresh start ε-shortcuts directly to a
// fresh accept (the zero-match branch) in parallel with an ε-transition into
// a's start, whose accepts ε-transition to the same fresh accept. This is
// the spec's resolution of the Open Question around QuestionMark's
// semantics over a non-character operand (§9): an ε-shortcut in parallel
// with the operand, rather than the original's `start · end + item`.
func Optional(a *Program) *Program {
	gen := newNameGenerator("s")
	dest := newProgram()

	ra := importProgram(dest, a, gen)

	start := gen.next()
	dest.addState(start)
	accept := gen.next()
	dest.addState(accept)

	dest.addTransition(start, Epsilon, ra.start)
	dest.addTransition(start, Epsilon, accept)
	for name := range ra.accept {
		dest.addTransition(name, Epsilon, accept)
	}

	dest.start = start
	dest.accept = util.NewSet(accept)
	return dest
}

// DeepCopy produces an independent Program with freshly named but
// isomorphic states — used by KleenePlus, which is defined as A · A* built
// from two independent copies of A's fragment so that the repetition loop
// of the Kleene half does not alias the first, mandatory, traversal.
func DeepCopy(a *Program) *Program {
	gen := newNameGenerator("d")
	dest := newProgram()

	ra := importProgram(dest, a, gen)
	dest.start = ra.start
	dest.accept = ra.accept
	return dest
}
