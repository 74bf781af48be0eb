// Package automaton implements the state-graph primitives, ε-NFA value
// type, and execution engines (§3, §4.1, §4.2, §4.5, §4.6 of the regex
// specification this module realizes). A Program is the immutable half of a
// compiled automaton — states, transitions, start state, accept states — and
// a Context is the mutable half that tracks the current set of active
// states during a run. Splitting the two is what lets one compiled Program
// be driven concurrently from many goroutines, each with its own Context
// (§5's strategy 1).
package automaton

import (
	"sort"

	"github.com/dekarrin/gorex/internal/util"
	"github.com/dekarrin/gorex/rgxerrors"
)

// Program is the immutable ε-NFA value type described in §4.2: an owned
// state graph with a distinguished start state and a set of accept states.
// A Program is never mutated after it is built by the parser/operator-tree
// pipeline or by a composition operation; all per-run state lives in a
// Context obtained via NewContext.
type Program struct {
	states  map[string]*basicState
	inputs  util.Set[rune]
	start   string
	accept  util.Set[string]
	epsilon rune
}

func newProgram() *Program {
	return &Program{
		states:  map[string]*basicState{},
		inputs:  util.Set[rune]{},
		accept:  util.Set[string]{},
		epsilon: Epsilon,
	}
}

// addState registers a new, transition-less state under name. It panics if
// the name is already in use; callers are expected to draw names from a
// nameGenerator scoped to the Program under construction, which guarantees
// uniqueness.
func (p *Program) addState(name string) {
	if _, ok := p.states[name]; ok {
		panic("duplicate state name: " + name)
	}
	p.states[name] = newBasicState(name)
}

// addTransition adds a transition from `from` to `to` on symbol. Both states
// must already exist in the Program. Passing Epsilon as the symbol adds an
// ε-transition and does not affect the Program's input alphabet.
func (p *Program) addTransition(from string, symbol rune, to string) {
	src, ok := p.states[from]
	if !ok {
		panic("add transition from non-existent state: " + from)
	}
	if _, ok := p.states[to]; !ok {
		panic("add transition to non-existent state: " + to)
	}
	src.addTransition(symbol, to)
	if symbol != Epsilon {
		p.inputs.Add(symbol)
	}
}

// Inputs returns the symbols (excluding ε) that this Program's transitions
// are keyed on — the alphabet exposed to callers as valid_characters (§6.3).
func (p *Program) Inputs() []rune {
	out := p.inputs.Elements()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasInput reports whether symbol is a member of the Program's alphabet.
func (p *Program) HasInput(symbol rune) bool {
	return p.inputs.Has(symbol)
}

// StateNames returns the names of every state in the Program, sorted for
// deterministic output (used by DOT rendering and tests).
func (p *Program) StateNames() []string {
	return util.OrderedKeys(p.states)
}

// Start returns the name of the Program's start state.
func (p *Program) Start() string {
	return p.start
}

// Accepts returns whether name is one of the Program's accept states.
func (p *Program) Accepts(name string) bool {
	return p.accept.Has(name)
}

// AcceptNames returns the names of the Program's accept states.
func (p *Program) AcceptNames() []string {
	return util.OrderedKeys(p.accept)
}

// Transitions returns, for a given state and symbol, the sorted names of
// states directly reachable on that symbol (no ε-closure applied). It is
// used by DOT rendering and by tests that want to inspect the raw graph.
func (p *Program) Transitions(state string, symbol rune) []string {
	st, ok := p.states[state]
	if !ok {
		return nil
	}
	return util.OrderedKeys(st.forward(symbol))
}

// epsilonClosure computes the ε-closure of a set of state names: the
// smallest superset closed under forward(_, ε). A fresh accumulator is
// always allocated here rather than threaded through as a mutable default
// argument, which is the exact footgun the source language's
// default-mutable-argument idiom invites (§9 "Default-argument aliasing").
func (p *Program) epsilonClosure(from util.Set[string]) util.Set[string] {
	closure := util.Set[string]{}

	var worklist util.Stack[string]
	for name := range from {
		worklist.Push(name)
	}

	for worklist.Len() > 0 {
		name := worklist.Pop()
		if closure.Has(name) {
			continue
		}
		closure.Add(name)

		st, ok := p.states[name]
		if !ok {
			continue
		}
		for next := range st.forward(Epsilon) {
			if !closure.Has(next) {
				worklist.Push(next)
			}
		}
	}

	return closure
}

// NewContext creates a fresh execution context over this Program, reset to
// its initial configuration. Multiple Contexts may be driven concurrently
// over the same Program; the Program itself is never mutated after
// construction.
func (p *Program) NewContext() *Context {
	ctx := &Context{prog: p}
	ctx.Reset()
	return ctx
}

// Context is the mutable half of a running automaton: the current set of
// active states (§4.5). It is not safe for concurrent use by multiple
// goroutines; obtain a separate Context per goroutine from the same Program
// instead.
type Context struct {
	prog    *Program
	current util.Set[string]
}

// Reset returns the context to ε-closure({start}). Reset is idempotent:
// calling it twice in a row leaves the current set identical to calling it
// once.
func (c *Context) Reset() {
	c.current = c.prog.epsilonClosure(util.NewSet(c.prog.start))
}

// Enter advances the context by one input symbol (§4.5's enter operation).
// It fails fast with an InvalidSymbolError if symbol is not a member of the
// Program's alphabet; on success, the current set becomes the ε-closure of
// every state reachable from the current set on symbol. If no state is
// reachable, the current set becomes empty (a dead configuration) but Enter
// does not itself report this as an error — Accepted will simply report
// false, further calls to Enter with valid symbols leave the set empty, and
// only an invalid symbol makes Enter return an error.
func (c *Context) Enter(symbol rune) error {
	if !c.prog.HasInput(symbol) {
		return rgxerrors.NewInvalidSymbolError(symbol, c.prog.Inputs())
	}

	next := util.Set[string]{}
	for name := range c.current {
		st, ok := c.prog.states[name]
		if !ok {
			continue
		}
		next.AddAll(st.forward(symbol))
	}

	c.current = c.prog.epsilonClosure(next)
	return nil
}

// Accepted reports whether the current set intersects the Program's accept
// states.
func (c *Context) Accepted() bool {
	for name := range c.current {
		if c.prog.accept.Has(name) {
			return true
		}
	}
	return false
}

// CurrentStates returns the names of the states presently active, sorted,
// mostly useful for debugging and tests.
func (c *Context) CurrentStates() []string {
	names := make([]string, 0, len(c.current))
	for name := range c.current {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
