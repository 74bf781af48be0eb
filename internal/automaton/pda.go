package automaton

import "github.com/dekarrin/gorex/internal/util"

// pdaInput is the key a PushProgram's transitions are indexed by: an input
// symbol (or ε) paired with the stack symbol on top of the stack at the time
// of the transition, matching §3's Push state sub-variant.
type pdaInput struct {
	symbol rune
	top    rune
}

// pdaMove is the right-hand side of a push-state transition: the
// destination state plus the sequence of symbols to push, in order, onto
// the stack (an empty Push means "push nothing", i.e. ε, per §3).
type pdaMove struct {
	to   string
	push []rune
}

type pushState struct {
	name        string
	transitions map[pdaInput]pdaMove
}

func newPushState(name string) *pushState {
	return &pushState{name: name, transitions: map[pdaInput]pdaMove{}}
}

// PushProgram is the immutable half of a stack PDA: states, transitions
// keyed by (input, stack-top), a start state, and accept states. It shares
// the arena/identifier approach of Program but its State sub-variant is the
// Push variant of §3, so it is modeled as a distinct type rather than
// reusing basicState.
type PushProgram struct {
	states  map[string]*pushState
	start   string
	accept  util.Set[string]
	epsilon rune

	// bottom is the stack symbol pushed onto an empty stack at Reset.
	bottom rune
}

// NewPushProgram creates an empty PushProgram. Callers build it up with
// AddState and AddTransition before handing it to a Context via
// NewPDAContext.
func NewPushProgram(bottom rune, epsilon rune) *PushProgram {
	return &PushProgram{
		states:  map[string]*pushState{},
		accept:  util.Set[string]{},
		epsilon: epsilon,
		bottom:  bottom,
	}
}

// AddState registers a new push state.
func (p *PushProgram) AddState(name string, accepting bool) {
	if _, ok := p.states[name]; ok {
		panic("duplicate push state name: " + name)
	}
	p.states[name] = newPushState(name)
	if accepting {
		p.accept.Add(name)
	}
}

// SetStart designates the PDA's start state.
func (p *PushProgram) SetStart(name string) {
	p.start = name
}

// AddTransition registers a transition firing on (symbol, stackTop) from
// `from`, moving to `to` and pushing push (in order, first element pushed
// first so it ends up deepest). Use Epsilon for symbol for an ε-input move.
func (p *PushProgram) AddTransition(from string, symbol rune, stackTop rune, to string, push []rune) {
	src, ok := p.states[from]
	if !ok {
		panic("add transition from non-existent push state: " + from)
	}
	if _, ok := p.states[to]; !ok {
		panic("add transition to non-existent push state: " + to)
	}
	src.transitions[pdaInput{symbol: symbol, top: stackTop}] = pdaMove{to: to, push: push}
}

// PDAContext is the mutable execution state of a stack PDA run: current
// state, the symbol stack, and whether the run has failed. It implements
// the step algorithm of §4.6 and the driver of its final paragraph.
type PDAContext struct {
	prog    *PushProgram
	current string
	stack   util.Stack[rune]
	failed  bool
}

// NewPDAContext creates a context over prog, reset to its initial
// configuration (start state, single-symbol stack holding the bottom
// symbol).
func (p *PushProgram) NewPDAContext() *PDAContext {
	ctx := &PDAContext{prog: p}
	ctx.Reset()
	return ctx
}

// Reset restores the context to its start state and a stack containing only
// the bottom symbol.
func (c *PDAContext) Reset() {
	c.current = c.prog.start
	c.failed = false
	c.stack.Clear()
	c.stack.Push(c.prog.bottom)
}

// step implements §4.6's five-step algorithm for one input symbol. It
// returns whether the input symbol was consumed (true) or whether an
// ε-transition fired instead and the symbol still needs to be offered again
// (false).
func (c *PDAContext) step(v rune) (consumed bool) {
	if c.failed {
		return true
	}
	if c.stack.Len() == 0 {
		c.failed = true
		return true
	}

	top := c.stack.Pop()

	if move, ok := c.prog.states[c.current].transitions[pdaInput{symbol: c.prog.epsilon, top: top}]; ok {
		c.pushSequence(move.push)
		c.current = move.to
		return false
	}

	if move, ok := c.prog.states[c.current].transitions[pdaInput{symbol: v, top: top}]; ok {
		c.pushSequence(move.push)
		c.current = move.to
		return true
	}

	c.failed = true
	return true
}

// stepEpsilon tries to fire a single ε-move with no input symbol available.
// It reports whether a move fired.
func (c *PDAContext) stepEpsilon() bool {
	if c.stack.Len() == 0 {
		return false
	}
	top := c.stack.Pop()

	move, ok := c.prog.states[c.current].transitions[pdaInput{symbol: c.prog.epsilon, top: top}]
	if !ok {
		c.stack.Push(top)
		return false
	}

	c.pushSequence(move.push)
	c.current = move.to
	return true
}

func (c *PDAContext) pushSequence(push []rune) {
	// pushed in order given so that push[0] is pushed first and ends up
	// deepest, and push[len-1] is pushed last and ends up on top, matching
	// "push sequence" semantics: the sequence reads left to right as the
	// order symbols will be popped in reverse.
	for i := 0; i < len(push); i++ {
		if push[i] == c.prog.epsilon {
			continue
		}
		c.stack.Push(push[i])
	}
}

// Result is the outcome of driving a PDAContext over an input string: two
// independent booleans, matching the original source's finer-grained
// distinction (see SPEC_FULL.md §4.12) between "ran out of stack/moves
// mid-input" and "consumed everything but landed on a non-accept state".
type Result struct {
	Consumed bool
	Accepted bool
}

// Run drives the context over input left to right per §4.6's driver: feed
// symbols one at a time using step's consumed/not-consumed signal, then once
// input is exhausted keep firing ε-moves until an accept state is reached or
// no ε-move remains.
func (c *PDAContext) Run(input []rune) Result {
	i := 0
	for i < len(input) {
		if c.failed {
			return Result{Consumed: false, Accepted: false}
		}
		if c.step(input[i]) {
			i++
		}
	}

	allConsumed := !c.failed

	for !c.Accepted() && c.stepEpsilon() {
	}

	return Result{Consumed: allConsumed, Accepted: allConsumed && c.Accepted()}
}

// Accepted reports whether the context is currently in an accept state. It
// does not by itself imply overall acceptance of a run — see Run, which
// additionally requires that all input was consumed.
func (c *PDAContext) Accepted() bool {
	if c.failed {
		return false
	}
	return c.prog.accept.Has(c.current)
}
