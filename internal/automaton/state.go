package automaton

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/util"
)

// Epsilon is the rune used internally to key ε-transitions in a state's
// transition table. The surface default of '$' (§6.1) is translated to this
// value by the automaton text-form parser FromText; callers of the automaton package
// directly always use Epsilon rather than a particular literal.
const Epsilon rune = 0

// basicState is the NFA sub-variant of the spec's State type (§3): its
// transitions are keyed by a single input symbol and each maps to the set of
// successor state names within the same Program.
type basicState struct {
	name        string
	transitions map[rune]util.Set[string]
}

func newBasicState(name string) *basicState {
	return &basicState{
		name:        name,
		transitions: map[rune]util.Set[string]{},
	}
}

// addTransition adds target to the successor set for symbol, as described by
// §4.1's add_transition operation.
func (s *basicState) addTransition(symbol rune, target string) {
	dests, ok := s.transitions[symbol]
	if !ok {
		dests = util.Set[string]{}
		s.transitions[symbol] = dests
	}
	dests.Add(target)
}

// forward returns the successor set for symbol, or an empty set if there is
// none, per §4.1's forward operation.
func (s *basicState) forward(symbol rune) util.Set[string] {
	dests, ok := s.transitions[symbol]
	if !ok {
		return util.Set[string]{}
	}
	return dests
}

func (s *basicState) copy(newName string) *basicState {
	cp := newBasicState(newName)
	for symbol, dests := range s.transitions {
		cp.transitions[symbol] = dests.Copy()
	}
	return cp
}

func (s *basicState) String() string {
	return fmt.Sprintf("state(%s)", s.name)
}
