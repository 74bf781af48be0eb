// Package regexast defines the operator tree that the regex parser builds
// and that the execution engine's compiler walks to produce an ε-NFA (§3,
// §4.4 of the specification). The source language this was translated from
// models operators as a class hierarchy with a dynamically checked operand
// type; here it is a closed, tagged sum of node kinds, with operand-kind
// restrictions enforced once at construction rather than by runtime
// isinstance checks scattered through execute().
package regexast

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/automaton"
	"github.com/dekarrin/gorex/rgxerrors"
)

// Operator is satisfied by every node kind in the tree. Execute produces the
// ε-NFA fragment the node describes, per §4.4.
type Operator interface {
	Execute() *automaton.Program
	String() string
}

// asOperator takes an operand of the kind accepted wherever the spec's
// operators take "a string or already defined operator" (python's
// {str, Operator} item-type set): a bare literal character not yet wrapped in
// a Single node, or any Operator. It normalizes either into an Operator,
// wrapping a bare rune in a Single.
func asOperator(operatorName string, item any) (Operator, error) {
	switch v := item.(type) {
	case rune:
		return NewSingle(v), nil
	case Operator:
		return v, nil
	default:
		return nil, rgxerrors.NewOperandTypeError(operatorName, fmt.Sprintf("%T", item))
	}
}

// Single is a leaf node matching exactly one literal character.
type Single struct {
	Char rune
}

// NewSingle builds a Single node for the given character. Every rune is a
// valid operand, so this never fails.
func NewSingle(char rune) *Single {
	return &Single{Char: char}
}

func (s *Single) Execute() *automaton.Program {
	return automaton.Symbol(s.Char)
}

func (s *Single) String() string {
	return fmt.Sprintf("Single(%q)", s.Char)
}
