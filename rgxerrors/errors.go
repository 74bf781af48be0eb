// Package rgxerrors defines the error types produced by the regex compiler
// and execution engine. There are three kinds, mirroring the three failure
// modes a compiled regex can hit: a malformed pattern, an operator given the
// wrong kind of operand, and a symbol entered that is outside the compiled
// automaton's alphabet.
package rgxerrors

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/util"
)

// ParseError is returned when a regex pattern cannot be compiled: unbalanced
// parentheses, a malformed collation range, or a group that still has more
// than one item left after reduction.
type ParseError struct {
	// Text is the offending sub-text that triggered the failure.
	Text string

	// Reason is a short human-readable description of what went wrong.
	Reason string

	wrapped error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error: %s: %q", e.Reason, e.Text)
}

// Unwrap gives the underlying error, if any, that caused this one.
func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// NewParseError builds a ParseError for the given offending text and reason.
func NewParseError(text, reason string) *ParseError {
	return &ParseError{Text: text, Reason: reason}
}

// WrapParseError builds a ParseError that wraps a lower-level cause, such as
// a ParseError raised while reducing a nested group.
func WrapParseError(cause error, text, reason string) *ParseError {
	return &ParseError{Text: text, Reason: reason, wrapped: cause}
}

// OperandTypeError is raised during operator-tree construction when an
// operator receives an operand whose kind is outside its declared set, e.g.
// a Collation operator given a sub-expression instead of a bare character.
type OperandTypeError struct {
	// Operator is the name of the operator that rejected the operand.
	Operator string

	// Operand is a descriptor of the rejected operand (its kind and, where
	// useful, its value).
	Operand string
}

func (e *OperandTypeError) Error() string {
	return fmt.Sprintf("%s: invalid operand type: %s", e.Operator, e.Operand)
}

// NewOperandTypeError builds an OperandTypeError for the named operator and
// operand descriptor.
func NewOperandTypeError(operator, operand string) *OperandTypeError {
	return &OperandTypeError{Operator: operator, Operand: operand}
}

// InvalidSymbolError is raised by Context.Enter when the given symbol is not
// a member of the automaton's input alphabet.
type InvalidSymbolError struct {
	// Symbol is the offending input.
	Symbol rune

	// Alphabet lists the symbols the automaton actually accepts, for
	// diagnostic purposes.
	Alphabet []rune
}

func (e *InvalidSymbolError) Error() string {
	if len(e.Alphabet) == 0 {
		return fmt.Sprintf("symbol %q is not in the automaton's input alphabet", e.Symbol)
	}
	quoted := make([]string, len(e.Alphabet))
	for i, r := range e.Alphabet {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("symbol %q is not in the automaton's input alphabet (valid: %s)", e.Symbol, util.MakeTextList(quoted))
}

// NewInvalidSymbolError builds an InvalidSymbolError for the given symbol
// and the alphabet it was checked against.
func NewInvalidSymbolError(symbol rune, alphabet []rune) *InvalidSymbolError {
	return &InvalidSymbolError{Symbol: symbol, Alphabet: alphabet}
}
