package regexast

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/automaton"
	"github.com/dekarrin/gorex/rgxerrors"
)

// Collation matches any single character in the inclusive range [Lo, Hi].
// Both operands must be bare characters; this is checked once here rather
// than inside Execute, so a malformed collation is reported at tree-build
// time (§3's invariant that Collation "requires two single characters").
type Collation struct {
	Lo, Hi rune
}

// NewCollation builds a Collation node from two operands, which must each be
// a bare rune (not a sub-expression). Returns an OperandTypeError otherwise.
func NewCollation(first, second any) (*Collation, error) {
	lo, ok := first.(rune)
	if !ok {
		return nil, rgxerrors.NewOperandTypeError("Collation", fmt.Sprintf("%T", first))
	}
	hi, ok := second.(rune)
	if !ok {
		return nil, rgxerrors.NewOperandTypeError("Collation", fmt.Sprintf("%T", second))
	}
	return &Collation{Lo: lo, Hi: hi}, nil
}

func (c *Collation) Execute() *automaton.Program {
	return automaton.Collation(c.Lo, c.Hi)
}

func (c *Collation) String() string {
	return fmt.Sprintf("Collation(%q-%q)", c.Lo, c.Hi)
}

// Alternation matches whatever either of its two operands matches.
type Alternation struct {
	Left, Right Operator
}

// NewAlternation builds an Alternation node. Each operand may be a bare
// character or an already-built Operator.
func NewAlternation(first, second any) (*Alternation, error) {
	left, err := asOperator("Alternation", first)
	if err != nil {
		return nil, err
	}
	right, err := asOperator("Alternation", second)
	if err != nil {
		return nil, err
	}
	return &Alternation{Left: left, Right: right}, nil
}

func (a *Alternation) Execute() *automaton.Program {
	return automaton.Union(a.Left.Execute(), a.Right.Execute())
}

func (a *Alternation) String() string {
	return fmt.Sprintf("Alternation(%s|%s)", a.Left, a.Right)
}

// Concatenation matches its left operand immediately followed by its right.
type Concatenation struct {
	Left, Right Operator
}

// NewConcatenation builds a Concatenation node. Each operand may be a bare
// character or an already-built Operator.
func NewConcatenation(first, second any) (*Concatenation, error) {
	left, err := asOperator("Concatenation", first)
	if err != nil {
		return nil, err
	}
	right, err := asOperator("Concatenation", second)
	if err != nil {
		return nil, err
	}
	return &Concatenation{Left: left, Right: right}, nil
}

func (c *Concatenation) Execute() *automaton.Program {
	return automaton.Concatenation(c.Left.Execute(), c.Right.Execute())
}

func (c *Concatenation) String() string {
	return fmt.Sprintf("Concatenation(%s%s)", c.Left, c.Right)
}
