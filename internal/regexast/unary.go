package regexast

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/automaton"
)

// KleeneStar matches zero or more repetitions of its operand.
type KleeneStar struct {
	Item Operator
}

// NewKleeneStar builds a KleeneStar node. item may be a bare character or an
// already-built Operator.
func NewKleeneStar(item any) (*KleeneStar, error) {
	op, err := asOperator("KleeneStar", item)
	if err != nil {
		return nil, err
	}
	return &KleeneStar{Item: op}, nil
}

func (k *KleeneStar) Execute() *automaton.Program {
	return automaton.Kleene(k.Item.Execute())
}

func (k *KleeneStar) String() string {
	return fmt.Sprintf("KleeneStar(%s*)", k.Item)
}

// KleenePlus matches one or more repetitions of its operand. It is defined,
// per §4.4, as the operand followed by a Kleene star of an independent copy
// of itself (A · A*), so the mandatory first traversal and the repetition
// loop never alias the same states.
type KleenePlus struct {
	Item Operator
}

// NewKleenePlus builds a KleenePlus node. item may be a bare character or an
// already-built Operator.
func NewKleenePlus(item any) (*KleenePlus, error) {
	op, err := asOperator("KleenePlus", item)
	if err != nil {
		return nil, err
	}
	return &KleenePlus{Item: op}, nil
}

func (k *KleenePlus) Execute() *automaton.Program {
	first := automaton.DeepCopy(k.Item.Execute())
	rest := automaton.Kleene(k.Item.Execute())
	return automaton.Concatenation(first, rest)
}

func (k *KleenePlus) String() string {
	return fmt.Sprintf("KleenePlus(%s+)", k.Item)
}

// QuestionMark matches zero or one repetitions of its operand.
type QuestionMark struct {
	Item Operator
}

// NewQuestionMark builds a QuestionMark node. item may be a bare character
// or an already-built Operator.
func NewQuestionMark(item any) (*QuestionMark, error) {
	op, err := asOperator("QuestionMark", item)
	if err != nil {
		return nil, err
	}
	return &QuestionMark{Item: op}, nil
}

func (q *QuestionMark) Execute() *automaton.Program {
	return automaton.Optional(q.Item.Execute())
}

func (q *QuestionMark) String() string {
	return fmt.Sprintf("QuestionMark(%s?)", q.Item)
}
