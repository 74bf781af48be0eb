package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// balancedParens builds a tiny PDA accepting balanced parentheses over
// {'(' , ')'}. "bal" is the only accept state (stack holds nothing but the
// bottom marker); "unbal" means at least one '(' is still open; "afterClose"
// is a transient state used to peek at what a ')' exposed beneath the '('
// it just popped, since a single step only examines the symbol it pops.
func balancedParens() *PushProgram {
	const bottom = '#'
	p := NewPushProgram(bottom, Epsilon)
	p.AddState("bal", true)
	p.AddState("unbal", false)
	p.AddState("afterClose", false)
	p.SetStart("bal")

	p.AddTransition("bal", '(', bottom, "unbal", []rune{bottom, '('})
	p.AddTransition("unbal", '(', '(', "unbal", []rune{'(', '('})
	p.AddTransition("unbal", ')', '(', "afterClose", nil)
	p.AddTransition("afterClose", Epsilon, bottom, "bal", []rune{bottom})
	p.AddTransition("afterClose", Epsilon, '(', "unbal", []rune{'('})

	return p
}

func Test_PDA_BalancedParens(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		accepted bool
	}{
		{name: "empty", input: "", accepted: true},
		{name: "single pair", input: "()", accepted: true},
		{name: "nested", input: "(())", accepted: true},
		{name: "sequential", input: "()()", accepted: true},
		{name: "unbalanced close", input: ")", accepted: false},
		{name: "unbalanced open", input: "(", accepted: false},
		{name: "mismatched nesting", input: "(()", accepted: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := balancedParens()
			ctx := p.NewPDAContext()
			result := ctx.Run([]rune(tc.input))

			assert.Equalf(t, tc.accepted, result.Consumed && result.Accepted, "input %q", tc.input)
		})
	}
}

func Test_PDA_Reset_ReturnsToInitialConfiguration(t *testing.T) {
	assert := assert.New(t)
	p := balancedParens()
	ctx := p.NewPDAContext()

	ctx.Run([]rune("((("))
	assert.False(ctx.Accepted())

	ctx.Reset()
	result := ctx.Run([]rune("()"))
	assert.True(result.Consumed)
	assert.True(result.Accepted)
}

func Test_PDA_Result_DistinguishesConsumedFromAccepted(t *testing.T) {
	// A run that exhausts the stack mid-input must report Consumed=false,
	// distinct from a run that consumes everything but lands off an accept
	// state.
	assert := assert.New(t)
	p := balancedParens()
	ctx := p.NewPDAContext()

	result := ctx.Run([]rune(")"))
	assert.False(result.Consumed)
	assert.False(result.Accepted)

	ctx.Reset()
	result = ctx.Run([]rune("("))
	assert.True(result.Consumed)
	assert.False(result.Accepted)
}
