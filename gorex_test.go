package gorex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/gorex"
)

func Test_Compile_and_Check(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		accept  []string
		reject  []string
	}{
		{
			name:    "alternation",
			pattern: "a|b",
			accept:  []string{"a", "b"},
			reject:  []string{"", "ab", "c"},
		},
		{
			name:    "kleene star",
			pattern: "a*",
			accept:  []string{"", "a", "aaaa"},
			reject:  []string{"b", "aab"},
		},
		{
			name:    "kleene plus",
			pattern: "a+",
			accept:  []string{"a", "aaaa"},
			reject:  []string{"", "b"},
		},
		{
			name:    "question mark",
			pattern: "ab?",
			accept:  []string{"a", "ab"},
			reject:  []string{"abb", "b"},
		},
		{
			name:    "grouped plus",
			pattern: "(ab)+",
			accept:  []string{"ab", "abab", "ababab"},
			reject:  []string{"a", "aba", ""},
		},
		{
			name:    "collation star",
			pattern: "[a-c]*",
			accept:  []string{"", "a", "abcabc"},
			reject:  []string{"d", "abcd"},
		},
		{
			name:    "escaped metacharacter",
			pattern: `a\*b`,
			accept:  []string{"a*b"},
			reject:  []string{"ab", "a**b"},
		},
		{
			name:    "single-char collation",
			pattern: "[a-a]",
			accept:  []string{"a"},
			reject:  []string{"b", ""},
		},
		{
			name:    "nested alternation and concatenation",
			pattern: "(a|b)c",
			accept:  []string{"ac", "bc"},
			reject:  []string{"c", "abc"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			re, err := gorex.Compile(tc.pattern, "TEST")
			if !assert.NoError(err) {
				return
			}

			for _, s := range tc.accept {
				assert.Truef(re.Check(s), "expected %q to be accepted by %q", s, tc.pattern)
			}
			for _, s := range tc.reject {
				assert.Falsef(re.Check(s), "expected %q to be rejected by %q", s, tc.pattern)
			}
		})
	}
}

func Test_Compile_ParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
	}{
		{name: "unbalanced open paren", pattern: "(a"},
		{name: "unbalanced close paren", pattern: "a)"},
		{name: "collation missing dash", pattern: "[ab]"},
		{name: "unterminated collation", pattern: "[a-b"},
		{name: "dangling escape", pattern: `a\`},
		{name: "unary with no operand", pattern: "*"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gorex.Compile(tc.pattern, "TEST")
			assert.Error(t, err)
		})
	}
}

func Test_Regex_Identity(t *testing.T) {
	assert := assert.New(t)

	a, err := gorex.Compile("a", "A")
	assert.NoError(err)
	b, err := gorex.Compile("a", "A")
	assert.NoError(err)

	assert.NotEmpty(a.ID())
	assert.NotEmpty(b.ID())
	assert.NotEqual(a.ID(), b.ID(), "two compiles of the same pattern should still get distinct identities")
	assert.Equal("A", a.Name())
	assert.Equal("a", a.Pattern())
}

func Test_Regex_ValidCharacters(t *testing.T) {
	re, err := gorex.Compile("[a-c]d", "TEST")
	assert.NoError(t, err)

	chars := re.ValidCharacters()
	assert.ElementsMatch(t, []rune{'a', 'b', 'c', 'd'}, chars)
}

func Test_Regex_Check_RejectsOutOfAlphabetCharacters(t *testing.T) {
	re, err := gorex.Compile("a", "TEST")
	assert.NoError(t, err)

	assert.False(t, re.Check("z"))
	assert.False(t, re.Check("az"))
}

func Test_Regex_Check_ConcurrentUse(t *testing.T) {
	re, err := gorex.Compile("(a|b)*c", "TEST")
	assert.NoError(t, err)

	done := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- true }()
			for j := 0; j < 100; j++ {
				assert.True(t, re.Check("ababc"))
				assert.False(t, re.Check("ababd"))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
