package regexparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func check(t *testing.T, pattern, s string) bool {
	t.Helper()
	op, err := Parse(pattern)
	if !assert.NoError(t, err, "pattern %q failed to parse", pattern) {
		return false
	}
	ctx := op.Execute().NewContext()
	for _, c := range s {
		if err := ctx.Enter(c); err != nil {
			return false
		}
	}
	return ctx.Accepted()
}

func Test_Parse_Scenarios(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		accept  []string
		reject  []string
	}{
		{name: "literal", pattern: "a", accept: []string{"a"}, reject: []string{"", "b", "aa"}},
		{name: "concatenation", pattern: "ab", accept: []string{"ab"}, reject: []string{"a", "b", "ba"}},
		{name: "alternation", pattern: "a|b", accept: []string{"a", "b"}, reject: []string{"", "ab"}},
		{name: "grouping overrides precedence", pattern: "(a|b)c", accept: []string{"ac", "bc"}, reject: []string{"c", "abc"}},
		{name: "kleene star binds tighter than concatenation", pattern: "ab*", accept: []string{"a", "ab", "abbb"}, reject: []string{"b", "abc"}},
		{name: "kleene plus", pattern: "(ab)+", accept: []string{"ab", "abab"}, reject: []string{"", "a", "aba"}},
		{name: "question mark", pattern: "colou?r", accept: []string{"color", "colour"}, reject: []string{"colouur", "colr"}},
		{name: "collation range", pattern: "[a-c]", accept: []string{"a", "b", "c"}, reject: []string{"d", ""}},
		{name: "collation star", pattern: "[a-c]*", accept: []string{"", "abcabc"}, reject: []string{"abcd"}},
		{name: "nested groups", pattern: "((a|b)c)+", accept: []string{"ac", "acbc"}, reject: []string{"", "a", "accb"}},
		{name: "escaped metacharacters", pattern: `\(\)\[\]\|\*\+\?\\`, accept: []string{`()[]|*+?\`}, reject: []string{"", "()"}},
		{name: "escaped literal dot", pattern: `a\.b`, accept: []string{"a.b"}, reject: []string{"ab"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.accept {
				assert.Truef(t, check(t, tc.pattern, s), "expected %q to match %q", s, tc.pattern)
			}
			for _, s := range tc.reject {
				assert.Falsef(t, check(t, tc.pattern, s), "expected %q not to match %q", s, tc.pattern)
			}
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
	}{
		{name: "unbalanced open paren", pattern: "(ab"},
		{name: "unbalanced close paren", pattern: "ab)"},
		{name: "collation missing dash", pattern: "[ab]"},
		{name: "unterminated collation bracket", pattern: "[a-c"},
		{name: "dangling escape", pattern: `a\`},
		{name: "leading unary with no operand", pattern: "*ab"},
		{name: "leading alternation with no left operand", pattern: "|a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.pattern)
			assert.Error(t, err)
		})
	}
}

func Test_ExtractBrackets(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "flat text", text: "abc"},
		{name: "single group", text: "(abc)"},
		{name: "nested groups", text: "((a)(b))"},
		{name: "escaped parens are literal", text: `a\(b\)c`},
		{name: "unbalanced", text: "(abc", wantErr: true},
		{name: "extra close", text: "abc)", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := extractBrackets([]rune(tc.text))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
