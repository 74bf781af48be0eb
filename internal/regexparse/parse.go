// Package regexparse implements the three-pass textual regex parser of
// §4.3: bracket extraction followed by a fixed-order sequence of per-group
// reductions, producing a regexast.Operator tree ready for compilation to an
// ε-NFA. It does not tokenize or lex; it operates directly on the rune
// stream of the pattern text, matching the "no external lexer" framing of
// §1 and §9.
package regexparse

import "github.com/dekarrin/gorex/internal/regexast"

// Parse reduces a regex pattern string to its operator tree. Reserved
// keywords, comments, and whitespace-significance are left entirely to any
// caller that wants to lex before handing text here; this parser treats
// every rune as either a literal character or one of the metacharacters
// ( ) [ ] - | * + ? \.
func Parse(pattern string) (regexast.Operator, error) {
	items, err := extractBrackets([]rune(pattern))
	if err != nil {
		return nil, err
	}
	return reduceGroup(items)
}
