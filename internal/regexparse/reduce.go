package regexparse

import (
	"fmt"

	"github.com/dekarrin/gorex/internal/regexast"
	"github.com/dekarrin/gorex/rgxerrors"
)

// altSymbol is the only textual binary-operator symbol recognized by Pass 2;
// concatenation has no symbol of its own, it is implied by adjacency.
const altSymbol = '|'

func isAltSymbol(item any) bool {
	r, ok := item.(rune)
	return ok && r == altSymbol
}

// reduceGroup is Pass 2 of §4.3: it runs the sub-passes over a single group
// (one nesting level's worth of items, as produced by extractBrackets) in
// the fixed order escape resolution, collation, sublist recursion, unary
// operators, concatenation, alternation, clean-up, then requires exactly one
// item to remain.
func reduceGroup(group []any) (regexast.Operator, error) {
	group, err := escapeCharacters(group)
	if err != nil {
		return nil, err
	}

	group, err = collate(group)
	if err != nil {
		return nil, err
	}

	group, err = resolveSublists(group)
	if err != nil {
		return nil, err
	}

	group, err = toUnaryOperators(group)
	if err != nil {
		return nil, err
	}

	group, err = concatenate(group)
	if err != nil {
		return nil, err
	}

	group, err = alternate(group)
	if err != nil {
		return nil, err
	}

	group = cleanup(group)

	if len(group) == 0 {
		return nil, rgxerrors.NewParseError("", "empty pattern")
	}
	if len(group) > 1 {
		return nil, rgxerrors.NewParseError(fmt.Sprint(group), "parsing failed")
	}

	op, ok := group[0].(regexast.Operator)
	if !ok {
		return nil, rgxerrors.NewOperandTypeError("reduceGroup", fmt.Sprintf("%T", group[0]))
	}
	return op, nil
}

// escapeCharacters is sub-pass 1: every \c pair becomes a single literal
// Single(c), consuming both items.
func escapeCharacters(group []any) ([]any, error) {
	out := make([]any, 0, len(group))

	i := 0
	for i < len(group) {
		r, isRune := group[i].(rune)
		if !isRune || r != '\\' {
			out = append(out, group[i])
			i++
			continue
		}

		if i+1 >= len(group) {
			return nil, rgxerrors.NewParseError(`\`, "dangling escape character")
		}
		target, ok := group[i+1].(rune)
		if !ok {
			return nil, rgxerrors.NewOperandTypeError("escape", fmt.Sprintf("%T", group[i+1]))
		}
		out = append(out, regexast.NewSingle(target))
		i += 2
	}

	return out, nil
}

// collate is sub-pass 2: it finds the pattern [ X - Y ] and replaces it with
// a Collation(X, Y) node. The closing bracket is located first so that a
// bracket missing its dash is reported as "missing -" rather than
// misdiagnosed as unterminated.
func collate(group []any) ([]any, error) {
	out := make([]any, 0, len(group))

	i := 0
	for i < len(group) {
		r, isRune := group[i].(rune)
		if !isRune || r != '[' {
			out = append(out, group[i])
			i++
			continue
		}

		closeIdx := -1
		for j := i + 1; j < len(group); j++ {
			if rc, ok := group[j].(rune); ok && rc == ']' {
				closeIdx = j
				break
			}
		}
		if closeIdx == -1 {
			return nil, rgxerrors.NewParseError("[", "unterminated collation bracket")
		}

		inner := group[i+1 : closeIdx]
		if len(inner) != 3 {
			return nil, rgxerrors.NewParseError("[]", `collation missing "-" character`)
		}
		dash, dashOK := inner[1].(rune)
		if !dashOK || dash != '-' {
			return nil, rgxerrors.NewParseError("[]", `collation missing "-" character`)
		}
		lo, loOK := inner[0].(rune)
		hi, hiOK := inner[2].(rune)
		if !loOK || !hiOK {
			return nil, rgxerrors.NewOperandTypeError("Collation", "non-character collation bound")
		}

		node, err := regexast.NewCollation(lo, hi)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
		i = closeIdx + 1
	}

	return out, nil
}

// resolveSublists is sub-pass 3: every nested group (produced by a
// parenthesized sub-expression in Pass 1) is recursively reduced to a single
// Operator.
func resolveSublists(group []any) ([]any, error) {
	out := make([]any, len(group))
	for i, item := range group {
		sub, ok := item.([]any)
		if !ok {
			out[i] = item
			continue
		}
		op, err := reduceGroup(sub)
		if err != nil {
			return nil, err
		}
		out[i] = op
	}
	return out, nil
}

// toUnaryOperators is sub-pass 4: left to right, each *, +, or ? wraps the
// item immediately before it.
func toUnaryOperators(group []any) ([]any, error) {
	out := make([]any, 0, len(group))

	for _, item := range group {
		r, isRune := item.(rune)
		if !isRune || (r != '*' && r != '+' && r != '?') {
			out = append(out, item)
			continue
		}

		if len(out) == 0 {
			return nil, rgxerrors.NewParseError(string(r), "unary operator has no preceding operand")
		}
		operand := out[len(out)-1]

		var wrapped regexast.Operator
		var err error
		switch r {
		case '*':
			wrapped, err = regexast.NewKleeneStar(operand)
		case '+':
			wrapped, err = regexast.NewKleenePlus(operand)
		case '?':
			wrapped, err = regexast.NewQuestionMark(operand)
		}
		if err != nil {
			return nil, err
		}
		out[len(out)-1] = wrapped
	}

	return out, nil
}

// concatenate is sub-pass 5: left to right, every adjacent pair where
// neither element is the alternation symbol is combined into a
// Concatenation.
func concatenate(group []any) ([]any, error) {
	out := make([]any, 0, len(group))

	for _, item := range group {
		if len(out) > 0 && !isAltSymbol(out[len(out)-1]) && !isAltSymbol(item) {
			node, err := regexast.NewConcatenation(out[len(out)-1], item)
			if err != nil {
				return nil, err
			}
			out[len(out)-1] = node
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// alternate is sub-pass 6: left to right, every left | right triple is
// combined into an Alternation.
func alternate(group []any) ([]any, error) {
	out := make([]any, 0, len(group))

	for _, item := range group {
		if !isAltSymbol(item) && len(out) >= 2 && isAltSymbol(out[len(out)-1]) {
			right := item
			left := out[len(out)-2]
			node, err := regexast.NewAlternation(left, right)
			if err != nil {
				return nil, err
			}
			out = out[:len(out)-2]
			out = append(out, node)
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

// cleanup is sub-pass 7: any residual bare rune (a literal character that
// never took part in an operator) becomes a Single.
func cleanup(group []any) []any {
	out := make([]any, len(group))
	for i, item := range group {
		if r, ok := item.(rune); ok {
			out[i] = regexast.NewSingle(r)
			continue
		}
		out[i] = item
	}
	return out
}
