package regexparse

import "github.com/dekarrin/gorex/rgxerrors"

// extractBrackets is Pass 1 of §4.3: it walks text left to right and turns
// every unescaped parenthesized group into a nested []any, leaving
// everything else as individual runes. An escaped \( or \) is left as two
// literal rune items (the backslash and the paren) rather than opening or
// closing a group, so that Pass 2's escape-resolution sub-pass can turn it
// into a literal Single later.
func extractBrackets(text []rune) ([]any, error) {
	var result []any

	parenDepth := 0
	openIndex := -1
	closeIndex := -1

	for i, c := range text {
		switch c {
		case '(':
			if i > 0 && text[i-1] == '\\' {
				if openIndex < 0 {
					result = append(result, c)
				}
				continue
			}
			parenDepth++
			if openIndex == -1 {
				openIndex = i
			}
		case ')':
			if i > 0 && text[i-1] == '\\' {
				if openIndex < 0 {
					result = append(result, c)
				}
				continue
			}
			parenDepth--
			if parenDepth < 0 {
				return nil, rgxerrors.NewParseError(string(text), "unbalanced parentheses")
			}
			closeIndex = i
		default:
			if openIndex < 0 {
				result = append(result, c)
			}
		}

		if parenDepth == 0 && openIndex >= 0 && closeIndex >= 0 {
			inner, err := extractBrackets(text[openIndex+1 : closeIndex])
			if err != nil {
				return nil, err
			}
			result = append(result, inner)
			openIndex = -1
			closeIndex = -1
		}
	}

	if parenDepth != 0 {
		return nil, rgxerrors.NewParseError(string(text), "unbalanced parentheses")
	}

	return result, nil
}
