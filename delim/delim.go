// Package delim resolves delimiter configuration tokens into the single
// characters they denote.
//
// Delimiters arrive from configuration as text, so a tab delimiter is
// written "\t" and arbitrary characters may be written as "\uNNNN"-style
// code points. Resolution is independent of row casting; it runs once while
// configuring a reader, never per value.
package delim

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDelimiter wraps errors returned by the delim package.
var ErrDelimiter = errors.New("delimiter")

const backslash = '\\'

// Resolve interprets token as a single delimiter character. A one-character
// token resolves to itself. The two-character escapes \t, \r, \b, \f, \",
// and \' resolve to the characters they name, and \uNNNN (four hex digits)
// resolves to that Unicode code point. Any other multi-character token is
// an error.
func Resolve(token string) (rune, error) {
	runes := []rune(token)
	if len(runes) == 1 {
		return runes[0], nil
	}
	if len(runes) == 0 || runes[0] != backslash {
		return 0, fmt.Errorf(
			"%w: Delimiter cannot be more than one character: %s",
			ErrDelimiter, token,
		)
	}

	if len(runes) == 2 {
		// An escape sequence.
		switch runes[1] {
		case 't':
			return '\t', nil
		case 'r':
			return '\r', nil
		case 'b':
			return '\b', nil
		case 'f':
			return '\f', nil
		case '"':
			return '"', nil
		case '\'':
			return '\'', nil
		}
	}

	// \uNNNN code point.
	const unicodeEscapeLen = len(`\u0000`)
	if len(runes) == unicodeEscapeLen && runes[1] == 'u' {
		if cp, err := strconv.ParseUint(string(runes[2:]), 16, 32); err == nil {
			return rune(cp), nil
		}
	}

	return 0, fmt.Errorf(
		"%w: Unsupported special character for delimiter: %s",
		ErrDelimiter, token,
	)
}
