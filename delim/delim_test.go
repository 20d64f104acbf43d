package delim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSingleCharacters(t *testing.T) {
	t.Parallel()

	// Single characters resolve to themselves.
	for _, token := range []string{",", ";", "|", " ", "\t", "€", "💩"} {
		val, err := Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, []rune(token)[0], val)
	}
}

func TestResolveEscapes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		token string
		exp   rune
	}{
		{"tab", `\t`, '\t'},
		{"carriage_return", `\r`, '\r'},
		{"backspace", `\b`, '\b'},
		{"form_feed", `\f`, '\f'},
		{"double_quote", `\"`, '"'},
		{"single_quote", `\'`, '\''},
		{"nul", `\u0000`, rune(0)},
		{"unicode_tab", `\u0009`, '\t'},
		{"unicode_lower_hex", `\u20ac`, '€'},
		{"unicode_upper_hex", `\u20AC`, '€'},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			val, err := Resolve(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, val)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		token string
		err   string
	}{
		{
			name:  "two_chars",
			token: "ab",
			err:   "delimiter: Delimiter cannot be more than one character: ab",
		},
		{
			name:  "word",
			token: "comma",
			err:   "delimiter: Delimiter cannot be more than one character: comma",
		},
		{
			name:  "empty",
			token: "",
			err:   "delimiter: Delimiter cannot be more than one character: ",
		},
		{
			name:  "unsupported_escape",
			token: `\1`,
			err:   `delimiter: Unsupported special character for delimiter: \1`,
		},
		{
			name:  "newline_escape",
			token: `\n`,
			err:   `delimiter: Unsupported special character for delimiter: \n`,
		},
		{
			name:  "short_unicode",
			token: `\u00`,
			err:   `delimiter: Unsupported special character for delimiter: \u00`,
		},
		{
			name:  "long_unicode",
			token: `\u00000`,
			err:   `delimiter: Unsupported special character for delimiter: \u00000`,
		},
		{
			name:  "bad_hex",
			token: `\uzzzz`,
			err:   `delimiter: Unsupported special character for delimiter: \uzzzz`,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			val, err := Resolve(tc.token)
			require.Error(t, err)
			assert.Equal(t, rune(0), val)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrDelimiter)
		})
	}
}
