package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocaleZeroValue(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	var loc Locale
	a.Equal('.', loc.DecimalPoint())
	a.Equal(',', loc.GroupSeparator())
	a.Equal(language.AmericanEnglish, loc.Tag())
	a.Equal("1000.01", loc.normalize("1,000.01"))
	a.Equal("158058049.001", loc.normalize("158,058,049.001"))
	a.Equal("42", loc.normalize("42"))
}

func TestNewLocale(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		tag     language.Tag
		decimal rune
		group   rune
		raw     string
		exp     string
	}{
		{"en_us", language.AmericanEnglish, '.', ',', "1,000.01", "1000.01"},
		{"english", language.English, '.', ',', "1,000.01", "1000.01"},
		{"german", language.German, ',', '.', "1.000,01", "1000.01"},
		{"french", language.French, ',', '\u00a0', "1\u00a0000,01", "1000.01"},
		{"italian", language.Italian, ',', '.', "1.000", "1000"},
		{"russian", language.Russian, ',', '\u00a0', "1\u00a0000,5", "1000.5"},
		{"unrecognized", language.Zulu, '.', ',', "1,000", "1000"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			loc := NewLocale(tc.tag)
			a.Equal(tc.decimal, loc.DecimalPoint())
			a.Equal(tc.group, loc.GroupSeparator())
			a.Equal(tc.tag, loc.Tag())
			a.Equal(tc.exp, loc.normalize(tc.raw))
		})
	}
}

func TestLocaleNormalizePassThrough(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Text without separators is returned unchanged under the default
	// conventions.
	loc := NewLocale(language.AmericanEnglish)
	a.Equal("12345.678", loc.normalize("12345.678"))
	a.Equal("", loc.normalize(""))

	// Malformed text passes through for the numeric parser to reject.
	de := NewLocale(language.German)
	a.Equal("abc", de.normalize("abc"))
}
