package cast

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale carries the numeric conventions used to interpret Float, Double,
// and Decimal text: the decimal point and the grouping (thousands)
// separator. The zero value uses en-US conventions.
type Locale struct {
	tag     language.Tag
	decimal rune
	group   rune
}

// numberConvention holds the separator pair for a supported language.
type numberConvention struct {
	decimal rune
	group   rune
}

// supported lists the languages with dedicated separator conventions,
// paired index-for-index with conventions. The first entry is the fallback
// for unrecognized tags.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.BrazilianPortuguese,
	language.Swedish,
	language.Finnish,
	language.Russian,
}

var conventions = []numberConvention{
	{decimal: '.', group: ','},      // en-US
	{decimal: ',', group: '.'},      // de
	{decimal: ',', group: '\u00a0'}, // fr
	{decimal: ',', group: '.'},      // es
	{decimal: ',', group: '.'},      // it
	{decimal: ',', group: '.'},      // nl
	{decimal: ',', group: '.'},      // pt-BR
	{decimal: ',', group: '\u00a0'}, // sv
	{decimal: ',', group: '\u00a0'}, // fi
	{decimal: ',', group: '\u00a0'}, // ru
}

var localeMatcher = language.NewMatcher(supported)

// NewLocale returns the Locale for tag. Unrecognized languages fall back to
// en-US conventions.
func NewLocale(tag language.Tag) Locale {
	_, idx, _ := localeMatcher.Match(tag)
	conv := conventions[idx]
	return Locale{tag: tag, decimal: conv.decimal, group: conv.group}
}

// Tag returns the language tag the Locale was built from. The zero Locale
// reports language.AmericanEnglish.
func (l Locale) Tag() language.Tag {
	if l.decimal == 0 {
		return language.AmericanEnglish
	}
	return l.tag
}

// DecimalPoint returns the character separating the integral and fractional
// parts of a number.
func (l Locale) DecimalPoint() rune {
	if l.decimal == 0 {
		return '.'
	}
	return l.decimal
}

// GroupSeparator returns the character grouping digits of the integral
// part.
func (l Locale) GroupSeparator() rune {
	if l.group == 0 {
		return ','
	}
	return l.group
}

// normalize strips the grouping separator from text and maps the locale's
// decimal point to "." so the standard parsers can read the result.
func (l Locale) normalize(text string) string {
	group, point := l.GroupSeparator(), l.DecimalPoint()
	if group == ',' && point == '.' && !strings.ContainsRune(text, ',') {
		return text
	}

	b := new(strings.Builder)
	b.Grow(len(text))
	for _, ch := range text {
		switch ch {
		case group:
			// Drop grouping separators.
		case point:
			b.WriteRune('.')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
