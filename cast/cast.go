// Package cast converts raw text tokens from delimited records into typed
// values.
//
// It is the typing layer of a row-oriented text ingestion pipeline: callers
// supply a column name (for diagnostics), a raw token, a target
// [types.Type], and an [Options] bundle, and receive either a typed value or
// a precise failure. Casting is a pure function of its arguments: there is
// no I/O, no shared mutable state, and no ambient configuration, so a
// single Options value may be used from any number of goroutines.
package cast

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theory/csvcast/cast/types"
)

var (
	// ErrCast wraps all errors returned by the cast package.
	ErrCast = errors.New("cast")

	// ErrNotNullable errors report a null candidate cast to a field that
	// forbids null.
	ErrNotNullable = fmt.Errorf("%w", ErrCast)

	// ErrNumberFormat errors report malformed numeric or boolean text.
	ErrNumberFormat = fmt.Errorf("%w", ErrCast)

	// ErrDateTimeFormat errors report temporal text that does not match the
	// expected pattern.
	ErrDateTimeFormat = fmt.Errorf("%w", ErrCast)
)

// Options configures casting behavior. The zero value is valid: not
// nullable, empty values are not null candidates, an empty null marker,
// default date and timestamp patterns, and en-US numeric conventions.
type Options struct {
	// Nullable permits a null result for null candidates. When false, a
	// true null token or an empty token forced to null candidacy is an
	// error.
	Nullable bool

	// TreatEmptyValuesAsNulls forces the empty string to null candidacy
	// regardless of NullValue.
	TreatEmptyValuesAsNulls bool

	// NullValue is the text marker compared against the raw token for null
	// candidacy.
	NullValue string

	// DateFormat overrides the pattern used to parse Date and Timestamp
	// values. Patterns use the yyyy, yy, MM, dd, HH, hh, mm, and ss fields
	// with literal punctuation, e.g. "dd/MM/yyyy hh:mm". When empty, Date
	// values use "yyyy-MM-dd" and Timestamp values "yyyy-MM-dd HH:mm:ss".
	DateFormat string

	// Locale selects the numeric conventions used to parse Float, Double,
	// and Decimal text. The zero value uses "." for the decimal point and
	// "," for the grouping separator.
	Locale Locale
}

// To converts raw into a value of the target type typ. A nil raw is the
// null token, distinct from a pointer to the empty string. The column name
// appears only in diagnostics.
//
// The result is one of int8, int16, int32, int64, float32, float64, bool,
// [decimal.Decimal], [*types.Date], [*types.Timestamp], string, or untyped
// nil for the null result. Errors wrap [ErrNotNullable], [ErrNumberFormat],
// or [ErrDateTimeFormat].
func To(raw *string, column string, typ types.Type, opts *Options) (any, error) {
	if opts == nil {
		opts = &Options{}
	}

	isNull, err := resolveNull(raw, column, opts)
	if isNull || err != nil {
		return nil, err
	}

	text := *raw
	switch typ.Kind() {
	case types.KindByte:
		val, err := strconv.ParseInt(text, 10, 8)
		if err != nil {
			return nil, numberError(text)
		}
		return int8(val), nil
	case types.KindShort:
		val, err := strconv.ParseInt(text, 10, 16)
		if err != nil {
			return nil, numberError(text)
		}
		return int16(val), nil
	case types.KindInt:
		val, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, numberError(text)
		}
		return int32(val), nil
	case types.KindLong:
		val, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, numberError(text)
		}
		return val, nil
	case types.KindFloat:
		val, err := parseFloat(text, 32, opts.Locale)
		if err != nil {
			return nil, err
		}
		return float32(val), nil
	case types.KindDouble:
		return parseFloat(text, 64, opts.Locale)
	case types.KindDecimal:
		return parseDecimal(text, opts.Locale)
	case types.KindBoolean:
		return parseBool(text)
	case types.KindDate:
		return parseDate(text, opts)
	case types.KindTimestamp:
		return parseTimestamp(text, opts)
	case types.KindString:
		return text, nil
	}

	// Should only happen if a new types.Kind is not added to the switch
	// statement above.
	return nil, fmt.Errorf("%w: unknown target type %v", ErrCast, typ)
}
