// Package types provides the target data types for delimited-text casting.
//
// Every column in an ingestion schema declares one of a closed set of type
// tags; the cast package dispatches on the tag to produce a Go value of the
// corresponding representation. Date and Timestamp values get dedicated
// types so that calendar dates and second-precision instants keep their
// semantics through row assembly and serialization.
package types

import (
	"errors"
	"fmt"
)

// Use golang.org/x/tools/cmd/stringer to generate the String method for
// Kind from its inline comments.

//go:generate stringer -linecomment -output kind_string.go -type Kind

// ErrType wraps errors returned by the types package.
var ErrType = errors.New("type")

// Kind identifies a target data type tag.
type Kind int

//revive:disable:exported
const (
	KindByte      Kind = iota // byte
	KindShort                 // short
	KindInt                   // int
	KindLong                  // long
	KindFloat                 // float
	KindDouble                // double
	KindBoolean               // boolean
	KindDecimal               // decimal
	KindDate                  // date
	KindTimestamp             // timestamp
	KindString                // string
)

// Type describes a target type: a Kind plus, for decimals, the declared
// precision and scale. Precision and scale are informational only; casting
// does not enforce them.
type Type struct {
	kind      Kind
	precision int
	scale     int
}

// Values for the scalar target types.
var (
	ByteType      = Type{kind: KindByte}
	ShortType     = Type{kind: KindShort}
	IntType       = Type{kind: KindInt}
	LongType      = Type{kind: KindLong}
	FloatType     = Type{kind: KindFloat}
	DoubleType    = Type{kind: KindDouble}
	BooleanType   = Type{kind: KindBoolean}
	DateType      = Type{kind: KindDate}
	TimestampType = Type{kind: KindTimestamp}
	StringType    = Type{kind: KindString}
)

// DecimalType returns the decimal target type with the given precision and
// scale.
func DecimalType(precision, scale int) Type {
	return Type{kind: KindDecimal, precision: precision, scale: scale}
}

// Kind returns the type tag.
func (t Type) Kind() Kind { return t.kind }

// Precision returns the declared decimal precision. Zero for other kinds.
func (t Type) Precision() int { return t.precision }

// Scale returns the declared decimal scale. Zero for other kinds.
func (t Type) Scale() int { return t.scale }

// String returns the type name, including precision and scale for decimals.
func (t Type) String() string {
	if t.kind == KindDecimal {
		return fmt.Sprintf("decimal(%d,%d)", t.precision, t.scale)
	}
	return t.kind.String()
}
