// Package schema parses column declarations for delimited-text ingestion.
//
// A declaration is a comma-separated list of name:type pairs, where the
// type may be any of the names recognized by [ParseType] and a trailing "?"
// marks the column nullable:
//
//	id:long, name:string, price:decimal(10,2)?, born:date
package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/smasher164/xid"
	"golang.org/x/exp/maps"

	"github.com/theory/csvcast/cast/types"
)

// ErrSchema wraps errors returned by the schema package.
var ErrSchema = errors.New("schema")

// Column declares a single ingestion column.
type Column struct {
	// Name identifies the column in diagnostics.
	Name string
	// Type is the target type tokens in this column cast to.
	Type types.Type
	// Nullable permits null values in this column.
	Nullable bool
}

// String returns the declaration form of c.
func (c Column) String() string {
	if c.Nullable {
		return fmt.Sprintf("%v:%v?", c.Name, c.Type)
	}
	return fmt.Sprintf("%v:%v", c.Name, c.Type)
}

// typesByName maps recognized type names to target types. Decimal is
// handled separately so it can take precision arguments.
var typesByName = map[string]types.Type{
	"byte":      types.ByteType,
	"tinyint":   types.ByteType,
	"short":     types.ShortType,
	"smallint":  types.ShortType,
	"int":       types.IntType,
	"integer":   types.IntType,
	"long":      types.LongType,
	"bigint":    types.LongType,
	"float":     types.FloatType,
	"double":    types.DoubleType,
	"boolean":   types.BooleanType,
	"bool":      types.BooleanType,
	"string":    types.StringType,
	"text":      types.StringType,
	"varchar":   types.StringType,
	"date":      types.DateType,
	"datetime":  types.TimestampType,
	"timestamp": types.TimestampType,
}

// defaultDecimalPrecision applies to decimal declarations without
// arguments.
const defaultDecimalPrecision = 10

// ParseType parses a type name into a target type. Names are
// case-insensitive. Decimal types accept optional precision and scale
// arguments: "decimal", "decimal(p)", or "decimal(p,s)", with "numeric"
// as a synonym.
func ParseType(name string) (types.Type, error) {
	base, args, hasArgs := strings.Cut(strings.TrimSpace(name), "(")
	base = strings.ToLower(strings.TrimSpace(base))

	if base == "decimal" || base == "numeric" {
		if !hasArgs {
			return types.DecimalType(defaultDecimalPrecision, 0), nil
		}
		return parseDecimalArgs(name, args)
	}
	if hasArgs {
		return types.Type{}, fmt.Errorf(
			"%w: type %v does not take arguments: %v", ErrSchema, base, name,
		)
	}

	typ, ok := typesByName[base]
	if !ok {
		known := maps.Keys(typesByName)
		slices.Sort(known)
		return types.Type{}, fmt.Errorf(
			"%w: unknown type %q (known types: %v, decimal(p,s))",
			ErrSchema, name, strings.Join(known, ", "),
		)
	}
	return typ, nil
}

// parseDecimalArgs parses the "p)" or "p,s)" tail of a decimal declaration.
// Scale must not exceed precision; both checks guard the declaration only,
// since casting never enforces them.
func parseDecimalArgs(name, args string) (types.Type, error) {
	args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return types.Type{}, fmt.Errorf(
			"%w: missing closing parenthesis: %v", ErrSchema, name,
		)
	}

	precText, scaleText, hasScale := strings.Cut(args, ",")
	precision, err := strconv.Atoi(strings.TrimSpace(precText))
	if err != nil || precision < 1 {
		return types.Type{}, fmt.Errorf(
			"%w: invalid decimal precision in %v", ErrSchema, name,
		)
	}

	scale := 0
	if hasScale {
		scale, err = strconv.Atoi(strings.TrimSpace(scaleText))
		if err != nil || scale < 0 || scale > precision {
			return types.Type{}, fmt.Errorf(
				"%w: invalid decimal scale in %v", ErrSchema, name,
			)
		}
	}
	return types.DecimalType(precision, scale), nil
}

// Parse parses a comma-separated list of name:type column declarations.
// Column names must be identifiers and must not repeat.
func Parse(decl string) ([]Column, error) {
	fields := splitFields(decl)
	cols := make([]Column, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		name, typeName, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf(
				"%w: missing type in column declaration %q",
				ErrSchema, strings.TrimSpace(field),
			)
		}

		name = strings.TrimSpace(name)
		if !validIdent(name) {
			return nil, fmt.Errorf("%w: invalid column name %q", ErrSchema, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrSchema, name)
		}
		seen[name] = struct{}{}

		typeName = strings.TrimSpace(typeName)
		nullable := false
		if trimmed, ok := strings.CutSuffix(typeName, "?"); ok {
			nullable = true
			typeName = strings.TrimSpace(trimmed)
		}

		typ, err := ParseType(typeName)
		if err != nil {
			return nil, err
		}
		cols = append(cols, Column{Name: name, Type: typ, Nullable: nullable})
	}

	return cols, nil
}

// splitFields splits decl on commas outside parentheses, keeping
// decimal(10,2) arguments intact.
func splitFields(decl string) []string {
	var fields []string
	depth, start := 0, 0
	for i, ch := range decl {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				fields = append(fields, decl[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, decl[start:])
}

// validIdent reports whether name is a legal column identifier: an XID
// start character or underscore followed by XID continue characters.
func validIdent(name string) bool {
	for i, ch := range name {
		if i == 0 {
			if ch != '_' && !xid.Start(ch) {
				return false
			}
			continue
		}
		if !xid.Continue(ch) {
			return false
		}
	}
	return name != ""
}
