package cast

import "fmt"

// resolveNull applies the null policy to raw before any type-specific
// parsing runs. It reports isNull when the result is the null variant. A
// token is a null candidate when it is the null token itself (nil), when
// its text equals the NullValue marker, or when it is empty and
// TreatEmptyValuesAsNulls is set.
//
// A candidate matching only the NullValue marker does not fail for a
// non-nullable field; it falls through to the normal type-specific parse,
// so a String column keeps the marker text literally and a numeric column
// surfaces its usual format error. A true null token or a forced-empty
// candidate never degrades that way.
func resolveNull(raw *string, column string, opts *Options) (isNull bool, err error) {
	isNullToken := raw == nil
	matchesMarker := !isNullToken && *raw == opts.NullValue
	emptyAsNull := !isNullToken && *raw == "" && opts.TreatEmptyValuesAsNulls

	if !isNullToken && !matchesMarker && !emptyAsNull {
		return false, nil
	}
	if opts.Nullable {
		return true, nil
	}
	if matchesMarker && !emptyAsNull {
		return false, nil
	}
	return false, fmt.Errorf(
		"%w: null value found but field %s is not nullable",
		ErrNotNullable, column,
	)
}
