package cast

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// numberError reports malformed numeric text in the canonical "For input
// string" shape expected by ingestion diagnostics.
func numberError(text string) error {
	return fmt.Errorf("%w: For input string: %q", ErrNumberFormat, text)
}

// parseFloat parses floating-point text under loc's conventions: the
// grouping separator is stripped and the locale decimal point mapped to "."
// before the parse.
func parseFloat(text string, bitSize int, loc Locale) (float64, error) {
	val, err := strconv.ParseFloat(loc.normalize(text), bitSize)
	if err != nil {
		return 0, numberError(text)
	}
	return val, nil
}

// parseDecimal constructs the exact arbitrary-precision decimal denoted by
// text under loc's conventions. No rounding or scale coercion is applied.
func parseDecimal(text string, loc Locale) (decimal.Decimal, error) {
	val, err := decimal.NewFromString(loc.normalize(text))
	if err != nil {
		return decimal.Decimal{}, numberError(text)
	}
	return val, nil
}

// parseBool accepts exactly the literals "true" and "false".
func parseBool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, numberError(text)
}
