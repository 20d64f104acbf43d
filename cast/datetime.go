package cast

import (
	"fmt"
	"strings"
	"time"

	"github.com/theory/csvcast/cast/types"
)

const (
	// defaultDateFormat is the pattern used to parse Date values when no
	// DateFormat option is set.
	defaultDateFormat = "yyyy-MM-dd"

	// defaultTimestampFormat is the pattern used to parse Timestamp values
	// when no DateFormat option is set.
	defaultTimestampFormat = "yyyy-MM-dd HH:mm:ss"
)

// layoutReplacer rewrites date pattern fields into the reference-time
// layout fields understood by the time package. Longer fields precede
// shorter fields sharing a prefix so that, e.g., yyyy is consumed before
// yy. Unrecognized characters pass through as literal text.
var layoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MMM", "Jan",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"hh", "03",
	"mm", "04",
	"ss", "05",
	"EEE", "Mon",
	"a", "PM",
)

// layout translates a date pattern into a time package layout.
func layout(pattern string) string {
	return layoutReplacer.Replace(pattern)
}

// timeError reports temporal text that does not match pattern.
func timeError(text, pattern string) error {
	return fmt.Errorf("%w: Cannot parse %q as %q", ErrDateTimeFormat, text, pattern)
}

// parseTimestamp parses text into an instant with second precision, in the
// local time zone unless the pattern carries zone information.
func parseTimestamp(text string, opts *Options) (*types.Timestamp, error) {
	pattern := opts.DateFormat
	if pattern == "" {
		pattern = defaultTimestampFormat
	}
	val, err := time.ParseInLocation(layout(pattern), text, time.Local)
	if err != nil || val.Nanosecond() != 0 {
		// The time package accepts fractional seconds after the seconds
		// element even when the layout omits them; a pattern without a
		// fraction field must not.
		return nil, timeError(text, pattern)
	}
	return types.NewTimestamp(val), nil
}

// parseDate parses text into a calendar date. With a custom pattern
// carrying time fields, the parsed point in time is truncated to the date
// it implies.
func parseDate(text string, opts *Options) (*types.Date, error) {
	pattern := opts.DateFormat
	if pattern == "" {
		pattern = defaultDateFormat
	}
	val, err := time.ParseInLocation(layout(pattern), text, time.Local)
	if err != nil || val.Nanosecond() != 0 {
		return nil, timeError(text, pattern)
	}
	return types.NewDate(val), nil
}
