package types

import (
	"fmt"
	"time"
)

// Timestamp represents an instant with second precision.
type Timestamp struct {
	// Time is the underlying time.Time value.
	time.Time
}

// NewTimestamp coerces src into a Timestamp, dropping any sub-second
// component. The instant and its time zone are preserved.
func NewTimestamp(src time.Time) *Timestamp {
	return &Timestamp{src.Truncate(time.Second)}
}

// GoTime returns the underlying time.Time object.
func (ts *Timestamp) GoTime() time.Time { return ts.Time }

// timestampFormat represents the canonical string format for Timestamp
// values.
const timestampFormat = "2006-01-02 15:04:05"

// String returns the string representation of ts using the format
// "2006-01-02 15:04:05".
func (ts *Timestamp) String() string {
	return ts.Time.Format(timestampFormat)
}

// ToDate returns the calendar date implied by ts in its time zone.
func (ts *Timestamp) ToDate() *Date {
	return NewDate(ts.Time)
}

// Compare compares the time instant ts with u. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts *Timestamp) Compare(u time.Time) int {
	return ts.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string using the "2006-01-02 15:04:05" format.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	const timestampJSONSize = len(timestampFormat) + len(`""`)
	b := make([]byte, 0, timestampJSONSize)
	b = append(b, '"')
	b = ts.Time.AppendFormat(b, timestampFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be
// a quoted string in the "2006-01-02 15:04:05" format.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	tim, err := time.Parse(timestampFormat, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf(
			"%w: Cannot parse %s as %q",
			ErrType, data, timestampFormat,
		)
	}
	*ts = Timestamp{Time: tim}
	return nil
}
