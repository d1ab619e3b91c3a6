package storymeta

import "time"

// Timestamp is a point in time carried on the wire as a count of seconds
// since the Unix epoch. It encodes back through the same integer exactly.
type Timestamp int64

// TimestampOf converts a time.Time to its wire representation, truncating to
// whole seconds.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}
