package wire

import (
	"strconv"
	"time"
)

// Timestamp is an MVCC version stamp. The upper bits hold unix seconds, the
// lower timestampCounterBits bits hold a counter within that second.
type Timestamp uint64

const (
	// NullTimestamp marks a missing timestamp.
	NullTimestamp Timestamp = 0
	// MinTimestamp is the smallest valid timestamp.
	MinTimestamp Timestamp = 0x0000000000000001
	// MaxTimestamp is the largest valid timestamp.
	MaxTimestamp Timestamp = 0x3fffffffffffff00

	timestampCounterBits = 30
)

// TimestampFromTime returns the first timestamp of the second t belongs to.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(uint64(t.Unix()) << timestampCounterBits) //nolint:gosec
}

// Time returns the wall clock second encoded in the timestamp.
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts>>timestampCounterBits), 0).UTC() //nolint:gosec
}

// IsValid reports whether ts lies within [MinTimestamp, MaxTimestamp].
func (ts Timestamp) IsValid() bool {
	return ts >= MinTimestamp && ts <= MaxTimestamp
}

func (ts Timestamp) String() string {
	return strconv.FormatUint(uint64(ts), 10)
}
