package common

import (
	"errors"
	"time"
)

// RippleEpoch is 2000-01-01T00:00:00Z in unix seconds. Ledger timestamps
// count seconds from it.
const RippleEpoch = 946684800

// ErrRippleTimeRange is returned for times a uint32 ledger timestamp
// cannot hold.
var ErrRippleTimeRange = errors.New("time outside ripple epoch range")

// RippleTimeToTime converts a ledger timestamp to UTC time.
func RippleTimeToTime(t uint32) time.Time {
	return time.Unix(int64(t)+RippleEpoch, 0).UTC()
}

// TimeToRippleTime converts t to a ledger timestamp, truncating sub-second
// precision.
func TimeToRippleTime(t time.Time) (uint32, error) {
	seconds := t.Unix() - RippleEpoch
	if seconds < 0 || seconds > 1<<32-1 {
		return 0, ErrRippleTimeRange
	}
	return uint32(seconds), nil
}

// Now returns the current unix time.
func Now() int64 {
	return time.Now().Unix()
}

// NowRipple returns the current ledger timestamp.
func NowRipple() uint32 {
	return uint32(time.Now().Unix() - RippleEpoch)
}
