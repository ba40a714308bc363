package sheets

import (
	"math"
	"strconv"
	"time"
)

// ParseAmount coerces one of the API's decimal-string fields to a float64.
// The parse is locale-independent; anything non-numeric yields NaN rather
// than an error, matching the lenient convention of the source fields.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// UnixTime converts a unix-seconds field to a UTC time value.
func UnixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
