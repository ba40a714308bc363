package sheets

import (
	"fmt"
	"strings"
)

// FormatSeconds renders a seconds count as a colon-separated clock string.
// Segments are computed hours-first and zero-padded to two digits; a leading
// run of zero segments is dropped, but the seconds segment always remains:
//
//	0    -> "00"
//	5    -> "05"
//	65   -> "01:05"
//	3661 -> "01:01:01"
//
// Negative input clamps to zero.
func FormatSeconds(total int64) string {
	if total < 0 {
		total = 0
	}
	segments := []int64{total / 3600, total % 3600 / 60, total % 60}

	start := 0
	for start < len(segments)-1 && segments[start] == 0 {
		start++
	}

	parts := make([]string, 0, len(segments)-start)
	for _, seg := range segments[start:] {
		parts = append(parts, fmt.Sprintf("%02d", seg))
	}
	return strings.Join(parts, ":")
}
