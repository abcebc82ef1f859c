package utils

import (
	"strconv"
	"time"
)

// FormatMillis renders an epoch timestamp in milliseconds as RFC3339 in UTC.
// Text that is not a positive integer is returned unchanged.
func FormatMillis(millis string) string {
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil || ms <= 0 {
		return millis
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
