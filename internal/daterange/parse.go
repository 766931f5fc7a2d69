package daterange

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// ParseBound reads an RFC3339 timestamp or a plain YYYY-MM-DD date in UTC.
// With endOfDay set a plain date means the last instant of that day.
func ParseBound(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(DayLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is neither RFC3339 nor YYYY-MM-DD", raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
