package daterange

import (
	"time"

	"github.com/spacesedan/tweetverse/internal/models"
)

// FallbackWindow is used when no record carries a timestamp.
const FallbackWindow = 7 * 24 * time.Hour

// ComputeRange returns the earliest and latest timestamps in records. Without
// any timed record it falls back to the week ending at now.
func ComputeRange(records models.RecordSet, now time.Time) models.DateRange {
	bounds, ok := Bounds(records)
	if !ok {
		return models.DateRange{Start: now.AddDate(0, 0, -7), End: now}
	}
	return bounds
}

// Bounds is ComputeRange without the fallback. ok is false when no record has
// a timestamp.
func Bounds(records models.RecordSet) (models.DateRange, bool) {
	var (
		r     models.DateRange
		found bool
	)
	for _, rec := range records {
		if !rec.HasTimestamp() {
			continue
		}
		if !found || rec.Timestamp.Before(r.Start) {
			r.Start = rec.Timestamp
		}
		if !found || rec.Timestamp.After(r.End) {
			r.End = rec.Timestamp
		}
		found = true
	}
	return r, found
}

// Filter returns the timed records whose timestamp lies in r, both ends
// included. The input is never modified; an inverted range yields an empty set.
func Filter(records models.RecordSet, r models.DateRange) models.RecordSet {
	filtered := make(models.RecordSet, 0, len(records))
	for _, rec := range records {
		if rec.HasTimestamp() && r.Contains(rec.Timestamp) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
