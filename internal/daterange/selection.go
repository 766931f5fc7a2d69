package daterange

import (
	"time"

	"github.com/spacesedan/tweetverse/internal/models"
)

// Selection is the user's current start/end choice. Methods return a new
// value; a zero bound means unset.
type Selection struct {
	bounds  models.DateRange
	hasData bool
	start   time.Time
	end     time.Time
}

// NewSelection starts with the whole dataset selected when hasData is true and
// with both bounds unset otherwise.
func NewSelection(bounds models.DateRange, hasData bool) Selection {
	s := Selection{bounds: bounds, hasData: hasData}
	if hasData {
		s.start, s.end = bounds.Start, bounds.End
	}
	return s
}

// WithStart sets the start bound. A start after the current end pulls the end
// forward; an unset end is seeded from the dataset maximum. The bool reports
// whether a complete range is in effect afterwards.
func (s Selection) WithStart(t time.Time) (Selection, bool) {
	s.start = t
	switch {
	case !s.end.IsZero():
		if t.After(s.end) {
			s.end = t
		}
	case s.hasData:
		s.end = s.bounds.End
	default:
		return s, false
	}
	return s, true
}

// WithEnd mirrors WithStart: an end before the current start pulls the start
// back and an unset start is seeded from the dataset minimum.
func (s Selection) WithEnd(t time.Time) (Selection, bool) {
	s.end = t
	switch {
	case !s.start.IsZero():
		if t.Before(s.start) {
			s.start = t
		}
	case s.hasData:
		s.start = s.bounds.Start
	default:
		return s, false
	}
	return s, true
}

// Range returns the selected range. ok is false while either bound is unset.
func (s Selection) Range() (models.DateRange, bool) {
	if s.start.IsZero() || s.end.IsZero() {
		return models.DateRange{}, false
	}
	return models.DateRange{Start: s.start, End: s.end}, true
}

func (s Selection) Bounds() models.DateRange {
	return s.bounds
}

func (s Selection) HasData() bool {
	return s.hasData
}

// Disabled reports whether the UTC calendar day of t falls outside the days
// covered by the dataset and should not be offered as a choice. Nothing is
// disabled without data.
func (s Selection) Disabled(t time.Time) bool {
	if !s.hasData {
		return false
	}
	d := truncateDay(t)
	return d.Before(truncateDay(s.bounds.Start)) || d.After(truncateDay(s.bounds.End))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
