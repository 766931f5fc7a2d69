package daterange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tweetverse/internal/models"
)

func bounds() models.DateRange {
	return models.DateRange{Start: day(1, 0), End: day(10, 0)}
}

func TestNewSelectionCoversDataset(t *testing.T) {
	r, ok := NewSelection(bounds(), true).Range()
	require.True(t, ok)
	assert.Equal(t, bounds(), r)

	_, ok = NewSelection(models.DateRange{}, false).Range()
	assert.False(t, ok)
}

func TestStartAfterEndPullsEndForward(t *testing.T) {
	s := NewSelection(bounds(), true)
	s, _ = s.WithEnd(day(4, 0))

	s, ok := s.WithStart(day(6, 0))
	require.True(t, ok)

	r, _ := s.Range()
	assert.Equal(t, models.DateRange{Start: day(6, 0), End: day(6, 0)}, r)

	rs := models.RecordSet{rec("early", day(4, 0)), rec("on", day(6, 0)), rec("late", day(7, 0))}
	got := Filter(rs, r)
	require.Len(t, got, 1)
	assert.Equal(t, "on", got[0].TranslatedText)
}

func TestEndBeforeStartPullsStartBack(t *testing.T) {
	s := NewSelection(bounds(), true)
	s, _ = s.WithStart(day(5, 0))

	s, ok := s.WithEnd(day(2, 0))
	require.True(t, ok)

	r, _ := s.Range()
	assert.Equal(t, models.DateRange{Start: day(2, 0), End: day(2, 0)}, r)
}

func TestUnsetBoundIsSeededFromDataset(t *testing.T) {
	s := Selection{bounds: bounds(), hasData: true}

	withStart, ok := s.WithStart(day(3, 0))
	require.True(t, ok)
	r, _ := withStart.Range()
	assert.Equal(t, models.DateRange{Start: day(3, 0), End: day(10, 0)}, r)

	withEnd, ok := s.WithEnd(day(8, 0))
	require.True(t, ok)
	r, _ = withEnd.Range()
	assert.Equal(t, models.DateRange{Start: day(1, 0), End: day(8, 0)}, r)
}

func TestSelectionWithoutDataWaitsForBothBounds(t *testing.T) {
	s := NewSelection(models.DateRange{}, false)

	s, ok := s.WithStart(day(3, 0))
	assert.False(t, ok)

	s, ok = s.WithEnd(day(9, 0))
	require.True(t, ok)
	r, _ := s.Range()
	assert.Equal(t, models.DateRange{Start: day(3, 0), End: day(9, 0)}, r)
}

func TestSelectionIsAValue(t *testing.T) {
	s := NewSelection(bounds(), true)
	_, _ = s.WithStart(day(5, 0))

	r, _ := s.Range()
	assert.Equal(t, bounds(), r)
}

func TestDisabled(t *testing.T) {
	s := NewSelection(bounds(), true)
	assert.True(t, s.Disabled(day(11, 0)))
	assert.True(t, s.Disabled(day(1, 0).Add(-1)))
	assert.False(t, s.Disabled(day(1, 0)))
	assert.False(t, s.Disabled(day(10, 23)))

	late := NewSelection(models.DateRange{Start: day(1, 15), End: day(3, 9)}, true)
	assert.False(t, late.Disabled(day(1, 0)), "first day stays selectable")
	assert.False(t, late.Disabled(day(3, 20)), "last day stays selectable")

	assert.False(t, NewSelection(models.DateRange{}, false).Disabled(day(11, 0)))
}
