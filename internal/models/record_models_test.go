package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordLabel(t *testing.T) {
	cases := map[string]struct {
		want Label
		ok   bool
	}{
		"positive": {LabelPositive, true},
		"NEUTRAL":  {LabelNeutral, true},
		"Negative": {LabelNegative, true},
		"mixed":    {"", false},
		"":         {"", false},
	}
	for raw, tc := range cases {
		got, ok := Record{Sentiment: raw}.Label()
		assert.Equal(t, tc.want, got, raw)
		assert.Equal(t, tc.ok, ok, raw)
	}
}

func TestRecordSetTexts(t *testing.T) {
	assert.Equal(t, []string{}, RecordSet(nil).Texts())

	rs := RecordSet{{TranslatedText: "one"}, {}, {TranslatedText: "two"}}
	assert.Equal(t, []string{"one", "two"}, rs.Texts())
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: start.Add(time.Hour)}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.End.Add(time.Nanosecond)))
}

func TestSentimentCountsAdd(t *testing.T) {
	var c SentimentCounts
	c.Add(LabelPositive)
	c.Add(LabelPositive)
	c.Add(LabelNegative)
	c.Add("other")

	assert.Equal(t, SentimentCounts{Positive: 2, Negative: 1}, c)
	assert.Equal(t, 3, c.Total())
}
