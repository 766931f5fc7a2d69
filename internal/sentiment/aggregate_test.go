package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tweetverse/internal/models"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.February, day, hour, 0, 0, 0, time.UTC)
}

func TestSummaryTwoRowScenario(t *testing.T) {
	rs := models.RecordSet{
		{TranslatedText: "Great day, great vibes", Compound: 0.8, Sentiment: "positive", Timestamp: at(1, 9)},
		{TranslatedText: "terrible service", Compound: -0.6, Sentiment: "Negative", Timestamp: at(2, 9)},
	}

	s := Summary(rs)
	assert.Equal(t, 2, s.TotalCount)
	assert.InDelta(t, 0.1, s.AverageSentimentScore, 1e-9)
	assert.Equal(t, models.SentimentCounts{Positive: 1, Neutral: 0, Negative: 1}, s.SentimentCounts)
	require.NotEmpty(t, s.TopWords)
	assert.Equal(t, models.WordFrequency{Text: "great", Count: 2}, s.TopWords[0])
}

func TestSummaryOfNothing(t *testing.T) {
	s := Summary(nil)
	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0.0, s.AverageSentimentScore)
	assert.Empty(t, s.TopWords)
}

func TestSummarizeLimitsWords(t *testing.T) {
	rs := models.RecordSet{{TranslatedText: "alpha bravo charlie delta echo"}}
	assert.Len(t, Summarize(rs, 2).TopWords, 2)
}

func TestDistributionNeverExceedsTotal(t *testing.T) {
	cases := map[string]struct {
		labels []string
		exact  bool
	}{
		"recognized": {[]string{"positive", "NEUTRAL", "Negative"}, true},
		"mixed":      {[]string{"positive", "mixed", ""}, false},
	}
	for name, tc := range cases {
		var rs models.RecordSet
		for _, l := range tc.labels {
			rs = append(rs, models.Record{Sentiment: l})
		}

		total := Distribution(rs).Total()
		assert.LessOrEqual(t, total, len(rs), name)
		assert.Equal(t, tc.exact, total == len(rs), name)
	}
}

func TestTimeSeriesBucketsByUTCDay(t *testing.T) {
	plus5 := time.FixedZone("UTC+5", 5*60*60)
	rs := models.RecordSet{
		{Sentiment: "negative", Timestamp: at(3, 10)},
		{Sentiment: "positive", Timestamp: at(1, 23)},
		{Sentiment: "positive", Timestamp: time.Date(2024, time.February, 2, 2, 0, 0, 0, plus5)},
		{Sentiment: "neutral", Timestamp: at(3, 0)},
		{Sentiment: "sarcastic", Timestamp: at(3, 5)},
		{Sentiment: "positive"},
	}

	assert.Equal(t, []models.TimeSeriesPoint{
		{Date: "2024-02-01", Positive: 2},
		{Date: "2024-02-03", Neutral: 1, Negative: 1},
	}, TimeSeries(rs))
}

func TestTimeSeriesEmpty(t *testing.T) {
	got := TimeSeries(models.RecordSet{{Sentiment: "positive"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupByLabel(t *testing.T) {
	rs := models.RecordSet{
		{TranslatedText: "a", Sentiment: "Positive"},
		{TranslatedText: "b", Sentiment: ""},
		{TranslatedText: "c", Sentiment: "positive"},
		{TranslatedText: "d", Sentiment: "Mixed"},
	}

	groups := GroupByLabel(rs)
	assert.Len(t, groups, 3)
	assert.Len(t, groups["positive"], 2)
	assert.Equal(t, "b", groups[UnknownGroup][0].TranslatedText)
	assert.Equal(t, "d", groups["mixed"][0].TranslatedText)
}

func TestShares(t *testing.T) {
	shares := Shares(models.SentimentCounts{Positive: 3, Neutral: 1, Negative: 0})
	require.Len(t, shares, 3)
	assert.Equal(t, "Positive", shares[0].Name)
	assert.InDelta(t, 75.0, shares[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, shares[1].Percent, 1e-9)
	assert.Equal(t, 0, shares[2].Value)

	for _, s := range Shares(models.SentimentCounts{}) {
		assert.Equal(t, 0.0, s.Percent)
	}
}
