package sentiment

import (
	"sort"
	"strings"
	"time"

	"github.com/spacesedan/tweetverse/internal/models"
	"github.com/spacesedan/tweetverse/internal/wordfreq"
)

const (
	dayLayout = "2006-01-02"

	// UnknownGroup collects records with an empty sentiment label.
	UnknownGroup = "unknown"
)

// Distribution counts positive, neutral and negative labels, ignoring case.
// Unrecognized labels are not counted.
func Distribution(records models.RecordSet) models.SentimentCounts {
	var counts models.SentimentCounts
	for _, r := range records {
		if l, ok := r.Label(); ok {
			counts.Add(l)
		}
	}
	return counts
}

// TimeSeries buckets labelled records by UTC calendar day of their timestamp.
// Records without a timestamp are skipped. Points are in ascending date order.
func TimeSeries(records models.RecordSet) []models.TimeSeriesPoint {
	byDay := make(map[string]*models.TimeSeriesPoint)
	for _, r := range records {
		if !r.HasTimestamp() {
			continue
		}

		key := r.Timestamp.In(time.UTC).Format(dayLayout)
		point, ok := byDay[key]
		if !ok {
			point = &models.TimeSeriesPoint{Date: key}
			byDay[key] = point
		}

		switch l, _ := r.Label(); l {
		case models.LabelPositive:
			point.Positive++
		case models.LabelNeutral:
			point.Neutral++
		case models.LabelNegative:
			point.Negative++
		}
	}

	series := make([]models.TimeSeriesPoint, 0, len(byDay))
	for _, p := range byDay {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// Summary reports totals over every record with the ten most frequent words.
func Summary(records models.RecordSet) models.SummaryStats {
	return Summarize(records, wordfreq.SummaryLimit)
}

// Summarize is Summary with a configurable number of top words.
func Summarize(records models.RecordSet, wordLimit int) models.SummaryStats {
	stats := models.SummaryStats{
		TotalCount:      len(records),
		SentimentCounts: Distribution(records),
	}

	if len(records) > 0 {
		var sum float64
		for _, r := range records {
			sum += r.Compound
		}
		stats.AverageSentimentScore = sum / float64(len(records))
	}

	// Texts never returns nil, so Tokenize cannot fail here.
	stats.TopWords, _ = wordfreq.Tokenize(records.Texts(), wordLimit)
	return stats
}

// GroupByLabel splits records by lower-cased label. Empty labels land in
// UnknownGroup; other unrecognized labels keep their own group.
func GroupByLabel(records models.RecordSet) map[string]models.RecordSet {
	groups := make(map[string]models.RecordSet)
	for _, r := range records {
		key := strings.ToLower(r.Sentiment)
		if key == "" {
			key = UnknownGroup
		}
		groups[key] = append(groups[key], r)
	}
	return groups
}

// Shares turns counts into pie chart slices in positive, neutral, negative
// order.
func Shares(counts models.SentimentCounts) []models.SentimentShare {
	total := counts.Total()
	share := func(name string, value int) models.SentimentShare {
		s := models.SentimentShare{Name: name, Value: value}
		if total > 0 {
			s.Percent = float64(value) / float64(total) * 100
		}
		return s
	}

	return []models.SentimentShare{
		share("Positive", counts.Positive),
		share("Neutral", counts.Neutral),
		share("Negative", counts.Negative),
	}
}
