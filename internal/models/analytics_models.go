package models

import "time"

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies in [Start, End].
func (d DateRange) Contains(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}

type WordFrequency struct {
	Text  string `json:"text"`
	Count int    `json:"value"`
}

type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// Add increments the counter for l.
func (c *SentimentCounts) Add(l Label) {
	switch l {
	case LabelPositive:
		c.Positive++
	case LabelNeutral:
		c.Neutral++
	case LabelNegative:
		c.Negative++
	}
}

type TimeSeriesPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

type SummaryStats struct {
	TotalCount            int             `json:"total_tweets"`
	AverageSentimentScore float64         `json:"average_sentiment"`
	SentimentCounts       SentimentCounts `json:"sentiment_counts"`
	TopWords              []WordFrequency `json:"top_words"`
}

type SentimentShare struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

type Topic struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
