package models

import (
	"strings"
	"time"
)

type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Record is one validated row of an uploaded CSV.
type Record struct {
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Tweet          string    `json:"tweet,omitempty"`
	TranslatedText string    `json:"translated_text"`
	Compound       float64   `json:"compound"`
	Sentiment      string    `json:"sentiment"`
	Timestamp      time.Time `json:"timestamp"`
}

// HasTimestamp reports whether the row produced a usable timestamp.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// Label returns the normalized sentiment label. ok is false for anything
// other than positive, neutral or negative.
func (r Record) Label() (Label, bool) {
	switch l := Label(strings.ToLower(r.Sentiment)); l {
	case LabelPositive, LabelNeutral, LabelNegative:
		return l, true
	default:
		return "", false
	}
}

// RecordSet keeps records in upload order. Transformations return new sets.
type RecordSet []Record

// Texts returns the non-empty translated texts in record order. The result is
// never nil.
func (rs RecordSet) Texts() []string {
	texts := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.TranslatedText != "" {
			texts = append(texts, r.TranslatedText)
		}
	}
	return texts
}
