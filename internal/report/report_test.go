package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tweetverse/internal/records"
)

const csv = "date,time,tweet,translated_text,compound,sentiment\n" +
	"01/03/2024,08:00,,coffee morning coffee,0.4,positive\n" +
	"02/03/2024,08:00,,traffic everywhere,-0.4,negative\n" +
	"03/03/2024,08:00,,quiet evening,0,neutral\n" +
	"bad,08:00,,no timestamp,0.9,positive\n"

func parse(t *testing.T) *records.Result {
	t.Helper()
	res, err := records.NewParser().ParseDetailed(strings.NewReader(csv))
	require.NoError(t, err)
	return res
}

func TestBuildWholeFile(t *testing.T) {
	rep := Build("tweets.csv", parse(t), Options{})

	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, 3, rep.Showing)
	assert.Equal(t, 1, rep.Stats.Untimed)
	assert.Len(t, rep.TimeSeries, 3)
	assert.Equal(t, "coffee", rep.Summary.TopWords[0].Text)
	assert.Equal(t, "coffee", rep.Topics[0].Word)
}

func TestBuildAppliesBounds(t *testing.T) {
	rep := Build("tweets.csv", parse(t), Options{
		Start: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, 2, rep.Showing)
	assert.Equal(t, "2024-03-02", rep.TimeSeries[0].Date)

	rep = Build("tweets.csv", parse(t), Options{
		Start: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, 1, rep.Showing, "end before start pulls start back")
	assert.True(t, rep.Range.Start.Equal(rep.Range.End))
}

func TestWriters(t *testing.T) {
	rep := Build("tweets.csv", parse(t), Options{})

	var text bytes.Buffer
	require.NoError(t, WriteText(&text, rep))
	assert.Contains(t, text.String(), "Showing")
	assert.Contains(t, text.String(), "3 of 4 tweets")
	assert.Contains(t, text.String(), "2024-03-01")

	var js bytes.Buffer
	require.NoError(t, WriteJSON(&js, rep))
	var back Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &back))
	assert.Equal(t, rep.Showing, back.Showing)
	assert.Equal(t, rep.Summary.TopWords, back.Summary.TopWords)
}
