package wordfreq

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tweetverse/internal/models"
)

func words(freqs []models.WordFrequency) []string {
	out := make([]string, len(freqs))
	for i, f := range freqs {
		out[i] = f.Text
	}
	return out
}

func TestTokenizeStripsPunctuationAndCase(t *testing.T) {
	got, err := Tokenize([]string{"Hello, world!", "HELLO again..."}, WordCloudLimit)
	require.NoError(t, err)

	assert.Equal(t, []models.WordFrequency{
		{Text: "hello", Count: 2},
		{Text: "world", Count: 1},
		{Text: "again", Count: 1},
	}, got)
}

func TestTokenizeDropsStopwordsAndShortWords(t *testing.T) {
	got, err := Tokenize([]string{"the cat and the dog", "go to ok yes"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "yes"}, words(got))
}

func TestTokenizeBreaksTiesByFirstOccurrence(t *testing.T) {
	got, err := Tokenize([]string{"zebra apple mango apple", "mango zebra"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, words(got))
	for _, f := range got {
		assert.Equal(t, 2, f.Count)
	}
}

func TestTokenizeKeepsDigitsUnderscoresAndOtherScripts(t *testing.T) {
	got, err := Tokenize([]string{"2024 covid_19 Ελληνικά! 日本語、テスト"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "covid_19", "ελληνικά", "日本語テスト"}, words(got))
}

func TestTokenizeTruncatesToLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 150; i++ {
		fmt.Fprintf(&b, "word%03d ", i)
	}
	b.WriteString("word149")

	got, err := Tokenize([]string{b.String()}, WordCloudLimit)
	require.NoError(t, err)
	require.Len(t, got, WordCloudLimit)
	assert.Equal(t, models.WordFrequency{Text: "word149", Count: 2}, got[0])
	assert.Equal(t, "word000", got[1].Text)

	summary, err := Tokenize([]string{b.String()}, SummaryLimit)
	require.NoError(t, err)
	assert.Len(t, summary, SummaryLimit)
}

func TestTokenizeInputs(t *testing.T) {
	_, err := Tokenize(nil, WordCloudLimit)
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := Tokenize([]string{}, WordCloudLimit)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = Tokenize([]string{"!!! ... ??"}, WordCloudLimit)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("would"))
	assert.False(t, IsStopword("sentiment"))
	assert.False(t, IsStopword("# English stopwords removed before counting word frequency."))
}

func TestTopics(t *testing.T) {
	texts := []string{
		"The weather today, weather is nice",
		"were were were WEATHER",
		"nice",
	}

	got := Topics(texts, 0)
	assert.Equal(t, []models.Topic{
		{Word: "weather", Count: 3},
		{Word: "nice", Count: 2},
		{Word: "today,", Count: 1},
	}, got)
}

func TestTopicsLimit(t *testing.T) {
	got := Topics([]string{"alpha bravo charlie delta echo foxtrot golf"}, 0)
	require.Len(t, got, DefaultTopicLimit)
	assert.Equal(t, "alpha", got[0].Word)

	assert.Len(t, Topics([]string{"alpha bravo charlie"}, 2), 2)
	assert.Empty(t, Topics(nil, 3))
}
