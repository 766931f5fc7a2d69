package wordfreq

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spacesedan/tweetverse/internal/models"
)

const (
	WordCloudLimit    = 100
	SummaryLimit      = 10
	DefaultTopicLimit = 5

	minWordRunes  = 3
	minTopicRunes = 4
)

var ErrInvalidInput = errors.New("wordfreq: texts must not be nil")

// Tokenize counts the words of texts and returns the limit most frequent.
// Punctuation is stripped, stopwords and words shorter than three runes are
// dropped, and ties keep the order in which words first appeared. A limit
// of zero or less returns every word.
func Tokenize(texts []string, limit int) ([]models.WordFrequency, error) {
	if texts == nil {
		return nil, ErrInvalidInput
	}

	normalized := strings.Map(keepWordRune, strings.ToLower(strings.Join(texts, " ")))

	c := newCounter()
	for _, word := range strings.Fields(normalized) {
		if stopwords[word] || utf8.RuneCountInString(word) < minWordRunes {
			continue
		}
		c.add(word)
	}

	ranked := c.ranked(limit)
	out := make([]models.WordFrequency, len(ranked))
	for i, e := range ranked {
		out[i] = models.WordFrequency{Text: e.word, Count: e.count}
	}
	return out, nil
}

// Topics is the lighter analysis behind the detail view: words are split on
// whitespace without stripping punctuation, must be longer than three runes
// and must not be one of a handful of common words.
func Topics(texts []string, limit int) []models.Topic {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}

	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}

	c := newCounter()
	for _, word := range strings.Fields(strings.Join(lowered, " ")) {
		if utf8.RuneCountInString(word) < minTopicRunes || commonWords[word] {
			continue
		}
		c.add(word)
	}

	ranked := c.ranked(limit)
	out := make([]models.Topic, len(ranked))
	for i, e := range ranked {
		out[i] = models.Topic{Word: e.word, Count: e.count}
	}
	return out
}

// keepWordRune keeps letters, marks, decimal digits, connector punctuation
// and whitespace.
func keepWordRune(r rune) rune {
	switch {
	case unicode.IsLetter(r), unicode.IsMark(r), unicode.Is(unicode.Nd, r),
		unicode.Is(unicode.Pc, r), unicode.IsSpace(r):
		return r
	default:
		return -1
	}
}

type entry struct {
	word  string
	count int
}

// counter tallies words and remembers first-seen order.
type counter struct {
	index   map[string]int
	entries []entry
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(word string) {
	if i, ok := c.index[word]; ok {
		c.entries[i].count++
		return
	}
	c.index[word] = len(c.entries)
	c.entries = append(c.entries, entry{word: word, count: 1})
}

func (c *counter) ranked(limit int) []entry {
	sorted := make([]entry, len(c.entries))
	copy(sorted, c.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
