package wordfreq

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordList string

var stopwords = loadWordSet(stopwordList)

// commonWords is the shorter list used by Topics.
var commonWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "is": true, "are": true, "was": true, "were": true,
}

// loadWordSet reads one word per line, skipping blanks and # comments.
func loadWordSet(list string) map[string]bool {
	set := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(list))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = true
	}
	return set
}

// IsStopword reports whether word is dropped by Tokenize.
func IsStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}
