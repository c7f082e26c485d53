package filler

import (
	"regexp"
	"strings"
)

type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

type implCounter struct {
	patterns []phrasePattern
}

// New creates a Counter over DefaultVocabulary
func New() Counter {
	return NewCounter(nil)
}

// NewCounter creates a Counter over the given vocabulary.
// Phrases are trimmed, lower-cased and de-duplicated; an empty vocabulary means DefaultVocabulary.
func NewCounter(vocabulary []string) Counter {
	seen := make(map[string]bool)
	var patterns []phrasePattern
	for _, phrase := range vocabulary {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" || seen[phrase] {
			continue
		}
		seen[phrase] = true
		patterns = append(patterns, phrasePattern{
			phrase: phrase,
			re:     regexp.MustCompile(regexp.QuoteMeta(phrase)),
		})
	}

	if len(patterns) == 0 {
		return NewCounter(DefaultVocabulary)
	}

	return &implCounter{patterns: patterns}
}
