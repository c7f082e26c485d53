package filler

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var reSpeakerLine = regexp.MustCompile(`^(SPEAKER_\d+):\s*(.*)`)

// Count groups utterances by speaker and counts whole-word filler matches in each group.
// Every phrase is counted independently, so overlapping phrases ("so", "and so") both score.
func (c *implCounter) Count(transcript string) Report {
	var order []string
	utterances := make(map[string][]string)

	for _, line := range splitLines(transcript) {
		m := reSpeakerLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		speaker := m[1]
		if _, ok := utterances[speaker]; !ok {
			order = append(order, speaker)
		}
		utterances[speaker] = append(utterances[speaker], strings.ToLower(m[2]))
	}

	var report Report
	for _, speaker := range order {
		combined := strings.Join(utterances[speaker], " ")

		var counts []PhraseCount
		for _, p := range c.patterns {
			if n := p.count(combined); n > 0 {
				counts = append(counts, PhraseCount{Phrase: p.phrase, Count: n})
			}
		}

		if len(counts) > 0 {
			report = append(report, SpeakerCounts{Speaker: speaker, Counts: counts})
		}
	}

	return report
}

// count returns the number of non-overlapping matches of the phrase that sit on
// word boundaries. A candidate rejected for its boundaries only advances the
// search by one rune, so a later overlapping candidate can still match.
func (p phrasePattern) count(text string) int {
	n := 0
	for pos := 0; pos < len(text); {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if onWordBoundary(text, start) && onWordBoundary(text, end) {
			n++
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return n
}

// onWordBoundary reports whether exactly one side of byte offset i is a word rune
func onWordBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// splitLines trims the transcript and splits it on every line boundary:
// \n, \r\n, \r, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029.
func splitLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i, r := range text {
		switch r {
		case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		default:
			continue
		}
		if r == '\n' && i > 0 && text[i-1] == '\r' {
			start = i + 1
			continue
		}
		lines = append(lines, text[start:i])
		start = i + utf8.RuneLen(r)
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
