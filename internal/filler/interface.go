// Package filler parses speaker-labelled transcripts and tallies filler words per speaker.
package filler

// Counter counts filler phrases per speaker in a transcript
type Counter interface {
	Count(transcript string) Report
}

// DefaultVocabulary is the filler vocabulary used when none is configured.
// Its order is the order phrases are reported in.
var DefaultVocabulary = []string{
	"like",
	"you know",
	"um",
	"uh",
	"i mean",
	"sort of",
	"kind of",
	"just",
	"basically",
	"so",
	"and so",
}
