package filler

// PhraseCount is the number of times a filler phrase was used
type PhraseCount struct {
	Phrase string
	Count  int
}

// SpeakerCounts holds the filler phrases one speaker used, in vocabulary order.
// Phrases with zero occurrences are never present.
type SpeakerCounts struct {
	Speaker string
	Counts  []PhraseCount
}

// Report lists speakers in the order they first spoke.
// Speakers without any filler phrase are omitted.
type Report []SpeakerCounts

// Empty reports whether no speaker used any filler phrase
func (r Report) Empty() bool {
	return len(r) == 0
}

// Map flattens the report into speaker -> phrase -> count
func (r Report) Map() map[string]map[string]int {
	out := make(map[string]map[string]int, len(r))
	for _, sc := range r {
		counts := make(map[string]int, len(sc.Counts))
		for _, pc := range sc.Counts {
			counts[pc.Phrase] = pc.Count
		}
		out[sc.Speaker] = counts
	}
	return out
}

// Total returns the number of filler phrases counted for all speakers
func (r Report) Total() int {
	total := 0
	for _, sc := range r {
		for _, pc := range sc.Counts {
			total += pc.Count
		}
	}
	return total
}
