package reading

import "strings"

// Reading is the canonical Bopomofo spelling for a syllable, tone included.
// A multi-syllable lookup key is the join of several Readings by a
// configured separator (see Join).
type Reading string

// DefaultSeparator joins multi-syllable Reading keys when none is configured.
const DefaultSeparator = "-"

// Join concatenates readings with sep into a single lattice lookup key.
func Join(readings []Reading, sep string) Reading {
	if len(readings) == 0 {
		return ""
	}
	if len(readings) == 1 {
		return readings[0]
	}
	strs := make([]string, len(readings))
	for i, r := range readings {
		strs[i] = string(r)
	}
	return Reading(strings.Join(strs, sep))
}

// Unigram is a single candidate value under a reading, with a log-probability
// score. More negative scores are worse; ties are broken by insertion order.
type Unigram struct {
	Value string
	Score float64
}
