package languagemodel

import "github.com/clipperhouse/bopomofo/reading"

// LanguageModel is the only capability the grid needs. Concrete models
// (file-backed, user-phrase overlays, associated-phrases lookups) are
// composed behind this interface outside the engine core.
type LanguageModel interface {
	// Unigrams returns the candidate values under r, in no particular
	// order. An empty result means r is not in the model.
	Unigrams(r reading.Reading) []reading.Unigram
	// HasUnigrams reports whether r has any entries, without paying for
	// the allocation Unigrams would require.
	HasUnigrams(r reading.Reading) bool
}
