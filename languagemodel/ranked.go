package languagemodel

import (
	"sort"

	"github.com/clipperhouse/bopomofo/reading"
)

// ScoreRankedLanguageModel decorates a LanguageModel so Unigrams always
// comes back sorted by descending score, stable within ties. The grid
// builds every Node through a ScoreRankedLanguageModel so "current_index
// == 0" always means "highest scoring".
type ScoreRankedLanguageModel struct {
	inner LanguageModel
}

// NewScoreRankedLanguageModel wraps inner.
func NewScoreRankedLanguageModel(inner LanguageModel) *ScoreRankedLanguageModel {
	return &ScoreRankedLanguageModel{inner: inner}
}

func (m *ScoreRankedLanguageModel) Unigrams(r reading.Reading) []reading.Unigram {
	grams := m.inner.Unigrams(r)
	if len(grams) < 2 {
		return grams
	}
	ranked := make([]reading.Unigram, len(grams))
	copy(ranked, grams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (m *ScoreRankedLanguageModel) HasUnigrams(r reading.Reading) bool {
	return m.inner.HasUnigrams(r)
}
