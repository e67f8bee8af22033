package lmfile

import (
	"github.com/clipperhouse/bopomofo/reading"
)

// FileLanguageModel is a read-only LanguageModel snapshot built from a
// ParseResult, with nothing else merged in: user phrases, exclusions and
// replacements are overlays a caller composes on top.
type FileLanguageModel struct {
	entries map[reading.Reading][]reading.Unigram
	issues  []ParseIssue
}

// NewFileLanguageModel builds a FileLanguageModel from a parsed file.
func NewFileLanguageModel(result ParseResult) *FileLanguageModel {
	entries := make(map[reading.Reading][]reading.Unigram, len(result.Entries))
	for _, e := range result.Entries {
		entries[e.Reading] = append(entries[e.Reading], reading.Unigram{Value: e.Value, Score: e.Score})
	}
	return &FileLanguageModel{entries: entries, issues: result.Issues}
}

// Unigrams implements languagemodel.LanguageModel.
func (m *FileLanguageModel) Unigrams(r reading.Reading) []reading.Unigram {
	return m.entries[r]
}

// HasUnigrams implements languagemodel.LanguageModel.
func (m *FileLanguageModel) HasUnigrams(r reading.Reading) bool {
	return len(m.entries[r]) > 0
}

// Issues returns the ParseIssues collected while building this snapshot.
func (m *FileLanguageModel) Issues() []ParseIssue {
	return m.issues
}
