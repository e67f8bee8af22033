package languagemodel

import (
	"sync/atomic"

	"github.com/clipperhouse/bopomofo/reading"
)

// Dynamic is a LanguageModel whose underlying snapshot can be swapped
// atomically while the grid holding it keeps the same Dynamic instance, so
// a reload never interrupts an in-flight walk. The grid only ever sees
// this stable wrapper, never the snapshot directly.
type Dynamic struct {
	current atomic.Pointer[LanguageModel]
}

// NewDynamic wraps an initial snapshot.
func NewDynamic(initial LanguageModel) *Dynamic {
	d := &Dynamic{}
	d.Store(initial)
	return d
}

// Store atomically replaces the active snapshot.
func (d *Dynamic) Store(m LanguageModel) {
	d.current.Store(&m)
}

// Unigrams delegates to the currently active snapshot.
func (d *Dynamic) Unigrams(r reading.Reading) []reading.Unigram {
	return (*d.current.Load()).Unigrams(r)
}

// HasUnigrams delegates to the currently active snapshot.
func (d *Dynamic) HasUnigrams(r reading.Reading) bool {
	return (*d.current.Load()).HasUnigrams(r)
}
