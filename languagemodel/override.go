package languagemodel

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/clipperhouse/bopomofo/reading"
)

// DefaultCapacity bounds the LRU when no capacity is configured.
const DefaultCapacity = 500

// DefaultDecay is how long a suggestion remains eligible before Suggest
// ignores it.
const DefaultDecay = 5400 * time.Second

// suggestion is the value+timestamp hint recorded for a context.
type suggestion struct {
	value    string
	observed time.Time
}

// UserOverrideModel is a bounded recency cache mapping a walk context to a
// previously chosen candidate value, so identical context recurring later
// re-applies the user's past choice as a HIGH_SCORE override (never
// SPECIFIED, so it still yields to a fresh explicit selection).
type UserOverrideModel struct {
	cache *lru.Cache[string, suggestion]
	decay time.Duration
}

// NewUserOverrideModel creates a model with the given capacity and decay
// window. Pass capacity <= 0 for DefaultCapacity, decay <= 0 for
// DefaultDecay.
func NewUserOverrideModel(capacity int, decay time.Duration) *UserOverrideModel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if decay <= 0 {
		decay = DefaultDecay
	}
	cache, err := lru.New[string, suggestion](capacity)
	if err != nil {
		// Only returned for a non-positive size, which can't happen here.
		panic(err)
	}
	return &UserOverrideModel{cache: cache, decay: decay}
}

// Observe records that value was chosen in context at now.
func (m *UserOverrideModel) Observe(context string, value string, now time.Time) {
	m.cache.Add(context, suggestion{value: value, observed: now})
}

// Suggest returns the previously observed value for context, if any and if
// it hasn't decayed past m.decay as of now.
func (m *UserOverrideModel) Suggest(context string, now time.Time) (string, bool) {
	s, ok := m.cache.Get(context)
	if !ok {
		return "", false
	}
	if now.Sub(s.observed) > m.decay {
		return "", false
	}
	return s.value, true
}

// BuildContextKey builds the context signature a selection is remembered
// under: the values of the walk nodes immediately preceding the selection
// point, followed by the reading at the target position.
func BuildContextKey(precedingValues []string, target reading.Reading) string {
	var b strings.Builder
	for _, v := range precedingValues {
		b.WriteString(v)
		b.WriteByte('\x00')
	}
	b.WriteString(string(target))
	return b.String()
}
