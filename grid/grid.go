package grid

import (
	"github.com/clipperhouse/bopomofo/languagemodel"
	"github.com/clipperhouse/bopomofo/reading"
)

// Candidate is one selectable value at a grid position, together with the
// reading span it came from.
type Candidate struct {
	ReadingKey reading.Reading
	Value      string
}

// ReadingGrid is the lattice of Spans built over a sequence of readings.
// It maintains, incrementally, the invariant that S[j][L] holds a Node iff
// the language model has unigrams under the L readings starting at j.
type ReadingGrid struct {
	lm        languagemodel.LanguageModel
	separator string
	readings  []reading.Reading
	spans     []*span
	cursor    int
	nextSeq   int64
}

// New creates an empty grid backed by lm, wrapped in a
// ScoreRankedLanguageModel so every Node's unigrams come back highest
// score first. The default separator is reading.DefaultSeparator.
func New(lm languagemodel.LanguageModel) *ReadingGrid {
	return &ReadingGrid{lm: languagemodel.NewScoreRankedLanguageModel(lm), separator: reading.DefaultSeparator}
}

// SetSeparator changes the string used to join readings into a multi-span
// language-model key. Does not retroactively rebuild existing spans.
func (g *ReadingGrid) SetSeparator(sep string) {
	g.separator = sep
}

// Separator is the string currently used to join readings into a
// multi-span language-model key.
func (g *ReadingGrid) Separator() string {
	return g.separator
}

// Cursor is the current insertion/deletion point, in [0, Length()].
func (g *ReadingGrid) Cursor() int {
	return g.cursor
}

// SetCursor moves the cursor, rejecting out-of-range positions.
func (g *ReadingGrid) SetCursor(pos int) bool {
	if pos < 0 || pos > len(g.readings) {
		return false
	}
	g.cursor = pos
	return true
}

// Length is the number of readings currently in the grid.
func (g *ReadingGrid) Length() int {
	return len(g.readings)
}

// Readings returns a copy of the reading sequence.
func (g *ReadingGrid) Readings() []reading.Reading {
	out := make([]reading.Reading, len(g.readings))
	copy(out, g.readings)
	return out
}

// Clear empties the grid.
func (g *ReadingGrid) Clear() {
	g.readings = nil
	g.spans = nil
	g.cursor = 0
}

func (g *ReadingGrid) joinedKey(j, length int) reading.Reading {
	return reading.Join(g.readings[j:j+length], g.separator)
}

// rebuildNodeAt recomputes S[j][length] from the current reading sequence,
// removing the slot if the language model no longer has unigrams for it.
func (g *ReadingGrid) rebuildNodeAt(j, length int) {
	if j < 0 || length < 1 || j+length > len(g.readings) {
		return
	}
	key := g.joinedKey(j, length)
	if !g.lm.HasUnigrams(key) {
		g.spans[j].remove(length)
		return
	}
	grams := g.lm.Unigrams(key)
	if len(grams) == 0 {
		g.spans[j].remove(length)
		return
	}
	g.nextSeq++
	g.spans[j].set(length, newNode(key, length, grams, g.nextSeq))
}

// InsertReading inserts r at the cursor and advances it. Fails (returning
// false, leaving the grid untouched) if r is empty, equal to the
// separator, or unrecognized by the language model.
func (g *ReadingGrid) InsertReading(r reading.Reading) bool {
	if r == "" || string(r) == g.separator || !g.lm.HasUnigrams(r) {
		return false
	}
	i := g.cursor

	g.readings = append(g.readings, "")
	copy(g.readings[i+1:], g.readings[i:])
	g.readings[i] = r

	g.spans = append(g.spans, nil)
	copy(g.spans[i+1:], g.spans[i:])
	g.spans[i] = newSpan()

	g.cursor++

	n := len(g.readings)
	lo := i - MaxSpan + 1
	if lo < 0 {
		lo = 0
	}
	for j := lo; j <= i; j++ {
		for length := 1; length <= MaxSpan; length++ {
			if j+length > n || !(j <= i && i < j+length) {
				continue
			}
			g.rebuildNodeAt(j, length)
		}
	}
	return true
}

// deleteAt removes the reading at position i and repairs every span that
// used to reach into or past it.
func (g *ReadingGrid) deleteAt(i int) {
	oldN := len(g.readings)

	g.readings = append(g.readings[:i], g.readings[i+1:]...)
	g.spans = append(g.spans[:i], g.spans[i+1:]...)

	n := oldN - 1
	lo := i - MaxSpan + 1
	if lo < 0 {
		lo = 0
	}
	for j := lo; j < i; j++ {
		if j >= n {
			continue
		}
		sp := g.spans[j]
		for length := 1; length <= MaxSpan; length++ {
			if length >= i-j+1 {
				sp.remove(length)
			}
		}
		for length := 1; length <= MaxSpan; length++ {
			if length >= i-j+1 && j+length <= n {
				g.rebuildNodeAt(j, length)
			}
		}
	}
}

// DeleteReadingBeforeCursor removes the reading just before the cursor
// (backspace). Reports false if the cursor is at the start.
func (g *ReadingGrid) DeleteReadingBeforeCursor() bool {
	if g.cursor == 0 {
		return false
	}
	g.deleteAt(g.cursor - 1)
	g.cursor--
	return true
}

// DeleteReadingAfterCursor removes the reading just after the cursor
// (forward-delete). Reports false if the cursor is at the end.
func (g *ReadingGrid) DeleteReadingAfterCursor() bool {
	if g.cursor == len(g.readings) {
		return false
	}
	g.deleteAt(g.cursor)
	return true
}

// OverrideCandidate pins value as the selection for the Node starting at
// position, choosing the shortest span length at that position whose
// candidate list contains value. Any other Node whose span overlaps the
// chosen one has its own override silently reset, SPECIFIED included: an
// override is only immune to incidental rebuilds, never to an explicitly
// overlapping pin. Reports false if no such Node/value pair exists.
func (g *ReadingGrid) OverrideCandidate(position int, value string, status OverrideStatus) bool {
	if position < 0 || position >= len(g.spans) {
		return false
	}
	sp := g.spans[position]
	for length := 1; length <= MaxSpan; length++ {
		node, ok := sp.get(length)
		if !ok {
			continue
		}
		if !node.SelectValue(value, status) {
			continue
		}
		g.resetOverlapping(position, length, node)
		return true
	}
	return false
}

func (g *ReadingGrid) resetOverlapping(j, length int, keep *Node) {
	lo, hi := j, j+length
	for start, sp := range g.spans {
		for _, l := range sp.lengths() {
			n, _ := sp.get(l)
			if n == keep {
				continue
			}
			if start < hi && lo < start+l {
				n.ResetOverride()
			}
		}
	}
}

// SpanNodes returns the Nodes starting at position, shortest span first,
// for inspection and tests. The returned Nodes are the grid's own; callers
// must not hold them across a mutation.
func (g *ReadingGrid) SpanNodes(position int) []*Node {
	if position < 0 || position >= len(g.spans) {
		return nil
	}
	sp := g.spans[position]
	out := make([]*Node, 0, len(sp.nodes))
	for _, l := range sp.lengths() {
		n, _ := sp.get(l)
		out = append(out, n)
	}
	return out
}

// CandidatesAt lists every value of every Node covering position, shortest
// span first and highest-scoring value first within a span, with
// (reading, value) duplicates across overlapping spans suppressed.
func (g *ReadingGrid) CandidatesAt(position int) []Candidate {
	type match struct {
		j, length int
		node      *Node
	}
	var matches []match
	upper := position
	if upper >= len(g.spans) {
		upper = len(g.spans) - 1
	}
	for j := 0; j <= upper; j++ {
		sp := g.spans[j]
		for length := 1; length <= MaxSpan; length++ {
			if !(j <= position && position < j+length) {
				continue
			}
			if n, ok := sp.get(length); ok {
				matches = append(matches, match{j, length, n})
			}
		}
	}
	// Stable sort, shortest span wins ties by original (left-to-right) order.
	for i := 1; i < len(matches); i++ {
		for k := i; k > 0 && matches[k].length < matches[k-1].length; k-- {
			matches[k], matches[k-1] = matches[k-1], matches[k]
		}
	}

	seen := make(map[[2]string]bool)
	var out []Candidate
	for _, m := range matches {
		for _, u := range m.node.Unigrams {
			key := [2]string{string(m.node.Reading), u.Value}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Candidate{ReadingKey: m.node.Reading, Value: u.Value})
		}
	}
	return out
}
