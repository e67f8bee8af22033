package grid

import "github.com/clipperhouse/bopomofo/reading"

// OverrideStatus records why a Node's CurrentIndex no longer points at the
// language model's top-ranked unigram.
type OverrideStatus int

const (
	OverrideNone OverrideStatus = iota
	// OverrideHighScore is a soft pin (e.g. from UserOverrideModel replay).
	// It wins the walk and is cleared by the same events as
	// OverrideSpecified: an overlapping override, or a grid mutation that
	// rebuilds its own Node. Rebuilding another span that merely overlaps
	// it leaves it in place.
	OverrideHighScore
	// OverrideSpecified is a hard pin from an explicit user selection: it
	// survives unrelated grid mutations and only yields to another
	// override whose span overlaps it.
	OverrideSpecified
)

// overrideScore is the synthetic score an overridden Node reports to the
// walker, chosen well above any realistic language-model log-probability so
// an override always wins its span.
const overrideScore = 1e8

// MaxSpan bounds how many readings a single Node may cover.
const MaxSpan = 8

// Node is one candidate segmentation choice: a run of up to MaxSpan readings, the
// ranked list of values the language model offers for it, and which of
// those values is currently selected.
type Node struct {
	Reading        reading.Reading
	SpanLength     int
	Unigrams       []reading.Unigram
	CurrentIndex   int
	OverrideStatus OverrideStatus
	seq            int64
}

func newNode(r reading.Reading, spanLength int, unigrams []reading.Unigram, seq int64) *Node {
	return &Node{Reading: r, SpanLength: spanLength, Unigrams: unigrams, seq: seq}
}

// Value is the currently selected candidate string.
func (n *Node) Value() string {
	return n.Unigrams[n.CurrentIndex].Value
}

// Score is the value the walker should add to a path through this Node.
func (n *Node) Score() float64 {
	if n.OverrideStatus != OverrideNone {
		return overrideScore
	}
	return n.Unigrams[n.CurrentIndex].Score
}

// ResetOverride drops back to the language model's top-ranked candidate.
func (n *Node) ResetOverride() {
	n.CurrentIndex = 0
	n.OverrideStatus = OverrideNone
}

// SelectValue pins value as current, tagged with status. Reports false
// (leaving the node untouched) if value isn't among the node's candidates.
func (n *Node) SelectValue(value string, status OverrideStatus) bool {
	for i, u := range n.Unigrams {
		if u.Value == value {
			n.CurrentIndex = i
			n.OverrideStatus = status
			return true
		}
	}
	return false
}

// Candidates is the node's ranked value list, highest score first.
func (n *Node) Candidates() []reading.Unigram {
	return n.Unigrams
}
