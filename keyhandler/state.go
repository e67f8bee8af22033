package keyhandler

import "github.com/clipperhouse/bopomofo/grid"

// InputState is a closed set of states the host must match exhaustively.
// Unlike an open class hierarchy, adding a variant is a compile-time break
// for every switch that handles it, which is the point.
type InputState interface {
	isInputState()
}

// StateEmpty is the resting state: no composition in progress. A host
// entering it from a non-empty previous state commits that state's
// composing buffer first.
type StateEmpty struct{}

func (StateEmpty) isInputState() {}

// StateEmptyIgnoringPrevious is the ground state reached by an explicit
// discard (reset, full-buffer ESC, deleting the last reading): the host
// must drop any pending composition instead of committing it.
type StateEmptyIgnoringPrevious struct{}

func (StateEmptyIgnoringPrevious) isInputState() {}

// StateInputting carries the composing buffer text and the UTF-8
// code-unit cursor offset within it.
type StateInputting struct {
	ComposingText string
	CursorIndex   int
}

func (StateInputting) isInputState() {}

// StateChoosingCandidate snapshots the candidates available at
// EffectivePosition, as enumerated at the moment SPACE or a digit key was
// pressed.
type StateChoosingCandidate struct {
	ComposingText     string
	CursorIndex       int
	Candidates        []grid.Candidate
	EffectivePosition int
}

func (StateChoosingCandidate) isInputState() {}

// StateMarking is the shift-cursor phrase-marking mode. Start/End are
// grid reading indices and may be in either order; call Range for the
// normalized bounds. MarkedText is the composed word text of the marked
// span (what on_add_new_phrase receives); Reading is the joined Bopomofo
// key for the same span, so a persister can write the
// "<value> <reading>" pair.
type StateMarking struct {
	ComposingText string
	CursorIndex   int
	Start         int
	End           int
	MarkedText    string
	Reading       string
	Acceptable    bool
}

func (StateMarking) isInputState() {}

// Range returns Start/End normalized so Low <= High.
func (s StateMarking) Range() (low, high int) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// StateCommitting is a one-shot state: the host is expected to insert
// Text into the application and immediately move on (typically back to
// StateEmpty on the next keystroke).
type StateCommitting struct {
	Text string
}

func (StateCommitting) isInputState() {}

// StateSelectingDictionary wraps a Parent state by value while a
// secondary dictionary-lookup menu is open, per the "secondary menus wrap
// a parent state by ownership" design note.
type StateSelectingDictionary struct {
	Parent     InputState
	Selection  string
	ServiceURL string
}

func (StateSelectingDictionary) isInputState() {}
