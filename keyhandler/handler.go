package keyhandler

import (
	"strings"
	"time"

	"github.com/clipperhouse/bopomofo/grid"
	"github.com/clipperhouse/bopomofo/languagemodel"
	"github.com/clipperhouse/bopomofo/reading"
)

// StateCallback and ErrorCallback are the two host-facing callbacks
// Handle may invoke: each at most once, never both for the same key.
type StateCallback func(InputState)
type ErrorCallback func(ErrorKind)

// KeyHandler is the keystroke state machine: it owns a reading.Buffer and
// a grid.ReadingGrid, and turns one Key plus the caller-held InputState
// into the next InputState.
type KeyHandler struct {
	settings Settings

	buffer *reading.Buffer
	grid   *grid.ReadingGrid
	users  *languagemodel.UserOverrideModel

	now func() time.Time
}

// New builds a KeyHandler over lm, applying ScoreRankedLanguageModel
// internally so every Node's candidate list is already rank-sorted.
func New(lm languagemodel.LanguageModel, settings Settings) *KeyHandler {
	if settings.KeyboardLayout == nil {
		settings.KeyboardLayout = reading.NewStandardLayout()
	}
	return &KeyHandler{
		settings: settings,
		buffer:   reading.NewBuffer(settings.KeyboardLayout),
		grid:     grid.New(languagemodel.NewScoreRankedLanguageModel(lm)),
		users:    languagemodel.NewUserOverrideModel(0, 0),
		now:      time.Now,
	}
}

// ApplySettings merges config into the handler's Settings and switches
// the reading buffer's layout if requested.
func (h *KeyHandler) ApplySettings(config map[string]string) {
	h.settings.Apply(config)
	h.buffer.SetLayout(h.settings.KeyboardLayout)
}

// Reset discards the grid and reading buffer. The returned state is
// StateEmptyIgnoringPrevious so the host doesn't commit the abandoned
// composition.
func (h *KeyHandler) Reset() InputState {
	h.grid.Clear()
	h.buffer.Clear()
	return StateEmptyIgnoringPrevious{}
}

// Handle applies one keystroke. It returns true if the key was absorbed
// (the host should not also use it for its own shortcuts).
func (h *KeyHandler) Handle(key Key, state InputState, stateCB StateCallback, errorCB ErrorCallback) bool {
	switch st := state.(type) {
	case StateChoosingCandidate:
		return h.handleChoosingCandidate(key, st, stateCB, errorCB)
	case StateMarking:
		return h.handleMarking(key, st, stateCB, errorCB)
	default:
		return h.handleInputting(key, stateCB, errorCB)
	}
}

// handleInputting is the top-level dispatch chain, checked in priority
// order.
func (h *KeyHandler) handleInputting(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	// 1. The reading buffer claims the key: either a syllable is already
	// mid-composition, or the layout binds this key to a component that
	// starts one.
	if key.IsPrintableASCII() && !key.Ctrl && h.buffer.Accepts(key.Ascii) {
		return h.feedBuffer(key, stateCB, errorCB)
	}

	// 2. Cursor keys.
	if key.IsCursor() {
		return h.handleCursorKeys(key, stateCB, errorCB)
	}

	// 3. Delete keys.
	if key.IsDelete() {
		return h.handleDeleteKeys(key, stateCB, errorCB)
	}

	// 4. SPACE or a digit key with a non-empty grid: open candidate
	// selection.
	if (key.IsSpace() || key.IsDigit()) && h.grid.Length() > 0 {
		return h.enterChoosingCandidate(stateCB, errorCB)
	}

	// 5. ENTER: commit.
	if key.Code == KeyEnter {
		return h.commit(key, stateCB, errorCB)
	}

	// 6. ESC.
	if key.Code == KeyEsc {
		return h.handleEsc(stateCB)
	}

	// 7. Punctuation, looked up as a pseudo-reading, only while the
	// reading buffer is empty (a mid-syllable comma makes no sense).
	if h.buffer.IsEmpty() && key.IsPrintableASCII() && !key.IsSpace() {
		position := h.grid.Cursor()
		r := punctuationReading(key)
		if h.grid.InsertReading(r) {
			h.applyUserOverrideSuggestion(position, r)
			h.walkAndEmitInputting(stateCB)
			return true
		}
	}

	// 8. Uppercase ASCII letter.
	if key.IsUppercaseLetter() {
		return h.handleUppercaseLetter(key, stateCB, errorCB)
	}

	// 9. SHIFT+cursor is handled inside item 2; nothing reaches here.

	// 10. Pass-through.
	return false
}

func (h *KeyHandler) feedBuffer(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	outcome, r := h.buffer.Receive(key.Ascii)
	switch outcome {
	case reading.Composed:
		position := h.grid.Cursor()
		if !h.grid.InsertReading(r) {
			errorCB(ErrInvalidReading)
			return true
		}
		h.applyUserOverrideSuggestion(position, r)
		h.walkAndEmitInputting(stateCB)
		return true
	case reading.Updated:
		h.emitCurrentState(stateCB)
		return true
	default:
		errorCB(ErrInvalidReading)
		return true
	}
}

func (h *KeyHandler) handleCursorKeys(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	if !h.buffer.IsEmpty() {
		errorCB(ErrEmptyComposition)
		return true
	}

	cursor := h.grid.Cursor()
	var target int
	switch key.Code {
	case KeyLeft:
		target = cursor - 1
	case KeyRight:
		target = cursor + 1
	case KeyHome:
		target = 0
	case KeyEnd:
		target = h.grid.Length()
	}

	if key.Shift {
		if !h.grid.SetCursor(target) {
			errorCB(ErrBoundaryHit)
			return true
		}
		h.emitMarking(cursor, stateCB)
		return true
	}

	if !h.grid.SetCursor(target) {
		errorCB(ErrBoundaryHit)
		return true
	}
	h.emitCurrentState(stateCB)
	return true
}

func (h *KeyHandler) handleDeleteKeys(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	if !h.buffer.IsEmpty() {
		if key.Code == KeyBackspace {
			h.buffer.Backspace()
			h.emitCurrentState(stateCB)
			return true
		}
		errorCB(ErrInvalidReading)
		return true
	}

	var ok bool
	if key.Code == KeyBackspace {
		ok = h.grid.DeleteReadingBeforeCursor()
	} else {
		ok = h.grid.DeleteReadingAfterCursor()
	}
	if !ok {
		errorCB(ErrBoundaryHit)
		return true
	}
	if h.grid.Length() == 0 {
		// Nothing left to compose; the previous Inputting buffer must not
		// be committed by the host.
		stateCB(StateEmptyIgnoringPrevious{})
		return true
	}
	h.walkAndEmitInputting(stateCB)
	return true
}

func (h *KeyHandler) enterChoosingCandidate(stateCB StateCallback, errorCB ErrorCallback) bool {
	effective := h.effectivePosition()
	candidates := h.grid.CandidatesAt(effective)
	if len(candidates) == 0 {
		errorCB(ErrNoCandidates)
		return true
	}
	text, cursor := h.renderComposing()
	stateCB(StateChoosingCandidate{
		ComposingText:     text,
		CursorIndex:       cursor,
		Candidates:        candidates,
		EffectivePosition: effective,
	})
	return true
}

func (h *KeyHandler) effectivePosition() int {
	cursor := h.grid.Cursor()
	if h.settings.SelectPhraseAfterCursorAsCandidate {
		if cursor >= h.grid.Length() {
			return h.grid.Length() - 1
		}
		return cursor
	}
	if cursor == 0 {
		return 0
	}
	return cursor - 1
}

func (h *KeyHandler) handleChoosingCandidate(key Key, st StateChoosingCandidate, stateCB StateCallback, errorCB ErrorCallback) bool {
	if key.Code == KeyEsc {
		h.emitCurrentState(stateCB)
		return true
	}

	var chosen *grid.Candidate
	switch {
	case key.IsDigit() && key.Ascii != '0':
		idx := int(key.Ascii - '1')
		if idx >= 0 && idx < len(st.Candidates) {
			chosen = &st.Candidates[idx]
		}
	case key.Code == KeyEnter:
		if len(st.Candidates) > 0 {
			chosen = &st.Candidates[0]
		}
	}
	if chosen == nil {
		errorCB(ErrNoCandidates)
		return true
	}

	h.selectCandidate(st, chosen, stateCB)
	return true
}

func (h *KeyHandler) selectCandidate(st StateChoosingCandidate, chosen *grid.Candidate, stateCB StateCallback) {
	h.grid.OverrideCandidate(st.EffectivePosition, chosen.Value, grid.OverrideSpecified)
	context := languagemodel.BuildContextKey(h.precedingValues(st.EffectivePosition), chosen.ReadingKey)
	h.users.Observe(context, chosen.Value, h.now())

	if h.settings.MoveCursorAfterSelection {
		h.grid.SetCursor(st.EffectivePosition + h.nodeLengthAt(st.EffectivePosition))
	}

	h.walkAndEmitInputting(stateCB)
}

// CandidateSelected applies the candidate at index in st, as reported by a
// host-drawn candidate panel, bypassing digit-key dispatch.
func (h *KeyHandler) CandidateSelected(st StateChoosingCandidate, index int, stateCB StateCallback, errorCB ErrorCallback) bool {
	if index < 0 || index >= len(st.Candidates) {
		errorCB(ErrNoCandidates)
		return true
	}
	h.selectCandidate(st, &st.Candidates[index], stateCB)
	return true
}

// CandidatePanelCancelled dismisses the panel without mutating the grid.
func (h *KeyHandler) CandidatePanelCancelled(stateCB StateCallback) {
	h.emitCurrentState(stateCB)
}

// applyUserOverrideSuggestion asks UserOverrideModel whether the context
// built from the walk immediately preceding position, plus r, matches a
// past selection within the decay window, and if so applies it as a
// HIGH_SCORE override rather than re-walking blind every time.
func (h *KeyHandler) applyUserOverrideSuggestion(position int, r reading.Reading) {
	context := languagemodel.BuildContextKey(h.precedingValues(position), r)
	value, ok := h.users.Suggest(context, h.now())
	if !ok {
		return
	}
	h.grid.OverrideCandidate(position, value, grid.OverrideHighScore)
}

// precedingValues returns the committed walk values strictly before
// position, for UserOverrideModel's context key.
func (h *KeyHandler) precedingValues(position int) []string {
	result := h.grid.Walk()
	var out []string
	pos := 0
	for _, n := range result.Nodes {
		if pos >= position {
			break
		}
		out = append(out, n.Value)
		pos += n.SpanLength
	}
	return out
}

// nodeLengthAt returns the span length of the walk node starting at
// position, or 1 if none starts there (CandidatesAt doesn't expose span
// length, so this re-derives it from the walk).
func (h *KeyHandler) nodeLengthAt(position int) int {
	result := h.grid.Walk()
	pos := 0
	for _, n := range result.Nodes {
		if pos == position {
			return n.SpanLength
		}
		pos += n.SpanLength
	}
	return 1
}

func (h *KeyHandler) handleMarking(key Key, st StateMarking, stateCB StateCallback, errorCB ErrorCallback) bool {
	if key.Code == KeyEsc {
		h.grid.SetCursor(st.End)
		h.emitCurrentState(stateCB)
		return true
	}
	if key.Code == KeyEnter {
		if !st.Acceptable {
			errorCB(ErrInvalidReading)
			return true
		}
		if h.settings.OnAddNewPhrase != nil {
			h.settings.OnAddNewPhrase(st.MarkedText)
		}
		h.grid.SetCursor(st.End)
		h.emitCurrentState(stateCB)
		return true
	}
	if key.IsCursor() && key.Shift {
		cursor := h.grid.Cursor()
		var target int
		switch key.Code {
		case KeyLeft:
			target = cursor - 1
		case KeyRight:
			target = cursor + 1
		case KeyHome:
			target = 0
		case KeyEnd:
			target = h.grid.Length()
		}
		if !h.grid.SetCursor(target) {
			errorCB(ErrBoundaryHit)
			return true
		}
		h.emitMarking(st.Start, stateCB)
		return true
	}
	// Anything else cancels marking back to plain composition.
	h.grid.SetCursor(st.End)
	h.emitCurrentState(stateCB)
	return false
}

func (h *KeyHandler) handleUppercaseLetter(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	lower := key.Ascii - 'A' + 'a'
	if h.settings.PutLowercaseLettersToComposingBuffer {
		if !h.grid.InsertReading(letterReading(lower)) {
			errorCB(ErrInvalidReading)
			return true
		}
		h.walkAndEmitInputting(stateCB)
		return true
	}

	result := h.grid.Walk()
	committed := joinValues(result.Nodes)
	h.grid.Clear()
	h.buffer.Clear()
	stateCB(StateCommitting{Text: committed + string(rune(key.Ascii))})
	return true
}

func (h *KeyHandler) handleEsc(stateCB StateCallback) bool {
	if h.buffer.IsEmpty() && h.grid.Length() == 0 {
		return false
	}
	if h.settings.EscKeyClearsEntireComposingBuffer {
		h.grid.Clear()
		h.buffer.Clear()
		stateCB(StateEmptyIgnoringPrevious{})
		return true
	}
	h.buffer.Clear()
	h.emitCurrentState(stateCB)
	return true
}

func (h *KeyHandler) commit(key Key, stateCB StateCallback, errorCB ErrorCallback) bool {
	if !h.buffer.IsEmpty() || h.grid.Length() == 0 {
		errorCB(ErrEmptyComposition)
		return true
	}

	result := h.grid.Walk()
	var text string
	if key.Ctrl && h.settings.CtrlEnterBehavior != CtrlEnterDisabled {
		switch h.settings.CtrlEnterBehavior {
		case CtrlEnterOutputBpmfReadings:
			text = joinReadings(result.Nodes, h.grid.Separator())
		case CtrlEnterOutputHTMLRubyText:
			text = buildRubyText(result.Nodes)
		}
	} else {
		text = joinValues(result.Nodes)
	}

	h.grid.Clear()
	h.buffer.Clear()
	stateCB(StateCommitting{Text: text})
	return true
}

func (h *KeyHandler) walkAndEmitInputting(stateCB StateCallback) {
	h.emitCurrentState(stateCB)
}

func (h *KeyHandler) emitMarking(anchor int, stateCB StateCallback) {
	start, end := anchor, h.grid.Cursor()
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	readings := h.grid.Readings()[lo:hi]
	text, cursor := h.renderComposing()
	stateCB(StateMarking{
		ComposingText: text,
		CursorIndex:   cursor,
		Start:         start,
		End:           end,
		MarkedText:    h.markedValue(lo, hi),
		Reading:       string(reading.Join(readings, h.grid.Separator())),
		Acceptable:    hi-lo >= 2,
	})
}

// markedValue extracts the walk's composed text covering readings
// [lo, hi). A node straddling a boundary contributes the runes that fall
// inside, assuming one rune per covered reading, which holds for the CJK
// values the language model produces; a node whose value doesn't divide
// that way is included whole.
func (h *KeyHandler) markedValue(lo, hi int) string {
	result := h.grid.Walk()
	var b strings.Builder
	pos := 0
	for _, n := range result.Nodes {
		next := pos + n.SpanLength
		if next > lo && pos < hi {
			runes := []rune(n.Value)
			from, to := 0, len(runes)
			if len(runes) == n.SpanLength {
				if lo > pos {
					from = lo - pos
				}
				if hi < next {
					to = hi - pos
				}
			}
			b.WriteString(string(runes[from:to]))
		}
		pos = next
	}
	return b.String()
}

// emitCurrentState recomputes StateEmpty/StateInputting from the grid and
// buffer and reports it through stateCB.
func (h *KeyHandler) emitCurrentState(stateCB StateCallback) {
	if h.grid.Length() == 0 && h.buffer.IsEmpty() {
		// Reached by discarding the last composed content (e.g. ESC
		// clearing a lone partial syllable) or by HOME/END with nothing
		// composed; never by a commit.
		stateCB(StateEmptyIgnoringPrevious{})
		return
	}
	text, cursor := h.renderComposing()
	stateCB(StateInputting{ComposingText: text, CursorIndex: cursor})
}

// renderComposing builds the composing-buffer text: committed walk values
// before the insertion point, the reading buffer's partial syllable, then
// the walk values after. The returned cursor is a UTF-8 code-unit (byte)
// offset.
func (h *KeyHandler) renderComposing() (string, int) {
	result := h.grid.Walk()
	cursor := h.grid.Cursor()

	var before, after strings.Builder
	pos := 0
	for _, n := range result.Nodes {
		if pos < cursor {
			before.WriteString(n.Value)
		} else {
			after.WriteString(n.Value)
		}
		pos += n.SpanLength
	}

	bufText := h.buffer.ComposingText()
	text := before.String() + bufText + after.String()
	return text, len(before.String()) + len(bufText)
}

func joinValues(nodes []grid.WalkNode) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Value)
	}
	return b.String()
}

func joinReadings(nodes []grid.WalkNode, sep string) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(n.Reading))
	}
	return b.String()
}

func buildRubyText(nodes []grid.WalkNode) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString("<ruby>")
		b.WriteString(n.Value)
		b.WriteString("<rt>")
		b.WriteString(string(n.Reading))
		b.WriteString("</rt></ruby>")
	}
	return b.String()
}
