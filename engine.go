package bopomofo

import (
	"github.com/clipperhouse/bopomofo/keyhandler"
	"github.com/clipperhouse/bopomofo/languagemodel"
)

// Engine is the host-facing facade: it owns the current InputState and
// hands every keystroke to a keyhandler.KeyHandler. The engine is
// single-threaded and event-driven: every exported method is expected to
// be called in sequence from the host's input-event thread, and nothing
// here suspends or needs external synchronization.
type Engine struct {
	handler *keyhandler.KeyHandler
	state   keyhandler.InputState
}

// New builds an Engine over lm with settings. Use languagemodel.NewDynamic
// if the LM needs to be swapped later (see lmfile.Loader).
func New(lm languagemodel.LanguageModel, settings keyhandler.Settings) *Engine {
	return &Engine{
		handler: keyhandler.New(lm, settings),
		state:   keyhandler.StateEmpty{},
	}
}

// State returns the engine's current InputState.
func (e *Engine) State() keyhandler.InputState {
	return e.state
}

// ApplySettings merges a host-supplied flat configuration map into the
// handler's Settings.
func (e *Engine) ApplySettings(config map[string]string) {
	e.handler.ApplySettings(config)
}

// Reset discards all composition. The returned state is
// StateEmptyIgnoringPrevious (the host must not commit the abandoned
// buffer); the engine itself comes to rest at StateEmpty.
func (e *Engine) Reset() keyhandler.InputState {
	state := e.handler.Reset()
	e.state = keyhandler.StateEmpty{}
	return state
}

// Handle feeds one keystroke through the engine. The return value is
// "absorbed" (true) vs. "pass through" (false); stateCB fires at most
// once, errorCB fires at most once, and the two are mutually exclusive
// except that stateCB may fire once alongside a false return
// (pass-through after internal bookkeeping).
//
// A StateCommitting or StateEmptyIgnoringPrevious the handler emits is
// observed only long enough to advance the engine to StateEmpty
// afterward: commit (or discard), then rest.
func (e *Engine) Handle(key keyhandler.Key, stateCB func(keyhandler.InputState), errorCB func(keyhandler.ErrorKind)) bool {
	var next keyhandler.InputState
	got := false
	absorbed := e.handler.Handle(key, e.state, func(s keyhandler.InputState) {
		next = s
		got = true
		stateCB(s)
	}, errorCB)

	if got {
		switch next.(type) {
		case keyhandler.StateCommitting, keyhandler.StateEmptyIgnoringPrevious:
			e.state = keyhandler.StateEmpty{}
		default:
			e.state = next
		}
	}
	return absorbed
}

// CandidateSelected applies the index-th candidate of the current
// ChoosingCandidate state, as reported by a host-drawn panel. Reports
// false if the engine isn't currently choosing.
func (e *Engine) CandidateSelected(index int, stateCB func(keyhandler.InputState), errorCB func(keyhandler.ErrorKind)) bool {
	st, ok := e.state.(keyhandler.StateChoosingCandidate)
	if !ok {
		return false
	}
	return e.handler.CandidateSelected(st, index, func(s keyhandler.InputState) {
		e.state = s
		stateCB(s)
	}, errorCB)
}

// CandidatePanelCancelled dismisses a host-drawn candidate panel without
// mutating the composition.
func (e *Engine) CandidatePanelCancelled(stateCB func(keyhandler.InputState)) {
	if _, ok := e.state.(keyhandler.StateChoosingCandidate); !ok {
		return
	}
	e.handler.CandidatePanelCancelled(func(s keyhandler.InputState) {
		e.state = s
		stateCB(s)
	})
}
