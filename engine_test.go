package bopomofo_test

import (
	"testing"

	"github.com/clipperhouse/bopomofo"
	"github.com/clipperhouse/bopomofo/keyhandler"
)

func TestEngineCommitReturnsToEmpty(t *testing.T) {
	lm := fakeModel{
		"ㄓㄨㄥ": {{Value: "中", Score: -2}},
	}
	engine := bopomofo.New(lm, keyhandler.DefaultSettings())

	for _, key := range "5j/ " {
		engine.Handle(keyhandler.NewAsciiKey(byte(key), false, false), func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {})
	}
	if _, ok := engine.State().(keyhandler.StateInputting); !ok {
		t.Fatalf("state before commit = %#v, want StateInputting", engine.State())
	}

	var committed string
	engine.Handle(keyhandler.NewNamedKey(keyhandler.KeyEnter, false, false),
		func(s keyhandler.InputState) {
			if st, ok := s.(keyhandler.StateCommitting); ok {
				committed = st.Text
			}
		},
		func(keyhandler.ErrorKind) { t.Fatal("unexpected error on commit") })

	if committed != "中" {
		t.Fatalf("committed text = %q, want 中", committed)
	}
	if _, ok := engine.State().(keyhandler.StateEmpty); !ok {
		t.Fatalf("state after commit = %#v, want StateEmpty", engine.State())
	}
}

func TestEngineResetClearsComposition(t *testing.T) {
	lm := fakeModel{"ㄓㄨㄥ": {{Value: "中", Score: -2}}}
	engine := bopomofo.New(lm, keyhandler.DefaultSettings())

	for _, key := range "5j/" {
		engine.Handle(keyhandler.NewAsciiKey(byte(key), false, false), func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {})
	}

	state := engine.Reset()
	if _, ok := state.(keyhandler.StateEmptyIgnoringPrevious); !ok {
		t.Fatalf("Reset() = %#v, want StateEmptyIgnoringPrevious (no commit of the abandoned buffer)", state)
	}
	if _, ok := engine.State().(keyhandler.StateEmpty); !ok {
		t.Fatalf("State() after Reset = %#v, want StateEmpty", engine.State())
	}
}

func TestEngineCandidateSelectedFromPanel(t *testing.T) {
	lm := fakeModel{
		"ㄓㄨㄥ": {{Value: "中", Score: -2}, {Value: "終", Score: -3}},
	}
	engine := bopomofo.New(lm, keyhandler.DefaultSettings())
	for _, key := range "5j/  " { // compose ㄓㄨㄥ, then SPACE opens the panel
		engine.Handle(keyhandler.NewAsciiKey(byte(key), false, false), func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {})
	}

	choosing, ok := engine.State().(keyhandler.StateChoosingCandidate)
	if !ok {
		t.Fatalf("state = %#v, want StateChoosingCandidate", engine.State())
	}
	idx := -1
	for i, c := range choosing.Candidates {
		if c.Value == "終" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("候選 終 missing from candidates")
	}

	if !engine.CandidateSelected(idx, func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) { t.Fatal("unexpected error") }) {
		t.Fatal("CandidateSelected should report true while choosing")
	}
	st, ok := engine.State().(keyhandler.StateInputting)
	if !ok || st.ComposingText != "終" {
		t.Fatalf("state after panel selection = %#v, want ComposingText 終", engine.State())
	}

	if engine.CandidateSelected(0, func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {}) {
		t.Fatal("CandidateSelected outside ChoosingCandidate should report false")
	}
}

func TestEngineCandidatePanelCancelled(t *testing.T) {
	lm := fakeModel{"ㄓㄨㄥ": {{Value: "中", Score: -2}}}
	engine := bopomofo.New(lm, keyhandler.DefaultSettings())
	for _, key := range "5j/  " {
		engine.Handle(keyhandler.NewAsciiKey(byte(key), false, false), func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {})
	}
	if _, ok := engine.State().(keyhandler.StateChoosingCandidate); !ok {
		t.Fatalf("state = %#v, want StateChoosingCandidate", engine.State())
	}
	engine.CandidatePanelCancelled(func(keyhandler.InputState) {})
	st, ok := engine.State().(keyhandler.StateInputting)
	if !ok || st.ComposingText != "中" {
		t.Fatalf("state after cancel = %#v, want Inputting 中", engine.State())
	}
}

func TestEngineApplySettingsSwitchesLayout(t *testing.T) {
	lm := fakeModel{}
	engine := bopomofo.New(lm, keyhandler.DefaultSettings())
	engine.ApplySettings(map[string]string{"keyboard_layout": "Eten"})
	// Under Eten ',' is the consonant ㄓ; under Standard it is the vowel ㄝ.
	var composing string
	engine.Handle(keyhandler.NewAsciiKey(',', false, false), func(s keyhandler.InputState) {
		if st, ok := s.(keyhandler.StateInputting); ok {
			composing = st.ComposingText
		}
	}, func(keyhandler.ErrorKind) { t.Fatal("unexpected error on ','") })
	if composing != "ㄓ" {
		t.Fatalf("composing after ',' under Eten = %q, want ㄓ", composing)
	}
	engine.Handle(keyhandler.NewNamedKey(keyhandler.KeyEsc, false, false), func(keyhandler.InputState) {}, func(keyhandler.ErrorKind) {})
}
