package keyhandler

import (
	"strconv"

	"github.com/clipperhouse/bopomofo/reading"
)

// CtrlEnterBehavior selects what Ctrl+Enter commits instead of the plain
// walk values.
type CtrlEnterBehavior int

const (
	CtrlEnterDisabled CtrlEnterBehavior = iota
	CtrlEnterOutputBpmfReadings
	CtrlEnterOutputHTMLRubyText
)

// Settings governs KeyHandler behavior. Construct with DefaultSettings and
// override fields, or feed a host-supplied flat map through Apply.
type Settings struct {
	SelectPhraseAfterCursorAsCandidate   bool
	MoveCursorAfterSelection             bool
	PutLowercaseLettersToComposingBuffer bool
	EscKeyClearsEntireComposingBuffer    bool
	CtrlEnterBehavior                    CtrlEnterBehavior
	KeyboardLayout                       reading.Layout
	OnAddNewPhrase                       func(phrase string)
}

// DefaultSettings returns the Standard-layout, conservative defaults.
func DefaultSettings() Settings {
	return Settings{
		KeyboardLayout: reading.NewStandardLayout(),
	}
}

// Apply merges a flat host-supplied configuration map into s. Unknown keys
// are ignored; a key with a malformed value is left at its current
// setting rather than aborting the whole merge.
func (s *Settings) Apply(config map[string]string) {
	if b, ok := parseBool(config, "select_phrase_after_cursor_as_candidate"); ok {
		s.SelectPhraseAfterCursorAsCandidate = b
	}
	if b, ok := parseBool(config, "move_cursor_after_selection"); ok {
		s.MoveCursorAfterSelection = b
	}
	if b, ok := parseBool(config, "put_lowercase_letters_to_composing_buffer"); ok {
		s.PutLowercaseLettersToComposingBuffer = b
	}
	if b, ok := parseBool(config, "esc_key_clears_entire_composing_buffer"); ok {
		s.EscKeyClearsEntireComposingBuffer = b
	}
	if v, ok := config["ctrl_enter_behavior"]; ok {
		switch v {
		case "Disabled":
			s.CtrlEnterBehavior = CtrlEnterDisabled
		case "OutputBpmfReadings":
			s.CtrlEnterBehavior = CtrlEnterOutputBpmfReadings
		case "OutputHTMLRubyText":
			s.CtrlEnterBehavior = CtrlEnterOutputHTMLRubyText
		}
	}
	if v, ok := config["keyboard_layout"]; ok {
		if layout, ok := reading.LayoutByName(v); ok {
			s.KeyboardLayout = layout
		}
	}
}

func parseBool(config map[string]string, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
