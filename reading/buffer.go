package reading

// Outcome classifies the result of feeding one key to a Buffer.
type Outcome int

const (
	// NoOp means the key wasn't consumed; the caller should handle it
	// (e.g. an empty buffer seeing SPACE, which belongs to candidate
	// selection, not syllable composition).
	NoOp Outcome = iota
	// Updated means the key filled or replaced a slot; composition
	// continues.
	Updated
	// Composed means the key completed a syllable; Buffer.Receive's
	// second return value holds the canonical Reading.
	Composed
	// Invalid means the key would produce an invalid combination; the
	// buffer is left unchanged.
	Invalid
)

const spaceKey = ' '

// Buffer assembles one Bopomofo syllable at a time from keystrokes, per a
// chosen Layout. Slot-based layouts (Standard, Eten, Hsu, Eten26, IBM) fill
// the consonant/medial/vowel/tone slots directly; HanyuPinyin accumulates
// raw ASCII spelling instead (see SpellingLayout).
type Buffer struct {
	layout Layout

	consonant string
	medial    string
	vowel     string
	tone      string

	spelling []byte
}

// NewBuffer creates an empty Buffer using layout.
func NewBuffer(layout Layout) *Buffer {
	return &Buffer{layout: layout}
}

// Layout returns the buffer's current keyboard layout.
func (b *Buffer) Layout() Layout { return b.layout }

// SetLayout switches the keyboard layout, clearing any in-progress syllable.
func (b *Buffer) SetLayout(layout Layout) {
	b.layout = layout
	b.Clear()
}

// IsEmpty reports whether the buffer holds no partial syllable.
func (b *Buffer) IsEmpty() bool {
	if b.usesSpelling() {
		return len(b.spelling) == 0
	}
	return b.consonant == "" && b.medial == "" && b.vowel == "" && b.tone == ""
}

// Clear discards any partial syllable.
func (b *Buffer) Clear() {
	b.consonant, b.medial, b.vowel, b.tone = "", "", "", ""
	b.spelling = b.spelling[:0]
}

func (b *Buffer) usesSpelling() bool {
	_, ok := b.layout.(SpellingLayout)
	return ok
}

// Accepts reports whether Receive would treat key as part of syllable
// composition right now. Mid-syllable every printable key belongs to the
// buffer (invalid combinations are Receive's to reject); with an empty
// buffer only keys the layout binds to a component start one. SPACE on an
// empty buffer is never accepted -- it belongs to candidate selection.
func (b *Buffer) Accepts(key byte) bool {
	if !b.IsEmpty() {
		return true
	}
	if b.usesSpelling() {
		return key >= 'a' && key <= 'z'
	}
	if key == spaceKey {
		return false
	}
	_, _, ok := b.layout.Resolve(b, key)
	return ok
}

// Receive applies one ASCII key under the current layout.
func (b *Buffer) Receive(key byte) (Outcome, Reading) {
	if sl, ok := b.layout.(SpellingLayout); ok {
		return b.receiveSpelling(sl, key)
	}
	return b.receiveSlotted(key)
}

func (b *Buffer) receiveSlotted(key byte) (Outcome, Reading) {
	if key == spaceKey {
		if b.IsEmpty() {
			return NoOp, ""
		}
		reading := b.composeSlotted()
		b.Clear()
		return Composed, reading
	}

	kind, value, ok := b.layout.Resolve(b, key)
	if !ok {
		return Invalid, ""
	}

	switch kind {
	case KindConsonant:
		b.consonant = value
	case KindMedial:
		b.medial = value
	case KindVowel:
		b.vowel = value
	case KindTone:
		if b.IsEmpty() {
			return Invalid, ""
		}
		b.tone = value
		reading := b.composeSlotted()
		b.Clear()
		return Composed, reading
	}
	return Updated, ""
}

func (b *Buffer) composeSlotted() Reading {
	return Reading(b.consonant + b.medial + b.vowel + b.tone)
}

func (b *Buffer) receiveSpelling(sl SpellingLayout, key byte) (Outcome, Reading) {
	switch {
	case key >= 'a' && key <= 'z':
		b.spelling = append(b.spelling, key)
		return Updated, ""
	case key >= '1' && key <= '5':
		if len(b.spelling) == 0 {
			return Invalid, ""
		}
		reading, ok := sl.ComposeSpelling(string(b.spelling), key)
		if !ok {
			return Invalid, ""
		}
		b.Clear()
		return Composed, reading
	case key == spaceKey:
		if len(b.spelling) == 0 {
			return NoOp, ""
		}
		reading, ok := sl.ComposeSpelling(string(b.spelling), '1')
		if !ok {
			return Invalid, ""
		}
		b.Clear()
		return Composed, reading
	default:
		return Invalid, ""
	}
}

// Backspace clears the last filled slot in syllable order (tone, then
// vowel, then medial, then consonant), regardless of the order the keys
// were typed in, or the last spelled letter in SpellingLayout mode.
// Reports false if the buffer was already empty.
func (b *Buffer) Backspace() bool {
	if b.usesSpelling() {
		if len(b.spelling) == 0 {
			return false
		}
		b.spelling = b.spelling[:len(b.spelling)-1]
		return true
	}
	switch {
	case b.tone != "":
		b.tone = ""
	case b.vowel != "":
		b.vowel = ""
	case b.medial != "":
		b.medial = ""
	case b.consonant != "":
		b.consonant = ""
	default:
		return false
	}
	return true
}

// ComposingText renders the in-progress syllable for display.
func (b *Buffer) ComposingText() string {
	if b.usesSpelling() {
		return string(b.spelling)
	}
	return b.consonant + b.medial + b.vowel + b.tone
}
