package keyhandler

// KeyCode names a non-printable key. Printable keys travel through
// KeyAscii instead, carrying the byte itself.
type KeyCode int

const (
	KeyAscii KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUnknown
)

// Key is one keystroke delivered by the host.
type Key struct {
	Code   KeyCode
	Ascii  byte
	Shift  bool
	Ctrl   bool
	NumPad bool
}

// NewAsciiKey builds a printable-character key.
func NewAsciiKey(ascii byte, shift, ctrl bool) Key {
	return Key{Code: KeyAscii, Ascii: ascii, Shift: shift, Ctrl: ctrl}
}

// NewNamedKey builds a non-printable key (arrows, HOME/END, ENTER, ESC,
// BACKSPACE, DELETE, TAB).
func NewNamedKey(code KeyCode, shift, ctrl bool) Key {
	return Key{Code: code, Shift: shift, Ctrl: ctrl}
}

// IsPrintableASCII reports whether the key carries a printable character,
// space included.
func (k Key) IsPrintableASCII() bool {
	return k.Code == KeyAscii && k.Ascii >= 0x20 && k.Ascii < 0x7f
}

// IsSpace reports the space bar specifically.
func (k Key) IsSpace() bool {
	return k.Code == KeyAscii && k.Ascii == ' '
}

// IsDigit reports '0'-'9'.
func (k Key) IsDigit() bool {
	return k.Code == KeyAscii && k.Ascii >= '0' && k.Ascii <= '9'
}

// IsUppercaseLetter reports 'A'-'Z'.
func (k Key) IsUppercaseLetter() bool {
	return k.Code == KeyAscii && k.Ascii >= 'A' && k.Ascii <= 'Z'
}

// IsCursor reports LEFT/RIGHT/HOME/END.
func (k Key) IsCursor() bool {
	switch k.Code {
	case KeyLeft, KeyRight, KeyHome, KeyEnd:
		return true
	}
	return false
}

// IsDelete reports BACKSPACE/DELETE.
func (k Key) IsDelete() bool {
	return k.Code == KeyBackspace || k.Code == KeyDelete
}
