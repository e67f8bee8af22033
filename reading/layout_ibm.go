package reading

// NewIBMLayout returns the IBM Bopomofo keyboard layout.
func NewIBMLayout() Layout {
	return &staticTable{
		name: "IBM",
		bind: map[byte]binding{
			'1': {KindConsonant, "ㄅ"},
			'2': {KindConsonant, "ㄆ"},
			'3': {KindConsonant, "ㄇ"},
			'4': {KindConsonant, "ㄈ"},
			'5': {KindConsonant, "ㄉ"},
			'6': {KindConsonant, "ㄊ"},
			'7': {KindConsonant, "ㄋ"},
			'8': {KindConsonant, "ㄌ"},
			'9': {KindConsonant, "ㄍ"},
			'0': {KindConsonant, "ㄎ"},
			'q': {KindConsonant, "ㄏ"},
			'w': {KindConsonant, "ㄐ"},
			'e': {KindConsonant, "ㄑ"},
			'r': {KindConsonant, "ㄒ"},
			't': {KindConsonant, "ㄓ"},
			'y': {KindConsonant, "ㄔ"},
			'u': {KindConsonant, "ㄕ"},
			'i': {KindConsonant, "ㄖ"},
			'o': {KindConsonant, "ㄗ"},
			'p': {KindConsonant, "ㄘ"},
			'a': {KindConsonant, "ㄙ"},

			's': {KindMedial, "ㄧ"},
			'd': {KindMedial, "ㄨ"},
			'f': {KindMedial, "ㄩ"},

			'g': {KindVowel, "ㄚ"},
			'h': {KindVowel, "ㄛ"},
			'j': {KindVowel, "ㄜ"},
			'k': {KindVowel, "ㄝ"},
			'l': {KindVowel, "ㄞ"},
			';': {KindVowel, "ㄟ"},
			'z': {KindVowel, "ㄠ"},
			'x': {KindVowel, "ㄡ"},
			'c': {KindVowel, "ㄢ"},
			'v': {KindVowel, "ㄣ"},
			'b': {KindVowel, "ㄤ"},
			'n': {KindVowel, "ㄥ"},
			'm': {KindVowel, "ㄦ"},

			',': {KindTone, Tone2},
			'.': {KindTone, Tone3},
			'/': {KindTone, Tone4},
			'-': {KindTone, Tone5},
		},
	}
}
