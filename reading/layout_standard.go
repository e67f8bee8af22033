package reading

// NewStandardLayout returns the conventional Bopomofo keyboard layout,
// the one silk-screened on Taiwanese keyboards (e.g. "5j/" -> ㄓㄨㄥ,
// "jp6" -> ㄨㄣˊ).
func NewStandardLayout() Layout {
	return &staticTable{
		name: "Standard",
		bind: map[byte]binding{
			'1': {KindConsonant, "ㄅ"},
			'q': {KindConsonant, "ㄆ"},
			'a': {KindConsonant, "ㄇ"},
			'z': {KindConsonant, "ㄈ"},
			'2': {KindConsonant, "ㄉ"},
			'w': {KindConsonant, "ㄊ"},
			's': {KindConsonant, "ㄋ"},
			'x': {KindConsonant, "ㄌ"},
			'e': {KindConsonant, "ㄍ"},
			'd': {KindConsonant, "ㄎ"},
			'c': {KindConsonant, "ㄏ"},
			'r': {KindConsonant, "ㄐ"},
			'f': {KindConsonant, "ㄑ"},
			'v': {KindConsonant, "ㄒ"},
			'5': {KindConsonant, "ㄓ"},
			't': {KindConsonant, "ㄔ"},
			'g': {KindConsonant, "ㄕ"},
			'b': {KindConsonant, "ㄖ"},
			'y': {KindConsonant, "ㄗ"},
			'h': {KindConsonant, "ㄘ"},
			'n': {KindConsonant, "ㄙ"},

			'u': {KindMedial, "ㄧ"},
			'j': {KindMedial, "ㄨ"},
			'm': {KindMedial, "ㄩ"},

			'8': {KindVowel, "ㄚ"},
			'i': {KindVowel, "ㄛ"},
			'k': {KindVowel, "ㄜ"},
			',': {KindVowel, "ㄝ"},
			'9': {KindVowel, "ㄞ"},
			'o': {KindVowel, "ㄟ"},
			'l': {KindVowel, "ㄠ"},
			'.': {KindVowel, "ㄡ"},
			'0': {KindVowel, "ㄢ"},
			'p': {KindVowel, "ㄣ"},
			';': {KindVowel, "ㄤ"},
			'/': {KindVowel, "ㄥ"},
			'-': {KindVowel, "ㄦ"},

			'3': {KindTone, Tone3},
			'4': {KindTone, Tone4},
			'6': {KindTone, Tone2},
			'7': {KindTone, Tone5},
		},
	}
}
