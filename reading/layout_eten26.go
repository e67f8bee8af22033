package reading

// NewEten26Layout returns the Eten 26-key layout, a different packing of
// the same 37-symbol Bopomofo chart onto dual-role letter keys.
func NewEten26Layout() Layout {
	return &dualRoleTable{
		name: "ETen26",
		first: map[byte]binding{
			'b': {KindConsonant, "ㄅ"},
			'p': {KindConsonant, "ㄆ"},
			'm': {KindConsonant, "ㄇ"},
			'f': {KindConsonant, "ㄈ"},
			'd': {KindConsonant, "ㄉ"},
			't': {KindConsonant, "ㄊ"},
			'n': {KindConsonant, "ㄋ"},
			'l': {KindConsonant, "ㄌ"},
			'g': {KindConsonant, "ㄍ"},
			'k': {KindConsonant, "ㄎ"},
			'h': {KindConsonant, "ㄏ"},
			'j': {KindConsonant, "ㄐ"},
			'q': {KindConsonant, "ㄑ"},
			'x': {KindConsonant, "ㄒ"},
			'z': {KindConsonant, "ㄓ"},
			'c': {KindConsonant, "ㄔ"},
			'v': {KindConsonant, "ㄕ"},
			'r': {KindConsonant, "ㄖ"},
			'y': {KindConsonant, "ㄗ"},
			's': {KindConsonant, "ㄙ"},
			'u': {KindMedial, "ㄧ"},
			'w': {KindMedial, "ㄨ"},
			'e': {KindMedial, "ㄩ"},
		},
		second: map[byte]binding{
			'a': {KindVowel, "ㄚ"},
			'o': {KindVowel, "ㄛ"},
			'i': {KindVowel, "ㄝ"},
			'9': {KindVowel, "ㄞ"},
			'0': {KindVowel, "ㄟ"},
			'n': {KindVowel, "ㄣ"},
			'l': {KindVowel, "ㄥ"},
			'h': {KindVowel, "ㄤ"},
			'k': {KindVowel, "ㄢ"},
			'j': {KindTone, Tone2},
			'x': {KindTone, Tone3},
			'c': {KindTone, Tone4},
			'v': {KindTone, Tone5},
		},
	}
}
