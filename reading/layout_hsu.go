package reading

// NewHsuLayout returns the Hsu (許氏) 26-key layout, where most letters
// carry a consonant or medial before the syllable has one, and a vowel or
// tone afterward.
func NewHsuLayout() Layout {
	return &dualRoleTable{
		name: "Hsu",
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
			'c': {KindConsonant, "ㄓ"},
			'v': {KindConsonant, "ㄔ"},
			'w': {KindConsonant, "ㄕ"},
			'r': {KindConsonant, "ㄖ"},
			'z': {KindConsonant, "ㄗ"},
			's': {KindConsonant, "ㄙ"},
			'a': {KindMedial, "ㄧ"},
			'y': {KindMedial, "ㄨ"},
			'u': {KindMedial, "ㄩ"},
		},
		second: map[byte]binding{
			'e': {KindVowel, "ㄝ"},
			'i': {KindVowel, "ㄞ"},
			'o': {KindVowel, "ㄛ"},
			'8': {KindVowel, "ㄚ"},
			'9': {KindVowel, "ㄢ"},
			'0': {KindVowel, "ㄤ"},
			'g': {KindVowel, "ㄜ"},
			'j': {KindVowel, "ㄣ"},
			'k': {KindVowel, "ㄟ"},
			'l': {KindVowel, "ㄥ"},
			'b': {KindTone, Tone3},
			'c': {KindTone, Tone4},
			'f': {KindTone, Tone2},
			'x': {KindTone, Tone5},
		},
	}
}
