package reading

// NewEtenLayout returns the (full, single-role) Eten traditional Bopomofo
// keyboard layout.
func NewEtenLayout() Layout {
	return &staticTable{
		name: "Eten",
		bind: map[byte]binding{
			'b':  {KindConsonant, "ㄅ"},
			'p':  {KindConsonant, "ㄆ"},
			'm':  {KindConsonant, "ㄇ"},
			'f':  {KindConsonant, "ㄈ"},
			'd':  {KindConsonant, "ㄉ"},
			't':  {KindConsonant, "ㄊ"},
			'n':  {KindConsonant, "ㄋ"},
			'l':  {KindConsonant, "ㄌ"},
			'v':  {KindConsonant, "ㄍ"},
			'k':  {KindConsonant, "ㄎ"},
			'h':  {KindConsonant, "ㄏ"},
			'g':  {KindConsonant, "ㄐ"},
			'7':  {KindConsonant, "ㄑ"},
			'c':  {KindConsonant, "ㄒ"},
			',':  {KindConsonant, "ㄓ"},
			'.':  {KindConsonant, "ㄔ"},
			'/':  {KindConsonant, "ㄕ"},
			'j':  {KindConsonant, "ㄖ"},
			';':  {KindConsonant, "ㄗ"},
			'\'': {KindConsonant, "ㄘ"},
			's':  {KindConsonant, "ㄙ"},

			'e': {KindMedial, "ㄧ"},
			'x': {KindMedial, "ㄨ"},
			'u': {KindMedial, "ㄩ"},

			'a': {KindVowel, "ㄚ"},
			'o': {KindVowel, "ㄛ"},
			'r': {KindVowel, "ㄜ"},
			'w': {KindVowel, "ㄝ"},
			'i': {KindVowel, "ㄞ"},
			'q': {KindVowel, "ㄟ"},
			'z': {KindVowel, "ㄠ"},
			'y': {KindVowel, "ㄡ"},
			'8': {KindVowel, "ㄢ"},
			'9': {KindVowel, "ㄣ"},
			'0': {KindVowel, "ㄤ"},
			'-': {KindVowel, "ㄥ"},
			'=': {KindVowel, "ㄦ"},

			'2': {KindTone, Tone2},
			'3': {KindTone, Tone3},
			'4': {KindTone, Tone4},
			'1': {KindTone, Tone5},
		},
	}
}
