package reading

// SpellingLayout is implemented by layouts (HanyuPinyin) that accumulate
// raw ASCII spelling rather than filling discrete consonant/medial/vowel
// slots, converting the whole spelling to a canonical Reading once a tone
// digit (or a trailing space, meaning tone 1) arrives.
type SpellingLayout interface {
	Layout
	// ComposeSpelling converts a romanized syllable plus a '1'-'5' tone
	// digit into a canonical Reading. ok is false for spellings this
	// layout doesn't recognize.
	ComposeSpelling(spelling string, toneDigit byte) (Reading, bool)
}

type pinyinLayout struct{}

// NewHanyuPinyinLayout returns a layout that accepts direct Hanyu Pinyin
// romanization (e.g. "zhong1") and converts it to the equivalent Bopomofo
// reading.
func NewHanyuPinyinLayout() Layout {
	return pinyinLayout{}
}

func (pinyinLayout) Name() string { return "HanyuPinyin" }

// Resolve is never called for a SpellingLayout; Buffer routes spelling-mode
// layouts through ComposeSpelling instead.
func (pinyinLayout) Resolve(*Buffer, byte) (ComponentKind, string, bool) {
	return 0, "", false
}

var pinyinInitials = map[string]string{
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ",
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"r": "ㄖ", "z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

// pinyinFinals covers the common finals once any leading initial has been
// stripped. Retroflex/apical "i" (after zh/ch/sh/r/z/c/s) carries no vowel
// of its own in Bopomofo, hence the empty mapping.
var pinyinFinals = map[string]string{
	"i": "", "a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ai": "ㄞ", "ei": "ㄟ",
	"ao": "ㄠ", "ou": "ㄡ", "an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ",
	"er": "ㄦ", "ong": "ㄨㄥ",
	"ia": "ㄧㄚ", "ie": "ㄧㄝ", "iao": "ㄧㄠ", "iu": "ㄧㄡ", "iou": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ", "uei": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ",
}

// pinyinYW covers the initial-less "y"/"w" spellings, which stand in for a
// leading ㄧ/ㄨ/ㄩ medial rather than a real consonant.
var pinyinYW = map[string]string{
	"yi": "ㄧ", "ya": "ㄧㄚ", "ye": "ㄧㄝ", "yao": "ㄧㄠ", "you": "ㄧㄡ",
	"yan": "ㄧㄢ", "yin": "ㄧㄣ", "yang": "ㄧㄤ", "ying": "ㄧㄥ", "yong": "ㄩㄥ",
	"yu": "ㄩ", "yue": "ㄩㄝ", "yuan": "ㄩㄢ", "yun": "ㄩㄣ",
	"wu": "ㄨ", "wa": "ㄨㄚ", "wo": "ㄨㄛ", "wai": "ㄨㄞ", "wei": "ㄨㄟ",
	"wan": "ㄨㄢ", "wen": "ㄨㄣ", "wang": "ㄨㄤ", "weng": "ㄨㄥ",
}

var toneDigitMark = map[byte]string{
	'1': "", '2': Tone2, '3': Tone3, '4': Tone4, '5': Tone5,
}

func (pinyinLayout) ComposeSpelling(spelling string, toneDigit byte) (Reading, bool) {
	mark, ok := toneDigitMark[toneDigit]
	if !ok {
		return "", false
	}

	if bopomofo, ok := pinyinYW[spelling]; ok {
		return Reading(bopomofo + mark), true
	}

	initial := ""
	rest := spelling
	if len(spelling) >= 2 {
		if bp, ok := pinyinInitials[spelling[:2]]; ok {
			initial = bp
			rest = spelling[2:]
		}
	}
	if initial == "" && len(spelling) >= 1 {
		if bp, ok := pinyinInitials[spelling[:1]]; ok {
			initial = bp
			rest = spelling[1:]
		}
	}

	// j/q/x take the ü-series finals, written with plain "u" in pinyin.
	if initial == "ㄐ" || initial == "ㄑ" || initial == "ㄒ" {
		switch rest {
		case "u":
			rest = "v"
		case "ue":
			rest = "ve"
		case "uan":
			rest = "van"
		case "un":
			rest = "vn"
		}
	}

	var finalBopomofo string
	switch rest {
	case "v":
		finalBopomofo = "ㄩ"
	case "van":
		finalBopomofo = "ㄩㄢ"
	case "vn":
		finalBopomofo = "ㄩㄣ"
	case "ve":
		finalBopomofo = "ㄩㄝ"
	default:
		bp, ok := pinyinFinals[rest]
		if !ok {
			return "", false
		}
		finalBopomofo = bp
	}

	// The empty "i" mapping applies only after the apical initials;
	// after any other initial a bare "i" is ㄧ.
	if rest == "i" && initial != "" {
		switch initial {
		case "ㄓ", "ㄔ", "ㄕ", "ㄖ", "ㄗ", "ㄘ", "ㄙ":
		default:
			finalBopomofo = "ㄧ"
		}
	}

	if initial == "" && finalBopomofo == "" {
		return "", false
	}
	return Reading(initial + finalBopomofo + mark), true
}
