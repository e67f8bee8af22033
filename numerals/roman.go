package numerals

import "strings"

// RomanNumeralStyle selects the glyph set RomanFromInt renders with.
type RomanNumeralStyle int

const (
	RomanAlphabets RomanNumeralStyle = iota
	RomanFullWidthUpper
	RomanFullWidthLower
)

var (
	romanOnes      = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
	romanTens      = []string{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"}
	romanHundreds  = []string{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"}
	romanThousands = []string{"", "M", "MM", "MMM"}

	fullWidthUpperOnes      = []string{"", "Ⅰ", "Ⅱ", "Ⅲ", "Ⅳ", "Ⅴ", "Ⅵ", "Ⅶ", "Ⅷ", "Ⅸ"}
	fullWidthUpperTens      = []string{"", "Ⅹ", "ⅩⅩ", "ⅩⅩⅩ", "ⅩⅬ", "Ⅼ", "ⅬⅩ", "ⅬⅩⅩ", "ⅬⅩⅩⅩ", "ⅩⅭ"}
	fullWidthUpperHundreds  = []string{"", "Ⅽ", "ⅭⅭ", "ⅭⅭⅭ", "ⅭⅮ", "Ⅾ", "ⅮⅭ", "ⅮⅭⅭ", "ⅮⅭⅭⅭ", "ⅭⅯ"}
	fullWidthUpperThousands = []string{"", "Ⅿ", "ⅯⅯ", "ⅯⅯⅯ"}

	fullWidthLowerOnes      = []string{"", "ⅰ", "ⅱ", "ⅲ", "ⅳ", "ⅴ", "ⅵ", "ⅶ", "ⅷ", "ⅸ"}
	fullWidthLowerTens      = []string{"", "ⅹ", "ⅹⅹ", "ⅹⅹⅹ", "ⅹⅼ", "ⅼ", "ⅼⅹ", "ⅼⅹⅹ", "ⅼⅹⅹⅹ", "ⅹⅽ"}
	fullWidthLowerHundreds  = []string{"", "ⅽ", "ⅽⅽ", "ⅽⅽⅽ", "ⅽⅾ", "ⅾ", "ⅾⅽ", "ⅾⅽⅽ", "ⅾⅽⅽⅽ", "ⅽⅿ"}
	fullWidthLowerThousands = []string{"", "ⅿ", "ⅿⅿ", "ⅿⅿⅿ"}

	romanElevenTwelve = map[int]string{
		11: "Ⅺ",
		12: "Ⅻ",
	}
	romanLowerElevenTwelve = map[int]string{
		11: "ⅺ",
		12: "ⅻ",
	}
)

func romanTables(style RomanNumeralStyle) (ones, tens, hundreds, thousands []string) {
	switch style {
	case RomanFullWidthUpper:
		return fullWidthUpperOnes, fullWidthUpperTens, fullWidthUpperHundreds, fullWidthUpperThousands
	case RomanFullWidthLower:
		return fullWidthLowerOnes, fullWidthLowerTens, fullWidthLowerHundreds, fullWidthLowerThousands
	default:
		return romanOnes, romanTens, romanHundreds, romanThousands
	}
}

// RomanFromInt converts n (1-3999) to a Roman numeral in the given
// style. Values outside that range yield "". 11 and 12 collapse to the
// single Unicode Roman-numeral codepoints Ⅺ/Ⅻ (or ⅺ/ⅻ) in the
// full-width styles, matching the Unicode block's dedicated glyphs.
func RomanFromInt(n int, style RomanNumeralStyle) string {
	if n <= 0 || n > 3999 {
		return ""
	}

	if style == RomanFullWidthUpper {
		if s, ok := romanElevenTwelve[n]; ok {
			return s
		}
	}
	if style == RomanFullWidthLower {
		if s, ok := romanLowerElevenTwelve[n]; ok {
			return s
		}
	}

	ones, tens, hundreds, thousands := romanTables(style)

	var out strings.Builder
	out.WriteString(thousands[n/1000])
	out.WriteString(hundreds[(n/100)%10])
	out.WriteString(tens[(n/10)%10])
	out.WriteString(ones[n%10])
	return out.String()
}
