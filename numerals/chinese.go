package numerals

import "strings"

// ChineseNumberCase selects the everyday ("lower", 一二三) or financial
// ("upper", 壹貳參) digit glyphs.
type ChineseNumberCase int

const (
	ChineseLowercase ChineseNumberCase = iota
	ChineseUppercase
)

var (
	lowerDigits = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	upperDigits = []string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"}
	lowerPlaces = []string{"千", "百", "十", ""}
	upperPlaces = []string{"仟", "佰", "拾", ""}
	higherPlaces = []string{
		"", "萬", "億", "兆", "京", "垓", "秭", "穰", "溝", "澗", "正", "載",
	}
)

func digitsFor(c ChineseNumberCase) []string {
	if c == ChineseUppercase {
		return upperDigits
	}
	return lowerDigits
}

func placesFor(c ChineseNumberCase) []string {
	if c == ChineseUppercase {
		return upperPlaces
	}
	return lowerPlaces
}

// convert4Digits renders one 4-digit group (already left-padded with
// spaces), honoring a leading zero carried over from a prior all-zero
// group.
func convert4Digits(group string, numCase ChineseNumberCase, zeroEverHappened bool) string {
	digits := digitsFor(numCase)
	places := placesFor(numCase)
	zeroHappened := zeroEverHappened

	var out strings.Builder
	for i := 0; i < len(group); i++ {
		c := group[i]
		if c == ' ' {
			continue
		}
		if c == '0' {
			zeroHappened = true
			continue
		}
		if zeroHappened {
			out.WriteString(digits[0])
		}
		zeroHappened = false
		out.WriteString(digits[c-'0'])
		out.WriteString(places[i])
	}
	return out.String()
}

// GenerateChineseNumber renders intPart (an unsigned decimal digit
// string) and decPart (fractional digits, no leading/trailing sign) as
// Chinese numerals in the requested case.
func GenerateChineseNumber(intPart, decPart string, numCase ChineseNumberCase) string {
	intTrimmed := trimZerosAtStart(intPart)
	decTrimmed := trimZerosAtEnd(decPart)
	digits := digitsFor(numCase)

	var out strings.Builder
	if intTrimmed == "" {
		out.WriteString(digits[0])
	} else {
		sectionCount := (len(intTrimmed) + 3) / 4
		filledLength := sectionCount * 4
		filled := leftPad(intTrimmed, filledLength, ' ')

		readHead := 0
		zeroEverHappen := false
		for readHead < filledLength {
			group := filled[readHead : readHead+4]
			if group == "0000" {
				zeroEverHappen = true
				readHead += 4
				continue
			}
			converted := convert4Digits(group, numCase, zeroEverHappen)
			zeroEverHappen = false
			out.WriteString(converted)
			place := (filledLength-readHead)/4 - 1
			out.WriteString(higherPlaces[place])
			readHead += 4
		}
	}

	if decTrimmed != "" {
		out.WriteString("點")
		for i := 0; i < len(decTrimmed); i++ {
			out.WriteString(digits[decTrimmed[i]-'0'])
		}
	}

	return out.String()
}
