package numerals

import "strings"

var (
	verticalDigits   = []string{"〇", "〡", "〢", "〣", "〤", "〥", "〦", "〧", "〨", "〩"}
	horizontalDigits = []string{"〇", "一", "二", "三"}
	suzhouPlaceNames = []string{
		"", "十", "百", "千", "万", "十万", "百万", "千万",
		"億", "十億", "百億", "千億", "兆", "十兆", "百兆", "千兆",
		"京", "十京", "百京", "千京", "垓", "十垓", "百垓", "千垓",
		"秭", "十秭", "百秭", "千秭", "穰", "十穰", "百穰", "千穰",
	}
)

// GenerateSuzhouNumber renders intPart/decPart as Suzhou rod numerals
// (huama), alternating vertical/horizontal glyphs for 1/2/3 to avoid
// runs of identical strokes, followed by a place name and unit.
// preferInitialVertical selects which form the first alternating digit
// takes.
func GenerateSuzhouNumber(intPart, decPart, unit string, preferInitialVertical bool) string {
	intTrimmed := trimZerosAtStart(intPart)
	decTrimmed := trimZerosAtEnd(decPart)

	trimmedZeroCounts := 0
	if decTrimmed == "" {
		trimmed := trimZerosAtEnd(intTrimmed)
		trimmedZeroCounts = len(intTrimmed) - len(trimmed)
		intTrimmed = trimmed
	}
	if intTrimmed == "" {
		intTrimmed = "0"
	}

	joined := intTrimmed + decTrimmed

	var out strings.Builder
	isVertical := preferInitialVertical
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if c == '1' || c == '2' || c == '3' {
			if isVertical {
				out.WriteString(verticalDigits[c-'0'])
			} else {
				out.WriteString(horizontalDigits[c-'0'])
			}
			isVertical = !isVertical
		} else {
			out.WriteString(verticalDigits[c-'0'])
			isVertical = preferInitialVertical
		}
	}

	if len(joined) == 1 && trimmedZeroCounts == 0 {
		out.WriteString(unit)
		return out.String()
	}
	if len(joined) == 1 && trimmedZeroCounts == 1 {
		switch intTrimmed[0] {
		case '1':
			return "〸" + unit
		case '2':
			return "〹" + unit
		case '3':
			return "〺" + unit
		}
	}

	place := len(intTrimmed) + trimmedZeroCounts - 1
	if len(joined) > 1 {
		out.WriteString("\n")
	}
	out.WriteString(suzhouPlaceNames[place])
	out.WriteString(unit)
	return out.String()
}
