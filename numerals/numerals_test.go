package numerals

import "testing"

func TestGenerateChineseNumberLowercase(t *testing.T) {
	got := GenerateChineseNumber("1234", "", ChineseLowercase)
	want := "一千二百三十四"
	if got != want {
		t.Fatalf("GenerateChineseNumber(1234, lower) = %q, want %q", got, want)
	}
}

func TestGenerateChineseNumberUppercase(t *testing.T) {
	got := GenerateChineseNumber("1234", "", ChineseUppercase)
	want := "壹仟貳佰參拾肆"
	if got != want {
		t.Fatalf("GenerateChineseNumber(1234, upper) = %q, want %q", got, want)
	}
}

func TestGenerateChineseNumberInteriorZeroGroup(t *testing.T) {
	got := GenerateChineseNumber("10001", "", ChineseLowercase)
	want := "一萬〇一"
	if got != want {
		t.Fatalf("GenerateChineseNumber(10001, lower) = %q, want %q", got, want)
	}
}

func TestGenerateChineseNumberZero(t *testing.T) {
	got := GenerateChineseNumber("0", "", ChineseLowercase)
	want := "〇"
	if got != want {
		t.Fatalf("GenerateChineseNumber(0, lower) = %q, want %q", got, want)
	}
}

func TestGenerateChineseNumberDecimal(t *testing.T) {
	got := GenerateChineseNumber("12", "50", ChineseLowercase)
	want := "一十二點五"
	if got != want {
		t.Fatalf("GenerateChineseNumber(12.50, lower) = %q, want %q", got, want)
	}
}

func TestGenerateSuzhouNumberInitialVertical(t *testing.T) {
	got := GenerateSuzhouNumber("1234", "0", "單位", true)
	want := "〡二〣〤\n千單位"
	if got != want {
		t.Fatalf("GenerateSuzhouNumber(1234, vertical) = %q, want %q", got, want)
	}
}

func TestGenerateSuzhouNumberInitialHorizontal(t *testing.T) {
	got := GenerateSuzhouNumber("1234", "0", "單位", false)
	want := "一〢三〤\n千單位"
	if got != want {
		t.Fatalf("GenerateSuzhouNumber(1234, horizontal) = %q, want %q", got, want)
	}
}

func TestGenerateSuzhouNumberSingleTrimmedZero(t *testing.T) {
	got := GenerateSuzhouNumber("0010", "0", "單位", true)
	want := "〸單位"
	if got != want {
		t.Fatalf("GenerateSuzhouNumber(0010) = %q, want %q", got, want)
	}
}

func TestRomanFromIntMax(t *testing.T) {
	got := RomanFromInt(3999, RomanAlphabets)
	want := "MMMCMXCIX"
	if got != want {
		t.Fatalf("RomanFromInt(3999) = %q, want %q", got, want)
	}
}

func TestRomanFromIntElevenFullWidth(t *testing.T) {
	got := RomanFromInt(11, RomanFullWidthUpper)
	want := "Ⅺ"
	if got != want {
		t.Fatalf("RomanFromInt(11, fullwidth upper) = %q, want %q", got, want)
	}
}

func TestRomanFromIntTwelveFullWidthLower(t *testing.T) {
	got := RomanFromInt(12, RomanFullWidthLower)
	want := "ⅻ"
	if got != want {
		t.Fatalf("RomanFromInt(12, fullwidth lower) = %q, want %q", got, want)
	}
}

func TestRomanFromIntOutOfRange(t *testing.T) {
	if got := RomanFromInt(0, RomanAlphabets); got != "" {
		t.Fatalf("RomanFromInt(0) = %q, want empty", got)
	}
	if got := RomanFromInt(4000, RomanAlphabets); got != "" {
		t.Fatalf("RomanFromInt(4000) = %q, want empty", got)
	}
}
