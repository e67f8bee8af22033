package keyhandler

import "github.com/clipperhouse/bopomofo/reading"

// punctuationReading maps a printable key to the pseudo-reading the
// language model may recognize for it. Shifted punctuation gets its own
// pseudo-reading so a layout can distinguish e.g. "," from "<".
func punctuationReading(key Key) reading.Reading {
	prefix := "_punctuation_"
	if key.Shift {
		prefix = "_punctuation_Shift_"
	}
	return reading.Reading(prefix + string(rune(key.Ascii)))
}

// letterReading maps an uppercase letter to the pseudo-reading used to
// insert its lowercase form directly into the composing buffer, bypassing
// Bopomofo composition entirely.
func letterReading(lower byte) reading.Reading {
	return reading.Reading("_letter_" + string(rune(lower)))
}
