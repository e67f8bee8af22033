// Package reading assembles Bopomofo (zhuyin) syllables from keystrokes.
//
// A Buffer holds up to four slots (consonant, medial, vowel/final, and
// tone) and a Layout that maps ASCII keys onto those slots. Feeding keys
// one at a time to Receive produces partial composing text until a tone
// key or a trailing space completes the syllable into a canonical Reading.
package reading
