// Package numerals implements pure number-formatting transformers:
// Chinese financial/everyday numerals, Suzhou rod numerals, and Roman
// numerals.
package numerals
