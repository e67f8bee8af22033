// Package macro expands MACRO@... tokens (the composing buffer's
// escape hatch for inserting today's date in several calendar styles)
// before unigram lookup sees them.
package macro
