// Package userphrase implements the user-editable phrase files:
// data.txt (additions), exclude-phrases.txt (exclusions), and
// phrases-replacement.txt (an optional from/to map). All three share the
// same "<first> <second>" line format and the same add/remove-by-rewrite
// mechanics.
package userphrase
