// Package keyhandler turns one keystroke at a time into InputState
// transitions, driving a reading.Buffer and a grid.ReadingGrid underneath.
package keyhandler
