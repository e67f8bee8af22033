// Package bopomofo wires the Bopomofo reading buffer, language model, reading
// grid, and key-handler state machine behind one host-facing Engine. See
// the reading, grid, keyhandler, and languagemodel packages for the
// subsystems themselves.
package bopomofo
