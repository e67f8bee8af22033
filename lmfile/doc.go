// Package lmfile loads the two-column language-model text format,
// reports per-line parse issues without aborting the load,
// and backs the result with a read-only memory map that stays alive for
// the model's lifetime.
package lmfile
