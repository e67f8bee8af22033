// Package grid implements the reading lattice and the Viterbi-style walker
// that finds its best-scoring segmentation. See ReadingGrid and Walk.
package grid
