// Package languagemodel defines the narrow capability the reading grid
// needs from a language model, a decorator that guarantees score-ranked
// unigrams, and a bounded recency model for re-applying past selections.
package languagemodel
