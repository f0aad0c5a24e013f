// Package suggest provides candidate completions for a partial token.
// The reference source is a case-sensitive prefix filter over a fixed
// vocabulary, but everything downstream depends only on the Source
// contract, so a fuzzy matcher or an external index can be swapped in
// without touching the scanner or selector.
package suggest

// Source produces candidate completions for a partial token.
type Source interface {
	// Suggest returns candidates whose relevance order is the slice
	// order. An empty partial must yield no candidates, never match-all.
	Suggest(partial string) []string
}
