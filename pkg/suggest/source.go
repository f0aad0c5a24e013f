package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultLimit bounds how many candidates a Vocab returns per query.
const DefaultLimit = 4

// DefaultVocabulary is the built-in candidate list, in relevance order.
func DefaultVocabulary() []string {
	return []string{
		"getSelection",
		"getAnchorKey",
		"getEntityAt",
		"getAnchorOffset",
		"getCurrentContent",
		"getBlockForKey",
		"getFocusKey",
		"getFocusOffset",
		"getStartOffset",
		"getEndOffset",
	}
}

// Vocab is a Source backed by a fixed vocabulary. Lookup is a
// case-sensitive prefix filter; results keep the vocabulary's declared
// order and are truncated to the configured limit.
type Vocab struct {
	trie  *patricia.Trie
	limit int
}

// NewVocab builds a vocabulary source. Each word is inserted with its
// declared rank; a duplicate word keeps its first rank. A limit <= 0
// falls back to DefaultLimit.
func NewVocab(words []string, limit int) *Vocab {
	if limit <= 0 {
		limit = DefaultLimit
	}
	trie := patricia.NewTrie()
	for rank, word := range words {
		if word == "" {
			continue
		}
		trie.Insert(patricia.Prefix(word), rank)
	}
	return &Vocab{trie: trie, limit: limit}
}

// Suggest returns up to limit vocabulary words starting with partial,
// in declared order. An empty partial yields nil.
func (v *Vocab) Suggest(partial string) []string {
	if partial == "" {
		return nil
	}

	type ranked struct {
		word string
		rank int
	}
	var hits []ranked

	// The trie visits keys lexicographically, so collect with ranks and
	// restore the declared order afterwards.
	err := v.trie.VisitSubtree(patricia.Prefix(partial), func(p patricia.Prefix, item patricia.Item) error {
		rank, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		hits = append(hits, ranked{word: string(p), rank: rank})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	if len(hits) > v.limit {
		hits = hits[:v.limit]
	}
	words := make([]string, len(hits))
	for i, h := range hits {
		words[i] = h.word
	}
	return words
}

// Limit reports the configured per-query bound.
func (v *Vocab) Limit() int {
	return v.limit
}
