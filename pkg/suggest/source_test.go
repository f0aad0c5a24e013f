package suggest

import (
	"strings"
	"testing"
)

func TestVocabSuggest(t *testing.T) {
	vocab := NewVocab(DefaultVocabulary(), DefaultLimit)

	testCases := []struct {
		partial string
		want    []string
	}{
		// vocabulary order, truncated to the limit
		{"get", []string{"getSelection", "getAnchorKey", "getEntityAt", "getAnchorOffset"}},
		{"getA", []string{"getAnchorKey", "getAnchorOffset"}},
		{"getSelection", []string{"getSelection"}},
		{"getE", []string{"getEntityAt"}},
		// case-sensitive prefix filter
		{"Get", nil},
		{"zzz", nil},
		// empty partial is never match-all
		{"", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.partial, func(t *testing.T) {
			got := vocab.Suggest(tc.partial)
			if len(got) != len(tc.want) {
				t.Fatalf("Suggest(%q) = %v, want %v", tc.partial, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Suggest(%q)[%d] = %q, want %q", tc.partial, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestVocabSuggestExactMatchIncluded(t *testing.T) {
	vocab := NewVocab([]string{"word", "wordy"}, DefaultLimit)
	got := vocab.Suggest("word")
	if len(got) != 2 || got[0] != "word" || got[1] != "wordy" {
		t.Fatalf("Suggest(\"word\") = %v, want [word wordy]", got)
	}
}

// Declared order wins over lexical order.
func TestVocabSuggestDeclaredOrder(t *testing.T) {
	vocab := NewVocab([]string{"zeta", "alpha", "zebra"}, DefaultLimit)
	got := vocab.Suggest("ze")
	if len(got) != 2 || got[0] != "zeta" || got[1] != "zebra" {
		t.Fatalf("Suggest(\"ze\") = %v, want [zeta zebra]", got)
	}
}

func TestVocabSuggestLimit(t *testing.T) {
	var words []string
	for _, s := range strings.Split("a b c d e f g h", " ") {
		words = append(words, "pre"+s)
	}
	vocab := NewVocab(words, 3)

	got := vocab.Suggest("pre")
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d: %v", len(got), got)
	}
	for i, want := range []string{"prea", "preb", "prec"} {
		if got[i] != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestVocabSuggestResultsSharePrefix(t *testing.T) {
	vocab := NewVocab(DefaultVocabulary(), DefaultLimit)
	for _, partial := range []string{"g", "ge", "get", "getA", "getF"} {
		for _, word := range vocab.Suggest(partial) {
			if !strings.HasPrefix(word, partial) {
				t.Errorf("Suggest(%q) returned %q without the prefix", partial, word)
			}
		}
	}
}

func TestVocabDefaults(t *testing.T) {
	vocab := NewVocab([]string{"", "one"}, 0)
	if vocab.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", vocab.Limit(), DefaultLimit)
	}
	// the empty word is skipped on insert
	if got := vocab.Suggest("o"); len(got) != 1 || got[0] != "one" {
		t.Errorf("Suggest(\"o\") = %v, want [one]", got)
	}
}
