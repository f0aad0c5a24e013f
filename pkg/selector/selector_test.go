package selector

import (
	"testing"

	"github.com/AlexanderKh/tokenflow/pkg/trigger"
)

// staticSource returns its contents for any non-empty partial.
type staticSource []string

func (s staticSource) Suggest(partial string) []string {
	if partial == "" {
		return nil
	}
	return s
}

func matchWithPartial(partial string) *trigger.MatchSpan {
	return &trigger.MatchSpan{
		BlockKey:    "b1",
		MatchEnd:    len("<>") + len(partial),
		MatchStart:  len("<>"),
		TriggerText: "<>",
		PartialText: partial,
	}
}

func TestSelectorInitialState(t *testing.T) {
	s := New(4)
	if _, ok := s.SelectedIndex(); ok {
		t.Error("fresh selector should have no selection")
	}
	if len(s.Suggestions()) != 0 {
		t.Error("fresh selector should have no suggestions")
	}
}

func TestSelectorOnMatchChanged(t *testing.T) {
	src := staticSource{"alpha", "beta"}
	s := New(4)

	s.OnMatchChanged(matchWithPartial("a"), src)
	if idx, ok := s.SelectedIndex(); !ok || idx != 0 {
		t.Fatalf("SelectedIndex = %d,%v, want 0,true", idx, ok)
	}
	if cur, _ := s.Current(); cur != "alpha" {
		t.Errorf("Current = %q, want alpha", cur)
	}

	// nil match resets everything
	s.OnMatchChanged(nil, src)
	if _, ok := s.SelectedIndex(); ok {
		t.Error("selection should be cleared on nil match")
	}
	if len(s.Suggestions()) != 0 {
		t.Error("suggestions should be cleared on nil match")
	}

	// empty partial yields an empty list and no selection
	s.OnMatchChanged(matchWithPartial(""), src)
	if _, ok := s.SelectedIndex(); ok {
		t.Error("empty result must leave no selection")
	}
}

func TestSelectorNavigation(t *testing.T) {
	src := staticSource{"one", "two", "three"}
	s := New(4)
	s.OnMatchChanged(matchWithPartial("t"), src)

	// clamp at the top
	if !s.MoveUp() {
		t.Error("MoveUp with active selection must report handled")
	}
	if idx, _ := s.SelectedIndex(); idx != 0 {
		t.Errorf("index after MoveUp at top = %d, want 0", idx)
	}

	if !s.MoveDown() || !s.MoveDown() {
		t.Error("MoveDown with active selection must report handled")
	}
	if idx, _ := s.SelectedIndex(); idx != 2 {
		t.Errorf("index = %d, want 2", idx)
	}

	// clamp at the bottom, idempotent
	s.MoveDown()
	s.MoveDown()
	if idx, _ := s.SelectedIndex(); idx != 2 {
		t.Errorf("index after MoveDown at bottom = %d, want 2", idx)
	}
}

func TestSelectorNavigationWithoutSelection(t *testing.T) {
	s := New(4)
	if s.MoveUp() {
		t.Error("MoveUp with no selection must report not handled")
	}
	if s.MoveDown() {
		t.Error("MoveDown with no selection must report not handled")
	}
}

// A source that ignores its contract and over-delivers is truncated,
// not rejected.
func TestSelectorTruncatesOversizedResults(t *testing.T) {
	src := staticSource{"a", "b", "c", "d", "e", "f", "g"}
	s := New(4)
	s.OnMatchChanged(matchWithPartial("x"), src)

	if got := len(s.Suggestions()); got != 4 {
		t.Fatalf("suggestions length = %d, want 4", got)
	}
	// the bound also caps navigation
	for i := 0; i < 10; i++ {
		s.MoveDown()
	}
	if idx, _ := s.SelectedIndex(); idx != 3 {
		t.Errorf("index = %d, want 3", idx)
	}
}

func TestSelectorIndexNeverOutOfBounds(t *testing.T) {
	src := staticSource{"one", "two"}
	s := New(4)
	s.OnMatchChanged(matchWithPartial("o"), src)

	moves := []func() bool{s.MoveDown, s.MoveDown, s.MoveUp, s.MoveUp, s.MoveUp, s.MoveDown}
	for _, move := range moves {
		move()
		idx, ok := s.SelectedIndex()
		if !ok {
			t.Fatal("selection vanished during navigation")
		}
		if idx < 0 || idx >= len(s.Suggestions()) {
			t.Fatalf("index %d out of bounds for %d suggestions", idx, len(s.Suggestions()))
		}
	}
}
