// Package selector tracks the active suggestion list and which entry is
// highlighted. It is a small state machine advanced by match changes and
// navigation commands.
package selector

import (
	"github.com/charmbracelet/log"

	"github.com/AlexanderKh/tokenflow/internal/utils"
	"github.com/AlexanderKh/tokenflow/pkg/suggest"
	"github.com/AlexanderKh/tokenflow/pkg/trigger"
)

const noSelection = -1

// Selector holds the current suggestion list and highlighted index.
// The index is in [0, len) whenever the list is non-empty and absent
// exactly when it is empty.
type Selector struct {
	limit       int
	suggestions []string
	selected    int
}

// New creates a selector that never keeps more than limit suggestions.
func New(limit int) *Selector {
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}
	return &Selector{limit: limit, selected: noSelection}
}

// OnMatchChanged replaces the whole selector state from a fresh scan
// result. A nil match clears the list; otherwise the source is queried
// with the match's partial text and the first candidate is highlighted.
// A source returning more than the limit is truncated, not rejected.
func (s *Selector) OnMatchChanged(match *trigger.MatchSpan, src suggest.Source) {
	if match == nil || src == nil {
		s.suggestions = nil
		s.selected = noSelection
		return
	}
	results := src.Suggest(match.PartialText)
	if len(results) > s.limit {
		log.Warnf("suggestion source returned %d candidates, truncating to %d", len(results), s.limit)
		results = results[:s.limit]
	}
	s.suggestions = results
	if len(results) > 0 {
		s.selected = 0
	} else {
		s.selected = noSelection
	}
}

// MoveUp highlights the previous suggestion, clamping at the top.
// Reports false when no selection is active so the host editor can run
// its default key behavior instead.
func (s *Selector) MoveUp() bool {
	if s.selected == noSelection {
		return false
	}
	s.selected = utils.Clamp(s.selected-1, 0, len(s.suggestions)-1)
	return true
}

// MoveDown highlights the next suggestion, clamping at the bottom.
// Reports false when no selection is active.
func (s *Selector) MoveDown() bool {
	if s.selected == noSelection {
		return false
	}
	s.selected = utils.Clamp(s.selected+1, 0, len(s.suggestions)-1)
	return true
}

// Suggestions returns the current list in relevance order.
func (s *Selector) Suggestions() []string {
	return s.suggestions
}

// SelectedIndex returns the highlighted index, if any.
func (s *Selector) SelectedIndex() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Current returns the highlighted suggestion, if any.
func (s *Selector) Current() (string, bool) {
	if s.selected == noSelection {
		return "", false
	}
	return s.suggestions[s.selected], true
}
