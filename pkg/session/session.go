// Package session ties the engine together: it holds the current
// document snapshot, the live match, and the suggestion selector as one
// cohesive state object, and exposes the change, key-binding, command,
// and commit surfaces the host editor drives.
//
// Everything runs synchronously on the caller's event turn. Each change
// notification replaces the whole {document, match, suggestions}
// snapshot; nothing is diffed or patched across calls.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/AlexanderKh/tokenflow/pkg/document"
	"github.com/AlexanderKh/tokenflow/pkg/selector"
	"github.com/AlexanderKh/tokenflow/pkg/suggest"
	"github.com/AlexanderKh/tokenflow/pkg/trigger"
)

// CaretHint is a host-supplied screen-space anchor for the dropdown.
// Purely advisory: the session stores and echoes it, never reads it.
type CaretHint struct {
	X float64
	Y float64
}

// Session is the per-editor autocomplete state.
type Session struct {
	trigger  string
	source   suggest.Source
	selector *selector.Selector

	doc      document.Document
	cursor   document.Selection
	match    *trigger.MatchSpan
	caret    *CaretHint
	hasFocus bool
}

// New creates a session for one editor instance. limit bounds the
// suggestion list; <= 0 falls back to the source default.
func New(triggerToken string, src suggest.Source, limit int) *Session {
	return &Session{
		trigger:  triggerToken,
		source:   src,
		selector: selector.New(limit),
	}
}

// HandleChange ingests a fresh document-and-selection snapshot, re-runs
// the trigger scan, and rebuilds the suggestion list. Called by the
// host on every content or selection change, including the one a commit
// feeds back.
func (s *Session) HandleChange(doc document.Document, sel document.Selection) {
	s.doc = doc
	s.cursor = sel
	s.hasFocus = true
	// The anchor is per-change; the host re-supplies it after each one.
	s.caret = nil

	if sel.Collapsed() {
		s.match = trigger.Scan(doc, sel.BlockKey, sel.End, s.trigger)
	} else {
		// A ranged selection never sits "inside" a match.
		s.match = nil
	}
	s.selector.OnMatchChanged(s.match, s.source)
}

// HandleBlur drops the live match, suggestions, and caret hint when the
// editor loses its text selection.
func (s *Session) HandleBlur() {
	s.hasFocus = false
	s.match = nil
	s.caret = nil
	s.selector.OnMatchChanged(nil, s.source)
}

// SetCaretAnchor records the host-computed screen anchor for the
// current selection. Ignored without a live selection.
func (s *Session) SetCaretAnchor(x, y float64) {
	if !s.hasFocus {
		return
	}
	s.caret = &CaretHint{X: x, Y: y}
}

// CaretAnchor returns the advisory anchor, present only while a live
// selection has reported one.
func (s *Session) CaretAnchor() (CaretHint, bool) {
	if !s.hasFocus || s.caret == nil {
		return CaretHint{}, false
	}
	return *s.caret, true
}

// BindKey resolves a raw key identifier to a command. Keys only resolve
// while a match is live; otherwise the host keeps its default binding.
func (s *Session) BindKey(key string) Command {
	if s.match == nil {
		return CommandNotHandled
	}
	switch key {
	case KeyTab, KeyEnter:
		return CommandAutocomplete
	case KeyUp:
		return CommandPrevSuggestion
	case KeyDown:
		return CommandNextSuggestion
	}
	return CommandNotHandled
}

// HandleCommand executes a resolved command. Reports false when the
// command could not apply (no active selection to navigate, nothing to
// commit) so the host falls through to its default behavior.
func (s *Session) HandleCommand(cmd Command) bool {
	switch cmd {
	case CommandPrevSuggestion:
		return s.selector.MoveUp()
	case CommandNextSuggestion:
		return s.selector.MoveDown()
	case CommandAutocomplete:
		_, _, ok := s.Commit()
		return ok
	}
	return false
}

// Commit resolves the current choice and replaces the whole match span
// (trigger plus partial text) with one immutable TOKEN entity holding
// it. With no highlighted suggestion the raw partial text is
// re-confirmed as the entity text. The new document is fed back through
// the normal change path, which ends the autocomplete turn: the cursor
// now sits just past an entity boundary, so the re-scan finds nothing.
//
// With no active match this is a strict no-op on the current snapshot.
func (s *Session) Commit() (document.Document, document.Selection, bool) {
	if s.match == nil {
		return s.doc, s.cursor, false
	}

	chosen, ok := s.selector.Current()
	if !ok {
		chosen = s.match.PartialText
	}

	ent := document.NewTokenEntity(chosen)
	next, cursor, err := s.doc.ReplaceWithEntity(s.match.BlockKey, s.match.TriggerStart, s.match.MatchEnd, chosen, ent)
	if err != nil {
		// Scan offsets came from the same snapshot, so this means the
		// host fed inconsistent state. Keep the old document.
		log.Errorf("commit failed: %v", err)
		return s.doc, s.cursor, false
	}

	s.HandleChange(next, cursor)
	return next, cursor, true
}

// Match returns the live match span, nil when none.
func (s *Session) Match() *trigger.MatchSpan {
	return s.match
}

// Suggestions returns the current candidate list for rendering.
func (s *Session) Suggestions() []string {
	return s.selector.Suggestions()
}

// SelectedIndex returns the highlighted candidate index, if any.
func (s *Session) SelectedIndex() (int, bool) {
	return s.selector.SelectedIndex()
}

// Document returns the session's current document snapshot.
func (s *Session) Document() document.Document {
	return s.doc
}

// Cursor returns the session's current selection snapshot.
func (s *Session) Cursor() document.Selection {
	return s.cursor
}
