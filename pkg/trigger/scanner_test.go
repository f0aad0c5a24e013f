package trigger

import (
	"strings"
	"testing"

	"github.com/AlexanderKh/tokenflow/pkg/document"
)

func singleBlock(text string, ranges ...document.EntityRange) document.Document {
	return document.New(document.Block{Key: "b1", Text: text, Ranges: ranges})
}

func TestScan(t *testing.T) {
	testCases := []struct {
		name         string
		text         string
		ranges       []document.EntityRange
		block        string
		cursor       int
		trigger      string
		wantMatch    bool
		triggerStart int
		matchStart   int
		partial      string
	}{
		{name: "trigger with partial", text: "<>get", block: "b1", cursor: 5, trigger: "<>",
			wantMatch: true, triggerStart: 0, matchStart: 2, partial: "get"},
		{name: "bare trigger has empty partial", text: "<>", block: "b1", cursor: 2, trigger: "<>",
			wantMatch: true, triggerStart: 0, matchStart: 2, partial: ""},
		{name: "trigger mid text", text: "hi <>ab", block: "b1", cursor: 7, trigger: "<>",
			wantMatch: true, triggerStart: 3, matchStart: 5, partial: "ab"},
		{name: "cursor inside partial", text: "<>getXYZ", block: "b1", cursor: 5, trigger: "<>",
			wantMatch: true, triggerStart: 0, matchStart: 2, partial: "get"},
		{name: "multibyte partial", text: "<>héllo", block: "b1", cursor: len("<>héllo"), trigger: "<>",
			wantMatch: true, triggerStart: 0, matchStart: 2, partial: "héllo"},
		{name: "no trigger", text: "hello", block: "b1", cursor: 5, trigger: "<>"},
		{name: "half trigger", text: "<get", block: "b1", cursor: 4, trigger: "<>"},
		{name: "cursor before trigger", text: "ab<>cd", block: "b1", cursor: 2, trigger: "<>"},
		{name: "unknown block", text: "<>get", block: "nope", cursor: 5, trigger: "<>"},
		{name: "cursor past block end", text: "<>get", block: "b1", cursor: 6, trigger: "<>"},
		{name: "negative cursor", text: "<>get", block: "b1", cursor: -1, trigger: "<>"},
		{name: "empty trigger", text: "<>get", block: "b1", cursor: 5, trigger: ""},
		{name: "trigger right after entity", text: "abc<>de",
			ranges:    []document.EntityRange{{Start: 0, End: 3, EntityKey: "e1"}},
			block:     "b1", cursor: 7, trigger: "<>",
			wantMatch: true, triggerStart: 3, matchStart: 5, partial: "de"},
		{name: "entity between trigger and cursor blocks match", text: "<>abXcd",
			ranges: []document.EntityRange{{Start: 4, End: 5, EntityKey: "e1"}},
			block:  "b1", cursor: 7, trigger: "<>"},
		{name: "cursor right after entity", text: "getEntityAt",
			ranges: []document.EntityRange{{Start: 0, End: 11, EntityKey: "e1"}},
			block:  "b1", cursor: 11, trigger: "<>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := singleBlock(tc.text, tc.ranges...)
			m := Scan(doc, tc.block, tc.cursor, tc.trigger)

			if !tc.wantMatch {
				if m != nil {
					t.Fatalf("expected no match, got %+v", m)
				}
				return
			}
			if m == nil {
				t.Fatal("expected a match, got nil")
			}
			if m.TriggerStart != tc.triggerStart {
				t.Errorf("TriggerStart = %d, want %d", m.TriggerStart, tc.triggerStart)
			}
			if m.MatchStart != tc.matchStart {
				t.Errorf("MatchStart = %d, want %d", m.MatchStart, tc.matchStart)
			}
			if m.MatchEnd != tc.cursor {
				t.Errorf("MatchEnd = %d, want cursor %d", m.MatchEnd, tc.cursor)
			}
			if m.PartialText != tc.partial {
				t.Errorf("PartialText = %q, want %q", m.PartialText, tc.partial)
			}
			if m.BlockKey != tc.block {
				t.Errorf("BlockKey = %q, want %q", m.BlockKey, tc.block)
			}
		})
	}
}

// Every reported match must satisfy the span invariants regardless of
// where in the text the trigger sits.
func TestScanInvariants(t *testing.T) {
	texts := []string{"<>", "<>a", "x<>ab", "before <>partial after", "<><>nested"}
	for _, text := range texts {
		doc := singleBlock(text)
		for cursor := 0; cursor <= len(text); cursor++ {
			m := Scan(doc, "b1", cursor, "<>")
			if m == nil {
				continue
			}
			if m.TriggerStart > m.MatchStart || m.MatchStart > m.MatchEnd {
				t.Errorf("text %q cursor %d: offsets out of order: %+v", text, cursor, m)
			}
			if got := text[m.TriggerStart:m.MatchStart]; got != "<>" {
				t.Errorf("text %q cursor %d: trigger slice = %q", text, cursor, got)
			}
			if m.MatchEnd != cursor {
				t.Errorf("text %q cursor %d: MatchEnd = %d", text, cursor, m.MatchEnd)
			}
			if got := text[m.MatchStart:m.MatchEnd]; got != m.PartialText {
				t.Errorf("text %q cursor %d: partial slice = %q, want %q", text, cursor, got, m.PartialText)
			}
		}
	}
}

// A suffix of the pre-cursor text that never starts with the trigger can
// not produce a match.
func TestScanNoTriggerMeansNoMatch(t *testing.T) {
	doc := singleBlock("plain text with nothing special")
	block, _ := doc.Block("b1")
	for cursor := 0; cursor <= len(block.Text); cursor++ {
		if strings.Contains(block.Text[:cursor], "<>") {
			continue
		}
		if m := Scan(doc, "b1", cursor, "<>"); m != nil {
			t.Errorf("cursor %d: unexpected match %+v", cursor, m)
		}
	}
}
