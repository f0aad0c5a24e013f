// Package trigger finds the autocomplete match under the cursor: the
// trigger token plus whatever partial text the user has typed after it.
package trigger

import (
	"strings"

	"github.com/AlexanderKh/tokenflow/pkg/document"
)

// MatchSpan is the resolved match region within one block. Offsets are
// byte offsets into the block's UTF-8 text, with
// TriggerStart <= MatchStart <= MatchEnd, MatchStart = TriggerStart +
// len(TriggerText) and PartialText = text[MatchStart:MatchEnd].
//
// A span is a snapshot of a single scan. It is never patched in place:
// any document or cursor change produces a fresh scan.
type MatchSpan struct {
	BlockKey     string
	TriggerStart int
	MatchStart   int
	MatchEnd     int
	TriggerText  string
	PartialText  string
}

// Scan walks backward from cursorOffset through the named block's text
// looking for triggerToken. Entity ranges are hard boundaries: the walk
// stops with no match as soon as it lands on an annotated character,
// even if a valid trigger sits further back. Returns nil when the block
// is unknown, the cursor is out of range, the trigger is empty, or no
// trigger is found before the block start.
//
// The cursor sitting immediately after the trigger is a valid match
// with an empty PartialText.
func Scan(doc document.Document, blockKey string, cursorOffset int, triggerToken string) *MatchSpan {
	if triggerToken == "" {
		return nil
	}
	block, ok := doc.Block(blockKey)
	if !ok {
		return nil
	}
	if cursorOffset < 0 || cursorOffset > len(block.Text) {
		return nil
	}

	matchString := ""
	for cursor := cursorOffset - 1; cursor >= 0; cursor-- {
		if _, tagged := block.EntityAt(cursor); tagged {
			return nil
		}
		matchString = block.Text[cursor:cursor+1] + matchString
		if len(matchString) >= len(triggerToken) && strings.HasPrefix(matchString, triggerToken) {
			return &MatchSpan{
				BlockKey:     blockKey,
				TriggerStart: cursor,
				MatchStart:   cursor + len(triggerToken),
				MatchEnd:     cursorOffset,
				TriggerText:  triggerToken,
				PartialText:  matchString[len(triggerToken):],
			}
		}
	}
	return nil
}
