// Package cli is an interactive playground for the engine, useful for
// testing and debugging without a host editor. It runs a single-block
// document: every typed line becomes the block content with the cursor
// at its end, and colon commands drive the selection and commit paths.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/AlexanderKh/tokenflow/internal/logger"
	"github.com/AlexanderKh/tokenflow/internal/utils"
	"github.com/AlexanderKh/tokenflow/pkg/document"
	"github.com/AlexanderKh/tokenflow/pkg/session"
)

const blockKey = "playground"

// InputHandler runs the REPL over one engine session.
type InputHandler struct {
	session *session.Session
	trigger string
	log     *log.Logger
}

// NewInputHandler creates a REPL around an existing session.
func NewInputHandler(sess *session.Session, triggerToken string) *InputHandler {
	return &InputHandler{session: sess, trigger: triggerToken, log: logger.Default("play")}
}

// Start begins the interface loop. It reads one line per turn from
// stdin and terminates on read error (Ctrl+D / Ctrl+C).
func (h *InputHandler) Start() error {
	h.log.Print("tokenflow playground")
	h.log.Printf("type text containing %q to trigger completions", h.trigger)
	h.log.Print("commands: :up :down :accept :reset  (Ctrl+C to exit)")
	reader := bufio.NewReader(os.Stdin)

	h.apply(document.New(document.Block{Key: blockKey}))

	for {
		fmt.Fprint(os.Stderr, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput routes a line to either a colon command or a text change.
func (h *InputHandler) handleInput(line string) {
	switch line {
	case ":up":
		h.navigate(session.KeyUp)
		return
	case ":down":
		h.navigate(session.KeyDown)
		return
	case ":accept":
		h.accept()
		return
	case ":reset":
		h.apply(document.New(document.Block{Key: blockKey}))
		h.log.Print("cleared")
		return
	}

	if !utils.IsPrintableInput(line) {
		h.log.Warnf("Ignoring input with control characters")
		return
	}

	h.apply(document.New(document.Block{Key: blockKey, Text: line}))
	h.render()
}

// navigate feeds a navigation key through the same binding resolution a
// host editor would use.
func (h *InputHandler) navigate(key string) {
	cmd := h.session.BindKey(key)
	if !h.session.HandleCommand(cmd) {
		h.log.Print("not handled (no active suggestions)")
		return
	}
	h.render()
}

// accept commits the highlighted suggestion (or the raw partial text).
func (h *InputHandler) accept() {
	doc, cursor, ok := h.session.Commit()
	if !ok {
		h.log.Print("nothing to commit")
		return
	}
	h.log.Printf("committed, cursor at %d", cursor.End)
	h.printDocument(doc)
}

// apply pushes a fresh snapshot through the session's change path.
func (h *InputHandler) apply(doc document.Document) {
	block, _ := doc.Block(blockKey)
	h.session.HandleChange(doc, document.CursorAfter(blockKey, len(block.Text)))
}

// render prints the current match and suggestion list.
func (h *InputHandler) render() {
	m := h.session.Match()
	if m == nil {
		h.log.Print("no match")
		return
	}
	h.log.Printf("match %s partial=%q", matchStyle.Render(fmt.Sprintf("[%d:%d)", m.TriggerStart, m.MatchEnd)), m.PartialText)

	suggestions := h.session.Suggestions()
	if len(suggestions) == 0 {
		h.log.Print("no suggestions")
		return
	}
	selected, _ := h.session.SelectedIndex()
	for i, s := range suggestions {
		if i == selected {
			h.log.Printf("%2d. %s", i+1, selectedStyle.Render(s))
		} else {
			h.log.Printf("%2d. %s", i+1, suggestionStyle.Render(s))
		}
	}
}

// printDocument shows the block text with entity runs highlighted.
func (h *InputHandler) printDocument(doc document.Document) {
	block, ok := doc.Block(blockKey)
	if !ok {
		return
	}
	var sb strings.Builder
	pos := 0
	for _, r := range block.Ranges {
		sb.WriteString(block.Text[pos:r.Start])
		sb.WriteString(entityStyle.Render(block.Text[r.Start:r.End]))
		pos = r.End
	}
	sb.WriteString(block.Text[pos:])
	h.log.Printf("doc: %s", sb.String())
}
