package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/AlexanderKh/tokenflow/pkg/session"
)

// Server handles the IPC between a host editor and one engine session.
type Server struct {
	session    *session.Session
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	maxPartial int
	greeting   bool
}

// Options tune server behavior outside the session itself.
type Options struct {
	// MaxPartial rejects change notifications whose partial text has
	// grown past any sane token length.
	MaxPartial int
	// Greeting sends a ready status on start.
	Greeting bool
}

// NewServer creates an IPC server over stdin/stdout.
func NewServer(sess *session.Session, opts Options) *Server {
	return NewServerWithIO(sess, opts, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(sess *session.Session, opts Options, r io.Reader, w io.Writer) *Server {
	if opts.MaxPartial <= 0 {
		opts.MaxPartial = 60
	}
	return &Server{
		session:    sess,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
		maxPartial: opts.MaxPartial,
		greeting:   opts.Greeting,
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	if s.greeting {
		s.send(StatusResponse{Status: "ready"})
	}

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// A framing error leaves the stream unusable, so bail out
			// instead of spinning on the same bad bytes.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "change":
		s.handleChange(request)
	case "key":
		s.handleKey(request)
	case "commit":
		s.handleCommit(request)
	case "blur":
		s.session.HandleBlur()
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleChange feeds a document snapshot through the session and
// answers with the fresh suggestion state.
func (s *Server) handleChange(request Request) {
	if request.Doc == nil {
		s.sendError(request.ID, "Missing 'doc' in change request", 400)
		return
	}

	start := time.Now()
	doc := fromWireDocument(request.Doc)
	s.session.HandleChange(doc, cursorFromRequest(request))
	if request.CaretX != 0 || request.CaretY != 0 {
		s.session.SetCaretAnchor(request.CaretX, request.CaretY)
	}

	resp := ChangeResponse{
		ID:          request.ID,
		Suggestions: s.session.Suggestions(),
		Selected:    -1,
		TimeTaken:   time.Since(start).Microseconds(),
	}
	if idx, ok := s.session.SelectedIndex(); ok {
		resp.Selected = idx
	}
	if m := s.session.Match(); m != nil {
		resp.Active = true
		if len(m.PartialText) > s.maxPartial {
			log.Debugf("partial text of %d bytes exceeds max %d, dropping match", len(m.PartialText), s.maxPartial)
			s.session.HandleBlur()
			resp = ChangeResponse{ID: request.ID, Selected: -1, TimeTaken: time.Since(start).Microseconds()}
		} else {
			resp.Match = &WireMatch{
				Block:        m.BlockKey,
				TriggerStart: m.TriggerStart,
				MatchStart:   m.MatchStart,
				MatchEnd:     m.MatchEnd,
				Partial:      m.PartialText,
			}
		}
	}
	if hint, ok := s.session.CaretAnchor(); ok {
		resp.CaretX = hint.X
		resp.CaretY = hint.Y
	}
	s.send(resp)
}

// handleKey resolves a key press and executes the resulting command.
func (s *Server) handleKey(request Request) {
	if request.Key == "" {
		s.sendError(request.ID, "Missing 'k' in key request", 400)
		return
	}

	cmd := s.session.BindKey(request.Key)
	resp := KeyResponse{ID: request.ID, Command: string(cmd), Selected: -1}

	if cmd == session.CommandAutocomplete {
		doc, cursor, ok := s.session.Commit()
		resp.Handled = ok
		if ok {
			resp.Doc = toWireDocument(doc)
			resp.CursorBlock = cursor.BlockKey
			resp.CursorOffset = cursor.End
		}
	} else if cmd != session.CommandNotHandled {
		resp.Handled = s.session.HandleCommand(cmd)
	}

	resp.Suggestions = s.session.Suggestions()
	if idx, ok := s.session.SelectedIndex(); ok {
		resp.Selected = idx
	}
	s.send(resp)
}

// handleCommit forces an accept without a key press.
func (s *Server) handleCommit(request Request) {
	doc, cursor, ok := s.session.Commit()
	resp := KeyResponse{
		ID:       request.ID,
		Command:  string(session.CommandAutocomplete),
		Handled:  ok,
		Selected: -1,
	}
	if ok {
		resp.Doc = toWireDocument(doc)
		resp.CursorBlock = cursor.BlockKey
		resp.CursorOffset = cursor.End
	}
	resp.Suggestions = s.session.Suggestions()
	if idx, selOK := s.session.SelectedIndex(); selOK {
		resp.Selected = idx
	}
	s.send(resp)
}

// send encodes one response onto the wire.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Status: code})
}
