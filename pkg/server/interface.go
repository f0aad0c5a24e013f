/*
Package server implements msgpack IPC for the autocomplete engine.

The server bridges a host editor to one engine session over
stdin/stdout. The protocol is request/response with binary msgpack
encoding; every request carries an ID that is echoed on the response.

# IPC

A change notification carries the full current document and the cursor,
and returns the fresh suggestion state:

	{"id": "c1", "cmd": "change", "doc": {...}, "b": "blk-1", "o": 5}
	{"id": "c1", "s": ["getSelection", "getAnchorKey"], "sel": 0, "m": true, "t": 12}

A key press resolves the binding and executes it. When the key commits
a completion, the response carries the replacement document the host
must adopt, plus the new cursor:

	{"id": "k1", "cmd": "key", "k": "Tab"}
	{"id": "k1", "command": "autocomplete", "handled": true, "doc": {...}, "cb": "blk-1", "co": 11}

An unhandled key tells the host to run its default binding:

	{"id": "k2", "command": "not-handled", "handled": false}

"commit" forces an accept without a key press, "blur" drops the live
match when the editor loses its selection, and "health" answers with a
status. Undecodable or unknown requests produce an error response,
never a dead connection.

The optional "cx"/"cy" fields on a change let the host pass its
screen-space caret anchor through; it is echoed back for the dropdown
renderer and never interpreted.
*/
package server

// WireRange tags [Start, End) of a block's text with an entity key.
type WireRange struct {
	Start  int    `msgpack:"s"`
	End    int    `msgpack:"e"`
	Entity string `msgpack:"k"`
}

// WireBlock is one document block on the wire.
type WireBlock struct {
	Key    string      `msgpack:"k"`
	Text   string      `msgpack:"t"`
	Ranges []WireRange `msgpack:"r,omitempty"`
}

// WireEntity is a registered entity on the wire.
type WireEntity struct {
	Kind       string `msgpack:"kind"`
	Mutability string `msgpack:"mut"`
	Data       string `msgpack:"data,omitempty"`
}

// WireDocument carries a full document snapshot.
type WireDocument struct {
	Blocks   []WireBlock           `msgpack:"blocks"`
	Entities map[string]WireEntity `msgpack:"entities,omitempty"`
}

// WireMatch describes the live match span for rendering.
type WireMatch struct {
	Block        string `msgpack:"b"`
	TriggerStart int    `msgpack:"ts"`
	MatchStart   int    `msgpack:"ms"`
	MatchEnd     int    `msgpack:"me"`
	Partial      string `msgpack:"p"`
}

// Request is an incoming message from the host. Command selects which
// of the optional fields apply.
type Request struct {
	ID      string        `msgpack:"id"`
	Command string        `msgpack:"cmd"`
	Doc     *WireDocument `msgpack:"doc,omitempty"`
	Block   string        `msgpack:"b,omitempty"`
	Offset  int           `msgpack:"o,omitempty"`
	Key     string        `msgpack:"k,omitempty"`
	CaretX  float64       `msgpack:"cx,omitempty"`
	CaretY  float64       `msgpack:"cy,omitempty"`
}

// ChangeResponse is the suggestion state after a change notification.
type ChangeResponse struct {
	ID          string     `msgpack:"id"`
	Suggestions []string   `msgpack:"s"`
	Selected    int        `msgpack:"sel"`
	Active      bool       `msgpack:"m"`
	Match       *WireMatch `msgpack:"match,omitempty"`
	CaretX      float64    `msgpack:"cx,omitempty"`
	CaretY      float64    `msgpack:"cy,omitempty"`
	TimeTaken   int64      `msgpack:"t"`
}

// KeyResponse reports how a key press or commit was resolved. Doc is
// set only when the request produced a new document.
type KeyResponse struct {
	ID           string        `msgpack:"id"`
	Command      string        `msgpack:"command"`
	Handled      bool          `msgpack:"handled"`
	Doc          *WireDocument `msgpack:"doc,omitempty"`
	CursorBlock  string        `msgpack:"cb,omitempty"`
	CursorOffset int           `msgpack:"co,omitempty"`
	Suggestions  []string      `msgpack:"s"`
	Selected     int           `msgpack:"sel"`
}

// StatusResponse answers health checks and the startup greeting.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse represents a request that could not be served.
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}
