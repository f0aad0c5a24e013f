// Package document models the rich-text document the engine reads and
// replaces into: an ordered sequence of keyed text blocks plus entity
// annotations over block ranges.
//
// Document is a value type. Every operation that would change it returns
// a fresh Document and leaves the receiver intact, so a host editor can
// keep previous values alive for its undo history.
package document

import (
	"fmt"
	"sort"
)

// Block is one text block: a stable key and its plain-text content,
// plus the entity ranges tagged onto that content.
type Block struct {
	Key    string
	Text   string
	Ranges []EntityRange
}

// EntityAt returns the key of the entity covering the given byte offset,
// if any.
func (b Block) EntityAt(offset int) (string, bool) {
	for _, r := range b.Ranges {
		if offset >= r.Start && offset < r.End {
			return r.EntityKey, true
		}
	}
	return "", false
}

// Selection is a text selection within one block. Start == End is a
// collapsed cursor.
type Selection struct {
	BlockKey string
	Start    int
	End      int
}

// Collapsed reports whether the selection is a bare cursor.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// CursorAfter returns a collapsed selection sitting at the given offset.
func CursorAfter(blockKey string, offset int) Selection {
	return Selection{BlockKey: blockKey, Start: offset, End: offset}
}

// Document is an ordered sequence of blocks plus the entity registry
// their ranges refer to.
type Document struct {
	Blocks   []Block
	Entities map[string]Entity
}

// New builds a document from blocks with no entities.
func New(blocks ...Block) Document {
	return Document{Blocks: blocks, Entities: map[string]Entity{}}
}

// Block looks up a block by key.
func (d Document) Block(key string) (Block, bool) {
	for _, b := range d.Blocks {
		if b.Key == key {
			return b, true
		}
	}
	return Block{}, false
}

// Entity looks up a registered entity by key.
func (d Document) Entity(key string) (Entity, bool) {
	e, ok := d.Entities[key]
	return e, ok
}

// clone deep-copies the document so the result can be edited freely.
func (d Document) clone() Document {
	out := Document{
		Blocks:   make([]Block, len(d.Blocks)),
		Entities: make(map[string]Entity, len(d.Entities)+1),
	}
	for i, b := range d.Blocks {
		nb := b
		nb.Ranges = append([]EntityRange(nil), b.Ranges...)
		out.Blocks[i] = nb
	}
	for k, v := range d.Entities {
		out.Entities[k] = v
	}
	return out
}

// ReplaceWithEntity splices text over [start, end) of the named block,
// tags the inserted run with the given entity, and registers the entity.
// Ranges overlapping the replaced span are dropped (the old annotation no
// longer has text to cover); ranges past it shift by the length delta.
// Returns the new document and a collapsed cursor just after the run.
func (d Document) ReplaceWithEntity(blockKey string, start, end int, text string, ent Entity) (Document, Selection, error) {
	out := d.clone()

	idx := -1
	for i, b := range out.Blocks {
		if b.Key == blockKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d, Selection{}, fmt.Errorf("document: unknown block %q", blockKey)
	}
	b := out.Blocks[idx]
	if start < 0 || end > len(b.Text) || start > end {
		return d, Selection{}, fmt.Errorf("document: replace range [%d,%d) out of bounds for block %q (len %d)", start, end, blockKey, len(b.Text))
	}

	delta := len(text) - (end - start)
	kept := b.Ranges[:0:0]
	for _, r := range b.Ranges {
		switch {
		case r.End <= start:
			kept = append(kept, r)
		case r.Start >= end:
			r.Start += delta
			r.End += delta
			kept = append(kept, r)
		}
	}
	if len(text) > 0 {
		kept = append(kept, EntityRange{Start: start, End: start + len(text), EntityKey: ent.Key})
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })

	b.Text = b.Text[:start] + text + b.Text[end:]
	b.Ranges = kept
	out.Blocks[idx] = b
	out.Entities[ent.Key] = ent

	return out, CursorAfter(blockKey, start+len(text)), nil
}
