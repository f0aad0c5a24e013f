package server

import "github.com/AlexanderKh/tokenflow/pkg/document"

func cursorFromRequest(r Request) document.Selection {
	return document.CursorAfter(r.Block, r.Offset)
}

func toWireDocument(d document.Document) *WireDocument {
	wd := &WireDocument{Blocks: make([]WireBlock, len(d.Blocks))}
	for i, b := range d.Blocks {
		wb := WireBlock{Key: b.Key, Text: b.Text}
		for _, r := range b.Ranges {
			wb.Ranges = append(wb.Ranges, WireRange{Start: r.Start, End: r.End, Entity: r.EntityKey})
		}
		wd.Blocks[i] = wb
	}
	if len(d.Entities) > 0 {
		wd.Entities = make(map[string]WireEntity, len(d.Entities))
		for k, e := range d.Entities {
			wd.Entities[k] = WireEntity{Kind: string(e.Kind), Mutability: string(e.Mutability), Data: e.Data}
		}
	}
	return wd
}

func fromWireDocument(wd *WireDocument) document.Document {
	doc := document.Document{
		Blocks:   make([]document.Block, len(wd.Blocks)),
		Entities: make(map[string]document.Entity, len(wd.Entities)),
	}
	for i, wb := range wd.Blocks {
		b := document.Block{Key: wb.Key, Text: wb.Text}
		for _, r := range wb.Ranges {
			b.Ranges = append(b.Ranges, document.EntityRange{Start: r.Start, End: r.End, EntityKey: r.Entity})
		}
		doc.Blocks[i] = b
	}
	for k, we := range wd.Entities {
		doc.Entities[k] = document.Entity{
			Key:        k,
			Kind:       document.EntityKind(we.Kind),
			Mutability: document.Mutability(we.Mutability),
			Data:       we.Data,
		}
	}
	return doc
}
