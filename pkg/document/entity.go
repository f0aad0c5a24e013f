package document

import "github.com/google/uuid"

// EntityKind classifies what an entity annotation represents.
type EntityKind string

// Mutability controls how the host editor treats edits inside an entity range.
type Mutability string

const (
	// KindToken marks a committed autocomplete token.
	KindToken EntityKind = "TOKEN"

	// MutabilityImmutable ranges are edited as a single unit by the host:
	// any edit inside them removes the whole annotation.
	MutabilityImmutable Mutability = "IMMUTABLE"
)

// Entity is a tagged annotation attached to a contiguous text range
// within one block. Creating an entity never alters block text; the
// range it covers is tracked separately on the block.
type Entity struct {
	Key        string
	Kind       EntityKind
	Mutability Mutability
	// Data carries the completion string the entity was committed with.
	Data string
}

// NewTokenEntity mints an immutable TOKEN entity for a committed completion.
func NewTokenEntity(text string) Entity {
	return Entity{
		Key:        uuid.NewString(),
		Kind:       KindToken,
		Mutability: MutabilityImmutable,
		Data:       text,
	}
}

// EntityRange tags [Start, End) of a block's text with an entity key.
// Offsets are byte offsets into the block's UTF-8 text.
type EntityRange struct {
	Start     int
	End       int
	EntityKey string
}
