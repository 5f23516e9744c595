package depot

import (
	"slices"

	"github.com/TheBitDrifter/mask"
)

// Archetype is a read-only view of one archetype table.
type Archetype interface {
	ID() ArchetypeID
	Len() int
	Signature() mask.Mask
	Components() []ComponentTypeID
}

var _ Archetype = &archetype{}

func (a *archetype) Signature() mask.Mask {
	return a.signature
}

func (a *archetype) Components() []ComponentTypeID {
	return slices.Clone(a.components)
}
