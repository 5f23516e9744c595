package depot

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// Snapshot is a diagnostic view of a database. Gameplay code should not depend on it.
type Snapshot struct {
	Entities   int
	Archetypes int
	Capacity   int
	Components int
	Tables     []ArchetypeStat
}

type ArchetypeStat struct {
	ID         ArchetypeID
	Components []ComponentTypeID
	Entities   int
}

// Archetypes yields every archetype in creation order, including empty ones.
func (db *Database) Archetypes() iter.Seq[Archetype] {
	return func(yield func(Archetype) bool) {
		for _, arch := range db.graph.asSlice {
			if !yield(arch) {
				return
			}
		}
	}
}

func (db *Database) Snapshot() Snapshot {
	archetypes := iter_util.Collect(db.Archetypes())
	stats := make([]ArchetypeStat, len(archetypes))
	for i, arch := range archetypes {
		stats[i] = ArchetypeStat{
			ID:         arch.ID(),
			Components: arch.Components(),
			Entities:   arch.Len(),
		}
	}
	return Snapshot{
		Entities:   db.pool.liveCount,
		Archetypes: len(archetypes),
		Capacity:   db.pool.capacity(),
		Components: len(db.registry.order),
		Tables:     stats,
	}
}

// ComponentByName looks up a registered component by its Go type name, for example
// "main.Position".
func (db *Database) ComponentByName(name string) (ComponentInfo, bool) {
	id, ok := db.registry.byName[name]
	if !ok {
		return ComponentInfo{}, false
	}
	return db.registry.byID[id].ComponentInfo, true
}

// RegisteredComponents lists registered components in registration order.
func (db *Database) RegisteredComponents() []ComponentInfo {
	infos := make([]ComponentInfo, len(db.registry.order))
	for i, id := range db.registry.order {
		infos[i] = db.registry.byID[id].ComponentInfo
	}
	return infos
}
