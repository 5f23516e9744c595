package depot

import (
	"slices"

	"github.com/TheBitDrifter/mask"
	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// archetypeGraph owns every archetype of a database. Archetypes are created on first
// use of their signature and are never destroyed, even once empty.
type archetypeGraph struct {
	capacity    int
	registry    *componentRegistry
	bySignature map[mask.Mask]ArchetypeID
	asSlice     []*archetype
	columnIndex *intmap.Map[uint64, int]
	log         *zap.Logger
}

func newArchetypeGraph(registry *componentRegistry, capacity int, log *zap.Logger) *archetypeGraph {
	g := &archetypeGraph{
		capacity:    capacity,
		registry:    registry,
		bySignature: make(map[mask.Mask]ArchetypeID),
		columnIndex: intmap.New[uint64, int](64),
		log:         log,
	}
	g.getOrCreate(nil)
	return g
}

func signatureOf(components []ComponentTypeID) mask.Mask {
	var sig mask.Mask
	for _, c := range components {
		sig.Mark(uint32(c))
	}
	return sig
}

func columnKey(c ComponentTypeID, a ArchetypeID) uint64 {
	return uint64(c)<<32 | uint64(a)
}

func (g *archetypeGraph) empty() *archetype {
	return g.asSlice[0]
}

func (g *archetypeGraph) get(id ArchetypeID) *archetype {
	return g.asSlice[id]
}

// getOrCreate returns the archetype for the given component set. Order and duplicates
// in components do not matter.
func (g *archetypeGraph) getOrCreate(components []ComponentTypeID) *archetype {
	sorted := slices.Clone(components)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	infos := make([]*componentInfo, len(sorted))
	for i, c := range sorted {
		info, ok := g.registry.lookupID(c)
		if !ok {
			panic(ComponentNotRegisteredError{ID: c})
		}
		infos[i] = info
	}

	sig := signatureOf(sorted)
	if id, found := g.bySignature[sig]; found {
		return g.asSlice[id]
	}

	id := ArchetypeID(len(g.asSlice))
	created := newArchetype(id, sig, sorted, infos, g.capacity)
	for col, c := range sorted {
		g.columnIndex.Put(columnKey(c, id), col)
	}
	g.asSlice = append(g.asSlice, created)
	g.bySignature[sig] = id

	g.log.Debug("archetype created",
		zap.Uint32("archetype", uint32(id)),
		zap.Int("components", len(sorted)),
		zap.Int("capacity", g.capacity),
	)
	return created
}

// columnFor resolves the column holding component c inside archetype a without scanning.
func (g *archetypeGraph) columnFor(c ComponentTypeID, a ArchetypeID) (int, bool) {
	return g.columnIndex.Get(columnKey(c, a))
}

func (g *archetypeGraph) withComponent(from *archetype, c ComponentTypeID) *archetype {
	if id, found := from.addEdges.Get(c); found {
		return g.asSlice[id]
	}
	to := g.getOrCreate(append(slices.Clone(from.components), c))
	from.addEdges.Put(c, to.id)
	to.removeEdges.Put(c, from.id)
	return to
}

func (g *archetypeGraph) withoutComponent(from *archetype, c ComponentTypeID) *archetype {
	if id, found := from.removeEdges.Get(c); found {
		return g.asSlice[id]
	}
	remaining := make([]ComponentTypeID, 0, len(from.components))
	for _, comp := range from.components {
		if comp != c {
			remaining = append(remaining, comp)
		}
	}
	to := g.getOrCreate(remaining)
	from.removeEdges.Put(c, to.id)
	to.addEdges.Put(c, from.id)
	return to
}

// moveEntity migrates e from its current archetype into to. Components present in both
// archetypes are copied, added is filled from value (zeroed when value is nil). The
// target row is fully written before the source row is removed; the displaced entity and
// then e itself get their records corrected.
func (g *archetypeGraph) moveEntity(records *recordTable, e EntityID, to *archetype, added ComponentTypeID, value []byte) {
	rec := records.get(e)
	from := g.asSlice[rec.archetype]

	newRow := to.addEntityRow(e)
	for i := range to.columns {
		dst := to.columns[i].bytes(newRow)
		if src, found := g.columnFor(to.columns[i].component, from.id); found {
			copy(dst, from.columns[src].bytes(rec.row))
			continue
		}
		if to.columns[i].component == added && value != nil {
			copy(dst, value)
			continue
		}
		clear(dst)
	}

	if moved := from.removeEntityRow(rec.row); moved != InvalidEntity {
		records.setRow(moved, rec.row)
	}
	records.set(e, to.id, newRow)
}
