package depot

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/mask"
)

// Filter selects archetypes by signature: every With component, at least one WithAny
// component (when any are given) and none of the Without components.
type Filter struct {
	required []ComponentTypeID
	anyOf    []ComponentTypeID
	excluded []ComponentTypeID
}

// signatures are the masks of a Filter whose components have all been validated.
type signatures struct {
	all, any, none mask.Mask
}

// With starts a filter requiring every given component.
func With(ids ...ComponentTypeID) Filter {
	return Filter{}.With(ids...)
}

func (f Filter) With(ids ...ComponentTypeID) Filter {
	f.required = append(slices.Clone(f.required), ids...)
	return f
}

func (f Filter) WithAny(ids ...ComponentTypeID) Filter {
	f.anyOf = append(slices.Clone(f.anyOf), ids...)
	return f
}

func (f Filter) Without(ids ...ComponentTypeID) Filter {
	f.excluded = append(slices.Clone(f.excluded), ids...)
	return f
}

func (f Filter) merge(other Filter) Filter {
	return f.With(other.required...).WithAny(other.anyOf...).Without(other.excluded...)
}

func (f Filter) components() []ComponentTypeID {
	all := slices.Concat(f.required, f.anyOf, f.excluded)
	slices.Sort(all)
	return slices.Compact(all)
}

func (f Filter) signatures() signatures {
	return signatures{
		all:  signatureOf(f.required),
		any:  signatureOf(f.anyOf),
		none: signatureOf(f.excluded),
	}
}

func (f Filter) matches(sigs signatures, a *archetype) bool {
	if !a.signature.ContainsAll(sigs.all) {
		return false
	}
	if len(f.anyOf) > 0 && !a.signature.ContainsAny(sigs.any) {
		return false
	}
	if len(f.excluded) > 0 && !a.signature.ContainsNone(sigs.none) {
		return false
	}
	return true
}

type matchedArchetype struct {
	arch *archetype
	// columns[i] is the column of the i-th required component inside arch.
	columns []int
}

// Query is a filter resolved against the archetypes that existed when it was built,
// kept in archetype creation order. Archetypes created later are not visited; build a
// new Query to pick them up.
type Query struct {
	db      *Database
	filter  Filter
	matched []matchedArchetype
}

// Query resolves f against the current archetypes. Every component named in f must be
// registered.
func (db *Database) Query(f Filter) *Query {
	for _, c := range f.components() {
		db.componentInfo(c)
	}
	sigs := f.signatures()
	q := &Query{db: db, filter: f}
	for _, arch := range db.graph.asSlice {
		if !f.matches(sigs, arch) {
			continue
		}
		columns := make([]int, len(f.required))
		for i, c := range f.required {
			columns[i], _ = db.graph.columnFor(c, arch.id)
		}
		q.matched = append(q.matched, matchedArchetype{arch: arch, columns: columns})
	}
	return q
}

// Len is the number of rows the query would visit right now.
func (q *Query) Len() int {
	total := 0
	for _, m := range q.matched {
		total += m.arch.count
	}
	return total
}

// Archetypes lists the matched archetypes in visiting order.
func (q *Query) Archetypes() []Archetype {
	archetypes := make([]Archetype, len(q.matched))
	for i, m := range q.matched {
		archetypes[i] = m.arch
	}
	return archetypes
}

func (q *Query) Cursor() *Cursor {
	return newCursor(q)
}

// Entities yields every matching entity. The database is locked for the duration.
func (q *Query) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		q.db.Lock()
		defer q.db.Unlock()
		for _, m := range q.matched {
			for row, n := 0, m.arch.count; row < n; row++ {
				if !yield(m.arch.rowToEntity[row]) {
					return
				}
			}
		}
	}
}
