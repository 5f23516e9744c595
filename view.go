package depot

import "iter"

// Query1 iterates every entity holding A.
type Query1[A any] struct {
	*Query
}

// NewQuery1 resolves a query for A, narrowed further by any extra filters.
func NewQuery1[A any](db *Database, extra ...Filter) *Query1[A] {
	f := With(ComponentID[A](db))
	for _, x := range extra {
		f = f.merge(x)
	}
	return &Query1[A]{Query: db.Query(f)}
}

// All yields each matching entity with its A. The database is locked while iterating.
func (q *Query1[A]) All() iter.Seq2[EntityID, *A] {
	return func(yield func(EntityID, *A) bool) {
		q.db.Lock()
		defer q.db.Unlock()
		for _, m := range q.matched {
			a := &m.arch.columns[m.columns[0]]
			for row, n := 0, m.arch.count; row < n; row++ {
				if !yield(m.arch.rowToEntity[row], (*A)(a.at(row))) {
					return
				}
			}
		}
	}
}

func (q *Query1[A]) Each(fn func(*A)) {
	for _, a := range q.All() {
		fn(a)
	}
}

// Query2 iterates every entity holding both A and B. Both pointers of one step come
// from the same row of the same archetype.
type Query2[A, B any] struct {
	*Query
}

func NewQuery2[A, B any](db *Database, extra ...Filter) *Query2[A, B] {
	f := With(ComponentID[A](db), ComponentID[B](db))
	for _, x := range extra {
		f = f.merge(x)
	}
	return &Query2[A, B]{Query: db.Query(f)}
}

func (q *Query2[A, B]) All() iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		q.db.Lock()
		defer q.db.Unlock()
		for _, m := range q.matched {
			a := &m.arch.columns[m.columns[0]]
			b := &m.arch.columns[m.columns[1]]
			for row, n := 0, m.arch.count; row < n; row++ {
				if !yield((*A)(a.at(row)), (*B)(b.at(row))) {
					return
				}
			}
		}
	}
}

func (q *Query2[A, B]) Each(fn func(*A, *B)) {
	for a, b := range q.All() {
		fn(a, b)
	}
}

// Query3 iterates every entity holding A, B and C.
type Query3[A, B, C any] struct {
	*Query
}

func NewQuery3[A, B, C any](db *Database, extra ...Filter) *Query3[A, B, C] {
	f := With(ComponentID[A](db), ComponentID[B](db), ComponentID[C](db))
	for _, x := range extra {
		f = f.merge(x)
	}
	return &Query3[A, B, C]{Query: db.Query(f)}
}

func (q *Query3[A, B, C]) Each(fn func(*A, *B, *C)) {
	q.db.Lock()
	defer q.db.Unlock()
	for _, m := range q.matched {
		a := &m.arch.columns[m.columns[0]]
		b := &m.arch.columns[m.columns[1]]
		c := &m.arch.columns[m.columns[2]]
		for row, n := 0, m.arch.count; row < n; row++ {
			fn((*A)(a.at(row)), (*B)(b.at(row)), (*C)(c.at(row)))
		}
	}
}
