package depot

import (
	"iter"
	"unsafe"
)

// Cursor walks the rows of a Query one at a time. The database is locked from the first
// Next until the cursor is exhausted or Reset.
type Cursor struct {
	query *Query

	current    *matchedArchetype
	matchIndex int
	row        int
	remaining  int
	active     bool
}

func newCursor(q *Query) *Cursor {
	return &Cursor{query: q}
}

// Next advances to the next row and reports whether there is one. A cursor that
// returned false can be iterated again from the start.
func (c *Cursor) Next() bool {
	if !c.active {
		c.query.db.Lock()
		c.active = true
		c.matchIndex = -1
		c.row = -1
		c.remaining = 0
	}
	c.row++
	for c.row >= c.remaining {
		c.matchIndex++
		if c.matchIndex >= len(c.query.matched) {
			c.Reset()
			return false
		}
		c.current = &c.query.matched[c.matchIndex]
		c.remaining = c.current.arch.count
		c.row = 0
	}
	return true
}

// Reset stops the iteration and releases the database lock.
func (c *Cursor) Reset() {
	if !c.active {
		return
	}
	c.active = false
	c.current = nil
	c.matchIndex = 0
	c.row = 0
	c.remaining = 0
	c.query.db.Unlock()
}

// Entity is the entity at the cursor position.
func (c *Cursor) Entity() EntityID {
	return c.current.arch.entityAt(c.row)
}

// Component returns the address of component id at the cursor position and panics if
// the current archetype does not hold id.
func (c *Cursor) Component(id ComponentTypeID) unsafe.Pointer {
	db := c.query.db
	col, found := db.graph.columnFor(id, c.current.arch.id)
	if !found {
		db.fatal(ComponentNotFoundError{Entity: c.Entity(), Component: id})
	}
	return c.current.arch.columns[col].at(c.row)
}

// Field returns the i-th With component of the query at the cursor position.
func (c *Cursor) Field(i int) unsafe.Pointer {
	return c.current.arch.columns[c.current.columns[i]].at(c.row)
}

// Remaining is the number of rows left in the current archetype after this one.
func (c *Cursor) Remaining() int {
	return c.remaining - c.row - 1
}

func (c *Cursor) TotalMatched() int {
	return c.query.Len()
}

// Entities drives the cursor as a range-over-func sequence.
func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for c.Next() {
			if !yield(c.Entity()) {
				c.Reset()
				return
			}
		}
	}
}

// Get returns the T at the cursor position.
func Get[T any](c *Cursor) *T {
	return (*T)(c.Component(typeInfo[T](c.query.db).ID))
}

// GetSafe is Get that reports whether the current archetype holds T.
func GetSafe[T any](c *Cursor) (*T, bool) {
	db := c.query.db
	col, found := db.graph.columnFor(typeInfo[T](db).ID, c.current.arch.id)
	if !found {
		return nil, false
	}
	return (*T)(c.current.arch.columns[col].at(c.row)), true
}
